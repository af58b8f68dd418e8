package needs

import "testing"

// Shared test types and helpers used across test files.

// mustSet calls t.Fatal if the owned-copy install fails.
func mustSet[N, X any](t *testing.T, c *Container, v X) {
	t.Helper()
	if err := Set[N](c, v); err != nil {
		t.Fatalf("Set: %v", err)
	}
}

// mustGet calls t.Fatal if retrieval fails.
func mustGet[N any](t *testing.T, c *Container) N {
	t.Helper()
	v, err := Get[N](c)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	return v
}

type testPrinter interface {
	Print() string
}

type helloPrinter struct{ Suffix string }

func (p *helloPrinter) Print() string { return "Hello " + p.Suffix }

type testQuacker interface {
	Quack() string
}

type stdoutDuck struct{}

func (d *stdoutDuck) Quack() string { return "Quack!" }

// testResource is a need whose implementations carry a Close teardown.
type testResource interface {
	Name() string
	Close() error
}

// closeRecorder counts teardown runs, so tests can assert that owning
// wrappers close exactly once and borrowing wrappers never do.
type closeRecorder struct {
	name   string
	closes int
	err    error
}

func (r *closeRecorder) Name() string { return r.name }

func (r *closeRecorder) Close() error {
	r.closes++
	return r.err
}
