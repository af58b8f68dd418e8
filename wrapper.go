package needs

import (
	"fmt"
	"io"
)

// wrapper erases the ownership strategy behind a populated slot. get
// hands out the held value typed under the slot's nominal need type;
// release runs the strategy's teardown when the wrapper is displaced or
// the container is closed.
type wrapper interface {
	get() any
	release() error
	ownership() Ownership
}

// closeValue runs v's teardown if it has one.
func closeValue(v any) error {
	if c, ok := v.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// assignableError reports a concrete type that cannot stand in for the
// need type it is being installed under.
func assignableError[N any](v any) error {
	return fmt.Errorf("%w: %T cannot be used as %s", ErrNotAssignable, v, TypeOf[N]())
}

// ---------------------------------------------------------------------------
// Owned copy
// ---------------------------------------------------------------------------

// ownedWrapper holds its own copy of a value of concrete type X, handed
// out under nominal type N. The copy lives and dies with the wrapper.
type ownedWrapper[N, X any] struct {
	value X
	typed N
}

func newOwned[N, X any](v X) (*ownedWrapper[N, X], error) {
	w := &ownedWrapper[N, X]{value: v}
	typed, ok := any(&w.value).(N)
	if !ok {
		return nil, assignableError[N](&w.value)
	}
	w.typed = typed
	return w, nil
}

func (w *ownedWrapper[N, X]) get() any { return w.typed }
func (w *ownedWrapper[N, X]) release() error { return closeValue(&w.value) }
func (w *ownedWrapper[N, X]) ownership() Ownership { return OwnedCopy }

// ---------------------------------------------------------------------------
// Borrowed
// ---------------------------------------------------------------------------

// borrowedWrapper holds a caller-managed pointer. Release never touches
// the value; the caller must keep it alive while it is installed.
type borrowedWrapper[N any] struct {
	typed N
}

func newBorrowed[N, X any](p *X) (*borrowedWrapper[N], error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil pointer for %s", ErrNilValue, TypeOf[N]())
	}
	typed, ok := any(p).(N)
	if !ok {
		return nil, assignableError[N](p)
	}
	return &borrowedWrapper[N]{typed: typed}, nil
}

func (w *borrowedWrapper[N]) get() any { return w.typed }
func (w *borrowedWrapper[N]) release() error { return nil }
func (w *borrowedWrapper[N]) ownership() Ownership { return Borrowed }

// ---------------------------------------------------------------------------
// Transferred
// ---------------------------------------------------------------------------

// transferredWrapper holds a pointer whose ownership was handed over by
// the caller. The value is torn down with the wrapper.
type transferredWrapper[N, X any] struct {
	ptr   *X
	typed N
}

func newTransferred[N, X any](p *X) (*transferredWrapper[N, X], error) {
	if p == nil {
		// Ownership is not taken; there is nothing to take.
		return nil, fmt.Errorf("%w: nil pointer for %s", ErrNilValue, TypeOf[N]())
	}
	typed, ok := any(p).(N)
	if !ok {
		return nil, assignableError[N](p)
	}
	return &transferredWrapper[N, X]{ptr: p, typed: typed}, nil
}

func (w *transferredWrapper[N, X]) get() any { return w.typed }
func (w *transferredWrapper[N, X]) release() error { return closeValue(w.ptr) }
func (w *transferredWrapper[N, X]) ownership() Ownership { return Transferred }

// ---------------------------------------------------------------------------
// Shared
// ---------------------------------------------------------------------------

// sharedWrapper holds its own reference on a [Shared] handle, cloned at
// install time. Release drops that one reference.
type sharedWrapper[N, X any] struct {
	handle *Shared[X]
	typed  N
}

func newSharedWrapper[N, X any](h *Shared[X]) (*sharedWrapper[N, X], error) {
	if h.Empty() {
		return nil, fmt.Errorf("%w: empty shared handle for %s", ErrNilValue, TypeOf[N]())
	}
	typed, ok := any(h.Get()).(N)
	if !ok {
		return nil, assignableError[N](h.Get())
	}
	return &sharedWrapper[N, X]{handle: h.Clone(), typed: typed}, nil
}

func (w *sharedWrapper[N, X]) get() any { return w.typed }
func (w *sharedWrapper[N, X]) release() error { return w.handle.Release() }
func (w *sharedWrapper[N, X]) ownership() Ownership { return SharedOwned }
