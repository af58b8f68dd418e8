package needs

import (
	"fmt"
	"sync/atomic"
)

// Shared is a reference-counted owning handle for a value. It stands in
// for shared ownership between a caller and one or more containers: each
// holder keeps its own handle, and the value's [io.Closer] teardown (if
// any) runs exactly once, when the last handle releases its reference.
//
//	db := openDB()
//	h := needs.NewShared(db)
//	needs.SetShared[Store](c, h) // container clones its own reference
//	defer h.Release()            // drop the caller's reference
//
// Handles are not safe for concurrent use; only the reference count
// itself is atomic, so distinct handles to the same value may be
// released from different goroutines.
type Shared[T any] struct {
	state *sharedState[T]
}

type sharedState[T any] struct {
	value *T
	refs  atomic.Int64
}

// NewShared wraps v in a handle holding one reference. A nil v yields an
// empty handle, which every install rejects with [ErrNilValue].
func NewShared[T any](v *T) *Shared[T] {
	if v == nil {
		return &Shared[T]{}
	}
	s := &sharedState[T]{value: v}
	s.refs.Store(1)
	return &Shared[T]{state: s}
}

// Clone returns a new handle sharing ownership of the same value, adding
// one reference. Cloning an empty handle yields an empty handle.
func (s *Shared[T]) Clone() *Shared[T] {
	if s.Empty() {
		return &Shared[T]{}
	}
	s.state.refs.Add(1)
	return &Shared[T]{state: s.state}
}

// Release drops this handle's reference and empties the handle. When the
// last reference across all handles is dropped, the value's teardown
// runs. Releasing an already-empty handle returns [ErrNilValue].
func (s *Shared[T]) Release() error {
	if s.Empty() {
		return fmt.Errorf("%w: release of empty shared handle", ErrNilValue)
	}
	state := s.state
	s.state = nil
	if state.refs.Add(-1) > 0 {
		return nil
	}
	return closeValue(state.value)
}

// Get returns the underlying pointer, or nil for an empty handle. The
// pointer stays valid only while at least one reference is held.
func (s *Shared[T]) Get() *T {
	if s.Empty() {
		return nil
	}
	return s.state.value
}

// Empty reports whether the handle holds no reference, either because it
// was built from nil or because it was released.
func (s *Shared[T]) Empty() bool {
	return s == nil || s.state == nil
}
