package needs

import (
	"errors"
	"fmt"
	"reflect"
)

// Container maps each declared need's type identity to one slot. The set
// of slots is fixed by [New] and never grows or shrinks; each slot is
// either empty or holds exactly one ownership wrapper. Use the package
// level [Set], [SetBorrowed], [SetOwned], [SetShared] and [Get]
// functions to work with it.
//
// A Container is not safe for concurrent use.
type Container struct {
	// slots maps need identity to the installed wrapper. A nil value
	// means the need is declared but never set.
	slots map[reflect.Type]wrapper

	closed bool
}

// New creates a [Container] with one empty slot per declared need.
// Duplicate descriptors collapse to a single slot. The schema is
// immutable after New returns.
func New(needList ...Need) *Container {
	slots := make(map[reflect.Type]wrapper, len(needList))
	for _, n := range needList {
		slots[n.t] = nil
	}
	return &Container{slots: slots}
}

// Needs returns the declared need descriptors, in unspecified order.
func (c *Container) Needs() []Need {
	out := make([]Need, 0, len(c.slots))
	for t := range c.slots {
		out = append(out, Need{t: t})
	}
	return out
}

// verify checks that t names a declared need on a live container.
func (c *Container) verify(t reflect.Type) error {
	if c.closed {
		return fmt.Errorf("%w: %s", ErrClosed, t)
	}
	if _, ok := c.slots[t]; !ok {
		return fmt.Errorf("%w: %s", ErrNotANeed, t)
	}
	return nil
}

// install replaces the slot's wrapper with w. The displaced wrapper is
// released; its release error is reported, but the install stands either
// way. Callers must have passed verify already.
func (c *Container) install(t reflect.Type, w wrapper) error {
	old := c.slots[t]
	c.slots[t] = w
	if old == nil {
		return nil
	}
	if err := old.release(); err != nil {
		return fmt.Errorf("releasing previous %s: %w", t, err)
	}
	return nil
}

// Close releases every populated slot: owned and transferred values are
// torn down, shared references dropped, borrowed values left untouched.
// Release errors are joined into the result. Close is safe to call more
// than once; subsequent calls return [ErrClosed], as does any Set or Get
// after the first Close.
func (c *Container) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true

	var errs []error
	for t, w := range c.slots {
		if w == nil {
			continue
		}
		if err := w.release(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", t, err))
		}
		c.slots[t] = nil
	}
	return errors.Join(errs...)
}
