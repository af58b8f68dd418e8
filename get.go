package needs

import "fmt"

// Get returns the value installed for the need N:
//
//	p, err := needs.Get[Printer](c)
//
// It fails with [ErrNotANeed] if N is not declared and with [ErrNotSet]
// if the slot was never populated. The returned value stays valid until
// the slot is re-set or the container is closed.
func Get[N any](c *Container) (N, error) {
	var zero N

	t := TypeOf[N]()
	if err := c.verify(t); err != nil {
		return zero, err
	}

	w := c.slots[t]
	if w == nil {
		return zero, fmt.Errorf("%w: %s", ErrNotSet, t)
	}

	out, ok := w.get().(N)
	if !ok {
		return zero, fmt.Errorf("cannot convert %T to %s", w.get(), t)
	}
	return out, nil
}

// OwnershipOf reports which ownership strategy currently backs the slot
// for the need N. It fails with [ErrNotANeed] if N is not declared and
// with [ErrNotSet] if the slot is empty.
func OwnershipOf[N any](c *Container) (Ownership, error) {
	t := TypeOf[N]()
	if err := c.verify(t); err != nil {
		return 0, err
	}

	w := c.slots[t]
	if w == nil {
		return 0, fmt.Errorf("%w: %s", ErrNotSet, t)
	}
	return w.ownership(), nil
}
