package needs

// Set installs a copy of value as the container's N dependency. The
// container owns the copy: its [io.Closer] teardown, if any, runs when
// the slot is replaced or the container is closed.
//
// The concrete type X may differ from the need type N, so a concrete
// implementation can be installed behind an interface need:
//
//	needs.Set[Printer](c, HelloPrinter{Suffix: "world"})
//
// Set fails with [ErrNotANeed] if N is not declared, and with
// [ErrNotAssignable] if *X does not satisfy N. A failed Set leaves the
// slot's previous value untouched.
func Set[N, X any](c *Container, value X) error {
	t := TypeOf[N]()
	if err := c.verify(t); err != nil {
		return err
	}
	w, err := newOwned[N](value)
	if err != nil {
		return err
	}
	return c.install(t, w)
}

// SetBorrowed installs a caller-managed pointer as the container's N
// dependency. The container never tears the value down; the caller must
// keep it alive at least until the slot is replaced or the container is
// closed.
//
// SetBorrowed fails with [ErrNilValue] on a nil pointer, [ErrNotANeed]
// if N is not declared, and [ErrNotAssignable] if *X does not satisfy N.
// A failed SetBorrowed leaves the slot's previous value untouched.
func SetBorrowed[N, X any](c *Container, ptr *X) error {
	t := TypeOf[N]()
	if err := c.verify(t); err != nil {
		return err
	}
	w, err := newBorrowed[N](ptr)
	if err != nil {
		return err
	}
	return c.install(t, w)
}

// SetOwned installs ptr as the container's N dependency, transferring
// ownership in: the value's [io.Closer] teardown, if any, runs when the
// slot is replaced or the container is closed. The caller must not use
// the pointer to manage the value's lifetime afterwards.
//
// SetOwned fails with [ErrNilValue] on a nil pointer (ownership is not
// taken in that case), [ErrNotANeed] if N is not declared, and
// [ErrNotAssignable] if *X does not satisfy N. A failed SetOwned leaves
// the slot's previous value untouched.
func SetOwned[N, X any](c *Container, ptr *X) error {
	t := TypeOf[N]()
	if err := c.verify(t); err != nil {
		return err
	}
	w, err := newTransferred[N](ptr)
	if err != nil {
		return err
	}
	return c.install(t, w)
}

// SetShared installs the value behind a [Shared] handle as the
// container's N dependency. The container clones its own reference at
// install time, so the caller's handle remains the caller's to release.
// The value is torn down when the last reference is released, whichever
// side that is.
//
// SetShared fails with [ErrNilValue] on an empty handle, [ErrNotANeed]
// if N is not declared, and [ErrNotAssignable] if *X does not satisfy N.
// A failed SetShared leaves the slot's previous value untouched.
func SetShared[N, X any](c *Container, h *Shared[X]) error {
	t := TypeOf[N]()
	if err := c.verify(t); err != nil {
		return err
	}
	w, err := newSharedWrapper[N](h)
	if err != nil {
		return err
	}
	return c.install(t, w)
}
