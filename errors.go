package needs

import "errors"

var (
	// ErrNotANeed is returned when a Set or Get names a type that is not
	// part of the container's declared need list.
	ErrNotANeed = errors.New("type specified is not a need")

	// ErrNotSet is returned when Get is called for a need that was never
	// assigned a value.
	ErrNotSet = errors.New("need never set")

	// ErrNilValue is returned when a nil pointer or an empty [Shared]
	// handle is handed to an install, or when an empty handle is
	// released. The slot keeps its previous value in that case.
	ErrNilValue = errors.New("nil value")

	// ErrNotAssignable is returned when the value being installed does
	// not satisfy the need type it is keyed under.
	ErrNotAssignable = errors.New("value does not satisfy need type")

	// ErrClosed is returned by any operation on a closed container, and
	// by [Container.Close] itself when called more than once.
	ErrClosed = errors.New("container closed")
)
