package needs

import "reflect"

// TypeOf returns the identity token for the type T. Tokens are stable
// for the life of the process, comparable, and distinct for distinct
// types, so they can key the container's slot map directly.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Need is the descriptor for one declared dependency. Build one with
// [Of] and pass it to [New]; two descriptors built from the same type
// are interchangeable.
type Need struct {
	t reflect.Type
}

// Of builds the [Need] descriptor for the capability type T. T is
// normally an interface type.
func Of[T any]() Need {
	return Need{t: TypeOf[T]()}
}

// Type returns the need's identity token.
func (n Need) Type() reflect.Type { return n.t }

// String returns the need's type name.
func (n Need) String() string { return n.t.String() }
