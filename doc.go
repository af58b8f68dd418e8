// Package needs provides a small, fixed-schema dependency container for
// Go, keyed by static type identity.
//
// A consumer declares the capability types it depends on — its "needs" —
// when it constructs a [Container]. The schema is fixed at that point:
// each declared need gets exactly one slot, and only declared needs can
// ever be set or retrieved. Values are installed with one of the Set
// functions and retrieved with [Get], both keyed by a compile-time type
// parameter.
//
// # Quick Start
//
//	type Printer interface{ Print() }
//
//	c := needs.New(needs.Of[Printer]())
//
//	err := needs.Set[Printer](c, HelloPrinter{Suffix: "world"})
//	p, err := needs.Get[Printer](c)
//	p.Print()
//
// A consumer type typically embeds the container:
//
//	type App struct {
//		*needs.Container
//	}
//
//	app := App{needs.New(needs.Of[Printer](), needs.Of[Quacker]())}
//
// # Ownership
//
// Each Set variant installs a wrapper with a different ownership
// strategy for the held value:
//
// [Set] — the container owns its own copy of the value. The copy's
// [io.Closer] teardown, if any, runs when the slot is replaced or the
// container is closed.
//
// [SetBorrowed] — the container borrows a caller-managed pointer. The
// caller keeps the value alive for as long as it is installed; the
// container never tears it down.
//
// [SetOwned] — the container takes exclusive ownership of the pointer.
// Teardown runs on replacement or close, as with [Set].
//
// [SetShared] — the container holds one reference on a reference-counted
// [Shared] handle. The value is torn down when the last reference,
// caller's or container's, is released.
//
// Every variant accepts a concrete type distinct from the need type it
// is keyed under, so a concrete implementation can be stored behind an
// interface need:
//
//	needs.Set[Printer](c, HelloPrinter{...})     // keyed as Printer
//	needs.SetBorrowed[Printer](c, &helloPrinter) // same
//
// # Error Model
//
// All failures are synchronous and signal programmer error at the call
// site: setting or getting an undeclared type ([ErrNotANeed]), getting a
// need that was never set ([ErrNotSet]), or handing a nil pointer or
// empty handle to an install ([ErrNilValue]). Nothing is retried, logged
// or recovered internally. A failed Set leaves the slot's previous value
// untouched.
//
// The container is not safe for concurrent use; callers sharing one
// across goroutines must synchronize externally.
package needs
