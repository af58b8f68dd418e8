package needs

// Ownership identifies the strategy a slot's wrapper uses for the value
// it holds.
type Ownership int

const (
	// OwnedCopy means the container holds its own copy of the value,
	// installed with [Set]. The copy is torn down with the wrapper.
	OwnedCopy Ownership = iota

	// Borrowed means the container holds a caller-managed pointer,
	// installed with [SetBorrowed]. The caller keeps the value alive and
	// tears it down.
	Borrowed

	// Transferred means the container took exclusive ownership of the
	// pointer, installed with [SetOwned]. The value is torn down with
	// the wrapper.
	Transferred

	// SharedOwned means the container holds one reference on a [Shared]
	// handle, installed with [SetShared]. The value is torn down when
	// the last reference is released.
	SharedOwned
)

// String returns the human-readable name of the ownership strategy.
func (o Ownership) String() string {
	switch o {
	case OwnedCopy:
		return "owned copy"
	case Borrowed:
		return "borrowed"
	case Transferred:
		return "transferred"
	case SharedOwned:
		return "shared"
	default:
		return "unknown"
	}
}
