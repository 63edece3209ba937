package column

// View is a zero-copy, read-only projection over a column's backing storage.
// It stays valid only while the storage it references is alive and unchanged
// in shape.
type View interface {
	Len() int
}

// MutableView is a zero-copy, writable projection over a column's backing
// storage. Every MutableView is also usable as a read View.
type MutableView interface {
	View
}

// Column is the capability interface every column implementation satisfies.
// Table depends only on this interface, never on a concrete representation.
//
// A Column's storage is owned by whoever created it (the host side), never by
// the aggregates built on top of it. View conversion may fail when the column
// is no longer in a state that can produce one (e.g. its storage was
// reclaimed); such failures are surfaced unchanged to the caller.
type Column interface {
	// Size returns the number of rows in the column. Always >= 0.
	Size() int

	// View produces a read-only projection over the current backing storage.
	View() (View, error)

	// MutableView produces a writable projection over the current backing
	// storage. Implementations backed by immutable storage return an error.
	MutableView() (MutableView, error)
}
