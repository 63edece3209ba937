package table

import "fmt"

// Represents a row-count disagreement among a table's columns, detected once
// at construction time. A construction attempt that fails this way must be
// discarded, not reused.
type StructuralMismatchError struct {
	Index int // position of the offending column
	Got   int // its size
	Want  int // the size fixed by column 0
}

func (e *StructuralMismatchError) Error() string {
	return fmt.Sprintf("structural mismatch: column %d has %d rows, expected %d",
		e.Index, e.Got, e.Want)
}

func newStructuralMismatch(index, got, want int) *StructuralMismatchError {
	return &StructuralMismatchError{Index: index, Got: got, Want: want}
}

// Represents an accessor called with an index outside [0, numColumns).
// The table itself is unaffected; the caller can retry with a valid index.
type IndexOutOfRangeError struct {
	Index      int
	NumColumns int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("column index %d out of range [0, %d)", e.Index, e.NumColumns)
}

func newIndexOutOfRange(index, numColumns int) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{Index: index, NumColumns: numColumns}
}

// Represents a column that could not produce the requested view. The
// underlying failure comes from the column implementation and is carried
// unchanged; Unwrap exposes it for errors.Is / errors.As.
type ColumnViewError struct {
	Index int
	Err   error
}

func (e *ColumnViewError) Error() string {
	return fmt.Sprintf("column %d view conversion failed: %v", e.Index, e.Err)
}

func (e *ColumnViewError) Unwrap() error { return e.Err }

func newColumnViewError(index int, err error) *ColumnViewError {
	return &ColumnViewError{Index: index, Err: err}
}

// Represents a construction call that was malformed before validation could
// even start: a missing descriptor or a nil column handle.
type InvalidConstructionError struct {
	Reason string
}

func (e *InvalidConstructionError) Error() string {
	return fmt.Sprintf("invalid table construction: %s", e.Reason)
}

func newInvalidConstruction(reason string) *InvalidConstructionError {
	return &InvalidConstructionError{Reason: reason}
}
