package memcol

import (
	"errors"

	"github.com/columnar-core/tabular/internal/column"
)

// ErrDetached is returned by view conversion after the backing storage has
// been reclaimed by its owner.
var ErrDetached = errors.New("memcol: column storage detached")

// Element is the set of value types a slice-backed numeric column can hold.
type Element interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Numeric is an in-memory column over a slice of numeric values.
// The column does not copy the slice it is given; it shares storage with the
// caller for its whole lifetime, and every view it produces shares that same
// storage.
type Numeric[T Element] struct {
	data     []T
	detached bool
}

// NewNumeric wraps an existing slice as a column. The slice is retained by
// reference, not copied.
func NewNumeric[T Element](data []T) *Numeric[T] {
	return &Numeric[T]{data: data}
}

// Size returns the number of rows.
func (c *Numeric[T]) Size() int { return len(c.data) }

// Detach simulates the owner reclaiming the backing storage.
// The column keeps reporting its size, but view conversion fails afterward.
func (c *Numeric[T]) Detach() { c.detached = true }

// View returns a read-only projection sharing the column's storage.
func (c *Numeric[T]) View() (column.View, error) {
	if c.detached {
		return nil, ErrDetached
	}
	return &NumericView[T]{data: c.data}, nil
}

// MutableView returns a writable projection sharing the column's storage.
func (c *Numeric[T]) MutableView() (column.MutableView, error) {
	if c.detached {
		return nil, ErrDetached
	}
	return &NumericMutableView[T]{data: c.data}, nil
}

// NumericView is a read-only projection over a Numeric column.
type NumericView[T Element] struct {
	data []T
}

func (v *NumericView[T]) Len() int { return len(v.data) }

// Value returns the element at row i.
func (v *NumericView[T]) Value(i int) T { return v.data[i] }

// NumericMutableView is a writable projection over a Numeric column.
// Writes land directly in the column's backing storage.
type NumericMutableView[T Element] struct {
	data []T
}

func (v *NumericMutableView[T]) Len() int { return len(v.data) }

// Value returns the element at row i.
func (v *NumericMutableView[T]) Value(i int) T { return v.data[i] }

// Set overwrites the element at row i in place.
func (v *NumericMutableView[T]) Set(i int, val T) { v.data[i] = val }

// Strings is an in-memory column of string values, sharing its backing slice
// the same way Numeric does.
type Strings struct {
	data     []string
	detached bool
}

// NewStrings wraps an existing slice as a column without copying it.
func NewStrings(data []string) *Strings {
	return &Strings{data: data}
}

func (c *Strings) Size() int { return len(c.data) }

// Detach simulates the owner reclaiming the backing storage.
func (c *Strings) Detach() { c.detached = true }

func (c *Strings) View() (column.View, error) {
	if c.detached {
		return nil, ErrDetached
	}
	return &StringsView{data: c.data}, nil
}

func (c *Strings) MutableView() (column.MutableView, error) {
	if c.detached {
		return nil, ErrDetached
	}
	return &StringsMutableView{data: c.data}, nil
}

// StringsView is a read-only projection over a Strings column.
type StringsView struct {
	data []string
}

func (v *StringsView) Len() int           { return len(v.data) }
func (v *StringsView) Value(i int) string { return v.data[i] }

// StringsMutableView is a writable projection over a Strings column.
type StringsMutableView struct {
	data []string
}

func (v *StringsMutableView) Len() int              { return len(v.data) }
func (v *StringsMutableView) Value(i int) string    { return v.data[i] }
func (v *StringsMutableView) Set(i int, val string) { v.data[i] = val }
