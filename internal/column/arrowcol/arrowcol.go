package arrowcol

import (
	"errors"

	"github.com/apache/arrow/go/v7/arrow"

	"github.com/columnar-core/tabular/internal/column"
)

var (
	// ErrReleased is returned by view conversion after Release.
	ErrReleased = errors.New("arrowcol: column released")

	// ErrImmutable is returned by MutableView: arrow arrays cannot be
	// written in place.
	ErrImmutable = errors.New("arrowcol: arrow arrays are immutable")
)

// Column adapts an arrow.Array to the column capability interface.
//
// The array's buffers are refcounted by arrow itself; Wrap retains the array
// and Release gives that reference back. Views produced here alias the
// array's buffers directly.
type Column struct {
	arr      arrow.Array
	released bool
}

// Wrap takes its own reference on the array.
func Wrap(arr arrow.Array) *Column {
	arr.Retain()
	return &Column{arr: arr}
}

// Size returns the number of rows.
func (c *Column) Size() int {
	if c.released {
		return 0
	}
	return c.arr.Len()
}

// Release drops the column's reference on the underlying array. View
// conversion fails afterward.
func (c *Column) Release() {
	if c.released {
		return
	}
	c.released = true
	c.arr.Release()
}

// View returns a read-only projection over the arrow array.
func (c *Column) View() (column.View, error) {
	if c.released {
		return nil, ErrReleased
	}
	return &ArrayView{arr: c.arr}, nil
}

// MutableView always fails: arrow storage is immutable once built.
func (c *Column) MutableView() (column.MutableView, error) {
	if c.released {
		return nil, ErrReleased
	}
	return nil, ErrImmutable
}

// ArrayView is a read view that exposes the underlying arrow array for
// consumers that speak arrow natively.
type ArrayView struct {
	arr arrow.Array
}

func (v *ArrayView) Len() int { return v.arr.Len() }

// Array returns the aliased arrow array. The caller must not release it.
func (v *ArrayView) Array() arrow.Array { return v.arr }
