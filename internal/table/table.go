package table

import (
	"github.com/columnar-core/tabular/internal/column"
)

// Table aggregates an ordered set of column handles into one validated unit.
//
// It never owns or copies column storage: it holds references to the handles
// it was constructed with, and the host side that created those handles keeps
// them alive for at least the table's lifetime. Row-count consistency is
// checked exactly once, at construction; after that the column set is
// immutable and both counts are fixed.
//
// A Table performs no internal synchronization. A single logical thread of
// control is expected to issue all operations on a given instance; embedders
// with real concurrency must serialize access themselves (reads may overlap,
// a mutable view may not overlap with any other view).
type Table struct {
	columns    []column.Column
	numColumns int
	numRows    int
}

// New builds a Table from an ordered sequence of column handles.
//
// An empty sequence yields a valid table with zero columns and zero rows.
// Otherwise the first column fixes the row count and every later column must
// agree with it; the first disagreement fails construction with
// StructuralMismatchError and the partial object is discarded. A nil handle
// anywhere in the sequence is InvalidConstructionError.
//
// The handles are retained by reference, in order. Duplicates are allowed.
func New(columns []column.Column) (*Table, error) {
	numRows := 0
	for i, col := range columns {
		if col == nil {
			return nil, newInvalidConstruction("nil column handle")
		}
		if i == 0 {
			numRows = col.Size()
			continue
		}
		if size := col.Size(); size != numRows {
			return nil, newStructuralMismatch(i, size, numRows)
		}
	}

	cols := make([]column.Column, len(columns))
	copy(cols, columns)

	return &Table{
		columns:    cols,
		numColumns: len(cols),
		numRows:    numRows,
	}, nil
}

// NumColumns returns the column count fixed at construction.
func (t *Table) NumColumns() int { return t.numColumns }

// NumRows returns the row count fixed at construction.
func (t *Table) NumRows() int { return t.numRows }

// Column returns the handle at position i. It is identity-stable: the same
// handle supplied at construction comes back for the same i every time.
func (t *Table) Column(i int) (column.Column, error) {
	if i < 0 || i >= t.numColumns {
		return nil, newIndexOutOfRange(i, t.numColumns)
	}
	return t.columns[i], nil
}

// View assembles a read-only view over every column, in construction order.
//
// The projection is built fresh on each call and copies no data: each entry
// references the column's backing storage as it is at this moment. If any
// column fails view conversion the whole projection fails with
// ColumnViewError and nothing is returned.
func (t *Table) View() (TableView, error) {
	views := make([]column.View, t.numColumns)
	for i, col := range t.columns {
		v, err := col.View()
		if err != nil {
			return TableView{}, newColumnViewError(i, err)
		}
		views[i] = v
	}
	return TableView{views: views}, nil
}

// MutableView assembles a writable view over every column, in construction
// order, under the same all-or-nothing contract as View.
//
// Caller contract: a mutable view must not be in use concurrently with any
// other view over the same columns.
func (t *Table) MutableView() (MutableTableView, error) {
	views := make([]column.MutableView, t.numColumns)
	for i, col := range t.columns {
		v, err := col.MutableView()
		if err != nil {
			return MutableTableView{}, newColumnViewError(i, err)
		}
		views[i] = v
	}
	return MutableTableView{views: views}, nil
}
