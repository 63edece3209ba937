package table

import (
	"errors"
	"testing"

	"github.com/columnar-core/tabular/internal/column"
	"github.com/columnar-core/tabular/internal/column/memcol"
)

func intColumn(n int) *memcol.Numeric[int64] {
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(i)
	}
	return memcol.NewNumeric(data)
}

func TestNewEqualSizes(t *testing.T) {
	cols := []column.Column{intColumn(5), intColumn(5), intColumn(5)}

	tbl, err := New(cols)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if tbl.NumColumns() != 3 {
		t.Errorf("Expected 3 columns, got %d", tbl.NumColumns())
	}
	if tbl.NumRows() != 5 {
		t.Errorf("Expected 5 rows, got %d", tbl.NumRows())
	}
}

func TestNewStructuralMismatch(t *testing.T) {
	cols := []column.Column{intColumn(5), intColumn(4)}

	_, err := New(cols)
	if err == nil {
		t.Fatal("Expected construction to fail")
	}

	var mismatch *StructuralMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Expected StructuralMismatchError, got %T", err)
	}
	if mismatch.Index != 1 {
		t.Errorf("Expected offending index 1, got %d", mismatch.Index)
	}
	if mismatch.Got != 4 || mismatch.Want != 5 {
		t.Errorf("Expected got=4 want=5, got got=%d want=%d", mismatch.Got, mismatch.Want)
	}
}

func TestNewMismatchReportsFirstOffender(t *testing.T) {
	cols := []column.Column{intColumn(3), intColumn(3), intColumn(7), intColumn(1)}

	_, err := New(cols)
	var mismatch *StructuralMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Expected StructuralMismatchError, got %v", err)
	}
	if mismatch.Index != 2 {
		t.Errorf("Expected first offender at index 2, got %d", mismatch.Index)
	}
}

func TestNewEmpty(t *testing.T) {
	tbl, err := New(nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if tbl.NumColumns() != 0 {
		t.Errorf("Expected 0 columns, got %d", tbl.NumColumns())
	}
	if tbl.NumRows() != 0 {
		t.Errorf("Expected 0 rows, got %d", tbl.NumRows())
	}

	view, err := tbl.View()
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if view.NumColumns() != 0 {
		t.Errorf("Expected empty view, got %d columns", view.NumColumns())
	}

	if _, err := tbl.Column(0); err == nil {
		t.Error("Expected Column(0) on empty table to fail")
	}
}

func TestNewNilHandle(t *testing.T) {
	cols := []column.Column{intColumn(2), nil}

	_, err := New(cols)
	var invalid *InvalidConstructionError
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected InvalidConstructionError, got %v", err)
	}
}

func TestColumnIdentityAndOrder(t *testing.T) {
	c0 := intColumn(4)
	c1 := intColumn(4)
	c2 := intColumn(4)

	tbl, err := New([]column.Column{c0, c1, c2})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i, want := range []column.Column{c0, c1, c2} {
		got, err := tbl.Column(i)
		if err != nil {
			t.Fatalf("Column(%d) failed: %v", i, err)
		}
		if got != want {
			t.Errorf("Column(%d) did not return the handle supplied at construction", i)
		}
		// Identity-stable across repeated calls.
		again, _ := tbl.Column(i)
		if again != got {
			t.Errorf("Column(%d) not identity-stable", i)
		}
	}
}

func TestColumnOutOfRange(t *testing.T) {
	tbl, err := New([]column.Column{intColumn(2), intColumn(2)})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, i := range []int{-1, 2, 100} {
		_, err := tbl.Column(i)
		var oob *IndexOutOfRangeError
		if !errors.As(err, &oob) {
			t.Errorf("Column(%d): expected IndexOutOfRangeError, got %v", i, err)
			continue
		}
		if oob.Index != i || oob.NumColumns != 2 {
			t.Errorf("Column(%d): bad error payload %+v", i, oob)
		}
	}
}

func TestViewOrderAndLengths(t *testing.T) {
	a := memcol.NewNumeric([]int64{1, 2, 3, 4, 5})
	b := memcol.NewNumeric([]float64{1, 2, 3, 4, 5})
	c := memcol.NewStrings([]string{"a", "b", "c", "d", "e"})

	tbl, err := New([]column.Column{a, b, c})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	view, err := tbl.View()
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if view.NumColumns() != 3 {
		t.Fatalf("Expected 3 views, got %d", view.NumColumns())
	}
	for i := 0; i < view.NumColumns(); i++ {
		if view.Column(i).Len() != 5 {
			t.Errorf("View %d: expected length 5, got %d", i, view.Column(i).Len())
		}
	}

	// Order follows construction order.
	if _, ok := view.Column(0).(*memcol.NumericView[int64]); !ok {
		t.Errorf("View 0: expected int64 view, got %T", view.Column(0))
	}
	if _, ok := view.Column(1).(*memcol.NumericView[float64]); !ok {
		t.Errorf("View 1: expected float64 view, got %T", view.Column(1))
	}
	if _, ok := view.Column(2).(*memcol.StringsView); !ok {
		t.Errorf("View 2: expected strings view, got %T", view.Column(2))
	}
}

func TestMutableViewWritesThrough(t *testing.T) {
	data := []int64{10, 20, 30}
	tbl, err := New([]column.Column{memcol.NewNumeric(data)})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	mv, err := tbl.MutableView()
	if err != nil {
		t.Fatalf("MutableView failed: %v", err)
	}
	mv.Column(0).(*memcol.NumericMutableView[int64]).Set(1, 99)

	// No copying anywhere: the caller's slice and a later read view both see
	// the write.
	if data[1] != 99 {
		t.Errorf("Expected write to land in backing storage, got %d", data[1])
	}
	rv, err := tbl.View()
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if got := rv.Column(0).(*memcol.NumericView[int64]).Value(1); got != 99 {
		t.Errorf("Expected read view to see 99, got %d", got)
	}
}

func TestViewIdempotent(t *testing.T) {
	tbl, err := New([]column.Column{intColumn(3), intColumn(3)})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	first, err := tbl.View()
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	second, err := tbl.View()
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}

	if first.NumColumns() != second.NumColumns() {
		t.Fatalf("View column counts differ: %d vs %d", first.NumColumns(), second.NumColumns())
	}
	for i := 0; i < first.NumColumns(); i++ {
		a := first.Column(i).(*memcol.NumericView[int64])
		b := second.Column(i).(*memcol.NumericView[int64])
		if a.Len() != b.Len() {
			t.Fatalf("View %d lengths differ", i)
		}
		for j := 0; j < a.Len(); j++ {
			if a.Value(j) != b.Value(j) {
				t.Errorf("View %d row %d differs: %d vs %d", i, j, a.Value(j), b.Value(j))
			}
		}
	}
}

func TestViewFailurePropagates(t *testing.T) {
	good := intColumn(3)
	bad := intColumn(3)
	bad.Detach()

	tbl, err := New([]column.Column{good, bad})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = tbl.View()
	var viewErr *ColumnViewError
	if !errors.As(err, &viewErr) {
		t.Fatalf("Expected ColumnViewError, got %v", err)
	}
	if viewErr.Index != 1 {
		t.Errorf("Expected failing index 1, got %d", viewErr.Index)
	}
	// The column's own failure is reachable unchanged.
	if !errors.Is(err, memcol.ErrDetached) {
		t.Error("Expected underlying detach error to unwrap")
	}

	_, err = tbl.MutableView()
	if !errors.As(err, &viewErr) {
		t.Fatalf("Expected ColumnViewError from MutableView, got %v", err)
	}
}

func TestDuplicateHandlesAllowed(t *testing.T) {
	c := intColumn(2)
	tbl, err := New([]column.Column{c, c, c})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if tbl.NumColumns() != 3 || tbl.NumRows() != 2 {
		t.Errorf("Expected 3 columns of 2 rows, got %d/%d", tbl.NumColumns(), tbl.NumRows())
	}
}

func TestNewCopiesHandleSequence(t *testing.T) {
	cols := []column.Column{intColumn(1), intColumn(1)}
	tbl, err := New(cols)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Mutating the caller's slice must not affect the table's column set.
	cols[0] = intColumn(9)
	got, err := tbl.Column(0)
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	if got == cols[0] {
		t.Error("Table shared the caller's handle slice")
	}
}

func TestFromDescriptor(t *testing.T) {
	tbl, err := FromDescriptor(&Descriptor{Columns: []column.Column{intColumn(4)}})
	if err != nil {
		t.Fatalf("FromDescriptor failed: %v", err)
	}
	if tbl.NumColumns() != 1 || tbl.NumRows() != 4 {
		t.Errorf("Expected 1 column of 4 rows, got %d/%d", tbl.NumColumns(), tbl.NumRows())
	}
}

func TestFromDescriptorDefaultsEmpty(t *testing.T) {
	tbl, err := FromDescriptor(&Descriptor{})
	if err != nil {
		t.Fatalf("FromDescriptor failed: %v", err)
	}
	if tbl.NumColumns() != 0 || tbl.NumRows() != 0 {
		t.Errorf("Expected empty table, got %d/%d", tbl.NumColumns(), tbl.NumRows())
	}
}

func TestFromDescriptorNil(t *testing.T) {
	_, err := FromDescriptor(nil)
	var invalid *InvalidConstructionError
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected InvalidConstructionError, got %v", err)
	}
}
