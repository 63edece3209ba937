package arrowcol

import (
	"testing"

	"github.com/apache/arrow/go/v7/arrow/array"
	"github.com/apache/arrow/go/v7/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInt64(t *testing.T, vals []int64) *array.Int64 {
	t.Helper()
	b := array.NewInt64Builder(memory.NewGoAllocator())
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewInt64Array()
}

func TestWrapSizeAndView(t *testing.T) {
	arr := buildInt64(t, []int64{1, 2, 3})
	defer arr.Release()

	col := Wrap(arr)
	defer col.Release()

	assert.Equal(t, 3, col.Size())

	v, err := col.View()
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())

	av, ok := v.(*ArrayView)
	require.True(t, ok)
	got, ok := av.Array().(*array.Int64)
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2, 3}, got.Int64Values())
}

func TestMutableViewFails(t *testing.T) {
	arr := buildInt64(t, []int64{1})
	defer arr.Release()

	col := Wrap(arr)
	defer col.Release()

	_, err := col.MutableView()
	require.ErrorIs(t, err, ErrImmutable)
}

func TestReleasedColumnFailsViews(t *testing.T) {
	arr := buildInt64(t, []int64{1, 2})
	defer arr.Release()

	col := Wrap(arr)
	col.Release()
	col.Release() // double release is harmless

	assert.Equal(t, 0, col.Size())
	_, err := col.View()
	require.ErrorIs(t, err, ErrReleased)
	_, err = col.MutableView()
	require.ErrorIs(t, err, ErrReleased)
}

func TestWrapOutlivesCallerReference(t *testing.T) {
	arr := buildInt64(t, []int64{7, 8})
	col := Wrap(arr)
	defer col.Release()

	// The caller drops its reference; the column's Retain keeps the buffers
	// alive.
	arr.Release()

	v, err := col.View()
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, int64(8), v.(*ArrayView).Array().(*array.Int64).Value(1))
}
