package arrowio

import (
	"bytes"
	"fmt"
	"os"

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/array"
	"github.com/apache/arrow/go/v7/arrow/ipc"
	"github.com/apache/arrow/go/v7/arrow/memory"

	"github.com/columnar-core/tabular/internal/column"
	"github.com/columnar-core/tabular/internal/column/arrowcol"
	"github.com/columnar-core/tabular/internal/table"
)

// ReadOptions configures ingest. The zero value reads everything.
type ReadOptions struct {
	// Columns selects a subset of columns by name, in the order given.
	// Empty means all columns in file order.
	Columns []string

	// SkipRows drops this many leading rows.
	SkipRows int64

	// NumRows caps the number of rows read after skipping. Zero or negative
	// means no cap.
	NumRows int64
}

// Result pairs the ingested table with the column names from the file's
// schema, in the same order as the table's columns.
type Result struct {
	Names []string
	Table *table.Table
}

// ReadFile ingests an Arrow IPC file into a table of arrow-backed columns.
//
// The file must contain exactly one record batch; the batch's buffers are
// retained by the resulting columns, so the Result stays valid after the
// file is closed. The table aggregates the columns without copying them.
func ReadFile(path string, opts *ReadOptions) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	res, err := read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return res, nil
}

// ReadBuffer ingests an in-memory IPC payload under the same contract as
// ReadFile.
func ReadBuffer(data []byte, opts *ReadOptions) (*Result, error) {
	return read(bytes.NewReader(data), opts)
}

func read(r ipc.ReadAtSeeker, opts *ReadOptions) (*Result, error) {
	if opts == nil {
		opts = &ReadOptions{}
	}

	fr, err := ipc.NewFileReader(r, ipc.WithAllocator(memory.DefaultAllocator))
	if err != nil {
		return nil, fmt.Errorf("not an arrow IPC file: %w", err)
	}
	defer fr.Close()

	if n := fr.NumRecords(); n != 1 {
		return nil, fmt.Errorf("expected a single record batch, file has %d", n)
	}

	rec, err := fr.Record(0)
	if err != nil {
		return nil, fmt.Errorf("reading record batch: %w", err)
	}

	indices, names, err := projectColumns(rec.Schema(), opts.Columns)
	if err != nil {
		return nil, err
	}

	lo, hi, err := rowWindow(rec.NumRows(), opts.SkipRows, opts.NumRows)
	if err != nil {
		return nil, err
	}

	cols := make([]column.Column, len(indices))
	for i, idx := range indices {
		arr := rec.Column(idx)
		if lo == 0 && hi == rec.NumRows() {
			cols[i] = arrowcol.Wrap(arr)
			continue
		}
		sliced := array.NewSlice(arr, lo, hi)
		cols[i] = arrowcol.Wrap(sliced)
		sliced.Release()
	}

	tbl, err := table.New(cols)
	if err != nil {
		// Columns from one record batch share a length; if construction
		// still fails the retained arrays must not leak.
		for _, c := range cols {
			c.(*arrowcol.Column).Release()
		}
		return nil, err
	}

	return &Result{Names: names, Table: tbl}, nil
}

// projectColumns resolves the requested column names against the schema,
// preserving the requested order. An empty request selects every column in
// file order.
func projectColumns(schema *arrow.Schema, requested []string) ([]int, []string, error) {
	if len(requested) == 0 {
		indices := make([]int, len(schema.Fields()))
		names := make([]string, len(schema.Fields()))
		for i, f := range schema.Fields() {
			indices[i] = i
			names[i] = f.Name
		}
		return indices, names, nil
	}

	indices := make([]int, 0, len(requested))
	for _, name := range requested {
		found := schema.FieldIndices(name)
		if len(found) == 0 {
			return nil, nil, fmt.Errorf("column %q not in file schema", name)
		}
		indices = append(indices, found[0])
	}
	return indices, requested, nil
}

func rowWindow(total, skip, limit int64) (lo, hi int64, err error) {
	if skip < 0 {
		return 0, 0, fmt.Errorf("skip rows must be >= 0, got %d", skip)
	}
	if skip > total {
		return 0, 0, fmt.Errorf("skip rows %d exceeds row count %d", skip, total)
	}
	lo, hi = skip, total
	if limit > 0 && lo+limit < hi {
		hi = lo + limit
	}
	return lo, hi, nil
}
