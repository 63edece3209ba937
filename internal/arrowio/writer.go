package arrowio

import (
	"fmt"
	"os"

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/array"
	"github.com/apache/arrow/go/v7/arrow/ipc"
	"github.com/apache/arrow/go/v7/arrow/memory"
)

// WriteFile writes named arrays as a single-batch Arrow IPC file, the shape
// ReadFile expects back. All arrays must share one length; field types are
// inferred from the arrays.
func WriteFile(path string, names []string, arrays []arrow.Array) error {
	if len(names) != len(arrays) {
		return fmt.Errorf("got %d names for %d arrays", len(names), len(arrays))
	}

	numRows := int64(0)
	fields := make([]arrow.Field, len(arrays))
	for i, arr := range arrays {
		if i == 0 {
			numRows = int64(arr.Len())
		} else if int64(arr.Len()) != numRows {
			return fmt.Errorf("array %d has %d rows, expected %d", i, arr.Len(), numRows)
		}
		fields[i] = arrow.Field{Name: names[i], Type: arr.DataType()}
	}
	schema := arrow.NewSchema(fields, nil)

	rec := array.NewRecord(schema, arrays, numRows)
	defer rec.Release()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w, err := ipc.NewFileWriter(f,
		ipc.WithSchema(schema),
		ipc.WithAllocator(memory.DefaultAllocator),
	)
	if err != nil {
		f.Close()
		return fmt.Errorf("ipc writer: %w", err)
	}
	if err := w.Write(rec); err != nil {
		w.Close()
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	return f.Close()
}
