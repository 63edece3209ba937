package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/apache/arrow/go/v7/arrow/array"
	"github.com/olekukonko/tablewriter"

	"github.com/columnar-core/tabular/internal/column/arrowcol"
	"github.com/columnar-core/tabular/internal/table"
)

// renderView prints up to maxRows rows of a table view. Only arrow-backed
// views can be rendered; anything else in the view is a bug at this layer.
func renderView(w io.Writer, names []string, view table.TableView, maxRows int) error {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader(names)

	numRows := 0
	arrays := make([]*arrowcol.ArrayView, view.NumColumns())
	for i, v := range view.Columns() {
		av, ok := v.(*arrowcol.ArrayView)
		if !ok {
			return fmt.Errorf("column %d: cannot render %T", i, v)
		}
		arrays[i] = av
		numRows = av.Len()
	}

	if maxRows >= 0 && numRows > maxRows {
		numRows = maxRows
	}

	row := make([]string, len(arrays))
	for r := 0; r < numRows; r++ {
		for c, av := range arrays {
			row[c] = formatCell(av, r)
		}
		tw.Append(row)
	}
	tw.Render()
	return nil
}

func formatCell(v *arrowcol.ArrayView, row int) string {
	arr := v.Array()
	if arr.IsNull(row) {
		return "null"
	}
	switch a := arr.(type) {
	case *array.Int64:
		return strconv.FormatInt(a.Value(row), 10)
	case *array.Int32:
		return strconv.FormatInt(int64(a.Value(row)), 10)
	case *array.Float64:
		return strconv.FormatFloat(a.Value(row), 'g', -1, 64)
	case *array.Float32:
		return strconv.FormatFloat(float64(a.Value(row)), 'g', -1, 32)
	case *array.String:
		return a.Value(row)
	case *array.Boolean:
		return strconv.FormatBool(a.Value(row))
	default:
		return fmt.Sprintf("<%s>", arr.DataType().Name())
	}
}
