package table

import "github.com/columnar-core/tabular/internal/column"

// TableView is a flat, ordered sequence of per-column read views, built by
// Table.View. It is ephemeral: valid only while the underlying column handles
// stay alive and structurally unchanged.
type TableView struct {
	views []column.View
}

// NumColumns returns the number of per-column views.
func (v TableView) NumColumns() int { return len(v.views) }

// Column returns the read view at position i.
func (v TableView) Column(i int) column.View { return v.views[i] }

// Columns returns the backing sequence in construction order, suitable for
// handing to a compute kernel in one piece.
func (v TableView) Columns() []column.View { return v.views }

// MutableTableView is the writable counterpart of TableView, built by
// Table.MutableView.
type MutableTableView struct {
	views []column.MutableView
}

// NumColumns returns the number of per-column views.
func (v MutableTableView) NumColumns() int { return len(v.views) }

// Column returns the writable view at position i.
func (v MutableTableView) Column(i int) column.MutableView { return v.views[i] }

// Columns returns the backing sequence in construction order.
func (v MutableTableView) Columns() []column.MutableView { return v.views }
