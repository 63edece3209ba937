package table

import "github.com/columnar-core/tabular/internal/column"

// Descriptor is the typed construction configuration. One option is
// recognized: Columns, the ordered column handles, defaulting to empty when
// left nil.
type Descriptor struct {
	Columns []column.Column
}

// FromDescriptor constructs a Table from a Descriptor. A nil descriptor is a
// malformed construction call and fails with InvalidConstructionError; an
// absent Columns field is simply an empty table.
func FromDescriptor(desc *Descriptor) (*Table, error) {
	if desc == nil {
		return nil, newInvalidConstruction("nil descriptor")
	}
	return New(desc.Columns)
}
