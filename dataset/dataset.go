// Package dataset provides the in-memory tabular dataset handed to the
// mapping engine: rows with cells addressed by column header.
package dataset

// Dataset is a fully materialized table.
type Dataset struct {
	// Columns holds the header names in file order.
	Columns []string

	// Rows holds the data rows.
	Rows []Row
}

// Row is a single record. Cells are addressed by column header; a column
// absent from the dataset simply has no value.
type Row struct {
	cells map[string]string
}

// NewRow builds a row from a header-to-value map. Useful for tests and for
// callers that materialize rows from non-CSV sources.
func NewRow(cells map[string]string) Row {
	copied := make(map[string]string, len(cells))
	for k, v := range cells {
		copied[k] = v
	}
	return Row{cells: copied}
}

// Get returns the cell value for a column header. ok is false when the
// column has no cell in this row, which callers treat the same as an
// absent value.
func (r Row) Get(column string) (string, bool) {
	v, ok := r.cells[column]
	return v, ok
}

// GetOr returns the cell value for a column header, or fallback when the
// column has no cell.
func (r Row) GetOr(column, fallback string) string {
	if v, ok := r.cells[column]; ok {
		return v
	}
	return fallback
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}
