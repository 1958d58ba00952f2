package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ParseCSV reads a CSV stream whose first row is the header and returns a
// dataset. Rows shorter than the header leave the trailing columns without
// cells; extra cells beyond the header are dropped.
func ParseCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	if len(rows) == 0 {
		return &Dataset{}, nil
	}

	header := rows[0]
	ds := &Dataset{
		Columns: header,
		Rows:    make([]Row, 0, len(rows)-1),
	}

	for _, raw := range rows[1:] {
		cells := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(raw) {
				cells[col] = raw[i]
			}
		}
		ds.Rows = append(ds.Rows, Row{cells: cells})
	}

	return ds, nil
}
