// Package models defines data structures for tabular chart data.
package models

// Row represents one record of a dataset.
// Values are either string or float64; a column missing from the row is absent.
type Row map[string]any

// Dataset represents the normalized rows of a single uploaded file.
type Dataset struct {
	// Source is the uploaded file name (no path).
	Source string `json:"source"`
	// Format is the format the rows were parsed from.
	Format Format `json:"format"`
	// Columns lists column names taken from the first row, in source order.
	Columns []string `json:"columns"`
	// Rows contains the normalized rows in source order.
	Rows []Row `json:"rows"`
	// Truncated is set when the rows were capped in preview mode.
	Truncated bool `json:"truncated,omitempty"`
	// TotalRows is the row count before any truncation.
	TotalRows int `json:"total_rows"`
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// HasColumn reports whether name is one of the dataset columns.
func (d *Dataset) HasColumn(name string) bool {
	if d == nil || name == "" {
		return false
	}
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns the raw values of the named column, one per row.
// Rows missing the column yield nil.
func (d *Dataset) Column(name string) []any {
	if d == nil {
		return nil
	}
	vals := make([]any, len(d.Rows))
	for i, row := range d.Rows {
		vals[i] = row[name]
	}
	return vals
}
