package domain

import (
	json "github.com/json-iterator/go"
	"github.com/guregu/null/v5"
)

// QueryFilter holds the optional predicates for a NAV query. Every field is
// independently optional; a zero field places no constraint on that dimension.
type QueryFilter struct {
	Codes     []string
	StartDate null.Time
	EndDate   null.Time
}

// HasCodes reports whether the filter constrains the fund code dimension.
// An empty slice means "all funds", same as nil.
func (f QueryFilter) HasCodes() bool {
	return len(f.Codes) > 0
}

// IsEmpty reports whether the filter places no constraint at all.
func (f QueryFilter) IsEmpty() bool {
	return !f.HasCodes() && !f.StartDate.Valid && !f.EndDate.Valid
}

// Row represents a generic row from the NAV table, keyed by column name.
type Row map[string]interface{}

// Table is a fully materialized query result. Column order is reflected from
// the query response, not hardcoded; row order follows the result set.
type Table struct {
	columns []string
	rows    []Row
}

// NewTable creates an empty Table with the given reflected column set.
func NewTable(columns []string) *Table {
	return &Table{columns: columns}
}

// Append adds a row to the table.
func (t *Table) Append(row Row) {
	t.rows = append(t.rows, row)
}

// Columns returns the column names in result-set order.
func (t *Table) Columns() []string {
	return t.columns
}

// Rows returns all rows in result-set order.
func (t *Table) Rows() []Row {
	return t.rows
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Get returns the value at (row index, column name).
func (t *Table) Get(i int, column string) (interface{}, bool) {
	if i < 0 || i >= len(t.rows) {
		return nil, false
	}
	v, ok := t.rows[i][column]
	return v, ok
}

// MarshalJSON encodes the table as an array of objects, emitting keys in
// result-set column order rather than map iteration order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf []byte
	buf = append(buf, '[')

	for i, row := range t.rows {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '{')

		for j, col := range t.columns {
			if j > 0 {
				buf = append(buf, ',')
			}

			keyJSON, err := json.Marshal(col)
			if err != nil {
				return nil, err
			}
			buf = append(buf, keyJSON...)
			buf = append(buf, ':')

			valueJSON, err := json.Marshal(row[col])
			if err != nil {
				return nil, err
			}
			buf = append(buf, valueJSON...)
		}

		buf = append(buf, '}')
	}

	buf = append(buf, ']')
	return buf, nil
}

// DateRange is the min/max observation date over the whole table. Both bounds
// are invalid when the table is empty; callers must check Valid before use.
type DateRange struct {
	Min null.Time
	Max null.Time
}

// ConnStatus is the outcome of a connection probe. Failures are captured here
// instead of being returned as errors; this is the one place in the module
// where errors are absorbed rather than propagated.
type ConnStatus struct {
	OK      bool
	Count   int64
	Message string
}
