package dataset

import (
	"fmt"
	"strings"
)

// Frame is an in-memory table: ordered column names and rows of typed cells.
// A loaded Frame is shared read-only; callers that need to rename columns
// work on a Clone.
type Frame struct {
	Columns []string
	Rows    [][]any
}

// NewFrame builds a frame, padding short rows with nil and truncating long ones
func NewFrame(columns []string, rows [][]any) *Frame {
	cols := make([]string, len(columns))
	copy(cols, columns)

	normalized := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(cols))
		copy(cells, row)
		normalized[i] = cells
	}
	return &Frame{Columns: cols, Rows: normalized}
}

// Len returns the number of rows
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Rows)
}

// Clone copies the column header and row index. Cells are shared; they are
// never mutated after load.
func (f *Frame) Clone() *Frame {
	cols := make([]string, len(f.Columns))
	copy(cols, f.Columns)
	rows := make([][]any, len(f.Rows))
	copy(rows, f.Rows)
	return &Frame{Columns: cols, Rows: rows}
}

// NormalizeColumnName trims, lower-cases and replaces spaces with underscores
func NormalizeColumnName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// NormalizeColumns rewrites the frame's column names in place
func (f *Frame) NormalizeColumns() {
	for i, name := range f.Columns {
		f.Columns[i] = NormalizeColumnName(name)
	}
}

// ColumnIndex returns the position of the first column with the given name
func (f *Frame) ColumnIndex(name string) (int, bool) {
	for i, col := range f.Columns {
		if col == name {
			return i, true
		}
	}
	return -1, false
}

// HasColumn reports whether the frame has a column with the given name
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.ColumnIndex(name)
	return ok
}

// Column returns the cells of one column in row order
func (f *Frame) Column(name string) ([]any, error) {
	idx, ok := f.ColumnIndex(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	values := make([]any, len(f.Rows))
	for i, row := range f.Rows {
		values[i] = row[idx]
	}
	return values, nil
}

// FilterEqualFold keeps rows whose string cell in column equals value,
// ignoring case. Non-string cells never match.
func (f *Frame) FilterEqualFold(column, value string) (*Frame, error) {
	idx, ok := f.ColumnIndex(column)
	if !ok {
		return nil, fmt.Errorf("column %q not found", column)
	}
	want := strings.ToLower(value)

	filtered := &Frame{Columns: f.Columns}
	for _, row := range f.Rows {
		cell, isString := row[idx].(string)
		if isString && strings.ToLower(cell) == want {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	return filtered, nil
}

// DistinctLower returns the distinct lower-cased string values of a column
// in first-seen order
func (f *Frame) DistinctLower(column string) ([]string, error) {
	values, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	distinct := []string{}
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		s = strings.ToLower(s)
		if !seen[s] {
			seen[s] = true
			distinct = append(distinct, s)
		}
	}
	return distinct, nil
}

// Records converts every row into a column-ordered Record
func (f *Frame) Records() []Record {
	records := make([]Record, len(f.Rows))
	for i, row := range f.Rows {
		records[i] = Record{columns: f.Columns, values: row}
	}
	return records
}
