package dataset

import (
	"bytes"
	"encoding/json"
)

// Record is one row as a column -> value mapping. It marshals to a JSON
// object whose keys keep the dataset's column order.
type Record struct {
	columns []string
	values  []any
}

// Get returns the value stored under a column name
func (r Record) Get(column string) (any, bool) {
	for i, col := range r.columns {
		if col == column {
			return r.values[i], true
		}
	}
	return nil, false
}

// Columns returns the record's keys in order
func (r Record) Columns() []string {
	return r.columns
}

// MarshalJSON writes the record as an object in column order
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
