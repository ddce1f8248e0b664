package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColumnName(t *testing.T) {
	cases := map[string]string{
		"  Final Location ":            "final_location",
		"Flat - Weighted Average Rate": "flat_-_weighted_average_rate",
		"year":                         "year",
		"Residential  Sold":            "residential__sold",
	}
	for in, want := range cases {
		got := NormalizeColumnName(in)
		assert.Equal(t, want, got, "input %q", in)
		assert.Equal(t, got, NormalizeColumnName(got), "normalization of %q must be idempotent", in)
	}
}

func TestNormalizeColumnsOnClone(t *testing.T) {
	frame := NewFrame([]string{"Final Location", "Year"}, [][]any{{"Wakad", int64(2020)}})
	clone := frame.Clone()
	clone.NormalizeColumns()

	assert.Equal(t, []string{"final_location", "year"}, clone.Columns)
	assert.Equal(t, []string{"Final Location", "Year"}, frame.Columns)

	clone.NormalizeColumns()
	assert.Equal(t, []string{"final_location", "year"}, clone.Columns)
}

func TestNewFramePadsRows(t *testing.T) {
	frame := NewFrame([]string{"a", "b", "c"}, [][]any{{1}, {1, 2, 3, 4}})
	assert.Equal(t, []any{1, nil, nil}, frame.Rows[0])
	assert.Equal(t, []any{1, 2, 3}, frame.Rows[1])
	assert.Equal(t, 2, frame.Len())

	var empty *Frame
	assert.Equal(t, 0, empty.Len())
}

func TestFilterEqualFold(t *testing.T) {
	frame := NewFrame([]string{"loc", "v"}, [][]any{
		{"Wakad", 1},
		{"baner", 2},
		{"WAKAD", 3},
		{int64(411057), 4},
		{nil, 5},
	})

	filtered, err := frame.FilterEqualFold("loc", "wakad")
	require.NoError(t, err)
	require.Equal(t, 2, filtered.Len())
	assert.Equal(t, 1, filtered.Rows[0][1])
	assert.Equal(t, 3, filtered.Rows[1][1])

	none, err := frame.FilterEqualFold("loc", "411057")
	require.NoError(t, err)
	assert.Equal(t, 0, none.Len())

	_, err = frame.FilterEqualFold("missing", "wakad")
	assert.Error(t, err)
}

func TestDistinctLower(t *testing.T) {
	frame := NewFrame([]string{"loc"}, [][]any{{"Wakad"}, {"Baner"}, {"wakad"}, {nil}, {"Aundh"}})
	areas, err := frame.DistinctLower("loc")
	require.NoError(t, err)
	assert.Equal(t, []string{"wakad", "baner", "aundh"}, areas)
}

func TestRecordsKeepColumnOrder(t *testing.T) {
	frame := NewFrame(
		[]string{"year", "final_location", "price"},
		[][]any{{int64(2020), "Wakad", 6500.5}, {int64(2021), "Wakad", nil}},
	)
	records := frame.Records()
	require.Len(t, records, 2)

	body, err := json.Marshal(records)
	require.NoError(t, err)
	assert.Equal(t,
		`[{"year":2020,"final_location":"Wakad","price":6500.5},{"year":2021,"final_location":"Wakad","price":null}]`,
		string(body))

	v, ok := records[0].Get("price")
	assert.True(t, ok)
	assert.Equal(t, 6500.5, v)
	_, ok = records[0].Get("demand")
	assert.False(t, ok)

	assert.Equal(t, []string{"year", "final_location", "price"}, records[1].Columns())
}

func TestParseCell(t *testing.T) {
	assert.Nil(t, ParseCell(""))
	assert.Nil(t, ParseCell("   "))
	assert.Equal(t, int64(2020), ParseCell("2020"))
	assert.Equal(t, int64(2020), ParseCell("2020.0"))
	assert.Equal(t, 6500.25, ParseCell(" 6500.25 "))
	assert.Equal(t, "Wakad", ParseCell(" Wakad "))
	assert.Equal(t, "NaN", ParseCell("NaN"))
}

func TestToFloat(t *testing.T) {
	f, ok := ToFloat(int64(3))
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	f, ok = ToFloat("12.5")
	assert.True(t, ok)
	assert.Equal(t, 12.5, f)

	_, ok = ToFloat("Wakad")
	assert.False(t, ok)
	_, ok = ToFloat(nil)
	assert.False(t, ok)
}
