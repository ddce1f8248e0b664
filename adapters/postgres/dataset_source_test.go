package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellFromSQL(t *testing.T) {
	ts := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"numeric bytes", []byte("6500.50"), 6500.5},
		{"integral bytes", []byte("2020"), int64(2020)},
		{"text", "Wakad", "Wakad"},
		{"blank text", "  ", nil},
		{"int64", int64(7), int64(7)},
		{"int32", int32(7), int64(7)},
		{"whole float", float64(2021), int64(2021)},
		{"fractional float", 12.75, 12.75},
		{"bool", true, true},
		{"timestamp", ts, ts},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cellFromSQL(tc.in))
		})
	}
}

func TestQuoteTable(t *testing.T) {
	ident, err := quoteTable("area_statistics")
	require.NoError(t, err)
	assert.Equal(t, `"area_statistics"`, ident)

	ident, err = quoteTable("stats.area_prices")
	require.NoError(t, err)
	assert.Equal(t, `"stats"."area_prices"`, ident)

	ident, err = quoteTable(`bad"name`)
	require.NoError(t, err)
	assert.Equal(t, `"bad""name"`, ident)

	_, err = quoteTable("")
	assert.Error(t, err)

	_, err = quoteTable("stats.")
	assert.Error(t, err)
}

func TestLoadRequiresURL(t *testing.T) {
	source := NewTableSource("", "area_statistics")
	assert.Equal(t, "postgres table area_statistics", source.Describe())

	_, err := source.Load(context.Background())
	assert.Error(t, err)
}
