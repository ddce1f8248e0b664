package excel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}

	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadExcelFirstSheet(t *testing.T) {
	path := writeWorkbook(t, "Pune", [][]interface{}{
		{"Final Location", " Year ", "Flat - Weighted Average Rate", "Residential Sold - IGR"},
		{"Wakad", 2020, 6500.5, 120},
		{"Baner", 2021, 8000, nil},
	})

	frame, err := NewDataReader(path, "").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Final Location", "Year", "Flat - Weighted Average Rate", "Residential Sold - IGR"}, frame.Columns)
	require.Equal(t, 2, frame.Len())
	assert.Equal(t, []any{"Wakad", int64(2020), 6500.5, int64(120)}, frame.Rows[0])
	assert.Equal(t, []any{"Baner", int64(2021), int64(8000), nil}, frame.Rows[1])
}

func TestLoadExcelNamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"final_location", "year"},
		{"Wakad", 2020},
	})

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	_, err = f.NewSheet("Other")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Other", "A1", &[]interface{}{"final_location", "year"}))
	require.NoError(t, f.SetSheetRow("Other", "A2", &[]interface{}{"Hinjewadi", 2022}))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	frame, err := NewDataReader(path, "Other").Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, frame.Len())
	assert.Equal(t, "Hinjewadi", frame.Rows[0][0])

	_, err = NewDataReader(path, "Missing").Load(context.Background())
	assert.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "final_location,year,price\nWakad,2020,100.25\nAundh,2021\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reader := NewDataReader(path, "")
	assert.Equal(t, path, reader.Describe())

	frame, err := reader.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, frame.Len())
	assert.Equal(t, []any{"Wakad", int64(2020), 100.25}, frame.Rows[0])
	assert.Equal(t, []any{"Aundh", int64(2021), nil}, frame.Rows[1])
}

func TestLoadCSVWithByteOrderMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "\ufeffFinal Location,Year,Flat - Weighted Average Rate\nWakad,2020,100\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	frame, err := NewDataReader(path, "").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Final Location", frame.Columns[0])

	frame.NormalizeColumns()
	assert.True(t, frame.HasColumn("final_location"))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewDataReader(filepath.Join(dir, "missing.xlsx"), "").Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")

	headerOnly := filepath.Join(dir, "header.csv")
	require.NoError(t, os.WriteFile(headerOnly, []byte("final_location,year\n"), 0o644))
	_, err = NewDataReader(headerOnly, "").Load(context.Background())
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.xlsx")
	require.NoError(t, os.WriteFile(garbage, []byte("not a workbook"), 0o644))
	_, err = NewDataReader(garbage, "").Load(context.Background())
	assert.Error(t, err)
}

func TestUniqueHeaders(t *testing.T) {
	headers := uniqueHeaders([]string{"year", " ", "year", "price", "year"})
	assert.Equal(t, []string{"year", "Unnamed: 1", "year.1", "price", "year.2"}, headers)
}

func TestDescribeWithSheet(t *testing.T) {
	reader := NewDataReader("data/data.xlsx", "Pune")
	assert.Equal(t, fmt.Sprintf("%s (sheet %s)", "data/data.xlsx", "Pune"), reader.Describe())
}
