package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"realestate/domain/dataset"
	"realestate/internal"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
	logger   *internal.Logger
}

// NewDataReader creates a reader for an Excel or CSV file. An empty sheet
// selects the first sheet of the workbook.
func NewDataReader(filePath, sheet string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{
		filePath: filePath,
		fileType: fileType,
		sheet:    sheet,
		logger:   internal.DefaultLogger.With("DataReader"),
	}
}

// Describe names the file being read
func (r *DataReader) Describe() string {
	if r.fileType == "xlsx" && r.sheet != "" {
		return fmt.Sprintf("%s (sheet %s)", r.filePath, r.sheet)
	}
	return r.filePath
}

// Load reads the file into a dataset frame
func (r *DataReader) Load(ctx context.Context) (*dataset.Frame, error) {
	r.logger.Info("Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	return r.processRows(rows)
}

// readExcelRows reads raw cell values from the configured or first sheet
func (r *DataReader) readExcelRows() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	r.logger.Debug("Excel file opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("Excel file has no sheets")
		}
		sheet = sheets[0]
	}

	readStart := time.Now()
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	r.logger.Info("Sheet %s read in %.2fms (%d rows)", sheet, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, fmt.Errorf("Excel file must have at least a header row and one data row")
	}
	return rows, nil
}

// readCSVRows reads every record of a CSV file
func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	r.logger.Info("CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV file must have at least a header row and one data row")
	}
	return rows, nil
}

// processRows converts raw string rows into a typed frame
func (r *DataReader) processRows(rows [][]string) (*dataset.Frame, error) {
	headers := uniqueHeaders(rows[0])

	dataRows := make([][]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]any, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				cells[j] = dataset.ParseCell(cell)
			}
		}
		dataRows = append(dataRows, cells)
	}

	r.logger.Info("%s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return dataset.NewFrame(headers, dataRows), nil
}

// uniqueHeaders trims header cells, names blank ones "Unnamed: <index>" and
// suffixes repeats with ".1", ".2", ...
func uniqueHeaders(headerRow []string) []string {
	headers := make([]string, len(headerRow))
	seen := make(map[string]int)
	for i, header := range headerRow {
		name := strings.TrimSpace(header)
		if i == 0 {
			// Excel's "CSV UTF-8" export starts with a byte order mark
			name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		headers[i] = name
	}
	return headers
}
