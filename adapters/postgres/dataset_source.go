package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"realestate/domain/dataset"
	"realestate/internal"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// TableSource loads the area statistics from a Postgres table
type TableSource struct {
	url    string
	table  string
	logger *internal.Logger
}

// NewTableSource creates a dataset source reading every row of table.
// table may be schema-qualified ("stats.area_prices").
func NewTableSource(url, table string) *TableSource {
	return &TableSource{
		url:    url,
		table:  table,
		logger: internal.DefaultLogger.With("PostgresSource"),
	}
}

// Describe names the table without exposing credentials
func (s *TableSource) Describe() string {
	return "postgres table " + s.table
}

// Load selects the whole table into a frame, keeping the table's column order
func (s *TableSource) Load(ctx context.Context) (*dataset.Frame, error) {
	if s.url == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	ident, err := quoteTable(s.table)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	start := time.Now()
	rows, err := db.QueryxContext(ctx, "SELECT * FROM "+ident)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var data [][]any
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		cells := make([]any, len(values))
		for i, v := range values {
			cells[i] = cellFromSQL(v)
		}
		data = append(data, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("table %s has no rows", s.table)
	}

	s.logger.Info("Loaded %d rows (%d columns) from %s in %s", len(data), len(columns), s.table, time.Since(start))
	return dataset.NewFrame(columns, data), nil
}

// quoteTable quotes each part of a possibly schema-qualified table name
func quoteTable(table string) (string, error) {
	if strings.TrimSpace(table) == "" {
		return "", fmt.Errorf("table name is required")
	}
	parts := strings.Split(table, ".")
	quoted := make([]string, len(parts))
	for i, part := range parts {
		if part == "" {
			return "", fmt.Errorf("invalid table name %q", table)
		}
		quoted[i] = pq.QuoteIdentifier(part)
	}
	return strings.Join(quoted, "."), nil
}

// cellFromSQL maps driver values onto the frame's cell types
func cellFromSQL(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		// lib/pq returns NUMERIC and some text types as bytes
		return dataset.ParseCell(string(val))
	case string:
		return dataset.ParseCell(val)
	case int64:
		return val
	case int32:
		return int64(val)
	case float64:
		return dataset.ParseCell(fmt.Sprint(val))
	case float32:
		return dataset.ParseCell(fmt.Sprint(val))
	case bool, time.Time:
		return val
	default:
		return fmt.Sprint(val)
	}
}
