package area

import (
	"fmt"
	"strconv"
	"strings"

	"realestate/domain/dataset"

	"github.com/montanaflynn/stats"
)

// ExtractKey returns the lower-cased last whitespace-separated token of a
// query. Multi-word locations are not recognised.
func ExtractKey(query string) (string, bool) {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return "", false
	}
	return words[len(words)-1], true
}

// BuildChart collects the year, price and demand series of a filtered frame.
// A missing column yields a series of nils so all three stay the same length.
func BuildChart(frame *dataset.Frame, cols Columns) ChartData {
	return ChartData{
		Years:  series(frame, cols.Year),
		Prices: series(frame, cols.Price),
		Demand: series(frame, cols.Demand),
	}
}

func series(frame *dataset.Frame, column string) []any {
	values, err := frame.Column(column)
	if err != nil {
		return make([]any, frame.Len())
	}
	return values
}

// RoundedMean averages the numeric cells of a series to two decimals.
// It returns nil when the series has no numeric cells.
func RoundedMean(cells []any) (*float64, error) {
	var data stats.Float64Data
	for _, cell := range cells {
		if f, ok := dataset.ToFloat(cell); ok {
			data = append(data, f)
		}
	}
	if len(data) == 0 {
		return nil, nil
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}
	rounded, err := stats.Round(mean, 2)
	if err != nil {
		return nil, err
	}
	return &rounded, nil
}

// Summarize composes the one-sentence summary for an area
func Summarize(area string, avgPrice, avgDemand *float64) string {
	return fmt.Sprintf("%s has an average Price of %s and average Demand of %s.",
		area, FormatFigure(avgPrice), FormatFigure(avgDemand))
}

// FormatFigure prints a rounded figure with at least one decimal (200.0,
// 123.46) and N/A when there is no value
func FormatFigure(v *float64) string {
	if v == nil {
		return "N/A"
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
