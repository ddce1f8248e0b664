package area

import "realestate/domain/dataset"

// Columns names the normalized dataset columns an analysis reads
type Columns struct {
	Location string
	Year     string
	Price    string
	Demand   string
}

// DefaultColumns matches the headers of the published area statistics workbook
func DefaultColumns() Columns {
	return Columns{
		Location: "final_location",
		Year:     "year",
		Price:    "flat_-_weighted_average_rate",
		Demand:   "residential_sold_-_igr",
	}
}

// ChartData holds parallel series in dataset row order
type ChartData struct {
	Years  []any `json:"years"`
	Prices []any `json:"prices"`
	Demand []any `json:"demand"`
}

// Report is the result of analysing one area
type Report struct {
	Area      string           `json:"area"`
	ChartData ChartData        `json:"chart_data"`
	Summary   string           `json:"summary"`
	Table     []dataset.Record `json:"table"`
}
