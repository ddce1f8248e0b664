package dataset

import (
	"math"
	"strconv"
	"strings"
)

// ParseCell types a raw spreadsheet cell: blank -> nil, integral number ->
// int64, other finite number -> float64, anything else -> trimmed string
func ParseCell(raw string) any {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		// Excel stores whole numbers like years as 2020 or 2020.0
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	}

	return s
}

// ToFloat returns the numeric value of a typed cell. Strings are parsed;
// nil and non-numeric values report false.
func ToFloat(cell any) (float64, bool) {
	switch v := cell.(type) {
	case float64:
		return v, !math.IsNaN(v)
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
