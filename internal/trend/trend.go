// Package trend classifies normalized health records per dimension and
// derives the composite score and risk/improvement flags from the results.
// Every function here is pure and deterministic.
package trend

import (
	"sort"

	"github.com/healthtrend/backend/internal/domain"
)

// Direction thresholds per dimension.
const (
	bmiDeltaThreshold   = 0.5
	bpDeltaThreshold    = 5.0
	sugarDeltaThreshold = 10.0
	// bpWindow is how many readings form the earliest and most recent means
	bpWindow = 3
)

// direction maps a delta onto increasing/decreasing/stable.
func direction(delta, threshold float64) domain.TrendState {
	switch {
	case delta > threshold:
		return domain.TrendIncreasing
	case delta < -threshold:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

func vitalsByDate(records []domain.VitalsRecord) []domain.VitalsRecord {
	sorted := make([]domain.VitalsRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

func values(points []domain.Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

func float(v float64) *float64 {
	return &v
}
