package trend

import (
	"math"

	"github.com/healthtrend/backend/internal/domain"
	"github.com/healthtrend/backend/pkg/utils"
)

// BloodPressure classifies readings that carry both systolic and diastolic
// values. The trend compares the mean of the most recent systolic readings
// against the mean of the earliest ones.
func BloodPressure(vitals []domain.VitalsRecord) domain.BloodPressureTrend {
	points := []domain.BloodPressurePoint{}
	if len(vitals) == 0 {
		return domain.BloodPressureTrend{Trend: domain.TrendNoData, Data: points}
	}

	for _, v := range vitalsByDate(vitals) {
		if v.Systolic == nil || v.Diastolic == nil {
			continue
		}
		points = append(points, domain.BloodPressurePoint{
			Date: v.Date,
			BloodPressureReading: domain.BloodPressureReading{
				Systolic:  *v.Systolic,
				Diastolic: *v.Diastolic,
			},
		})
	}
	if len(points) < 2 {
		return domain.BloodPressureTrend{Trend: domain.TrendInsufficientData, Data: points}
	}

	systolic := make([]float64, len(points))
	diastolic := make([]float64, len(points))
	for i, p := range points {
		systolic[i] = p.Systolic
		diastolic[i] = p.Diastolic
	}

	n := len(systolic)
	earlier := utils.Mean(systolic[:min(bpWindow, n)])
	recent := utils.Mean(systolic[max(0, n-bpWindow):])

	average := domain.BloodPressureReading{
		Systolic:  math.Round(utils.Mean(systolic)),
		Diastolic: math.Round(utils.Mean(diastolic)),
	}
	current := points[n-1].BloodPressureReading

	return domain.BloodPressureTrend{
		Trend:     direction(recent-earlier, bpDeltaThreshold),
		Current:   &current,
		Average:   &average,
		RiskLevel: BloodPressureRisk(average.Systolic, average.Diastolic),
		Data:      points,
	}
}

// BloodPressureRisk grades a systolic/diastolic pair.
func BloodPressureRisk(systolic, diastolic float64) domain.RiskLevel {
	switch {
	case systolic >= 140 || diastolic >= 90:
		return domain.RiskHigh
	case systolic >= 130 || diastolic >= 80:
		return domain.RiskModerate
	default:
		return domain.RiskLow
	}
}
