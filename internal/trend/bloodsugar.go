package trend

import (
	"github.com/healthtrend/backend/internal/domain"
	"github.com/healthtrend/backend/pkg/utils"
)

// BloodSugar classifies blood sugar readings by comparing the first and
// last reading; diabetes risk is graded on the average.
func BloodSugar(vitals []domain.VitalsRecord) domain.BloodSugarTrend {
	series := []domain.Point{}
	if len(vitals) == 0 {
		return domain.BloodSugarTrend{Trend: domain.TrendNoData, Data: series}
	}

	for _, v := range vitalsByDate(vitals) {
		if v.BloodSugar == nil {
			continue
		}
		series = append(series, domain.Point{Date: v.Date, Value: *v.BloodSugar})
	}
	if len(series) < 2 {
		return domain.BloodSugarTrend{Trend: domain.TrendInsufficientData, Data: series}
	}

	first, last := series[0].Value, series[len(series)-1].Value
	average := utils.RoundTo(utils.Mean(values(series)), 1)

	return domain.BloodSugarTrend{
		Trend:        direction(last-first, sugarDeltaThreshold),
		Current:      float(last),
		Average:      float(average),
		DiabetesRisk: DiabetesRisk(average),
		Data:         series,
	}
}

// DiabetesRisk grades an average blood sugar in mg/dL.
func DiabetesRisk(average float64) domain.RiskLevel {
	switch {
	case average >= 126:
		return domain.RiskHigh
	case average >= 100:
		return domain.RiskModerate
	default:
		return domain.RiskLow
	}
}
