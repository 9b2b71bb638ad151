package trend

import (
	"github.com/healthtrend/backend/internal/domain"
	"github.com/healthtrend/backend/pkg/utils"
)

// BMI classifies the body-mass-index series. The trend compares the first
// and last valid BMI.
func BMI(vitals []domain.VitalsRecord) domain.BMITrend {
	series := []domain.Point{}
	if len(vitals) == 0 {
		return domain.BMITrend{Trend: domain.TrendNoData, Data: series}
	}

	for _, v := range vitalsByDate(vitals) {
		bmi, ok := computeBMI(v)
		if !ok {
			continue
		}
		series = append(series, domain.Point{Date: v.Date, Value: bmi})
	}
	if len(series) < 2 {
		return domain.BMITrend{Trend: domain.TrendInsufficientData, Data: series}
	}

	first, last := series[0].Value, series[len(series)-1].Value
	return domain.BMITrend{
		Trend:    direction(last-first, bmiDeltaThreshold),
		Current:  float(last),
		Category: BMICategory(last),
		Data:     series,
	}
}

// BMICategory maps a BMI onto its band.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return domain.BMIUnderweight
	case bmi < 25:
		return domain.BMINormal
	case bmi < 30:
		return domain.BMIOverweight
	default:
		return domain.BMIObese
	}
}

// computeBMI returns weight / height(m)^2 rounded to one decimal.
func computeBMI(v domain.VitalsRecord) (float64, bool) {
	weight := v.WeightKg
	if weight == nil {
		weight = v.Weight
	}
	height := v.HeightCm
	if height == nil {
		height = v.Height
	}
	if weight == nil || height == nil || *weight <= 0 || *height <= 0 {
		return 0, false
	}
	meters := *height / 100
	return utils.RoundTo(*weight/(meters*meters), 1), true
}
