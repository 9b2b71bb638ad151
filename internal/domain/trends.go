package domain

import "time"

// TrendState is the directional classification of a series, or the reason
// no classification could be made.
type TrendState string

const (
	TrendNoData           TrendState = "no_data"
	TrendInsufficientData TrendState = "insufficient_data"
	TrendIncreasing       TrendState = "increasing"
	TrendDecreasing       TrendState = "decreasing"
	TrendStable           TrendState = "stable"
)

// HasResult reports whether the state carries a computed classification.
func (s TrendState) HasResult() bool {
	return s == TrendIncreasing || s == TrendDecreasing || s == TrendStable
}

// RiskLevel is a coarse three-tier label derived from fixed thresholds.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// BMI category labels.
const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

// Lifestyle recommendation labels.
const (
	RecommendationGood             = "good"
	RecommendationNeedsImprovement = "needs_improvement"
)

// Point is one value of a time series.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// BMITrend is the result of the BMI classifier.
type BMITrend struct {
	Trend    TrendState `json:"trend"`
	Current  *float64   `json:"current,omitempty"`
	Category string     `json:"category,omitempty"`
	Data     []Point    `json:"data"`
}

// BloodPressureReading is a systolic/diastolic pair.
type BloodPressureReading struct {
	Systolic  float64 `json:"systolic"`
	Diastolic float64 `json:"diastolic"`
}

// BloodPressurePoint is one dated blood pressure reading.
type BloodPressurePoint struct {
	Date time.Time `json:"date"`
	BloodPressureReading
}

// BloodPressureTrend is the result of the blood pressure classifier.
type BloodPressureTrend struct {
	Trend     TrendState            `json:"trend"`
	Current   *BloodPressureReading `json:"current,omitempty"`
	Average   *BloodPressureReading `json:"average,omitempty"`
	RiskLevel RiskLevel             `json:"riskLevel,omitempty"`
	Data      []BloodPressurePoint  `json:"data"`
}

// BloodSugarTrend is the result of the blood sugar classifier.
type BloodSugarTrend struct {
	Trend        TrendState `json:"trend"`
	Current      *float64   `json:"current,omitempty"`
	Average      *float64   `json:"average,omitempty"`
	DiabetesRisk RiskLevel  `json:"diabetesRisk,omitempty"`
	Data         []Point    `json:"data"`
}

// LifestyleMetric is an averaged lifestyle dimension with its verdict.
type LifestyleMetric struct {
	Average        string `json:"average"`
	Recommendation string `json:"recommendation"`
}

// StressMetric is the averaged stress score with its level.
type StressMetric struct {
	Average string    `json:"average"`
	Level   RiskLevel `json:"level"`
}

// LifestyleTrend is the result of the lifestyle classifier.
type LifestyleTrend struct {
	Trend    TrendState      `json:"trend"`
	Exercise LifestyleMetric `json:"exercise"`
	Sleep    LifestyleMetric `json:"sleep"`
	Stress   StressMetric    `json:"stress"`
}

// HealthScore is the composite 0-100 score.
type HealthScore struct {
	Score   int      `json:"score"`
	Grade   string   `json:"grade"`
	Factors []string `json:"factors"`
}

// Trends groups the per-dimension classifier outputs.
type Trends struct {
	BMI           BMITrend           `json:"bmi"`
	BloodPressure BloodPressureTrend `json:"bloodPressure"`
	BloodSugar    BloodSugarTrend    `json:"bloodSugar"`
	Lifestyle     LifestyleTrend     `json:"lifestyle"`
	Overall       HealthScore        `json:"overall"`
}

// RiskFactor is a risk flag found in the classifier outputs.
type RiskFactor struct {
	Type        string    `json:"type"`
	Level       RiskLevel `json:"level"`
	Description string    `json:"description"`
}

// Improvement is a positive-progress flag found in the classifier outputs.
type Improvement struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}
