package trend

import (
	"fmt"

	"github.com/healthtrend/backend/internal/domain"
)

// Extract scans classifier outputs for risk and positive-progress flags.
// Entries appear in the order the checks run.
func Extract(t domain.Trends) ([]domain.RiskFactor, []domain.Improvement) {
	risks := []domain.RiskFactor{}
	improvements := []domain.Improvement{}

	if t.BMI.Trend == domain.TrendIncreasing && t.BMI.Category == domain.BMIObese && t.BMI.Current != nil {
		risks = append(risks, domain.RiskFactor{
			Type:        "obesity",
			Level:       domain.RiskHigh,
			Description: fmt.Sprintf("BMI is rising and currently %.1f, in the obese range", *t.BMI.Current),
		})
	}
	if t.BloodPressure.RiskLevel == domain.RiskHigh && t.BloodPressure.Average != nil {
		risks = append(risks, domain.RiskFactor{
			Type:  "hypertension",
			Level: domain.RiskHigh,
			Description: fmt.Sprintf("Average blood pressure of %.0f/%.0f mmHg is in the high range",
				t.BloodPressure.Average.Systolic, t.BloodPressure.Average.Diastolic),
		})
	}
	if t.BloodSugar.DiabetesRisk == domain.RiskHigh && t.BloodSugar.Average != nil {
		risks = append(risks, domain.RiskFactor{
			Type:        "diabetes",
			Level:       domain.RiskHigh,
			Description: fmt.Sprintf("Average blood sugar of %.1f mg/dL indicates high diabetes risk", *t.BloodSugar.Average),
		})
	}
	if t.Lifestyle.Stress.Level == domain.RiskHigh {
		risks = append(risks, domain.RiskFactor{
			Type:        "stress",
			Level:       domain.RiskModerate,
			Description: "Average stress level is high",
		})
	}

	if t.BMI.Trend == domain.TrendDecreasing {
		improvements = append(improvements, domain.Improvement{
			Type:        "weight_loss",
			Description: "BMI is trending down",
		})
	}
	if t.Lifestyle.Exercise.Recommendation == domain.RecommendationGood {
		improvements = append(improvements, domain.Improvement{
			Type:        "exercise",
			Description: "Exercise meets the recommended level",
		})
	}
	if t.Lifestyle.Sleep.Recommendation == domain.RecommendationGood {
		improvements = append(improvements, domain.Improvement{
			Type:        "sleep",
			Description: "Sleep duration is within the healthy 7-9 hour range",
		})
	}
	if t.BloodPressure.RiskLevel == domain.RiskLow {
		improvements = append(improvements, domain.Improvement{
			Type:        "blood_pressure",
			Description: "Blood pressure is in the normal range",
		})
	}

	return risks, improvements
}
