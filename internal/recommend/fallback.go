package recommend

import (
	"fmt"
	"strings"
	"time"

	"github.com/healthtrend/backend/internal/domain"
)

// DefaultAssessment is used when no high-risk condition fired.
const DefaultAssessment = "AI analysis is currently unavailable; showing general guidance based on your recorded data."

// Advice strings. Rules share them so the same advice never lands twice in
// one bucket.
const (
	adviceCalories         = "Aim for a modest calorie deficit built on vegetables, lean protein and whole grains."
	advicePortions         = "Watch portion sizes and limit sugary drinks and snacks."
	adviceNutrientDense    = "Add nutrient-dense foods such as nuts, dairy and whole grains to reach a healthy weight."
	adviceSodium           = "Keep sodium under 2,300 mg a day and favour fresh over processed foods."
	adviceRefinedCarbs     = "Cut back on refined carbohydrates and sugary drinks; choose high-fibre foods."
	adviceWeeklyActivity   = "Work up to at least 150 minutes of moderate activity per week."
	adviceShortWalks       = "Start with short daily walks and increase the duration gradually."
	advicePostMealWalk     = "Take a 10-15 minute walk after meals to help control blood sugar."
	adviceStrength         = "Include light strength training twice a week to build healthy mass."
	adviceLimitAlcohol     = "Limit alcohol and avoid smoking."
	adviceSleepSchedule    = "Keep a regular sleep schedule and aim for 7-9 hours per night."
	adviceStressHigh       = "Set aside time every day for stress relief such as breathing exercises, meditation or a walk outdoors."
	adviceStressModerate   = "Build short relaxation breaks into your day."
	adviceDiscussBPMeds    = "Discuss blood pressure treatment options with your doctor."
	adviceHbA1c            = "Ask your doctor about an HbA1c test and diabetes management."
	adviceTakeAsPrescribed = "Keep taking your medications as prescribed and review them with your doctor regularly."
	adviceWeighWeekly      = "Weigh yourself once a week at the same time of day."
	adviceBPDaily          = "Measure your blood pressure every day and keep a log."
	adviceBPWeekly         = "Check your blood pressure at least once a week."
	adviceSugarFasting     = "Check your fasting blood sugar regularly and keep a log."
	warnBPHigh             = "Your average blood pressure is in the high range. Consult a doctor soon, and seek urgent care for readings above 180/120 mmHg."
	warnSugarHigh          = "Your average blood sugar is in the diabetic range. Please see a doctor for an evaluation."
	warnObese              = "Your BMI is in the obese range, which raises the risk of heart disease and diabetes."
)

// Fallback builds a recommendation bundle from threshold rules alone. It is
// deterministic: the same trends and context always give the same bundle,
// apart from meta.generatedAt.
func Fallback(trends domain.Trends, rc Context, now time.Time) domain.RecommendationBundle {
	f := &fallback{bundle: domain.NewRecommendationBundle()}

	f.bmi(trends.BMI)
	f.bloodPressure(trends.BloodPressure)
	f.bloodSugar(trends.BloodSugar)
	f.lifestyle(trends.Lifestyle)
	f.context(rc)
	f.monitoringPlan(trends)

	f.bundle.OverallAssessment = f.assessment()
	f.bundle.FollowUp = f.followUp()
	f.bundle.Meta = domain.RecommendationMeta{
		Source:      domain.SourceFallback,
		GeneratedAt: now,
	}
	return f.bundle
}

type fallback struct {
	bundle   domain.RecommendationBundle
	concerns []string
	moderate bool
}

func add(list *[]string, s string) {
	for _, existing := range *list {
		if existing == s {
			return
		}
	}
	*list = append(*list, s)
}

func (f *fallback) risk(title, description string) {
	for _, r := range f.bundle.RiskFactors {
		if r.Title == title {
			return
		}
	}
	f.bundle.RiskFactors = append(f.bundle.RiskFactors, domain.RiskNote{Title: title, Description: description})
}

func (f *fallback) bmi(t domain.BMITrend) {
	r := &f.bundle.Recommendations

	if t.Current != nil {
		switch t.Category {
		case domain.BMIObese:
			add(&r.Diet, adviceCalories)
			add(&r.Diet, advicePortions)
			add(&r.Exercise, adviceWeeklyActivity)
			add(&r.Monitoring, adviceWeighWeekly)
			add(&r.Warning, warnObese)
			f.risk("Obesity", fmt.Sprintf("Your current BMI of %.1f is in the obese range (30 or above).", *t.Current))
			f.concerns = append(f.concerns, "your BMI is in the obese range")
		case domain.BMIOverweight:
			add(&r.Diet, advicePortions)
			add(&r.Exercise, adviceWeeklyActivity)
			add(&r.Monitoring, adviceWeighWeekly)
			f.risk("Overweight", fmt.Sprintf("Your current BMI of %.1f is in the overweight range (25 to 29.9).", *t.Current))
			f.moderate = true
		case domain.BMIUnderweight:
			add(&r.Diet, adviceNutrientDense)
			add(&r.Exercise, adviceStrength)
			add(&r.Monitoring, adviceWeighWeekly)
			f.moderate = true
		}
	}

	switch t.Trend {
	case domain.TrendIncreasing:
		add(&r.Monitoring, adviceWeighWeekly)
	case domain.TrendDecreasing:
		add(&f.bundle.Improvements, "Your BMI has been trending down.")
	}
}

func (f *fallback) bloodPressure(t domain.BloodPressureTrend) {
	r := &f.bundle.Recommendations

	switch t.RiskLevel {
	case domain.RiskHigh:
		add(&r.Diet, adviceSodium)
		add(&r.Exercise, adviceWeeklyActivity)
		add(&r.Lifestyle, adviceLimitAlcohol)
		add(&r.Medication, adviceDiscussBPMeds)
		add(&r.Monitoring, adviceBPDaily)
		add(&r.Warning, warnBPHigh)
		desc := "Your average blood pressure is at or above 140/90 mmHg."
		if t.Average != nil {
			desc = fmt.Sprintf("Your average blood pressure of %.0f/%.0f mmHg is at or above 140/90 mmHg.",
				t.Average.Systolic, t.Average.Diastolic)
		}
		f.risk("High blood pressure", desc)
		f.concerns = append(f.concerns, "your blood pressure is high")
	case domain.RiskModerate:
		add(&r.Diet, adviceSodium)
		add(&r.Exercise, adviceWeeklyActivity)
		add(&r.Monitoring, adviceBPWeekly)
		f.moderate = true
	}

	if t.Trend == domain.TrendIncreasing {
		add(&r.Monitoring, adviceBPWeekly)
	}
}

func (f *fallback) bloodSugar(t domain.BloodSugarTrend) {
	r := &f.bundle.Recommendations

	switch t.DiabetesRisk {
	case domain.RiskHigh:
		add(&r.Diet, adviceRefinedCarbs)
		add(&r.Exercise, advicePostMealWalk)
		add(&r.Medication, adviceHbA1c)
		add(&r.Monitoring, adviceSugarFasting)
		add(&r.Warning, warnSugarHigh)
		desc := "Your average blood sugar is at or above 126 mg/dL."
		if t.Average != nil {
			desc = fmt.Sprintf("Your average blood sugar of %.1f mg/dL is at or above 126 mg/dL.", *t.Average)
		}
		f.risk("High diabetes risk", desc)
		f.concerns = append(f.concerns, "your blood sugar is in the diabetic range")
	case domain.RiskModerate:
		add(&r.Diet, adviceRefinedCarbs)
		add(&r.Exercise, advicePostMealWalk)
		add(&r.Monitoring, adviceSugarFasting)
		f.moderate = true
	}

	switch t.Trend {
	case domain.TrendIncreasing:
		add(&r.Monitoring, adviceSugarFasting)
	case domain.TrendDecreasing:
		add(&f.bundle.Improvements, "Your blood sugar has been trending down.")
	}
}

func (f *fallback) lifestyle(t domain.LifestyleTrend) {
	if !hasData(t.Trend) {
		return
	}
	r := &f.bundle.Recommendations

	if t.Exercise.Recommendation == domain.RecommendationGood {
		add(&f.bundle.Improvements, "You are meeting the recommended amount of exercise.")
	} else {
		add(&r.Exercise, adviceWeeklyActivity)
		add(&r.Exercise, adviceShortWalks)
	}

	if t.Sleep.Recommendation == domain.RecommendationGood {
		add(&f.bundle.Improvements, "Your sleep duration is within the healthy 7-9 hour range.")
	} else {
		add(&r.Lifestyle, adviceSleepSchedule)
	}

	switch t.Stress.Level {
	case domain.RiskHigh:
		add(&r.Lifestyle, adviceStressHigh)
		f.risk("High stress", fmt.Sprintf("Your average stress level is %s out of 10.", t.Stress.Average))
		f.concerns = append(f.concerns, "your stress level is high")
	case domain.RiskModerate:
		add(&r.Lifestyle, adviceStressModerate)
	}
}

func (f *fallback) context(rc Context) {
	r := &f.bundle.Recommendations

	if len(rc.MedicationNames) > 0 {
		add(&r.Medication, adviceTakeAsPrescribed)
	}
	details := make(map[string]domain.MedicationEntry, len(rc.Medications))
	for _, m := range rc.Medications {
		details[strings.ToLower(m.Name)] = m
	}
	for _, name := range rc.MedicationNames {
		label := name
		if m, ok := details[strings.ToLower(name)]; ok {
			var parts []string
			for _, p := range []string{m.Dosage, m.Frequency} {
				if p != "" {
					parts = append(parts, p)
				}
			}
			if len(parts) > 0 {
				label = fmt.Sprintf("%s (%s)", name, strings.Join(parts, ", "))
			}
		}
		add(&f.bundle.MedicationNotes, label+": take as prescribed and do not change the dose without talking to your doctor.")
	}

	if len(rc.Conditions) > 0 {
		add(&r.Monitoring, fmt.Sprintf("Keep up regular check-ups for your existing conditions: %s.", strings.Join(rc.Conditions, ", ")))
	}
}

func (f *fallback) monitoringPlan(t domain.Trends) {
	plan := &f.bundle.MonitoringPlan

	if hasData(t.BloodPressure.Trend) {
		switch t.BloodPressure.RiskLevel {
		case domain.RiskHigh:
			add(plan, "Blood pressure: daily")
		case domain.RiskModerate:
			add(plan, "Blood pressure: weekly")
		default:
			add(plan, "Blood pressure: monthly")
		}
	}
	if hasData(t.BloodSugar.Trend) {
		switch t.BloodSugar.DiabetesRisk {
		case domain.RiskHigh:
			add(plan, "Blood sugar: daily, fasting")
		case domain.RiskModerate:
			add(plan, "Blood sugar: weekly")
		default:
			add(plan, "Blood sugar: every 3 months")
		}
	}
	if hasData(t.BMI.Trend) {
		add(plan, "Weight: weekly")
	}
	if hasData(t.Lifestyle.Trend) {
		add(plan, "Exercise, sleep and stress: log daily")
	}
}

func hasData(s domain.TrendState) bool {
	return s != "" && s != domain.TrendNoData
}

func (f *fallback) assessment() string {
	if len(f.concerns) == 0 {
		return DefaultAssessment
	}
	return "Based on your recorded data, " + strings.Join(f.concerns, "; ") +
		". Please follow the recommendations below and consult a healthcare professional."
}

func (f *fallback) followUp() string {
	switch {
	case len(f.concerns) > 0:
		return "Schedule an appointment with your doctor within the next two weeks to review these results."
	case f.moderate:
		return "Discuss these results at your next routine check-up."
	default:
		return "Review your trends again in one month."
	}
}
