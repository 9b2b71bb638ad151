package trend

import (
	"github.com/healthtrend/backend/internal/domain"
	"github.com/healthtrend/backend/pkg/utils"
)

// Lifestyle thresholds.
const (
	exerciseGoodMinutes = 150.0
	sleepMinHours       = 7.0
	sleepMaxHours       = 9.0
	stressLowMax        = 3.0
	stressModerateMax   = 6.0
)

// Lifestyle averages exercise, sleep and stress independently. Stress values
// arrive already mapped onto the 1-10 scale by the normalizer. An empty
// history yields zero averages rather than an error.
func Lifestyle(behavior []domain.BehaviorRecord) domain.LifestyleTrend {
	var exercise, sleep, stress []float64
	for _, b := range behavior {
		if b.ExerciseMinutes != nil {
			exercise = append(exercise, *b.ExerciseMinutes)
		}
		if b.SleepHours != nil {
			sleep = append(sleep, *b.SleepHours)
		}
		if b.StressLevel != nil {
			stress = append(stress, *b.StressLevel)
		}
	}

	state := domain.TrendStable
	switch {
	case len(behavior) == 0:
		state = domain.TrendNoData
	case len(behavior) < 2:
		state = domain.TrendInsufficientData
	}

	return domain.LifestyleTrend{
		Trend: state,
		Exercise: domain.LifestyleMetric{
			Average:        utils.FormatAverage(exercise),
			Recommendation: exerciseVerdict(exercise),
		},
		Sleep: domain.LifestyleMetric{
			Average:        utils.FormatAverage(sleep),
			Recommendation: sleepVerdict(sleep),
		},
		Stress: domain.StressMetric{
			Average: utils.FormatAverage(stress),
			Level:   StressLevel(utils.Mean(stress)),
		},
	}
}

// StressLevel labels an average stress score.
func StressLevel(score float64) domain.RiskLevel {
	switch {
	case score <= stressLowMax:
		return domain.RiskLow
	case score <= stressModerateMax:
		return domain.RiskModerate
	default:
		return domain.RiskHigh
	}
}

func exerciseVerdict(minutes []float64) string {
	if len(minutes) > 0 && utils.Mean(minutes) >= exerciseGoodMinutes {
		return domain.RecommendationGood
	}
	return domain.RecommendationNeedsImprovement
}

func sleepVerdict(hours []float64) string {
	if len(hours) == 0 {
		return domain.RecommendationNeedsImprovement
	}
	avg := utils.Mean(hours)
	if avg >= sleepMinHours && avg <= sleepMaxHours {
		return domain.RecommendationGood
	}
	return domain.RecommendationNeedsImprovement
}
