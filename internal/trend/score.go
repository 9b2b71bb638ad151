package trend

import (
	"github.com/healthtrend/backend/internal/domain"
	"github.com/healthtrend/backend/pkg/utils"
)

// Score penalties.
const (
	exercisePenalty = 15
	sleepPenalty    = 10
	stressPenalty   = 20
)

// Score derives the composite health score. Only lifestyle outcomes are
// penalized; vitals are accepted but not yet scored.
func Score(_ []domain.VitalsRecord, behavior []domain.BehaviorRecord) domain.HealthScore {
	return ScoreLifestyle(Lifestyle(behavior))
}

// ScoreLifestyle derives the composite score from an already computed
// lifestyle classification.
func ScoreLifestyle(l domain.LifestyleTrend) domain.HealthScore {
	score := 100
	factors := []string{}

	if l.Exercise.Recommendation != domain.RecommendationGood {
		score -= exercisePenalty
		factors = append(factors, "Exercise below the recommended level")
	}
	if l.Sleep.Recommendation != domain.RecommendationGood {
		score -= sleepPenalty
		factors = append(factors, "Sleep outside the 7-9 hour range")
	}
	if l.Stress.Level == domain.RiskHigh {
		score -= stressPenalty
		factors = append(factors, "High stress level")
	}

	score = int(utils.Clamp(float64(score), 0, 100))
	return domain.HealthScore{
		Score:   score,
		Grade:   Grade(score),
		Factors: factors,
	}
}

// Grade maps a 0-100 score onto a letter grade.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
