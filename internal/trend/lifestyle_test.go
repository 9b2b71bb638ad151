package trend

import (
	"testing"

	"github.com/healthtrend/backend/internal/domain"
	"github.com/healthtrend/backend/internal/normalize"
)

func TestLifestyle_EmptyDefaults(t *testing.T) {
	result := Lifestyle(nil)

	if result.Trend != domain.TrendNoData {
		t.Errorf("Expected no_data, got %s", result.Trend)
	}
	if result.Exercise.Average != "0" || result.Exercise.Recommendation != domain.RecommendationNeedsImprovement {
		t.Errorf("Unexpected exercise %+v", result.Exercise)
	}
	if result.Sleep.Average != "0" || result.Sleep.Recommendation != domain.RecommendationNeedsImprovement {
		t.Errorf("Unexpected sleep %+v", result.Sleep)
	}
	if result.Stress.Average != "0" || result.Stress.Level != domain.RiskLow {
		t.Errorf("Unexpected stress %+v", result.Stress)
	}
}

func TestLifestyle_Averages(t *testing.T) {
	result := Lifestyle([]domain.BehaviorRecord{
		habit(0, 160, 7, 2),
		habit(1, 150, 8, 5),
		{Date: day(2)},
	})

	if result.Trend != domain.TrendStable {
		t.Errorf("Expected stable, got %s", result.Trend)
	}
	if result.Exercise.Average != "155.0" || result.Exercise.Recommendation != domain.RecommendationGood {
		t.Errorf("Unexpected exercise %+v", result.Exercise)
	}
	if result.Sleep.Average != "7.5" || result.Sleep.Recommendation != domain.RecommendationGood {
		t.Errorf("Unexpected sleep %+v", result.Sleep)
	}
	if result.Stress.Average != "3.5" || result.Stress.Level != domain.RiskModerate {
		t.Errorf("Unexpected stress %+v", result.Stress)
	}
}

func TestLifestyle_PoorHabits(t *testing.T) {
	result := Lifestyle([]domain.BehaviorRecord{
		habit(0, 20, 5, 8),
		habit(1, 30, 6, 9),
	})

	if result.Exercise.Recommendation != domain.RecommendationNeedsImprovement {
		t.Errorf("Expected exercise needs_improvement, got %s", result.Exercise.Recommendation)
	}
	if result.Sleep.Recommendation != domain.RecommendationNeedsImprovement {
		t.Errorf("Expected sleep needs_improvement, got %s", result.Sleep.Recommendation)
	}
	if result.Stress.Level != domain.RiskHigh {
		t.Errorf("Expected high stress, got %s", result.Stress.Level)
	}
}

func TestLifestyle_UnrecognizedStressDefaultsToMidRange(t *testing.T) {
	behavior := normalize.BehaviorList([]domain.RawRecord{
		{"date": "2024-01-01", "stress_level": "frazzled"},
		{"date": "2024-01-02", "stress": "somewhat"},
	})

	result := Lifestyle(behavior)
	if result.Stress.Average != "5.0" {
		t.Errorf("Expected stress average 5.0, got %s", result.Stress.Average)
	}
	if result.Stress.Level != domain.RiskModerate {
		t.Errorf("Expected moderate stress, got %s", result.Stress.Level)
	}
}

func TestStressLevel(t *testing.T) {
	cases := []struct {
		score float64
		want  domain.RiskLevel
	}{
		{0, domain.RiskLow},
		{3, domain.RiskLow},
		{3.1, domain.RiskModerate},
		{6, domain.RiskModerate},
		{6.5, domain.RiskHigh},
	}
	for _, c := range cases {
		if got := StressLevel(c.score); got != c.want {
			t.Errorf("StressLevel(%v) = %s, want %s", c.score, got, c.want)
		}
	}
}
