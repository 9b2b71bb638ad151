package trend

import (
	"testing"

	"github.com/healthtrend/backend/internal/domain"
)

func TestScore(t *testing.T) {
	cases := []struct {
		name     string
		behavior []domain.BehaviorRecord
		score    int
		grade    string
		factors  int
	}{
		{"healthy", []domain.BehaviorRecord{habit(0, 160, 8, 2), habit(1, 170, 7.5, 3)}, 100, "A", 0},
		{"no exercise", []domain.BehaviorRecord{habit(0, 10, 8, 2), habit(1, 20, 8, 2)}, 85, "B", 1},
		{"empty history", nil, 75, "C", 2},
		{"everything wrong", []domain.BehaviorRecord{habit(0, 0, 4, 9), habit(1, 0, 4, 8)}, 55, "F", 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Score(nil, c.behavior)
			if got.Score != c.score || got.Grade != c.grade {
				t.Errorf("Expected %d/%s, got %d/%s", c.score, c.grade, got.Score, got.Grade)
			}
			if len(got.Factors) != c.factors {
				t.Errorf("Expected %d factors, got %v", c.factors, got.Factors)
			}
		})
	}
}

func TestScoreIgnoresVitals(t *testing.T) {
	behavior := []domain.BehaviorRecord{habit(0, 160, 8, 2), habit(1, 160, 8, 2)}
	vitals := []domain.VitalsRecord{bp(0, 180, 110), bp(1, 185, 115), sugar(2, 200)}

	if got := Score(vitals, behavior); got.Score != 100 {
		t.Errorf("Expected vitals to leave the score at 100, got %d", got.Score)
	}
}

func TestGrade(t *testing.T) {
	cases := map[int]string{100: "A", 90: "A", 89: "B", 80: "B", 79: "C", 70: "C", 60: "D", 59: "F", 0: "F"}
	for score, want := range cases {
		if got := Grade(score); got != want {
			t.Errorf("Grade(%d) = %s, want %s", score, got, want)
		}
	}
}
