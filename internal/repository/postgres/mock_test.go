package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/healthtrend/backend/internal/analysis"
	"github.com/healthtrend/backend/internal/domain"
)

func fixedMock() *MockRepository {
	r := NewMockRepository()
	r.now = func() time.Time { return time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC) }
	return r
}

func TestMockRepositoryRespectsSince(t *testing.T) {
	r := fixedMock()
	since := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	vitals, err := r.GetVitals(context.Background(), "demo", since)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(vitals) != 4 {
		t.Errorf("Expected 4 weekly readings in June, got %d", len(vitals))
	}

	behavior, err := r.GetBehavior(context.Background(), "demo", since)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(behavior) != 14 {
		t.Errorf("Expected 14 entries every other day, got %d", len(behavior))
	}
}

func TestMockRepositoryFeedsEngine(t *testing.T) {
	r := fixedMock()
	ctx := context.Background()
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	vitals, _ := r.GetVitals(ctx, "demo", since)
	behavior, _ := r.GetBehavior(ctx, "demo", since)
	profile, _ := r.GetProfile(ctx, "demo")
	meds, _ := r.GetMedications(ctx, "demo")

	result := analysis.NewEngine(nil).Run(ctx, analysis.Input{
		Vitals:      vitals,
		Behavior:    behavior,
		Profile:     profile,
		Medications: meds,
	}, domain.TimeRangeSixMonths)

	if result.Trends.BMI.Trend != domain.TrendIncreasing {
		t.Errorf("Expected demo BMI to rise, got %q", result.Trends.BMI.Trend)
	}
	if !result.Trends.BloodPressure.Trend.HasResult() {
		t.Errorf("Expected blood pressure trend, got %q", result.Trends.BloodPressure.Trend)
	}
	if !result.Trends.BloodSugar.Trend.HasResult() {
		t.Errorf("Expected blood sugar trend, got %q", result.Trends.BloodSugar.Trend)
	}
	if len(result.Context.Medications) != 2 {
		t.Errorf("Expected structured and profile medications, got %v", result.Context.Medications)
	}
	if len(result.Context.Conditions) != 2 {
		t.Errorf("Expected 2 conditions, got %v", result.Context.Conditions)
	}
	if err := r.Health(ctx); err != nil {
		t.Errorf("Expected healthy mock, got %v", err)
	}
}
