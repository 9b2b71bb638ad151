package postgres

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/healthtrend/backend/internal/domain"
)

// MockRepository implements domain.HealthRepository for testing/demo mode.
// It serves a deterministic synthetic history for any user, using the
// mixed column names and string-typed numbers seen in real exports.
type MockRepository struct {
	now func() time.Time
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{now: time.Now}
}

// GetVitals returns one synthetic reading per week since the given time
func (r *MockRepository) GetVitals(ctx context.Context, userID string, since time.Time) ([]domain.RawRecord, error) {
	var records []domain.RawRecord
	for i, day := range r.days(since, 7) {
		record := domain.RawRecord{
			"measurement_date": day.Format("2006-01-02"),
			"weight_kg":        78 + 0.4*float64(i),
			"systolic":         128 + i%4*3,
			"diastolic":        82 + i%3*2,
			"heart_rate":       "72",
			"blood_sugar":      fmtFloat(104 + 3*math.Sin(float64(i))),
			"is_mock":          true,
		}
		if i%5 == 4 {
			// skipped cuff reading
			record["systolic"] = 0
		}
		records = append(records, record)
	}
	return records, nil
}

// GetBehavior returns one synthetic lifestyle entry every other day
func (r *MockRepository) GetBehavior(ctx context.Context, userID string, since time.Time) ([]domain.RawRecord, error) {
	stress := []string{"low", "moderate", "high", "moderate"}
	var records []domain.RawRecord
	for i, day := range r.days(since, 2) {
		records = append(records, domain.RawRecord{
			"record_date":       day.Format(time.RFC3339),
			"exercise_duration": 20 + i%4*15,
			"sleep_hours":       6.5 + float64(i%3)*0.5,
			"stress_level":      stress[i%len(stress)],
			"water_intake":      "1.8",
			"is_mock":           true,
		})
	}
	return records, nil
}

// GetProfile returns a demo profile
func (r *MockRepository) GetProfile(ctx context.Context, userID string) (domain.RawRecord, error) {
	return domain.RawRecord{
		"user_id":             userID,
		"height_cm":           "176",
		"gender":              "female",
		"date_of_birth":       "1979-04-12",
		"medical_conditions":  "Hypertension; Seasonal allergies",
		"current_medications": "Cetirizine",
	}, nil
}

// GetMedications returns a demo medication list
func (r *MockRepository) GetMedications(ctx context.Context, userID string) ([]domain.MedicationEntry, error) {
	return []domain.MedicationEntry{
		{Name: "Lisinopril", Dosage: "10mg", Frequency: "once daily", Schedule: "morning"},
	}, nil
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}

func (r *MockRepository) days(since time.Time, stepDays int) []time.Time {
	now := r.now()
	var out []time.Time
	for d := since.AddDate(0, 0, stepDays); !d.After(now); d = d.AddDate(0, 0, stepDays) {
		out = append(out, d)
	}
	return out
}

func fmtFloat(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
