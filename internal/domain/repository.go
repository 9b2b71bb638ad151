package domain

import (
	"context"
	"time"
)

// Lookback windows accepted by the analysis consumer.
const (
	TimeRangeOneMonth    = "1month"
	TimeRangeThreeMonths = "3months"
	TimeRangeSixMonths   = "6months"
	TimeRangeOneYear     = "1year"
)

// ParseTimeRange normalizes a lookback window name and returns the start of
// the window relative to now. Unknown values fall back to six months.
func ParseTimeRange(timeRange string, now time.Time) (string, time.Time) {
	switch timeRange {
	case TimeRangeOneMonth:
		return timeRange, now.AddDate(0, -1, 0)
	case TimeRangeThreeMonths:
		return timeRange, now.AddDate(0, -3, 0)
	case TimeRangeOneYear:
		return timeRange, now.AddDate(-1, 0, 0)
	default:
		return TimeRangeSixMonths, now.AddDate(0, -6, 0)
	}
}

// HealthRepository defines the record source used by the analysis consumer.
// This follows the Dependency Inversion Principle - domain defines the interface
type HealthRepository interface {
	// GetVitals returns the user's vitals rows recorded since the given time,
	// oldest first
	GetVitals(ctx context.Context, userID string, since time.Time) ([]RawRecord, error)

	// GetBehavior returns the user's lifestyle rows recorded since the given
	// time, oldest first
	GetBehavior(ctx context.Context, userID string, since time.Time) ([]RawRecord, error)

	// GetProfile returns the user's profile row, or nil when none exists
	GetProfile(ctx context.Context, userID string) (RawRecord, error)

	// GetMedications returns the user's structured medication list
	GetMedications(ctx context.Context, userID string) ([]MedicationEntry, error)

	// Health checks database connectivity
	Health(ctx context.Context) error
}
