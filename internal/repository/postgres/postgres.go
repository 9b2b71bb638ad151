package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthtrend/backend/internal/domain"
)

// PostgresRepository implements domain.HealthRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// GetVitals returns vitals rows as column maps. Column names vary between
// schema versions, so rows are left for the normalizer to interpret.
func (r *PostgresRepository) GetVitals(ctx context.Context, userID string, since time.Time) ([]domain.RawRecord, error) {
	query := `
		SELECT *
		FROM health_vitals
		WHERE user_id = $1 AND measurement_date >= $2
		ORDER BY measurement_date ASC
	`

	records, err := r.queryRecords(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query vitals: %w", err)
	}
	return records, nil
}

// GetBehavior returns lifestyle rows as column maps
func (r *PostgresRepository) GetBehavior(ctx context.Context, userID string, since time.Time) ([]domain.RawRecord, error) {
	query := `
		SELECT *
		FROM behavior_records
		WHERE user_id = $1 AND record_date >= $2
		ORDER BY record_date ASC
	`

	records, err := r.queryRecords(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query behavior records: %w", err)
	}
	return records, nil
}

// GetProfile returns the user's profile row, or nil when none exists
func (r *PostgresRepository) GetProfile(ctx context.Context, userID string) (domain.RawRecord, error) {
	query := `
		SELECT *
		FROM user_profiles
		WHERE user_id = $1
		LIMIT 1
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query profile: %w", err)
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to scan profile row: %w", err)
	}
	return domain.RawRecord(row), nil
}

// GetMedications returns the user's active medications
func (r *PostgresRepository) GetMedications(ctx context.Context, userID string) ([]domain.MedicationEntry, error) {
	query := `
		SELECT name, COALESCE(dosage, ''), COALESCE(frequency, ''), COALESCE(schedule, '')
		FROM medications
		WHERE user_id = $1
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query medications: %w", err)
	}
	defer rows.Close()

	results := []domain.MedicationEntry{}
	for rows.Next() {
		var m domain.MedicationEntry
		if err := rows.Scan(&m.Name, &m.Dosage, &m.Frequency, &m.Schedule); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan medication row: %w", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read medications: %w", err)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

func (r *PostgresRepository) queryRecords(ctx context.Context, query string, args ...any) ([]domain.RawRecord, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}

	records := make([]domain.RawRecord, len(maps))
	for i, m := range maps {
		records[i] = domain.RawRecord(m)
	}
	return records, nil
}
