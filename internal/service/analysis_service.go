package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/healthtrend/backend/internal/analysis"
	"github.com/healthtrend/backend/internal/domain"
	"github.com/healthtrend/backend/internal/metrics"
)

// AnalysisService loads a user's records and runs the analysis engine
type AnalysisService struct {
	repo   HealthRepository
	engine *analysis.Engine
	now    func() time.Time
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(repo HealthRepository, engine *analysis.Engine) *AnalysisService {
	return &AnalysisService{
		repo:   repo,
		engine: engine,
		now:    time.Now,
	}
}

// Analyze fetches the user's records for the time range and analyzes them.
// Only a failure to load vitals or behavior records yields Success=false.
func (s *AnalysisService) Analyze(ctx context.Context, userID, timeRange string) domain.AnalysisResponse {
	ctx, logger := withRequestLogger(ctx, userID)
	start := time.Now()
	defer func() { metrics.AnalysisDuration.Observe(time.Since(start).Seconds()) }()

	rangeName, since := domain.ParseTimeRange(timeRange, s.now())

	in, err := s.fetch(ctx, userID, since)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load health records")
		metrics.AnalysesTotal.WithLabelValues("error").Inc()
		return domain.AnalysisResponse{Success: false, Error: err.Error()}
	}

	return s.run(ctx, logger, in, rangeName)
}

// AnalyzeInput analyzes records supplied by the caller instead of storage.
func (s *AnalysisService) AnalyzeInput(ctx context.Context, in analysis.Input, timeRange string) domain.AnalysisResponse {
	ctx, logger := withRequestLogger(ctx, "")
	start := time.Now()
	defer func() { metrics.AnalysisDuration.Observe(time.Since(start).Seconds()) }()

	rangeName, _ := domain.ParseTimeRange(timeRange, s.now())
	return s.run(ctx, logger, in, rangeName)
}

// Ready reports whether the record source is reachable
func (s *AnalysisService) Ready(ctx context.Context) error {
	return s.repo.Health(ctx)
}

func (s *AnalysisService) run(ctx context.Context, logger zerolog.Logger, in analysis.Input, timeRange string) domain.AnalysisResponse {
	result := s.engine.Run(ctx, in, timeRange)

	meta := result.Recommendations.Meta
	metrics.AnalysesTotal.WithLabelValues("success").Inc()
	metrics.ObserveRecommendation(meta.Source, meta.Reason)

	logger.Info().
		Int("vitals", result.Context.VitalsCount).
		Int("behavior", result.Context.BehaviorCount).
		Int("score", result.Trends.Overall.Score).
		Str("source", meta.Source).
		Str("reason", meta.Reason).
		Msg("Analysis complete")

	return domain.AnalysisResponse{Success: true, Data: &result}
}

// fetch loads all record kinds concurrently. Vitals and behavior are
// required; a missing profile or medication list only degrades the result.
func (s *AnalysisService) fetch(ctx context.Context, userID string, since time.Time) (analysis.Input, error) {
	var in analysis.Input
	logger := zerolog.Ctx(ctx)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.repo.GetVitals(gctx, userID, since)
		if err != nil {
			return fmt.Errorf("fetch vitals: %w", err)
		}
		in.Vitals = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.repo.GetBehavior(gctx, userID, since)
		if err != nil {
			return fmt.Errorf("fetch behavior: %w", err)
		}
		in.Behavior = rows
		return nil
	})

	g.Go(func() error {
		profile, err := s.repo.GetProfile(gctx, userID)
		if err != nil {
			logger.Warn().Err(err).Msg("Profile unavailable, continuing without it")
			return nil
		}
		in.Profile = profile
		return nil
	})

	g.Go(func() error {
		meds, err := s.repo.GetMedications(gctx, userID)
		if err != nil {
			logger.Warn().Err(err).Msg("Medications unavailable, continuing without them")
			return nil
		}
		in.Medications = meds
		return nil
	})

	if err := g.Wait(); err != nil {
		return analysis.Input{}, err
	}
	return in, nil
}

func withRequestLogger(ctx context.Context, userID string) (context.Context, zerolog.Logger) {
	lc := log.With().Str("analysis_id", uuid.NewString())
	if userID != "" {
		lc = lc.Str("user_id", userID)
	}
	logger := lc.Logger()
	return logger.WithContext(ctx), logger
}
