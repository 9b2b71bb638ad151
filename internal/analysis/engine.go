// Package analysis runs the health trend pipeline over one user's records:
// normalize, classify, score, extract, then recommend.
package analysis

import (
	"context"
	"time"

	"github.com/healthtrend/backend/internal/domain"
	"github.com/healthtrend/backend/internal/normalize"
	"github.com/healthtrend/backend/internal/recommend"
	"github.com/healthtrend/backend/internal/trend"
)

// Input is one user's raw records as they come from storage or a request.
type Input struct {
	Vitals      []domain.RawRecord       `json:"vitals" yaml:"vitals"`
	Behavior    []domain.RawRecord       `json:"behavior" yaml:"behavior"`
	Profile     domain.RawRecord         `json:"profile" yaml:"profile"`
	Medications []domain.MedicationEntry `json:"medications" yaml:"medications"`
}

// Recommender produces the recommendation bundle for classified trends.
type Recommender interface {
	Recommend(ctx context.Context, trends domain.Trends, rc recommend.Context) domain.RecommendationBundle
}

// Engine is stateless; one Engine serves concurrent runs.
type Engine struct {
	recommender Recommender
	now         func() time.Time
}

// NewEngine creates an engine. A nil recommender means fallback rules only.
func NewEngine(r Recommender) *Engine {
	if r == nil {
		r = recommend.NewOrchestrator(nil)
	}
	return &Engine{recommender: r, now: time.Now}
}

// Run analyzes the input. Missing or malformed data never fails the run; it
// shows up as no_data or insufficient_data trend states instead.
func (e *Engine) Run(ctx context.Context, in Input, timeRange string) domain.AnalysisResult {
	profile := normalize.Profile(in.Profile)
	vitals := normalize.VitalsList(in.Vitals, profile)
	behavior := normalize.BehaviorList(in.Behavior)

	trends := domain.Trends{
		BMI:           trend.BMI(vitals),
		BloodPressure: trend.BloodPressure(vitals),
		BloodSugar:    trend.BloodSugar(vitals),
		Lifestyle:     trend.Lifestyle(behavior),
		Overall:       trend.Score(vitals, behavior),
	}

	risks, improvements := trend.Extract(trends)

	conditions := normalize.Conditions(profile)
	medications := normalize.MedicationNames(in.Medications, profile)

	bundle := e.recommender.Recommend(ctx, trends, recommend.Context{
		Profile:         profile,
		Vitals:          vitals,
		Behavior:        behavior,
		Medications:     in.Medications,
		Conditions:      conditions,
		MedicationNames: medications,
	})

	return domain.AnalysisResult{
		Trends:          trends,
		Recommendations: bundle,
		RiskFactors:     risks,
		Improvements:    improvements,
		Context: domain.AnalysisContext{
			TimeRange:     timeRange,
			VitalsCount:   len(vitals),
			BehaviorCount: len(behavior),
			HasProfile:    profile != nil,
			Conditions:    conditions,
			Medications:   medications,
			AnalyzedAt:    e.now(),
		},
	}
}
