package domain

import "time"

// AnalysisContext summarizes the inputs an analysis was computed from.
type AnalysisContext struct {
	TimeRange     string    `json:"timeRange,omitempty"`
	VitalsCount   int       `json:"vitalsCount"`
	BehaviorCount int       `json:"behaviorCount"`
	HasProfile    bool      `json:"hasProfile"`
	Conditions    []string  `json:"conditions"`
	Medications   []string  `json:"medications"`
	AnalyzedAt    time.Time `json:"analyzedAt"`
}

// AnalysisResult is the engine's single output. Its shape does not depend on
// which recommendation path produced it.
type AnalysisResult struct {
	Trends          Trends               `json:"trends"`
	Recommendations RecommendationBundle `json:"recommendations"`
	RiskFactors     []RiskFactor         `json:"riskFactors"`
	Improvements    []Improvement        `json:"improvements"`
	Context         AnalysisContext      `json:"context"`
}

// AnalysisResponse wraps an analysis for callers.
type AnalysisResponse struct {
	Success bool            `json:"success"`
	Data    *AnalysisResult `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}
