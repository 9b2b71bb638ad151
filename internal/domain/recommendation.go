package domain

import "time"

// Recommendation sources.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Reasons recorded when the fallback path is taken.
const (
	ReasonMissingAPIKey         = "missing_api_key"
	ReasonInvalidResponseFormat = "invalid_response_format"
)

// Buckets holds categorized advice strings.
type Buckets struct {
	Diet       []string `json:"diet"`
	Exercise   []string `json:"exercise"`
	Lifestyle  []string `json:"lifestyle"`
	Medication []string `json:"medication"`
	Monitoring []string `json:"monitoring"`
	Warning    []string `json:"warning"`
}

// NewBuckets returns Buckets with every list allocated.
func NewBuckets() Buckets {
	return Buckets{
		Diet:       []string{},
		Exercise:   []string{},
		Lifestyle:  []string{},
		Medication: []string{},
		Monitoring: []string{},
		Warning:    []string{},
	}
}

// RiskNote is a titled risk description shown to the user.
type RiskNote struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RecommendationMeta records which path produced a bundle.
type RecommendationMeta struct {
	Source      string    `json:"source"`
	Reason      string    `json:"reason,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// RecommendationBundle is the fixed output shape of both recommendation
// paths.
type RecommendationBundle struct {
	OverallAssessment string             `json:"overall_assessment"`
	Recommendations   Buckets            `json:"recommendations"`
	RiskFactors       []RiskNote         `json:"riskFactors"`
	Improvements      []string           `json:"improvements"`
	MonitoringPlan    []string           `json:"monitoringPlan"`
	MedicationNotes   []string           `json:"medicationNotes"`
	FollowUp          string             `json:"followUp"`
	Meta              RecommendationMeta `json:"meta"`
}

// NewRecommendationBundle returns an empty bundle with every collection
// allocated.
func NewRecommendationBundle() RecommendationBundle {
	return RecommendationBundle{
		Recommendations: NewBuckets(),
		RiskFactors:     []RiskNote{},
		Improvements:    []string{},
		MonitoringPlan:  []string{},
		MedicationNotes: []string{},
	}
}
