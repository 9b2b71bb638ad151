// Package metrics exports the engine's Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by route, method and status
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthtrend_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"endpoint", "method", "status"},
	)

	// AnalysesTotal counts analysis runs by outcome
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthtrend_analyses_total",
			Help: "Total number of health analyses by outcome",
		},
		[]string{"status"},
	)

	// RecommendationsTotal counts recommendation bundles by source and
	// fallback reason
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthtrend_recommendations_total",
			Help: "Total number of recommendation bundles produced",
		},
		[]string{"source", "reason"},
	)

	// AnalysisDuration is the end-to-end analysis latency
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "healthtrend_analysis_duration_seconds",
			Help:    "Analysis latency in seconds, including record fetch",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	// AdvisorDuration is the latency of a single advisor call
	AdvisorDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "healthtrend_advisor_duration_seconds",
			Help:    "Advisor call latency in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60},
		},
	)
)

// ObserveRecommendation records where a bundle came from.
func ObserveRecommendation(source, reason string) {
	RecommendationsTotal.WithLabelValues(source, reasonLabel(reason)).Inc()
}

// reasonLabel keeps label cardinality bounded; free-form error texts
// collapse into one value.
func reasonLabel(reason string) string {
	switch reason {
	case "", "missing_api_key", "invalid_response_format", "timeout", "panic", "offline":
		return reason
	default:
		return "error"
	}
}
