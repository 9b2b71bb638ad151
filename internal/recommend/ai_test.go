package recommend

import (
	"testing"

	"github.com/healthtrend/backend/internal/domain"
)

func TestFromAI(t *testing.T) {
	data := map[string]any{
		"overallAssessment": "Mostly stable.",
		"recommendations": map[string]any{
			"exercise": "Walk daily",
			"warnings": []any{map[string]any{"title": "BP", "description": "Check with a doctor"}},
		},
		"risk_factors": []any{
			map[string]any{"title": "Hypertension", "description": "Average above 140/90"},
			"Low activity",
			map[string]any{},
		},
		"improvements":   []any{"Better sleep", 42.0},
		"monitoringPlan": nil,
		"followUp":       []any{"In two weeks.", "Sooner if symptoms worsen."},
	}

	bundle, ok := FromAI(data, fixedNow)
	if !ok {
		t.Fatal("Expected well-formed response")
	}

	if bundle.OverallAssessment != "Mostly stable." {
		t.Errorf("Expected assessment, got %q", bundle.OverallAssessment)
	}
	if len(bundle.Recommendations.Exercise) != 1 || bundle.Recommendations.Exercise[0] != "Walk daily" {
		t.Errorf("Expected single-string bucket to become a list, got %v", bundle.Recommendations.Exercise)
	}
	if len(bundle.Recommendations.Warning) != 1 || bundle.Recommendations.Warning[0] != "BP: Check with a doctor" {
		t.Errorf("Expected object warning flattened, got %v", bundle.Recommendations.Warning)
	}
	if len(bundle.RiskFactors) != 2 {
		t.Fatalf("Expected 2 risk factors, got %v", bundle.RiskFactors)
	}
	if bundle.RiskFactors[1] != (domain.RiskNote{Title: "Low activity"}) {
		t.Errorf("Expected string risk factor as title, got %+v", bundle.RiskFactors[1])
	}
	if len(bundle.Improvements) != 2 || bundle.Improvements[1] != "42" {
		t.Errorf("Expected improvements coerced to strings, got %v", bundle.Improvements)
	}
	if bundle.MonitoringPlan == nil || len(bundle.MonitoringPlan) != 0 {
		t.Errorf("Expected empty monitoring plan, got %v", bundle.MonitoringPlan)
	}
	if bundle.MedicationNotes == nil {
		t.Error("Expected non-nil medication notes")
	}
	if bundle.FollowUp != "In two weeks. Sooner if symptoms worsen." {
		t.Errorf("Expected joined follow-up, got %q", bundle.FollowUp)
	}
	if bundle.Meta.Source != domain.SourceAI {
		t.Errorf("Expected source ai, got %q", bundle.Meta.Source)
	}
}

func TestFromAIRejectsUnrelatedObject(t *testing.T) {
	if _, ok := FromAI(map[string]any{"answer": "hello"}, fixedNow); ok {
		t.Error("Expected object without assessment or recommendations to be rejected")
	}
	if _, ok := FromAI(nil, fixedNow); ok {
		t.Error("Expected nil object to be rejected")
	}
}
