package recommend

import (
	"strings"
	"time"

	"github.com/healthtrend/backend/internal/domain"
	"github.com/healthtrend/backend/internal/normalize"
)

// FromAI maps a free-form advisor object onto the fixed bundle shape.
// Missing or oddly typed fields become empty values. It reports false when
// the object carries neither an assessment nor a recommendations map.
func FromAI(data map[string]any, now time.Time) (domain.RecommendationBundle, bool) {
	bundle := domain.NewRecommendationBundle()

	assessment := text(pick(data, "overall_assessment", "overallAssessment", "assessment"))
	recs, hasRecs := pick(data, "recommendations").(map[string]any)
	if assessment == "" && !hasRecs {
		return bundle, false
	}

	bundle.OverallAssessment = assessment
	if hasRecs {
		r := &bundle.Recommendations
		r.Diet = texts(pick(recs, "diet", "nutrition"))
		r.Exercise = texts(pick(recs, "exercise", "activity"))
		r.Lifestyle = texts(pick(recs, "lifestyle"))
		r.Medication = texts(pick(recs, "medication", "medications"))
		r.Monitoring = texts(pick(recs, "monitoring"))
		r.Warning = texts(pick(recs, "warning", "warnings"))
	}

	bundle.RiskFactors = riskNotes(pick(data, "riskFactors", "risk_factors", "risks"))
	bundle.Improvements = texts(pick(data, "improvements"))
	bundle.MonitoringPlan = texts(pick(data, "monitoringPlan", "monitoring_plan"))
	bundle.MedicationNotes = texts(pick(data, "medicationNotes", "medication_notes"))
	bundle.FollowUp = strings.Join(texts(pick(data, "followUp", "follow_up")), " ")

	bundle.Meta = domain.RecommendationMeta{
		Source:      domain.SourceAI,
		GeneratedAt: now,
	}
	return bundle, true
}

func pick(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// text reduces a scalar or a small object to a display string.
func text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case map[string]any:
		title := text(pick(val, "title", "name", "type"))
		desc := text(pick(val, "description", "text", "advice", "detail"))
		switch {
		case title != "" && desc != "":
			return title + ": " + desc
		case desc != "":
			return desc
		default:
			return title
		}
	default:
		return normalize.String(val)
	}
}

// texts always returns a non-nil slice without blanks or duplicates.
func texts(v any) []string {
	out := []string{}
	switch val := v.(type) {
	case nil:
	case []any:
		for _, item := range val {
			if s := text(item); s != "" {
				add(&out, s)
			}
		}
	default:
		if s := text(val); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func riskNotes(v any) []domain.RiskNote {
	out := []domain.RiskNote{}
	items, ok := v.([]any)
	if !ok {
		if v == nil {
			return out
		}
		items = []any{v}
	}
	for _, item := range items {
		switch val := item.(type) {
		case map[string]any:
			note := domain.RiskNote{
				Title:       text(pick(val, "title", "name", "type")),
				Description: text(pick(val, "description", "text", "detail")),
			}
			if note.Title != "" || note.Description != "" {
				out = append(out, note)
			}
		default:
			if s := text(val); s != "" {
				out = append(out, domain.RiskNote{Title: s})
			}
		}
	}
	return out
}
