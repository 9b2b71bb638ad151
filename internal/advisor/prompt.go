package advisor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// maxHistory caps how many of the most recent records go into the prompt.
const maxHistory = 30

// BuildPrompt renders the advisor prompt for a payload.
func BuildPrompt(p Payload) (string, error) {
	trimmed := p
	if len(trimmed.Vitals) > maxHistory {
		trimmed.Vitals = trimmed.Vitals[len(trimmed.Vitals)-maxHistory:]
	}
	if len(trimmed.Behavior) > maxHistory {
		trimmed.Behavior = trimmed.Behavior[len(trimmed.Behavior)-maxHistory:]
	}

	trendsJSON, err := json.MarshalIndent(trimmed.Trends, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal trends: %w", err)
	}
	historyJSON, err := json.MarshalIndent(map[string]any{
		"vitals":   trimmed.Vitals,
		"behavior": trimmed.Behavior,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal history: %w", err)
	}
	profileJSON, err := json.MarshalIndent(trimmed.Profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}
	medsJSON, err := json.MarshalIndent(trimmed.Medications, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal medications: %w", err)
	}

	return fmt.Sprintf(`You are a careful health coach reviewing a user's personal health records.
Your advice is general guidance, not a diagnosis.

Known medical conditions: %s
Current medications: %s

Computed trends:
%s

Profile:
%s

Medication schedule:
%s

Recent history:
%s

Respond in JSON format with this structure:
{
  "overall_assessment": "2-3 sentence summary of the user's health trends",
  "recommendations": {
    "diet": ["specific dietary advice"],
    "exercise": ["specific exercise advice"],
    "lifestyle": ["sleep, stress and habit advice"],
    "medication": ["medication adherence or review advice"],
    "monitoring": ["what to measure and how often"],
    "warning": ["anything that needs prompt medical attention"]
  },
  "riskFactors": [{"title": "short name", "description": "why it matters"}],
  "improvements": ["positive changes worth acknowledging"],
  "monitoringPlan": ["measurement: frequency"],
  "medicationNotes": ["notes about the listed medications"],
  "followUp": "when to check in with a doctor"
}

Leave a list empty when nothing applies. Do not invent measurements.`,
		listOrNone(trimmed.Conditions),
		listOrNone(trimmed.MedicationNames),
		string(trendsJSON),
		string(profileJSON),
		string(medsJSON),
		string(historyJSON),
	), nil
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none reported"
	}
	return strings.Join(items, ", ")
}
