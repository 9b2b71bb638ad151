package advisor

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantKey string
		wantErr bool
	}{
		{name: "plain object", text: `{"overall_assessment": "fine"}`, wantKey: "overall_assessment"},
		{name: "fenced json", text: "Here you go:\n```json\n{\"followUp\": \"1 month\"}\n```\nThanks", wantKey: "followUp"},
		{name: "fenced without language", text: "```\n{\"improvements\": []}\n```", wantKey: "improvements"},
		{name: "prose around braces", text: `Sure! {"riskFactors": []} Let me know.`, wantKey: "riskFactors"},
		{name: "broken fence falls back to braces", text: "```json\nnot json\n``` then {\"monitoringPlan\": []}", wantKey: "monitoringPlan"},
		{name: "no json", text: "I cannot help with that.", wantErr: true},
		{name: "unbalanced", text: `{"a": 1`, wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := ExtractJSON(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidResponse) {
					t.Errorf("Expected ErrInvalidResponse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if _, ok := obj[tt.wantKey]; !ok {
				t.Errorf("Expected key %q in %v", tt.wantKey, obj)
			}
		})
	}
}
