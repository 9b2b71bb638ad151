package metrics

import "testing"

func TestReasonLabel(t *testing.T) {
	tests := map[string]string{
		"":                        "",
		"missing_api_key":         "missing_api_key",
		"invalid_response_format": "invalid_response_format",
		"timeout":                 "timeout",
		"offline":                 "offline",
		"API error: 500 - boom":   "error",
	}
	for in, want := range tests {
		if got := reasonLabel(in); got != want {
			t.Errorf("reasonLabel(%q): expected %q, got %q", in, want, got)
		}
	}
}
