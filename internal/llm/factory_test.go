package llm

import (
	"errors"
	"testing"
)

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantModel string
		wantErr   error
	}{
		{"auto-detect claude", Config{AnthropicAPIKey: "k"}, claudeDefaultModel, nil},
		{"auto-detect openai", Config{OpenAIAPIKey: "k"}, openAIDefaultModel, nil},
		{"model override", Config{Provider: "OpenAI", OpenAIAPIKey: "k", Model: "gpt-4o-mini"}, "gpt-4o-mini", nil},
		{"provider model", Config{AnthropicAPIKey: "k", ClaudeModel: "claude-3-5-haiku-latest", OpenAIModel: "gpt-4o-mini"}, "claude-3-5-haiku-latest", nil},
		{"bridge", Config{BridgeURL: "http://advisor:8000/"}, "bridge:http://advisor:8000", nil},
		{"no credentials", Config{}, "", ErrMissingAPIKey},
		{"explicit provider without key", Config{Provider: "openai", AnthropicAPIKey: "k"}, "", ErrMissingAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewFromConfig(tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client.Model() != tt.wantModel {
				t.Fatalf("expected model %s, got %s", tt.wantModel, client.Model())
			}
		})
	}
}

func TestNewFromConfigUnsupportedProvider(t *testing.T) {
	_, err := NewFromConfig(Config{Provider: "gemini", AnthropicAPIKey: "k"})
	if err == nil {
		t.Fatal("expected error for unsupported provider")
	}
	if errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("unsupported provider should not report a missing key: %v", err)
	}
}
