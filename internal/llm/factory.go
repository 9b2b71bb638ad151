package llm

import (
	"fmt"
	"strings"
)

// Provider represents the LLM provider type
type Provider string

const (
	ProviderClaude Provider = "claude"
	ProviderOpenAI Provider = "openai"
	ProviderBridge Provider = "bridge"
)

// Config selects and configures a provider. An empty Provider auto-detects
// from whichever credentials are present. Model overrides the
// provider-specific model names.
type Config struct {
	Provider        string
	Model           string
	ClaudeModel     string
	OpenAIModel     string
	AnthropicAPIKey string
	OpenAIAPIKey    string
	BridgeURL       string
}

// NewFromConfig creates the LLM client for the configured provider. It
// returns ErrMissingAPIKey when the provider has no credentials, so callers
// can run without an advisor.
func NewFromConfig(cfg Config) (LLM, error) {
	provider := Provider(strings.ToLower(strings.TrimSpace(cfg.Provider)))
	if provider == "" {
		provider = detectProvider(cfg)
	}

	switch provider {
	case ProviderClaude:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("claude: %w", ErrMissingAPIKey)
		}
		if model := firstNonEmpty(cfg.Model, cfg.ClaudeModel); model != "" {
			return NewClaudeWithModel(cfg.AnthropicAPIKey, model), nil
		}
		return NewClaude(cfg.AnthropicAPIKey), nil

	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai: %w", ErrMissingAPIKey)
		}
		if model := firstNonEmpty(cfg.Model, cfg.OpenAIModel); model != "" {
			return NewOpenAIWithModel(cfg.OpenAIAPIKey, model), nil
		}
		return NewOpenAI(cfg.OpenAIAPIKey), nil

	case ProviderBridge:
		if cfg.BridgeURL == "" {
			return nil, fmt.Errorf("bridge: advisor url is required")
		}
		return NewBridge(strings.TrimRight(cfg.BridgeURL, "/")), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: claude, openai, bridge)", provider)
	}
}

// detectProvider prefers Claude for backward compatibility, then OpenAI,
// then a configured bridge.
func detectProvider(cfg Config) Provider {
	switch {
	case cfg.AnthropicAPIKey != "":
		return ProviderClaude
	case cfg.OpenAIAPIKey != "":
		return ProviderOpenAI
	case cfg.BridgeURL != "":
		return ProviderBridge
	default:
		return ProviderClaude
	}
}

// AvailableProviders returns a list of available LLM providers
func AvailableProviders() []Provider {
	return []Provider{ProviderClaude, ProviderOpenAI, ProviderBridge}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
