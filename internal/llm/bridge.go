package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Bridge talks to a self-hosted advisor service that wraps a model behind a
// plain HTTP endpoint.
type Bridge struct {
	serviceURL string
	httpClient *http.Client
}

// NewBridge creates a new advisor bridge
func NewBridge(serviceURL string) *Bridge {
	return &Bridge{
		serviceURL: serviceURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type bridgeRequest struct {
	Prompt string `json:"prompt"`
}

type bridgeResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// Chat posts the prompt to the advisor service
func (b *Bridge) Chat(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(bridgeRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("bridge: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/advise", b.serviceURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("bridge: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("bridge: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bridge: advisor returned status %d", resp.StatusCode)
	}

	var out bridgeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("bridge: failed to decode response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("bridge: advisor error: %s", out.Error)
	}
	return out.Text, nil
}

// Health checks advisor service connectivity
func (b *Bridge) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/health", b.serviceURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("bridge: failed to create health request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("bridge: health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bridge: health check returned status %d", resp.StatusCode)
	}

	return nil
}

// Model names the remote service
func (b *Bridge) Model() string {
	return "bridge:" + b.serviceURL
}
