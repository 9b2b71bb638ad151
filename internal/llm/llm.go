// Package llm provides chat-completion clients used by the health advisor.
package llm

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// ErrMissingAPIKey is returned when the selected provider has no credentials.
var ErrMissingAPIKey = errors.New("llm: missing api key")

// defaultTimeout bounds a single completion request.
const defaultTimeout = 60 * time.Second

// LLM is a single-turn chat completion client.
type LLM interface {
	Chat(ctx context.Context, prompt string) (string, error)
	Model() string
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}
