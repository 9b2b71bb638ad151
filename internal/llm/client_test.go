package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClaudeChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "secret" {
			t.Errorf("missing api key header")
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body["model"] != "claude-test" {
			t.Errorf("unexpected model %v", body["model"])
		}
		w.Write([]byte(`{"content":[{"text":"hello"}]}`))
	}))
	defer server.Close()

	c := NewClaudeWithModel("secret", "claude-test")
	c.endpoint = server.URL

	got, err := c.Chat(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Fatalf("expected hello, got %q", got)
	}
}

func TestClaudeChatStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	c := NewClaude("secret")
	c.endpoint = server.URL

	_, err := c.Chat(context.Background(), "hi")
	if err == nil || !strings.Contains(err.Error(), "status 429") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestOpenAIChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("missing bearer token")
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"ok\":true}"}}]}`))
	}))
	defer server.Close()

	o := NewOpenAI("secret")
	o.endpoint = server.URL

	got, err := o.Chat(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"ok":true}` {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestOpenAIChatEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	o := NewOpenAI("secret")
	o.endpoint = server.URL

	if _, err := o.Chat(context.Background(), "hi"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestBridge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.WriteHeader(http.StatusOK)
		case "/advise":
			var req bridgeRequest
			json.NewDecoder(r.Body).Decode(&req)
			json.NewEncoder(w).Encode(bridgeResponse{Text: "echo: " + req.Prompt})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	b := NewBridge(server.URL)
	if err := b.Health(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
	got, err := b.Chat(context.Background(), "ping")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got != "echo: ping" {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestBridgeAdvisorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(bridgeResponse{Error: "model offline"})
	}))
	defer server.Close()

	_, err := NewBridge(server.URL).Chat(context.Background(), "ping")
	if err == nil || !strings.Contains(err.Error(), "model offline") {
		t.Fatalf("expected advisor error, got %v", err)
	}
}
