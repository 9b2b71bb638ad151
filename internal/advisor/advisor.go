// Package advisor asks a language model for personalized health
// recommendations and reports the outcome as an explicit result value.
package advisor

import (
	"context"
	"errors"

	"github.com/healthtrend/backend/internal/domain"
	"github.com/healthtrend/backend/internal/llm"
)

// Payload is everything the advisor may use to personalize advice.
type Payload struct {
	Trends          domain.Trends            `json:"trends"`
	Profile         *domain.UserProfile      `json:"profile,omitempty"`
	Vitals          []domain.VitalsRecord    `json:"vitals"`
	Behavior        []domain.BehaviorRecord  `json:"behavior"`
	Medications     []domain.MedicationEntry `json:"medications"`
	Conditions      []string                 `json:"conditions"`
	MedicationNames []string                 `json:"medicationNames"`
}

// Result is the outcome of one advisor call. Data is set only when OK is
// true; Reason explains a failure; RawText keeps the model's reply when
// there was one.
type Result struct {
	OK      bool
	Data    map[string]any
	Reason  string
	RawText string
}

// Failure builds a failed Result.
func Failure(reason, rawText string) Result {
	return Result{Reason: reason, RawText: rawText}
}

// Advisor produces raw recommendation data for a payload. Expected failures
// are reported through Result, not by panicking.
type Advisor interface {
	Advise(ctx context.Context, payload Payload) Result
}

// LLMAdvisor implements Advisor on top of a chat completion client.
type LLMAdvisor struct {
	llm llm.LLM
}

// NewLLMAdvisor wraps a client. A nil client yields an advisor that always
// reports missing credentials.
func NewLLMAdvisor(client llm.LLM) *LLMAdvisor {
	return &LLMAdvisor{llm: client}
}

// Advise builds the prompt, calls the model once and parses its reply.
func (a *LLMAdvisor) Advise(ctx context.Context, payload Payload) Result {
	if a == nil || a.llm == nil {
		return Failure(domain.ReasonMissingAPIKey, "")
	}

	prompt, err := BuildPrompt(payload)
	if err != nil {
		return Failure(err.Error(), "")
	}

	raw, err := a.llm.Chat(ctx, prompt)
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			return Failure(domain.ReasonMissingAPIKey, "")
		}
		return Failure(err.Error(), "")
	}

	data, err := ExtractJSON(raw)
	if err != nil {
		return Failure(domain.ReasonInvalidResponseFormat, raw)
	}
	return Result{OK: true, Data: data, RawText: raw}
}
