// Package recommend turns classifier output into a recommendation bundle,
// through the advisor when it answers and through fixed rules otherwise.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/healthtrend/backend/internal/advisor"
	"github.com/healthtrend/backend/internal/domain"
	"github.com/healthtrend/backend/internal/metrics"
)

// DefaultTimeout bounds a single advisor call.
const DefaultTimeout = 30 * time.Second

// Fallback reasons for failures the advisor itself cannot report.
const (
	ReasonTimeout = "timeout"
	ReasonPanic   = "panic"
	ReasonOffline = "offline"
)

// Context is the per-user information that personalizes recommendations.
type Context struct {
	Profile         *domain.UserProfile
	Vitals          []domain.VitalsRecord
	Behavior        []domain.BehaviorRecord
	Medications     []domain.MedicationEntry
	Conditions      []string
	MedicationNames []string
}

// Orchestrator picks between the advisor and the fallback rules.
type Orchestrator struct {
	advisor  advisor.Advisor
	timeout  time.Duration
	now      func() time.Time
	noAdvice string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTimeout overrides DefaultTimeout. Zero or negative disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) { o.timeout = d }
}

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// WithOffline marks a nil advisor as deliberately disabled, so fallback
// bundles carry ReasonOffline instead of the missing key reason.
func WithOffline() Option {
	return func(o *Orchestrator) { o.noAdvice = ReasonOffline }
}

// NewOrchestrator creates an orchestrator. A nil advisor sends every
// request down the fallback path.
func NewOrchestrator(adv advisor.Advisor, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		advisor:  adv,
		timeout:  DefaultTimeout,
		now:      time.Now,
		noAdvice: domain.ReasonMissingAPIKey,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Recommend always returns a complete bundle; advisor failures are
// downgraded to the fallback rules with meta.reason set.
func (o *Orchestrator) Recommend(ctx context.Context, trends domain.Trends, rc Context) domain.RecommendationBundle {
	if o.advisor == nil {
		return o.fallback(ctx, trends, rc, o.noAdvice)
	}

	result := o.call(ctx, advisor.Payload{
		Trends:          trends,
		Profile:         rc.Profile,
		Vitals:          rc.Vitals,
		Behavior:        rc.Behavior,
		Medications:     rc.Medications,
		Conditions:      rc.Conditions,
		MedicationNames: rc.MedicationNames,
	})
	if !result.OK {
		reason := result.Reason
		if reason == "" {
			reason = "advisor returned no result"
		}
		return o.fallback(ctx, trends, rc, reason)
	}

	bundle, ok := FromAI(result.Data, o.now())
	if !ok {
		return o.fallback(ctx, trends, rc, domain.ReasonInvalidResponseFormat)
	}
	return bundle
}

func (o *Orchestrator) call(ctx context.Context, payload advisor.Payload) (result advisor.Result) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		metrics.AdvisorDuration.Observe(time.Since(start).Seconds())
		if r := recover(); r != nil {
			log.Ctx(ctx).Error().Interface("panic", r).Msg("advisor panicked")
			result = advisor.Failure(ReasonPanic, "")
			return
		}
		if !result.OK && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			result = advisor.Failure(ReasonTimeout, result.RawText)
		}
	}()

	return o.advisor.Advise(ctx, payload)
}

func (o *Orchestrator) fallback(ctx context.Context, trends domain.Trends, rc Context, reason string) domain.RecommendationBundle {
	log.Ctx(ctx).Warn().Str("reason", reason).Msg("using fallback recommendations")
	bundle := Fallback(trends, rc, o.now())
	bundle.Meta.Reason = reason
	return bundle
}

// String describes the orchestrator's advisor for startup logs.
func (o *Orchestrator) String() string {
	if o.advisor == nil {
		return "fallback only"
	}
	return fmt.Sprintf("advisor %T, timeout %s", o.advisor, o.timeout)
}
