// Package flow implements the control-flow subgraphs layered over the
// execution engine: the cyclic dev-fix retry loop, multi-reviewer
// consensus, and the human interrupt/resume path.
package flow

import (
	"math"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Boomerang-Apps/wave/pkg/config"
)

// Route names the next node after a QA evaluation.
type Route string

const (
	RouteCTOApproval Route = "cto_approval"
	RouteDevFix      Route = "dev_fix"
	RouteEscalate    Route = "escalate_human"
)

// RetryState is the router's input after a QA run.
type RetryState struct {
	QAPassed    bool    `json:"qa_passed"`
	SafetyScore float64 `json:"safety_score"`
	RetryCount  int     `json:"retry_count"`
}

// RetryRouter decides where a story goes after QA.
type RetryRouter struct {
	maxRetries int
	base       time.Duration
	multiplier float64
	maxBackoff time.Duration
	jitter     bool
}

// NewRetryRouter builds a router from retry config.
func NewRetryRouter(cfg config.RetryConfig) *RetryRouter {
	return &RetryRouter{
		maxRetries: cfg.MaxRetries,
		base:       cfg.Base,
		multiplier: cfg.Multiplier,
		maxBackoff: cfg.MaxBackoff,
		jitter:     cfg.Jitter,
	}
}

// Route applies the decision order: QA pass goes to CTO approval, unsafe
// work or exhausted retries escalate to a human, everything else loops
// through dev_fix.
func (r *RetryRouter) Route(state RetryState) Route {
	switch {
	case state.QAPassed:
		return RouteCTOApproval
	case state.SafetyScore < 0.3:
		return RouteEscalate
	case state.RetryCount >= r.maxRetries:
		return RouteEscalate
	default:
		return RouteDevFix
	}
}

// Backoff returns the delay before retry attempt n:
// min(base * multiplier^n, cap), optionally jittered.
func (r *RetryRouter) Backoff(retryCount int) time.Duration {
	d := time.Duration(float64(r.base) * math.Pow(r.multiplier, float64(retryCount)))
	if d > r.maxBackoff || d <= 0 {
		d = r.maxBackoff
	}
	if r.jitter {
		d = time.Duration(float64(d) * (0.5 + rand.Float64()/2))
	}
	return d
}

// NewBackoff builds the equivalent backoff.BackOff for callers that drive
// retries through backoff.Retry.
func (r *RetryRouter) NewBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.base
	b.Multiplier = r.multiplier
	b.MaxInterval = r.maxBackoff
	if !r.jitter {
		b.RandomizationFactor = 0
	}
	// Reset recomputes the current interval; without it the constructor's
	// default base leaks into the first NextBackOff.
	b.Reset()
	return backoff.WithMaxRetries(b, uint64(r.maxRetries))
}
