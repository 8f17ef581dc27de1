package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerProvider wraps a provider with a circuit breaker so a failing
// model API trips open instead of stalling every agent.
type BreakerProvider struct {
	inner   Provider
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps inner with a breaker that opens after five
// consecutive failures and probes again after 30 seconds.
func NewBreakerProvider(inner Provider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:    inner.Name(),
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("LLM circuit state changed", "provider", name, "from", from.String(), "to", to.String())
		},
	}
	return &BreakerProvider{inner: inner, breaker: gobreaker.NewCircuitBreaker(settings)}
}

// Name implements Provider.
func (p *BreakerProvider) Name() string { return p.inner.Name() }

// Available implements Provider.
func (p *BreakerProvider) Available() bool { return p.inner.Available() }

// GetUsage implements Provider.
func (p *BreakerProvider) GetUsage() TokenUsage { return p.inner.GetUsage() }

// ResetUsage implements Provider.
func (p *BreakerProvider) ResetUsage() { p.inner.ResetUsage() }

// CreateMessage implements Provider through the breaker.
func (p *BreakerProvider) CreateMessage(ctx context.Context, req *MessageRequest) (*MessageResponse, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.inner.CreateMessage(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*MessageResponse), nil
}
