package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("deterministic echo response", func(t *testing.T) {
		p := NewSimulatedProvider()
		req := &MessageRequest{
			System:   "You are a backend agent.",
			Messages: []Message{{Role: "user", Content: "Implement AUTH-001"}},
		}

		first, err := p.CreateMessage(ctx, req)
		require.NoError(t, err)
		second, err := p.CreateMessage(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, first.Content, second.Content)
		assert.Contains(t, first.Content, "Implement AUTH-001")
		assert.Equal(t, "simulated", first.Model)
		assert.Equal(t, "end_turn", first.StopReason)
	})

	t.Run("custom responder", func(t *testing.T) {
		p := NewSimulatedProvider()
		p.Responder = func(req *MessageRequest) string { return "GATE PASSED" }

		resp, err := p.CreateMessage(ctx, &MessageRequest{})
		require.NoError(t, err)
		assert.Equal(t, "GATE PASSED", resp.Content)
	})

	t.Run("usage accumulates and resets", func(t *testing.T) {
		p := NewSimulatedProvider()
		_, err := p.CreateMessage(ctx, &MessageRequest{
			Messages: []Message{{Role: "user", Content: "a long enough prompt to count"}},
		})
		require.NoError(t, err)
		_, err = p.CreateMessage(ctx, &MessageRequest{
			Messages: []Message{{Role: "user", Content: "another prompt"}},
		})
		require.NoError(t, err)

		usage := p.GetUsage()
		assert.Equal(t, int64(2), usage.TotalRequests)
		assert.Positive(t, usage.InputTokens)
		assert.Positive(t, usage.OutputTokens)
		assert.False(t, usage.LastUsed.IsZero())

		p.ResetUsage()
		assert.Equal(t, TokenUsage{}, p.GetUsage())
	})

	t.Run("always available", func(t *testing.T) {
		p := NewSimulatedProvider()
		assert.True(t, p.Available())
		assert.Equal(t, "simulated", p.Name())
	})
}

type failingProvider struct {
	BaseProvider
	calls int
	err   error
}

func (f *failingProvider) Name() string    { return "failing" }
func (f *failingProvider) Available() bool { return true }

func (f *failingProvider) CreateMessage(_ context.Context, _ *MessageRequest) (*MessageResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &MessageResponse{Content: "ok"}, nil
}

func TestBreakerProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("passes through successes", func(t *testing.T) {
		inner := &failingProvider{}
		p := NewBreakerProvider(inner)

		resp, err := p.CreateMessage(ctx, &MessageRequest{})
		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Content)
		assert.Equal(t, "failing", p.Name())
	})

	t.Run("opens after five consecutive failures", func(t *testing.T) {
		inner := &failingProvider{err: errors.New("upstream down")}
		p := NewBreakerProvider(inner)

		for i := 0; i < 5; i++ {
			_, err := p.CreateMessage(ctx, &MessageRequest{})
			assert.EqualError(t, err, "upstream down")
		}

		// Breaker is now open: the inner provider is no longer called.
		_, err := p.CreateMessage(ctx, &MessageRequest{})
		require.Error(t, err)
		assert.NotEqual(t, "upstream down", err.Error())
		assert.Equal(t, 5, inner.calls)
	})
}

func TestErrProviderNotAvailable(t *testing.T) {
	err := ErrProviderNotAvailable("anthropic")
	assert.Contains(t, err.Error(), "anthropic")
	assert.Contains(t, err.Error(), "API key not configured")
}
