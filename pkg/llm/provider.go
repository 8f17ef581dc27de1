// Package llm provides a unified client interface over the model providers
// the domain agents run on, with circuit breaking and a deterministic
// simulation mode for tests and dry runs.
package llm

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ErrProviderNotAvailable is returned when a provider's API key is not
// configured.
type ErrProviderNotAvailable string

func (e ErrProviderNotAvailable) Error() string {
	return fmt.Sprintf("provider %s not available: API key not configured", string(e))
}

// Provider is the interface every model backend implements.
type Provider interface {
	// CreateMessage sends a conversation and returns the model's reply.
	CreateMessage(ctx context.Context, req *MessageRequest) (*MessageResponse, error)

	// Name returns the provider name (anthropic, openai, xai, simulated).
	Name() string

	// Available reports whether the provider is configured.
	Available() bool

	// GetUsage returns cumulative token usage.
	GetUsage() TokenUsage

	// ResetUsage clears usage statistics.
	ResetUsage()
}

// MessageRequest is a provider-agnostic message request.
type MessageRequest struct {
	Model         string
	MaxTokens     int
	System        string
	Messages      []Message
	Temperature   *float64
	StopSequences []string
}

// Message is one conversation turn.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// MessageResponse is a provider-agnostic response.
type MessageResponse struct {
	ID         string
	Content    string
	Model      string
	StopReason string
	Usage      ResponseUsage
}

// ResponseUsage holds one response's token counts.
type ResponseUsage struct {
	InputTokens  int
	OutputTokens int
}

// TokenUsage tracks cumulative usage across requests.
type TokenUsage struct {
	InputTokens   int64     `json:"input_tokens"`
	OutputTokens  int64     `json:"output_tokens"`
	TotalRequests int64     `json:"total_requests"`
	LastUsed      time.Time `json:"last_used"`
}

// BaseProvider carries the usage accounting shared by all providers.
type BaseProvider struct {
	mu    sync.Mutex
	usage TokenUsage
}

// TrackUsage records one response's token counts.
func (b *BaseProvider) TrackUsage(input, output int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.usage.InputTokens += int64(input)
	b.usage.OutputTokens += int64(output)
	b.usage.TotalRequests++
	b.usage.LastUsed = time.Now()
}

// GetUsage returns current cumulative usage.
func (b *BaseProvider) GetUsage() TokenUsage {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.usage
}

// ResetUsage clears usage statistics.
func (b *BaseProvider) ResetUsage() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.usage = TokenUsage{}
}

// Default models per provider.
const (
	ModelClaudeSonnet = "claude-sonnet-4-20250514"
	ModelClaudeHaiku  = "claude-3-5-haiku-20241022"
	ModelClaudeOpus   = "claude-opus-4-5-20251101"
	ModelGPT4o        = "gpt-4o"
	ModelGrok         = "grok-3"
)
