package llm

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Boomerang-Apps/wave/pkg/safety"
)

// SimulatedProvider returns deterministic canned responses without any
// network call. Used for tests and dry runs.
type SimulatedProvider struct {
	BaseProvider

	// Responder overrides the default echo behavior when set.
	Responder func(req *MessageRequest) string
}

// NewSimulatedProvider creates a simulation provider.
func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{}
}

// Name implements Provider.
func (p *SimulatedProvider) Name() string { return "simulated" }

// Available implements Provider.
func (p *SimulatedProvider) Available() bool { return true }

// CreateMessage implements Provider.
func (p *SimulatedProvider) CreateMessage(_ context.Context, req *MessageRequest) (*MessageResponse, error) {
	content := p.respond(req)

	input := safety.EstimateTokens(req.System)
	for _, m := range req.Messages {
		input += safety.EstimateTokens(m.Content)
	}
	output := safety.EstimateTokens(content)

	p.TrackUsage(int(input), int(output))
	return &MessageResponse{
		ID:         "sim_" + uuid.NewString(),
		Content:    content,
		Model:      "simulated",
		StopReason: "end_turn",
		Usage: ResponseUsage{
			InputTokens:  int(input),
			OutputTokens: int(output),
		},
	}, nil
}

func (p *SimulatedProvider) respond(req *MessageRequest) string {
	if p.Responder != nil {
		return p.Responder(req)
	}
	if len(req.Messages) == 0 {
		return "simulated response"
	}
	last := req.Messages[len(req.Messages)-1]
	return fmt.Sprintf("simulated response to: %s", truncate(last.Content, 120))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
