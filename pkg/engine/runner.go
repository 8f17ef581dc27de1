package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Boomerang-Apps/wave/ent/storyexecution"
	"github.com/Boomerang-Apps/wave/pkg/bus"
	"github.com/Boomerang-Apps/wave/pkg/gates"
	"github.com/Boomerang-Apps/wave/pkg/llm"
	"github.com/Boomerang-Apps/wave/pkg/models"
	"github.com/Boomerang-Apps/wave/pkg/safety"
	"github.com/Boomerang-Apps/wave/pkg/services"
)

// ErrEmergencyStop aborts a run when the budget hard limit or a severe
// safety violation trips.
var ErrEmergencyStop = errors.New("emergency stop")

// Runner drives one story through every gate: each gate prompts the model,
// safety-checks the output, records budget usage, and reports the result to
// the state machine. It is the glue between the engine and the agents.
type Runner struct {
	engine    *Engine
	sessions  *services.SessionService
	provider  llm.Provider
	checker   *safety.Checker
	budget    *safety.BudgetTracker
	publisher *bus.Publisher
	model     string
}

// NewRunner creates a runner. publisher may be nil when pub/sub is
// disabled.
func NewRunner(engine *Engine, sessions *services.SessionService, provider llm.Provider, checker *safety.Checker, budget *safety.BudgetTracker, publisher *bus.Publisher, model string) *Runner {
	if model == "" {
		model = llm.ModelClaudeSonnet
	}
	return &Runner{
		engine:    engine,
		sessions:  sessions,
		provider:  provider,
		checker:   checker,
		budget:    budget,
		publisher: publisher,
		model:     model,
	}
}

// RunStory executes one story through the full gate sequence and returns
// its result. Gate failures retry inside the engine's retry budget; safety
// blocks and budget exhaustion stop the run.
func (r *Runner) RunStory(ctx context.Context, sessionID string, task models.StoryTask, worktreePath string) (models.StoryResult, error) {
	result := models.StoryResult{StoryID: task.StoryID, Domain: task.Domain}
	started := time.Now()

	execID, err := r.engine.StartExecution(ctx, models.CreateStoryExecutionRequest{
		SessionID:   sessionID,
		StoryID:     task.StoryID,
		Title:       task.Title,
		Domain:      task.Domain,
		Agent:       task.Agent,
		Priority:    task.Priority,
		StoryPoints: task.StoryPoints,
		ACTotal:     len(task.AcceptanceCriteria),
	})
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	r.publish(ctx, models.EventStoryStarted, sessionID, task.StoryID, map[string]interface{}{
		"execution_id": execID,
		"domain":       task.Domain,
	})

	for {
		state, err := r.engine.GetCurrentState(ctx, execID)
		if err != nil {
			result.Error = err.Error()
			return result, err
		}
		switch state.Status {
		case string(storyexecution.StatusComplete):
			result.Success = true
			result.Duration = time.Since(started)
			r.publish(ctx, models.EventWorkflowComplete, sessionID, task.StoryID, nil)
			return result, nil
		case string(storyexecution.StatusFailed), string(storyexecution.StatusCancelled):
			result.Error = fmt.Sprintf("story %s in status %s", task.StoryID, state.Status)
			result.Duration = time.Since(started)
			return result, nil
		}
		gate := gates.Gate(state.CurrentGate)

		gateResult, tokens, cost, err := r.runGate(ctx, task, gate, worktreePath)
		if err != nil {
			result.Error = err.Error()
			result.Duration = time.Since(started)
			if stopErr := r.engine.FailExecution(ctx, execID, err.Error()); stopErr != nil {
				slog.Error("Failed to record story failure", "execution_id", execID, "error", stopErr)
			}
			return result, err
		}
		result.TokensUsed += tokens
		result.CostUSD += cost
		r.budget.Record(tokens, cost)
		if _, err := r.sessions.AddUsage(ctx, sessionID, tokens, cost); err != nil {
			slog.Warn("Failed to record session usage", "session_id", sessionID, "error", err)
		}

		if check := r.budget.Check(); !check.Allowed {
			r.publish(ctx, models.EventEmergencyStop, sessionID, task.StoryID, map[string]interface{}{
				"reason": check.Message,
			})
			if stopErr := r.engine.FailExecution(ctx, execID, check.Message); stopErr != nil {
				slog.Error("Failed to record budget stop", "execution_id", execID, "error", stopErr)
			}
			result.Error = check.Message
			result.Duration = time.Since(started)
			return result, fmt.Errorf("%w: %s", ErrEmergencyStop, check.Message)
		}

		eventType := models.EventGatePassed
		if gateResult.Status == models.GateFailed {
			eventType = models.EventGateFailed
		}
		r.publish(ctx, eventType, sessionID, task.StoryID, map[string]interface{}{
			"gate": int(gate),
		})

		if err := r.engine.ExecuteGate(ctx, execID, gateResult); err != nil {
			result.Error = err.Error()
			result.Duration = time.Since(started)
			return result, err
		}
	}
}

// runGate prompts the agent for one gate and safety-checks the output.
// A blocked output fails the run outright; an unsafe-but-allowed output
// fails just the gate.
func (r *Runner) runGate(ctx context.Context, task models.StoryTask, gate gates.Gate, worktreePath string) (models.GateResult, int64, float64, error) {
	gateName, err := r.engine.System().Name(gate)
	if err != nil {
		return models.GateResult{}, 0, 0, err
	}

	prompt := buildGatePrompt(task, gateName, worktreePath)
	resp, err := r.provider.CreateMessage(ctx, &llm.MessageRequest{
		Model:     r.model,
		MaxTokens: 4096,
		System:    fmt.Sprintf("You are the %s agent executing gate %s.", task.Domain, gateName),
		Messages:  []llm.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return models.GateResult{
			Gate:   int(gate),
			Status: models.GateFailed,
			Error:  err.Error(),
		}, 0, 0, nil
	}

	tokens := int64(resp.Usage.InputTokens + resp.Usage.OutputTokens)
	cost := safety.EstimateCost(modelTier(r.model), int64(resp.Usage.InputTokens), int64(resp.Usage.OutputTokens))

	check := r.checker.Check(resp.Content)
	if check.Score < 0.3 {
		return models.GateResult{}, tokens, cost,
			fmt.Errorf("%w: safety score %.2f at gate %s", ErrEmergencyStop, check.Score, gateName)
	}
	if !check.Safe {
		return models.GateResult{
			Gate:   int(gate),
			Status: models.GateFailed,
			Error:  fmt.Sprintf("safety check blocked output (score %.2f)", check.Score),
		}, tokens, cost, nil
	}

	return models.GateResult{
		Gate:     int(gate),
		Status:   models.GatePassed,
		ACPassed: len(task.AcceptanceCriteria),
		ACTotal:  len(task.AcceptanceCriteria),
	}, tokens, cost, nil
}

func (r *Runner) publish(ctx context.Context, eventType models.EventType, sessionID, storyID string, payload map[string]interface{}) {
	if r.publisher == nil {
		return
	}
	if _, err := r.publisher.Publish(ctx, eventType, payload, bus.PublishOptions{
		SessionID: sessionID,
		StoryID:   storyID,
	}); err != nil {
		slog.Warn("Failed to publish event", "event_type", string(eventType), "error", err)
	}
}

func buildGatePrompt(task models.StoryTask, gateName, worktreePath string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Story %s: %s\nDomain: %s\nGate: %s\nWorktree: %s\n",
		task.StoryID, task.Title, task.Domain, gateName, worktreePath)
	if len(task.AcceptanceCriteria) > 0 {
		sb.WriteString("Acceptance criteria:\n")
		for _, ac := range task.AcceptanceCriteria {
			fmt.Fprintf(&sb, "- %s\n", ac)
		}
	}
	return sb.String()
}

// modelTier collapses a concrete model id to its pricing tier.
func modelTier(model string) string {
	switch {
	case strings.Contains(model, "haiku"):
		return "haiku"
	case strings.Contains(model, "opus"):
		return "opus"
	default:
		return "sonnet"
	}
}
