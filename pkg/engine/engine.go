// Package engine implements the story execution state machine and its gate
// progression. Every state transition and gate boundary writes a durable
// checkpoint; transition + checkpoint commit in one transaction.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Boomerang-Apps/wave/ent"
	"github.com/Boomerang-Apps/wave/ent/checkpoint"
	"github.com/Boomerang-Apps/wave/ent/storyexecution"
	"github.com/Boomerang-Apps/wave/pkg/gates"
	"github.com/Boomerang-Apps/wave/pkg/models"
	"github.com/Boomerang-Apps/wave/pkg/services"
)

var (
	// ErrInvalidTransition is returned for story status moves outside the graph.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrWrongGate is returned when a gate result does not match the story's
	// current gate.
	ErrWrongGate = errors.New("gate result does not match current gate")
)

// Callbacks are optional observability hooks fired around gate execution.
// All are invoked synchronously; nil hooks are skipped.
type Callbacks struct {
	OnGateEnter    func(executionID string, gate gates.Gate)
	OnGateComplete func(executionID string, gate gates.Gate, result models.GateResult)
	OnError        func(executionID string, err error)
}

// Engine drives story executions through the configured gate ordering.
type Engine struct {
	client      *ent.Client
	stories     *services.StoryService
	checkpoints *services.CheckpointService
	system      *gates.System
	maxRetries  int
	callbacks   Callbacks
}

// New creates an execution engine.
func New(client *ent.Client, stories *services.StoryService, checkpoints *services.CheckpointService, system *gates.System, maxRetries int, callbacks Callbacks) *Engine {
	return &Engine{
		client:      client,
		stories:     stories,
		checkpoints: checkpoints,
		system:      system,
		maxRetries:  maxRetries,
		callbacks:   callbacks,
	}
}

// System returns the configured gate system.
func (e *Engine) System() *gates.System { return e.system }

// StartExecution creates a story execution, writes the story_start
// checkpoint, and moves it to in_progress at gate 0. Fails with
// ErrAlreadyExists for a duplicate (session, story) pair.
func (e *Engine) StartExecution(ctx context.Context, req models.CreateStoryExecutionRequest) (string, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	txStories := services.NewStoryService(tx.Client())
	exec, err := txStories.Create(ctx, req)
	if err != nil {
		return "", err
	}

	exec, err = exec.Update().
		SetStatus(storyexecution.StatusInProgress).
		SetStartedAt(time.Now()).
		SetCurrentGate(storyexecution.CurrentGate(gates.Gate(0).Tag())).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to activate story execution: %w", err)
	}

	_, err = e.checkpoints.CreateTx(ctx, tx, services.CreateCheckpointRequest{
		SessionID: req.SessionID,
		StoryID:   req.StoryID,
		Type:      checkpoint.CheckpointTypeStoryStart,
		Name:      fmt.Sprintf("story %s started", req.StoryID),
		AgentID:   req.Agent,
		State: map[string]interface{}{
			"status":       string(storyexecution.StatusInProgress),
			"current_gate": 0,
		},
	})
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Info("Story execution started",
		"execution_id", exec.ID,
		"session_id", req.SessionID,
		"story_id", req.StoryID,
		"domain", req.Domain)
	return exec.ID, nil
}

// TransitionState validates and applies a story status transition, records
// the reason in metadata, and writes a checkpoint tagged with the new state.
func (e *Engine) TransitionState(ctx context.Context, executionID string, newStatus storyexecution.Status, reason string) error {
	exec, err := e.stories.Get(ctx, executionID)
	if err != nil {
		return err
	}
	if err := ValidateTransition(exec.Status, newStatus); err != nil {
		return err
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	meta := exec.MetaData
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["last_transition_reason"] = reason

	builder := tx.StoryExecution.UpdateOneID(executionID).
		SetStatus(newStatus).
		SetMetaData(meta)
	switch newStatus {
	case storyexecution.StatusComplete:
		builder.SetCompletedAt(time.Now())
	case storyexecution.StatusFailed:
		builder.SetFailedAt(time.Now())
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to transition story execution: %w", err)
	}

	_, err = e.checkpoints.CreateTx(ctx, tx, services.CreateCheckpointRequest{
		SessionID: exec.SessionID,
		StoryID:   exec.StoryID,
		Type:      checkpointTypeForStatus(newStatus),
		Name:      fmt.Sprintf("state:%s", newStatus),
		State: map[string]interface{}{
			"status": string(newStatus),
			"from":   string(exec.Status),
			"reason": reason,
		},
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ExecuteGate applies a gate result to a story execution.
//
// PASSED: writes a gate checkpoint holding the result, advances
// current_gate to gate+1, and completes the story when the terminal gate
// passed. FAILED: increments retry_count; below max retries the story stays
// in_progress, at max retries it fails with "{gate} failed: {error}".
func (e *Engine) ExecuteGate(ctx context.Context, executionID string, result models.GateResult) error {
	exec, err := e.stories.Get(ctx, executionID)
	if err != nil {
		return err
	}
	if exec.Status != storyexecution.StatusInProgress && exec.Status != storyexecution.StatusReview {
		return fmt.Errorf("%w: cannot execute gate in status %s", ErrInvalidTransition, exec.Status)
	}

	gate := gates.Gate(result.Gate)
	currentGate, err := parseGateTag(string(exec.CurrentGate))
	if err != nil {
		return err
	}
	if gate != currentGate {
		return fmt.Errorf("%w: result for gate %d, current gate %d", ErrWrongGate, gate, currentGate)
	}

	if e.callbacks.OnGateEnter != nil {
		e.callbacks.OnGateEnter(executionID, gate)
	}

	switch result.Status {
	case models.GatePassed:
		err = e.passGate(ctx, exec, gate, result)
	case models.GateFailed:
		err = e.failGate(ctx, exec, gate, result)
	default:
		return services.NewValidationError("status", fmt.Sprintf("unknown gate status %q", result.Status))
	}
	if err != nil {
		if e.callbacks.OnError != nil {
			e.callbacks.OnError(executionID, err)
		}
		return err
	}

	if e.callbacks.OnGateComplete != nil {
		e.callbacks.OnGateComplete(executionID, gate, result)
	}
	return nil
}

func (e *Engine) passGate(ctx context.Context, exec *ent.StoryExecution, gate gates.Gate, result models.GateResult) error {
	gateName, err := e.system.Name(gate)
	if err != nil {
		return err
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	terminal := gate == e.system.Terminal()
	builder := tx.StoryExecution.UpdateOneID(exec.ID).
		SetCurrentGate(storyexecution.CurrentGate((gate + 1).Tag())).
		SetAcceptanceCriteriaPassed(result.ACPassed)
	if result.ACTotal > 0 {
		builder.SetAcceptanceCriteriaTotal(result.ACTotal)
	}
	if terminal {
		builder.SetStatus(storyexecution.StatusComplete).
			SetCompletedAt(time.Now())
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to advance gate: %w", err)
	}

	_, err = e.checkpoints.CreateTx(ctx, tx, services.CreateCheckpointRequest{
		SessionID: exec.SessionID,
		StoryID:   exec.StoryID,
		Type:      checkpoint.CheckpointTypeGate,
		Name:      fmt.Sprintf("%s passed", gateName),
		GateTag:   gate.Tag(),
		State: map[string]interface{}{
			"gate":      int(gate),
			"gate_name": gateName,
			"status":    string(models.GatePassed),
			"ac_passed": result.ACPassed,
			"ac_total":  result.ACTotal,
		},
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Info("Gate passed",
		"execution_id", exec.ID,
		"story_id", exec.StoryID,
		"gate", int(gate),
		"gate_name", gateName,
		"terminal", terminal)
	return nil
}

func (e *Engine) failGate(ctx context.Context, exec *ent.StoryExecution, gate gates.Gate, result models.GateResult) error {
	gateName, err := e.system.Name(gate)
	if err != nil {
		return err
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	retries := exec.RetryCount + 1
	escalate := retries >= e.maxRetries
	builder := tx.StoryExecution.UpdateOneID(exec.ID).
		SetRetryCount(retries)
	failMsg := fmt.Sprintf("%s failed: %s", gateName, result.Error)
	if escalate {
		builder.SetStatus(storyexecution.StatusFailed).
			SetFailedAt(time.Now()).
			SetErrorMessage(failMsg)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to record gate failure: %w", err)
	}

	cpType := checkpoint.CheckpointTypeGate
	if escalate {
		cpType = checkpoint.CheckpointTypeError
	}
	_, err = e.checkpoints.CreateTx(ctx, tx, services.CreateCheckpointRequest{
		SessionID: exec.SessionID,
		StoryID:   exec.StoryID,
		Type:      cpType,
		Name:      failMsg,
		GateTag:   gate.Tag(),
		State: map[string]interface{}{
			"gate":        int(gate),
			"gate_name":   gateName,
			"status":      string(models.GateFailed),
			"error":       result.Error,
			"retry_count": retries,
		},
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Warn("Gate failed",
		"execution_id", exec.ID,
		"story_id", exec.StoryID,
		"gate", int(gate),
		"retry_count", retries,
		"escalated", escalate)
	return nil
}

// CompleteExecution stores the story's artefact references, marks it
// complete, and writes the story_complete checkpoint.
func (e *Engine) CompleteExecution(ctx context.Context, executionID string, req models.CompleteExecutionRequest) error {
	exec, err := e.stories.Get(ctx, executionID)
	if err != nil {
		return err
	}
	if err := ValidateTransition(exec.Status, storyexecution.StatusComplete); err != nil &&
		exec.Status != storyexecution.StatusComplete {
		return err
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.StoryExecution.UpdateOneID(executionID).
		SetStatus(storyexecution.StatusComplete).
		SetFilesCreated(req.FilesCreated).
		SetFilesModified(req.FilesModified).
		SetBranchName(req.BranchName).
		SetCommitSha(req.CommitSHA).
		SetPrURL(req.PRURL).
		SetTestsPassing(req.TestsPassing).
		SetCoverageAchieved(req.Coverage).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete story execution: %w", err)
	}

	_, err = e.checkpoints.CreateTx(ctx, tx, services.CreateCheckpointRequest{
		SessionID: exec.SessionID,
		StoryID:   exec.StoryID,
		Type:      checkpoint.CheckpointTypeStoryComplete,
		Name:      fmt.Sprintf("story %s complete", exec.StoryID),
		State: map[string]interface{}{
			"branch_name":   req.BranchName,
			"commit_sha":    req.CommitSHA,
			"pr_url":        req.PRURL,
			"tests_passing": req.TestsPassing,
			"coverage":      req.Coverage,
		},
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// FailExecution marks the story failed and writes an error checkpoint.
func (e *Engine) FailExecution(ctx context.Context, executionID, errMsg string) error {
	exec, err := e.stories.Get(ctx, executionID)
	if err != nil {
		return err
	}
	if err := ValidateTransition(exec.Status, storyexecution.StatusFailed); err != nil {
		return err
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.StoryExecution.UpdateOneID(executionID).
		SetStatus(storyexecution.StatusFailed).
		SetErrorMessage(errMsg).
		SetFailedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail story execution: %w", err)
	}

	_, err = e.checkpoints.CreateTx(ctx, tx, services.CreateCheckpointRequest{
		SessionID: exec.SessionID,
		StoryID:   exec.StoryID,
		Type:      checkpoint.CheckpointTypeError,
		Name:      errMsg,
		State: map[string]interface{}{
			"error":        errMsg,
			"current_gate": string(exec.CurrentGate),
		},
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if e.callbacks.OnError != nil {
		e.callbacks.OnError(executionID, errors.New(errMsg))
	}
	return nil
}

// GetCurrentState returns the engine's view of an execution, including the
// latest checkpoint by sequence.
func (e *Engine) GetCurrentState(ctx context.Context, executionID string) (*models.ExecutionState, error) {
	exec, err := e.stories.Get(ctx, executionID)
	if err != nil {
		return nil, err
	}
	gate, err := parseGateTag(string(exec.CurrentGate))
	if err != nil {
		return nil, err
	}

	state := &models.ExecutionState{
		ExecutionID: exec.ID,
		SessionID:   exec.SessionID,
		StoryID:     exec.StoryID,
		Status:      string(exec.Status),
		CurrentGate: int(gate),
		ACPassed:    exec.AcceptanceCriteriaPassed,
		ACTotal:     exec.AcceptanceCriteriaTotal,
		RetryCount:  exec.RetryCount,
	}

	latest, err := e.checkpoints.LatestByStory(ctx, exec.SessionID, exec.StoryID)
	if err == nil {
		state.LatestCheckpoint = latest.ID
	} else if !errors.Is(err, services.ErrNotFound) {
		return nil, err
	}
	return state, nil
}

// checkpointTypeForStatus maps a story status to the checkpoint type
// recorded for the transition.
func checkpointTypeForStatus(status storyexecution.Status) checkpoint.CheckpointType {
	switch status {
	case storyexecution.StatusComplete:
		return checkpoint.CheckpointTypeStoryComplete
	case storyexecution.StatusFailed:
		return checkpoint.CheckpointTypeError
	case storyexecution.StatusReview:
		return checkpoint.CheckpointTypeAgentHandoff
	default:
		return checkpoint.CheckpointTypeManual
	}
}

// parseGateTag converts a persisted "gate-N" label back to a Gate.
func parseGateTag(tag string) (gates.Gate, error) {
	var n int
	if _, err := fmt.Sscanf(tag, "gate-%d", &n); err != nil {
		return 0, fmt.Errorf("malformed gate tag %q: %w", tag, err)
	}
	return gates.Gate(n), nil
}
