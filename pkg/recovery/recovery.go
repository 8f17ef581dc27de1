// Package recovery restores interrupted story executions from their
// checkpoint history. All strategies are idempotent: recovering an already
// recovered story converges to the same state.
package recovery

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
	"github.com/Boomerang-Apps/wave/pkg/services"
)

// Strategy selects how a story is restored.
type Strategy string

const (
	ResumeFromLast Strategy = "RESUME_FROM_LAST"
	ResumeFromGate Strategy = "RESUME_FROM_GATE"
	Restart        Strategy = "RESTART"
	Skip           Strategy = "SKIP"
)

// ErrNotRecoverable is returned for stories in a terminal status.
var ErrNotRecoverable = errors.New("story is not recoverable")

// RecoveryPoint is a checkpoint annotated with whether execution can resume
// from it.
type RecoveryPoint struct {
	CheckpointID string                 `json:"checkpoint_id"`
	Type         string                 `json:"type"`
	Name         string                 `json:"name"`
	StoryID      string                 `json:"story_id,omitempty"`
	Gate         string                 `json:"gate,omitempty"`
	Seq          string                 `json:"seq"`
	CreatedAt    time.Time              `json:"created_at"`
	CanResume    bool                   `json:"can_resume"`
	State        map[string]interface{} `json:"state,omitempty"`
}

// SessionRecoveryResult reports the outcome of a whole-session recovery.
type SessionRecoveryResult struct {
	Recovered    []string       `json:"recovered"`
	Failed       []StoryFailure `json:"failed"`
	TotalStories int            `json:"total_stories"`
}

// StoryFailure pairs a story with the error that prevented its recovery.
type StoryFailure struct {
	StoryID string `json:"story_id"`
	Error   string `json:"error"`
}

// RecoveryStatus summarizes a session's recoverability.
type RecoveryStatus struct {
	SessionID    string         `json:"session_id"`
	TotalStories int            `json:"total_stories"`
	ByStatus     map[string]int `json:"by_status"`
	Recoverable  []string       `json:"recoverable"`
}

// Manager implements checkpoint-based story recovery.
type Manager struct {
	client      *ent.Client
	stories     *services.StoryService
	checkpoints *services.CheckpointService
	system      *gates.System
}

// NewManager creates a recovery manager.
func NewManager(client *ent.Client, stories *services.StoryService, checkpoints *services.CheckpointService, system *gates.System) *Manager {
	return &Manager{
		client:      client,
		stories:     stories,
		checkpoints: checkpoints,
		system:      system,
	}
}

// FindRecoveryPoints lists checkpoints in chronological order, optionally
// scoped to one story. A checkpoint can be resumed from unless it is an
// error checkpoint with no successor.
func (m *Manager) FindRecoveryPoints(ctx context.Context, sessionID, storyID string) ([]RecoveryPoint, error) {
	var (
		cps []*ent.Checkpoint
		err error
	)
	if storyID != "" {
		cps, err = m.checkpoints.ListByStory(ctx, sessionID, storyID)
	} else {
		cps, err = m.checkpoints.ListBySession(ctx, sessionID)
	}
	if err != nil {
		return nil, err
	}

	points := make([]RecoveryPoint, 0, len(cps))
	for i, cp := range cps {
		p := RecoveryPoint{
			CheckpointID: cp.ID,
			Type:         string(cp.CheckpointType),
			Name:         cp.CheckpointName,
			Seq:          cp.Seq,
			CreatedAt:    cp.CreatedAt,
			State:        cp.State,
			CanResume:    true,
		}
		if cp.StoryID != nil {
			p.StoryID = *cp.StoryID
		}
		if cp.Gate != nil {
			p.Gate = string(*cp.Gate)
		}
		// A trailing error checkpoint marks a dead end
		if cp.CheckpointType == checkpoint.CheckpointTypeError && i == len(cps)-1 {
			p.CanResume = false
		}
		points = append(points, p)
	}
	return points, nil
}

// GetLastRecoveryPoint returns the most recent checkpoint for a story.
func (m *Manager) GetLastRecoveryPoint(ctx context.Context, sessionID, storyID string) (*RecoveryPoint, error) {
	cp, err := m.checkpoints.LatestByStory(ctx, sessionID, storyID)
	if err != nil {
		return nil, err
	}
	p := &RecoveryPoint{
		CheckpointID: cp.ID,
		Type:         string(cp.CheckpointType),
		Name:         cp.CheckpointName,
		StoryID:      storyID,
		Seq:          cp.Seq,
		CreatedAt:    cp.CreatedAt,
		State:        cp.State,
		CanResume:    cp.CheckpointType != checkpoint.CheckpointTypeError,
	}
	if cp.Gate != nil {
		p.Gate = string(*cp.Gate)
	}
	return p, nil
}

// CanRecover reports whether the story exists and is not in a terminal
// status.
func (m *Manager) CanRecover(ctx context.Context, sessionID, storyID string) (bool, error) {
	exec, err := m.stories.GetByStory(ctx, sessionID, storyID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return !services.IsTerminalStoryStatus(exec.Status), nil
}

// RecoverStory restores one story using the given strategy. targetGate is
// only consulted for RESUME_FROM_GATE.
func (m *Manager) RecoverStory(ctx context.Context, sessionID, storyID string, strategy Strategy, targetGate int) error {
	exec, err := m.stories.GetByStory(ctx, sessionID, storyID)
	if err != nil {
		return err
	}
	if services.IsTerminalStoryStatus(exec.Status) {
		return fmt.Errorf("%w: story %s is %s", ErrNotRecoverable, storyID, exec.Status)
	}

	switch strategy {
	case ResumeFromLast:
		return m.resumeFromLast(ctx, exec)
	case ResumeFromGate:
		return m.resumeFromGate(ctx, exec, targetGate)
	case Restart:
		return m.restart(ctx, exec)
	case Skip:
		return m.skip(ctx, exec)
	default:
		return services.NewValidationError("strategy", fmt.Sprintf("unknown recovery strategy %q", strategy))
	}
}

func (m *Manager) resumeFromLast(ctx context.Context, exec *ent.StoryExecution) error {
	cp, err := m.checkpoints.LatestByStory(ctx, exec.SessionID, exec.StoryID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return err
	}

	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.StoryExecution.UpdateOneID(exec.ID).
		SetStatus(storyexecution.StatusInProgress).
		ClearFailedAt().
		ClearErrorMessage().
		Save(ctx); err != nil {
		return fmt.Errorf("failed to resume story execution: %w", err)
	}

	state := map[string]interface{}{
		"strategy": string(ResumeFromLast),
	}
	if cp != nil {
		state["resumed_from"] = cp.ID
	}
	if _, err := m.checkpoints.CreateTx(ctx, tx, services.CreateCheckpointRequest{
		SessionID: exec.SessionID,
		StoryID:   exec.StoryID,
		Type:      checkpoint.CheckpointTypeManual,
		Name:      fmt.Sprintf("recovery: resume story %s from last checkpoint", exec.StoryID),
		State:     state,
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	slog.Info("Story resumed from last checkpoint", "story_id", exec.StoryID, "session_id", exec.SessionID)
	return nil
}

func (m *Manager) resumeFromGate(ctx context.Context, exec *ent.StoryExecution, targetGate int) error {
	gate := gates.Gate(targetGate)
	if _, err := m.system.Name(gate); err != nil {
		return services.NewValidationError("target_gate", fmt.Sprintf("gate %d is outside the configured gate system", targetGate))
	}

	cp, err := m.checkpoints.FindGateCheckpoint(ctx, exec.SessionID, exec.StoryID, gate.Tag())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fmt.Errorf("No checkpoint found for gate %d on story %s", targetGate, exec.StoryID)
		}
		return err
	}

	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.StoryExecution.UpdateOneID(exec.ID).
		SetStatus(storyexecution.StatusInProgress).
		SetCurrentGate(storyexecution.CurrentGate(gate.Tag())).
		ClearFailedAt().
		ClearErrorMessage().
		Save(ctx); err != nil {
		return fmt.Errorf("failed to restore story execution: %w", err)
	}

	if _, err := m.checkpoints.CreateTx(ctx, tx, services.CreateCheckpointRequest{
		SessionID: exec.SessionID,
		StoryID:   exec.StoryID,
		Type:      checkpoint.CheckpointTypeManual,
		Name:      fmt.Sprintf("recovery: resume story %s from gate %d", exec.StoryID, targetGate),
		GateTag:   gate.Tag(),
		State: map[string]interface{}{
			"strategy":     string(ResumeFromGate),
			"target_gate":  targetGate,
			"resumed_from": cp.ID,
		},
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	slog.Info("Story resumed from gate", "story_id", exec.StoryID, "gate", targetGate)
	return nil
}

func (m *Manager) restart(ctx context.Context, exec *ent.StoryExecution) error {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.StoryExecution.UpdateOneID(exec.ID).
		SetStatus(storyexecution.StatusPending).
		SetCurrentGate(storyexecution.CurrentGate(gates.Gate(0).Tag())).
		SetRetryCount(0).
		SetAcceptanceCriteriaPassed(0).
		ClearStartedAt().
		ClearFailedAt().
		ClearErrorMessage().
		Save(ctx); err != nil {
		return fmt.Errorf("failed to restart story execution: %w", err)
	}

	if _, err := m.checkpoints.CreateTx(ctx, tx, services.CreateCheckpointRequest{
		SessionID: exec.SessionID,
		StoryID:   exec.StoryID,
		Type:      checkpoint.CheckpointTypeManual,
		Name:      fmt.Sprintf("recovery: restart story %s", exec.StoryID),
		State: map[string]interface{}{
			"strategy": string(Restart),
		},
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	slog.Info("Story restarted", "story_id", exec.StoryID)
	return nil
}

func (m *Manager) skip(ctx context.Context, exec *ent.StoryExecution) error {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.StoryExecution.UpdateOneID(exec.ID).
		SetStatus(storyexecution.StatusCancelled).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to skip story execution: %w", err)
	}

	if _, err := m.checkpoints.CreateTx(ctx, tx, services.CreateCheckpointRequest{
		SessionID: exec.SessionID,
		StoryID:   exec.StoryID,
		Type:      checkpoint.CheckpointTypeManual,
		Name:      fmt.Sprintf("recovery: skip story %s", exec.StoryID),
		State: map[string]interface{}{
			"strategy": string(Skip),
		},
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	slog.Info("Story skipped", "story_id", exec.StoryID)
	return nil
}

// RecoverSession applies one strategy to every recoverable story in the
// session.
func (m *Manager) RecoverSession(ctx context.Context, sessionID string, strategy Strategy) (*SessionRecoveryResult, error) {
	execs, err := m.stories.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := &SessionRecoveryResult{
		Recovered:    []string{},
		Failed:       []StoryFailure{},
		TotalStories: len(execs),
	}
	for _, exec := range execs {
		if services.IsTerminalStoryStatus(exec.Status) {
			continue
		}
		if err := m.RecoverStory(ctx, sessionID, exec.StoryID, strategy, 0); err != nil {
			result.Failed = append(result.Failed, StoryFailure{StoryID: exec.StoryID, Error: err.Error()})
			continue
		}
		result.Recovered = append(result.Recovered, exec.StoryID)
	}
	return result, nil
}

// GetRecoveryStatus summarizes story statuses and recoverable stories for a
// session.
func (m *Manager) GetRecoveryStatus(ctx context.Context, sessionID string) (*RecoveryStatus, error) {
	execs, err := m.stories.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	status := &RecoveryStatus{
		SessionID:    sessionID,
		TotalStories: len(execs),
		ByStatus:     map[string]int{},
		Recoverable:  []string{},
	}
	for _, exec := range execs {
		status.ByStatus[string(exec.Status)]++
		if !services.IsTerminalStoryStatus(exec.Status) {
			status.Recoverable = append(status.Recoverable, exec.StoryID)
		}
	}
	return status, nil
}
