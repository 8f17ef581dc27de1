package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Boomerang-Apps/wave/ent"
	"github.com/Boomerang-Apps/wave/ent/session"
	"github.com/Boomerang-Apps/wave/pkg/models"
	"github.com/google/uuid"
)

// SessionService manages session lifecycle. A session covers one
// PRD-to-merge run; its status advances monotonically
// pending → in_progress → {completed|failed|cancelled}.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// Create creates a new session in pending state.
func (s *SessionService) Create(ctx context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	if req.ProjectName == "" {
		return nil, NewValidationError("project_name", "required")
	}
	if req.WaveNumber < 0 {
		return nil, NewValidationError("wave_number", "must be >= 0")
	}
	if req.BudgetUSD < 0 {
		return nil, NewValidationError("budget_usd", "must be >= 0")
	}

	id := req.SessionID
	if id == "" {
		id = uuid.New().String()
	}

	builder := s.client.Session.Create().
		SetID(id).
		SetProjectName(req.ProjectName).
		SetWaveNumber(req.WaveNumber).
		SetBudgetUsd(req.BudgetUSD).
		SetStoryCount(req.StoryCount).
		SetStatus(session.StatusPending)
	if req.Metadata != nil {
		builder.SetMetaData(req.Metadata)
	}

	sess, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

// Get retrieves a session by ID.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Query().
		Where(session.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// List returns sessions ordered newest first, optionally filtered by status.
func (s *SessionService) List(ctx context.Context, status string) ([]*ent.Session, error) {
	query := s.client.Session.Query().
		Order(ent.Desc(session.FieldCreatedAt))
	if status != "" {
		query = query.Where(session.StatusEQ(session.Status(status)))
	}
	sessions, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// Start marks a pending session as in_progress.
func (s *SessionService) Start(ctx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != session.StatusPending {
		return nil, fmt.Errorf("%w: cannot start session in status %s", ErrInvalidInput, sess.Status)
	}
	sess, err = sess.Update().
		SetStatus(session.StatusInProgress).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return sess, nil
}

// Complete transitions an in_progress session to completed.
func (s *SessionService) Complete(ctx context.Context, sessionID string) (*ent.Session, error) {
	return s.finish(ctx, sessionID, session.StatusCompleted, "")
}

// Fail transitions an in_progress session to failed with an error message.
func (s *SessionService) Fail(ctx context.Context, sessionID, errMsg string) (*ent.Session, error) {
	return s.finish(ctx, sessionID, session.StatusFailed, errMsg)
}

// Cancel transitions a non-terminal session to cancelled.
func (s *SessionService) Cancel(ctx context.Context, sessionID string) (*ent.Session, error) {
	return s.finish(ctx, sessionID, session.StatusCancelled, "")
}

// finish performs a transition to a terminal state. Sessions already in a
// terminal state are never mutated except by explicit reset.
func (s *SessionService) finish(ctx context.Context, sessionID string, status session.Status, errMsg string) (*ent.Session, error) {
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if isTerminalSessionStatus(sess.Status) {
		return nil, fmt.Errorf("%w: session %s is %s", ErrTerminalState, sessionID, sess.Status)
	}

	now := time.Now()
	builder := sess.Update().SetStatus(status)
	switch status {
	case session.StatusCompleted:
		builder.SetCompletedAt(now)
	case session.StatusFailed:
		builder.SetFailedAt(now)
		if errMsg != "" {
			meta := sess.MetaData
			if meta == nil {
				meta = map[string]interface{}{}
			}
			meta["error"] = errMsg
			builder.SetMetaData(meta)
		}
	case session.StatusCancelled:
		builder.SetCompletedAt(now)
	}

	sess, err = builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finish session: %w", err)
	}
	return sess, nil
}

// Reset returns a terminal session to pending, clearing timestamps and
// story counters. Explicit escape hatch for re-running a wave.
func (s *SessionService) Reset(ctx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess, err = sess.Update().
		SetStatus(session.StatusPending).
		SetStoriesCompleted(0).
		SetStoriesFailed(0).
		ClearStartedAt().
		ClearCompletedAt().
		ClearFailedAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset session: %w", err)
	}
	return sess, nil
}

// RecordStoryOutcome bumps the session's completed or failed story counter.
// The invariant stories_completed + stories_failed <= story_count is
// enforced here, before the write.
func (s *SessionService) RecordStoryOutcome(ctx context.Context, sessionID string, succeeded bool) (*ent.Session, error) {
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.StoriesCompleted+sess.StoriesFailed >= sess.StoryCount {
		return nil, fmt.Errorf("%w: story outcome count would exceed story_count %d",
			ErrInvalidInput, sess.StoryCount)
	}

	builder := sess.Update()
	if succeeded {
		builder.SetStoriesCompleted(sess.StoriesCompleted + 1)
	} else {
		builder.SetStoriesFailed(sess.StoriesFailed + 1)
	}
	sess, err = builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record story outcome: %w", err)
	}
	return sess, nil
}

// AddUsage accumulates token and cost usage onto the session.
func (s *SessionService) AddUsage(ctx context.Context, sessionID string, tokens int64, costUSD float64) (*ent.Session, error) {
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess, err = sess.Update().
		SetTokenCount(sess.TokenCount + tokens).
		SetActualCostUsd(sess.ActualCostUsd + costUSD).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add usage: %w", err)
	}
	return sess, nil
}

// Delete removes a session. Story executions and checkpoints cascade.
func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	err := s.client.Session.DeleteOneID(sessionID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func isTerminalSessionStatus(status session.Status) bool {
	return status == session.StatusCompleted ||
		status == session.StatusFailed ||
		status == session.StatusCancelled
}
