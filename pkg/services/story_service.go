package services

import (
	"context"
	"fmt"

	"github.com/Boomerang-Apps/wave/ent"
	"github.com/Boomerang-Apps/wave/ent/storyexecution"
	"github.com/Boomerang-Apps/wave/pkg/models"
	"github.com/google/uuid"
)

// StoryService manages story execution rows. Status transitions themselves
// are validated by the execution engine; this service is the persistence
// surface. Mutating methods come in pairs: a plain form that opens its own
// transaction, and a Tx form for callers that pair a status change with a
// checkpoint write atomically.
type StoryService struct {
	client *ent.Client
}

// NewStoryService creates a new StoryService.
func NewStoryService(client *ent.Client) *StoryService {
	return &StoryService{client: client}
}

// Client exposes the underlying ent client for transaction control.
func (s *StoryService) Client() *ent.Client { return s.client }

// Create creates a story execution in pending state. A duplicate
// (session_id, story_id) pair returns ErrAlreadyExists.
func (s *StoryService) Create(ctx context.Context, req models.CreateStoryExecutionRequest) (*ent.StoryExecution, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.StoryID == "" {
		return nil, NewValidationError("story_id", "required")
	}
	if req.Domain == "" {
		return nil, NewValidationError("domain", "required")
	}

	id := req.ExecutionID
	if id == "" {
		id = uuid.New().String()
	}

	exec, err := s.client.StoryExecution.Create().
		SetID(id).
		SetSessionID(req.SessionID).
		SetStoryID(req.StoryID).
		SetTitle(req.Title).
		SetDomain(req.Domain).
		SetAgent(req.Agent).
		SetPriority(req.Priority).
		SetStoryPoints(req.StoryPoints).
		SetAcceptanceCriteriaTotal(req.ACTotal).
		SetStatus(storyexecution.StatusPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create story execution: %w", err)
	}
	return exec, nil
}

// Get retrieves a story execution by its execution ID.
func (s *StoryService) Get(ctx context.Context, executionID string) (*ent.StoryExecution, error) {
	exec, err := s.client.StoryExecution.Query().
		Where(storyexecution.IDEQ(executionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get story execution: %w", err)
	}
	return exec, nil
}

// GetByStory retrieves the execution for a (session, story) pair.
func (s *StoryService) GetByStory(ctx context.Context, sessionID, storyID string) (*ent.StoryExecution, error) {
	exec, err := s.client.StoryExecution.Query().
		Where(
			storyexecution.SessionIDEQ(sessionID),
			storyexecution.StoryIDEQ(storyID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get story execution: %w", err)
	}
	return exec, nil
}

// ListBySession returns a session's story executions in creation order.
func (s *StoryService) ListBySession(ctx context.Context, sessionID string) ([]*ent.StoryExecution, error) {
	execs, err := s.client.StoryExecution.Query().
		Where(storyexecution.SessionIDEQ(sessionID)).
		Order(ent.Asc(storyexecution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list story executions: %w", err)
	}
	return execs, nil
}

// ListBySessionAndStatus filters a session's story executions by status.
func (s *StoryService) ListBySessionAndStatus(ctx context.Context, sessionID string, status storyexecution.Status) ([]*ent.StoryExecution, error) {
	execs, err := s.client.StoryExecution.Query().
		Where(
			storyexecution.SessionIDEQ(sessionID),
			storyexecution.StatusEQ(status),
		).
		Order(ent.Asc(storyexecution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list story executions: %w", err)
	}
	return execs, nil
}

// TerminalStoryStatuses are the statuses a story can never leave (except
// failed, which recovery may resurrect).
func IsTerminalStoryStatus(status storyexecution.Status) bool {
	return status == storyexecution.StatusComplete || status == storyexecution.StatusCancelled
}
