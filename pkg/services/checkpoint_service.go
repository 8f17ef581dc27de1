package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Boomerang-Apps/wave/ent"
	"github.com/Boomerang-Apps/wave/ent/checkpoint"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// CreateCheckpointRequest is the input for writing one checkpoint.
type CreateCheckpointRequest struct {
	SessionID          string
	StoryID            string
	Type               checkpoint.CheckpointType
	Name               string
	State              map[string]interface{}
	GateTag            string // "gate-N", empty for non-gate checkpoints
	AgentID            string
	ParentCheckpointID string
}

// CheckpointService persists workflow checkpoints. Checkpoints are
// append-only; "latest" is defined by a monotonic ULID sequence, not by
// wall-clock timestamp, so two checkpoints written within the same clock
// tick still have a total order.
type CheckpointService struct {
	client *ent.Client

	// ULID monotonic entropy is not safe for concurrent use.
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewCheckpointService creates a new CheckpointService.
func NewCheckpointService(client *ent.Client) *CheckpointService {
	return &CheckpointService{
		client:  client,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// nextSeq returns the next monotonic sequence ULID.
func (s *CheckpointService) nextSeq() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// Create writes a checkpoint in its own transaction.
func (s *CheckpointService) Create(ctx context.Context, req CreateCheckpointRequest) (*ent.Checkpoint, error) {
	return s.create(ctx, s.client.Checkpoint.Create(), req)
}

// CreateTx writes a checkpoint inside a caller-owned transaction, so a
// state transition and its checkpoint commit atomically.
func (s *CheckpointService) CreateTx(ctx context.Context, tx *ent.Tx, req CreateCheckpointRequest) (*ent.Checkpoint, error) {
	return s.create(ctx, tx.Checkpoint.Create(), req)
}

func (s *CheckpointService) create(ctx context.Context, builder *ent.CheckpointCreate, req CreateCheckpointRequest) (*ent.Checkpoint, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("checkpoint_name", "required")
	}
	if !validCheckpointType(req.Type) {
		return nil, NewValidationError("checkpoint_type", fmt.Sprintf("unknown type %q", req.Type))
	}

	builder = builder.
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetCheckpointType(req.Type).
		SetCheckpointName(req.Name).
		SetSeq(s.nextSeq())
	if req.State != nil {
		builder.SetState(req.State)
	}
	if req.StoryID != "" {
		builder.SetStoryID(req.StoryID)
	}
	if req.GateTag != "" {
		builder.SetGate(checkpoint.Gate(req.GateTag))
	}
	if req.AgentID != "" {
		builder.SetAgentID(req.AgentID)
	}
	if req.ParentCheckpointID != "" {
		builder.SetParentCheckpointID(req.ParentCheckpointID)
	}

	cp, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkpoint: %w", err)
	}
	return cp, nil
}

// Get retrieves a checkpoint by ID.
func (s *CheckpointService) Get(ctx context.Context, checkpointID string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(checkpoint.IDEQ(checkpointID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}
	return cp, nil
}

// ListBySession returns a session's checkpoints in sequence order.
func (s *CheckpointService) ListBySession(ctx context.Context, sessionID string) ([]*ent.Checkpoint, error) {
	cps, err := s.client.Checkpoint.Query().
		Where(checkpoint.SessionIDEQ(sessionID)).
		Order(ent.Asc(checkpoint.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}
	return cps, nil
}

// ListByStory returns a story's checkpoints in sequence order.
func (s *CheckpointService) ListByStory(ctx context.Context, sessionID, storyID string) ([]*ent.Checkpoint, error) {
	cps, err := s.client.Checkpoint.Query().
		Where(
			checkpoint.SessionIDEQ(sessionID),
			checkpoint.StoryIDEQ(storyID),
		).
		Order(ent.Asc(checkpoint.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list story checkpoints: %w", err)
	}
	return cps, nil
}

// ListByType filters a session's checkpoints by type, in sequence order.
func (s *CheckpointService) ListByType(ctx context.Context, sessionID string, cpType checkpoint.CheckpointType) ([]*ent.Checkpoint, error) {
	cps, err := s.client.Checkpoint.Query().
		Where(
			checkpoint.SessionIDEQ(sessionID),
			checkpoint.CheckpointTypeEQ(cpType),
		).
		Order(ent.Asc(checkpoint.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints by type: %w", err)
	}
	return cps, nil
}

// FindGateCheckpoint returns the most recent gate checkpoint for a
// (story, gate tag), or ErrNotFound.
func (s *CheckpointService) FindGateCheckpoint(ctx context.Context, sessionID, storyID, gateTag string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(
			checkpoint.SessionIDEQ(sessionID),
			checkpoint.StoryIDEQ(storyID),
			checkpoint.CheckpointTypeEQ(checkpoint.CheckpointTypeGate),
			checkpoint.GateEQ(checkpoint.Gate(gateTag)),
		).
		Order(ent.Desc(checkpoint.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find gate checkpoint: %w", err)
	}
	return cp, nil
}

// LatestBySession returns the most recent checkpoint for a session.
func (s *CheckpointService) LatestBySession(ctx context.Context, sessionID string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(checkpoint.SessionIDEQ(sessionID)).
		Order(ent.Desc(checkpoint.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest checkpoint: %w", err)
	}
	return cp, nil
}

// LatestByStory returns the most recent checkpoint for a story.
func (s *CheckpointService) LatestByStory(ctx context.Context, sessionID, storyID string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(
			checkpoint.SessionIDEQ(sessionID),
			checkpoint.StoryIDEQ(storyID),
		).
		Order(ent.Desc(checkpoint.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest story checkpoint: %w", err)
	}
	return cp, nil
}

// CleanupOld retains the keep most recent checkpoints for a session and
// deletes the rest. Returns the number deleted. After cleanup,
// len(ListBySession) == min(original count, keep).
func (s *CheckpointService) CleanupOld(ctx context.Context, sessionID string, keep int) (int, error) {
	if keep < 0 {
		return 0, NewValidationError("keep", "must be >= 0")
	}

	stale, err := s.client.Checkpoint.Query().
		Where(checkpoint.SessionIDEQ(sessionID)).
		Order(ent.Desc(checkpoint.FieldSeq)).
		Offset(keep).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale checkpoints: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	ids := make([]string, len(stale))
	for i, cp := range stale {
		ids[i] = cp.ID
	}
	deleted, err := s.client.Checkpoint.Delete().
		Where(checkpoint.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale checkpoints: %w", err)
	}
	return deleted, nil
}

func validCheckpointType(t checkpoint.CheckpointType) bool {
	switch t {
	case checkpoint.CheckpointTypeGate,
		checkpoint.CheckpointTypeStoryStart,
		checkpoint.CheckpointTypeStoryComplete,
		checkpoint.CheckpointTypeAgentHandoff,
		checkpoint.CheckpointTypeError,
		checkpoint.CheckpointTypeManual:
		return true
	}
	return false
}
