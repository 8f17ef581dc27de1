package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boomerang-Apps/wave/ent/checkpoint"
	"github.com/Boomerang-Apps/wave/pkg/models"
	"github.com/Boomerang-Apps/wave/pkg/services"
	testdb "github.com/Boomerang-Apps/wave/test/database"
)

func newCheckpointFixture(t *testing.T) (*services.CheckpointService, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	sessionID := createSession(t, sessions, models.CreateSessionRequest{})
	return services.NewCheckpointService(client.Client), sessionID
}

func TestCheckpointService_Create(t *testing.T) {
	svc, sessionID := newCheckpointFixture(t)
	ctx := context.Background()

	t.Run("creates a gate checkpoint", func(t *testing.T) {
		cp, err := svc.Create(ctx, services.CreateCheckpointRequest{
			SessionID: sessionID,
			StoryID:   "AUTH-001",
			Type:      checkpoint.CheckpointTypeGate,
			Name:      "QA_PASSED passed",
			GateTag:   "gate-5",
			AgentID:   "qa-agent",
			State:     map[string]interface{}{"gate": 5},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, cp.ID)
		assert.NotEmpty(t, cp.Seq)
		require.NotNil(t, cp.Gate)
		assert.Equal(t, checkpoint.Gate("gate-5"), *cp.Gate)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Create(ctx, services.CreateCheckpointRequest{
			Type: checkpoint.CheckpointTypeManual, Name: "x",
		})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.Create(ctx, services.CreateCheckpointRequest{
			SessionID: sessionID, Type: checkpoint.CheckpointTypeManual,
		})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.Create(ctx, services.CreateCheckpointRequest{
			SessionID: sessionID, Type: "bogus", Name: "x",
		})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestCheckpointService_SequenceOrdering(t *testing.T) {
	svc, sessionID := newCheckpointFixture(t)
	ctx := context.Background()

	// Burst writes within the same clock tick must still order totally.
	var ids []string
	for i := 0; i < 10; i++ {
		cp, err := svc.Create(ctx, services.CreateCheckpointRequest{
			SessionID: sessionID,
			StoryID:   "AUTH-001",
			Type:      checkpoint.CheckpointTypeManual,
			Name:      fmt.Sprintf("checkpoint %d", i),
		})
		require.NoError(t, err)
		ids = append(ids, cp.ID)
	}

	listed, err := svc.ListBySession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, listed, 10)
	for i, cp := range listed {
		assert.Equal(t, ids[i], cp.ID, "creation order preserved at index %d", i)
	}

	latest, err := svc.LatestBySession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, ids[9], latest.ID)
}

func TestCheckpointService_GateLookup(t *testing.T) {
	svc, sessionID := newCheckpointFixture(t)
	ctx := context.Background()

	for _, gate := range []string{"gate-0", "gate-1"} {
		_, err := svc.Create(ctx, services.CreateCheckpointRequest{
			SessionID: sessionID,
			StoryID:   "AUTH-001",
			Type:      checkpoint.CheckpointTypeGate,
			Name:      gate + " passed",
			GateTag:   gate,
		})
		require.NoError(t, err)
	}
	// second write for gate-1: FindGateCheckpoint must return the newer one
	newer, err := svc.Create(ctx, services.CreateCheckpointRequest{
		SessionID: sessionID,
		StoryID:   "AUTH-001",
		Type:      checkpoint.CheckpointTypeGate,
		Name:      "gate-1 passed again",
		GateTag:   "gate-1",
	})
	require.NoError(t, err)

	found, err := svc.FindGateCheckpoint(ctx, sessionID, "AUTH-001", "gate-1")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, found.ID)

	_, err = svc.FindGateCheckpoint(ctx, sessionID, "AUTH-001", "gate-9")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.LatestByStory(ctx, sessionID, "PAY-001")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCheckpointService_ListByTypeAndStory(t *testing.T) {
	svc, sessionID := newCheckpointFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, services.CreateCheckpointRequest{
		SessionID: sessionID, StoryID: "AUTH-001",
		Type: checkpoint.CheckpointTypeGate, Name: "gate", GateTag: "gate-0",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, services.CreateCheckpointRequest{
		SessionID: sessionID, StoryID: "AUTH-001",
		Type: checkpoint.CheckpointTypeError, Name: "boom",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, services.CreateCheckpointRequest{
		SessionID: sessionID, StoryID: "PAY-001",
		Type: checkpoint.CheckpointTypeGate, Name: "gate", GateTag: "gate-0",
	})
	require.NoError(t, err)

	gateCps, err := svc.ListByType(ctx, sessionID, checkpoint.CheckpointTypeGate)
	require.NoError(t, err)
	assert.Len(t, gateCps, 2)

	storyCps, err := svc.ListByStory(ctx, sessionID, "AUTH-001")
	require.NoError(t, err)
	assert.Len(t, storyCps, 2)
}

func TestCheckpointService_CleanupOld(t *testing.T) {
	svc, sessionID := newCheckpointFixture(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		cp, err := svc.Create(ctx, services.CreateCheckpointRequest{
			SessionID: sessionID,
			Type:      checkpoint.CheckpointTypeManual,
			Name:      fmt.Sprintf("checkpoint %d", i),
		})
		require.NoError(t, err)
		ids = append(ids, cp.ID)
	}

	deleted, err := svc.CleanupOld(ctx, sessionID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	remaining, err := svc.ListBySession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, ids[3], remaining[0].ID)
	assert.Equal(t, ids[4], remaining[1].ID)

	deleted, err = svc.CleanupOld(ctx, sessionID, 10)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	_, err = svc.CleanupOld(ctx, sessionID, -1)
	assert.True(t, services.IsValidationError(err))
}
