package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boomerang-Apps/wave/ent/storyexecution"
	"github.com/Boomerang-Apps/wave/pkg/models"
	"github.com/Boomerang-Apps/wave/pkg/services"
	testdb "github.com/Boomerang-Apps/wave/test/database"
)

func newStoryFixture(t *testing.T) (*services.StoryService, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	sessionID := createSession(t, sessions, models.CreateSessionRequest{StoryCount: 5})
	return services.NewStoryService(client.Client), sessionID
}

func storyRequest(sessionID, storyID string) models.CreateStoryExecutionRequest {
	return models.CreateStoryExecutionRequest{
		SessionID:   sessionID,
		StoryID:     storyID,
		Title:       "Login form",
		Domain:      "auth",
		Agent:       "fe-agent",
		Priority:    1,
		StoryPoints: 3,
		ACTotal:     4,
	}
}

func TestStoryService_Create(t *testing.T) {
	svc, sessionID := newStoryFixture(t)
	ctx := context.Background()

	t.Run("creates pending execution", func(t *testing.T) {
		exec, err := svc.Create(ctx, storyRequest(sessionID, "AUTH-001"))
		require.NoError(t, err)
		assert.Equal(t, storyexecution.StatusPending, exec.Status)
		assert.Equal(t, "AUTH-001", exec.StoryID)
		assert.Equal(t, 4, exec.AcceptanceCriteriaTotal)
	})

	t.Run("duplicate story in one session rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, storyRequest(sessionID, "AUTH-002"))
		require.NoError(t, err)
		_, err = svc.Create(ctx, storyRequest(sessionID, "AUTH-002"))
		assert.ErrorIs(t, err, services.ErrAlreadyExists)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateStoryExecutionRequest{StoryID: "X-1", Domain: "auth"})
		assert.True(t, services.IsValidationError(err))
		_, err = svc.Create(ctx, models.CreateStoryExecutionRequest{SessionID: sessionID, Domain: "auth"})
		assert.True(t, services.IsValidationError(err))
		_, err = svc.Create(ctx, models.CreateStoryExecutionRequest{SessionID: sessionID, StoryID: "X-1"})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestStoryService_Queries(t *testing.T) {
	svc, sessionID := newStoryFixture(t)
	ctx := context.Background()

	exec, err := svc.Create(ctx, storyRequest(sessionID, "AUTH-001"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, storyRequest(sessionID, "PAY-001"))
	require.NoError(t, err)

	t.Run("get by execution id", func(t *testing.T) {
		got, err := svc.Get(ctx, exec.ID)
		require.NoError(t, err)
		assert.Equal(t, "AUTH-001", got.StoryID)

		_, err = svc.Get(ctx, "nope")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("get by story id", func(t *testing.T) {
		got, err := svc.GetByStory(ctx, sessionID, "PAY-001")
		require.NoError(t, err)
		assert.Equal(t, "PAY-001", got.StoryID)

		_, err = svc.GetByStory(ctx, sessionID, "QA-999")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("list by session and status", func(t *testing.T) {
		all, err := svc.ListBySession(ctx, sessionID)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		_, err = exec.Update().SetStatus(storyexecution.StatusInProgress).Save(ctx)
		require.NoError(t, err)

		inProgress, err := svc.ListBySessionAndStatus(ctx, sessionID, storyexecution.StatusInProgress)
		require.NoError(t, err)
		require.Len(t, inProgress, 1)
		assert.Equal(t, "AUTH-001", inProgress[0].StoryID)
	})
}

func TestIsTerminalStoryStatus(t *testing.T) {
	assert.True(t, services.IsTerminalStoryStatus(storyexecution.StatusComplete))
	assert.True(t, services.IsTerminalStoryStatus(storyexecution.StatusCancelled))
	// failed stories can be resurrected by recovery
	assert.False(t, services.IsTerminalStoryStatus(storyexecution.StatusFailed))
	assert.False(t, services.IsTerminalStoryStatus(storyexecution.StatusInProgress))
}
