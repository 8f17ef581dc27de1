package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boomerang-Apps/wave/ent/session"
	"github.com/Boomerang-Apps/wave/pkg/models"
	"github.com/Boomerang-Apps/wave/pkg/services"
	testdb "github.com/Boomerang-Apps/wave/test/database"
)

func newSessionService(t *testing.T) *services.SessionService {
	t.Helper()
	client := testdb.NewTestClient(t)
	return services.NewSessionService(client.Client)
}

func createSession(t *testing.T, svc *services.SessionService, req models.CreateSessionRequest) string {
	t.Helper()
	if req.ProjectName == "" {
		req.ProjectName = "checkout"
	}
	sess, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	return sess.ID
}

func TestSessionService_Create(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	t.Run("creates a pending session", func(t *testing.T) {
		sess, err := svc.Create(ctx, models.CreateSessionRequest{
			ProjectName: "checkout",
			WaveNumber:  1,
			BudgetUSD:   50,
			StoryCount:  3,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, session.StatusPending, sess.Status)
		assert.Equal(t, 3, sess.StoryCount)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateSessionRequest{})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.Create(ctx, models.CreateSessionRequest{ProjectName: "x", WaveNumber: -1})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.Create(ctx, models.CreateSessionRequest{ProjectName: "x", BudgetUSD: -1})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		id := createSession(t, svc, models.CreateSessionRequest{SessionID: "dup-session"})
		_ = id
		_, err := svc.Create(ctx, models.CreateSessionRequest{SessionID: "dup-session", ProjectName: "checkout"})
		assert.ErrorIs(t, err, services.ErrAlreadyExists)
	})
}

func TestSessionService_Lifecycle(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	t.Run("pending to in_progress to completed", func(t *testing.T) {
		id := createSession(t, svc, models.CreateSessionRequest{})

		sess, err := svc.Start(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, session.StatusInProgress, sess.Status)
		assert.NotNil(t, sess.StartedAt)

		sess, err = svc.Complete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, session.StatusCompleted, sess.Status)
		assert.NotNil(t, sess.CompletedAt)
	})

	t.Run("start requires pending", func(t *testing.T) {
		id := createSession(t, svc, models.CreateSessionRequest{})
		_, err := svc.Start(ctx, id)
		require.NoError(t, err)

		_, err = svc.Start(ctx, id)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("fail records the error in metadata", func(t *testing.T) {
		id := createSession(t, svc, models.CreateSessionRequest{})
		_, err := svc.Start(ctx, id)
		require.NoError(t, err)

		sess, err := svc.Fail(ctx, id, "budget exceeded")
		require.NoError(t, err)
		assert.Equal(t, session.StatusFailed, sess.Status)
		assert.Equal(t, "budget exceeded", sess.MetaData["error"])
	})

	t.Run("terminal sessions never mutate", func(t *testing.T) {
		id := createSession(t, svc, models.CreateSessionRequest{})
		_, err := svc.Cancel(ctx, id)
		require.NoError(t, err)

		_, err = svc.Complete(ctx, id)
		assert.ErrorIs(t, err, services.ErrTerminalState)
		_, err = svc.Fail(ctx, id, "too late")
		assert.ErrorIs(t, err, services.ErrTerminalState)
	})

	t.Run("reset returns a terminal session to pending", func(t *testing.T) {
		id := createSession(t, svc, models.CreateSessionRequest{StoryCount: 1})
		_, err := svc.Start(ctx, id)
		require.NoError(t, err)
		_, err = svc.RecordStoryOutcome(ctx, id, true)
		require.NoError(t, err)
		_, err = svc.Complete(ctx, id)
		require.NoError(t, err)

		sess, err := svc.Reset(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, session.StatusPending, sess.Status)
		assert.Zero(t, sess.StoriesCompleted)
		assert.Nil(t, sess.StartedAt)
		assert.Nil(t, sess.CompletedAt)
	})
}

func TestSessionService_RecordStoryOutcome(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	id := createSession(t, svc, models.CreateSessionRequest{StoryCount: 2})
	_, err := svc.Start(ctx, id)
	require.NoError(t, err)

	sess, err := svc.RecordStoryOutcome(ctx, id, true)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.StoriesCompleted)

	sess, err = svc.RecordStoryOutcome(ctx, id, false)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.StoriesFailed)

	// completed + failed == story_count: further outcomes are rejected
	_, err = svc.RecordStoryOutcome(ctx, id, true)
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestSessionService_AddUsage(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	id := createSession(t, svc, models.CreateSessionRequest{})
	_, err := svc.AddUsage(ctx, id, 1000, 0.25)
	require.NoError(t, err)

	sess, err := svc.AddUsage(ctx, id, 500, 0.1)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), sess.TokenCount)
	assert.InDelta(t, 0.35, sess.ActualCostUsd, 1e-9)
}

func TestSessionService_ListAndDelete(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	a := createSession(t, svc, models.CreateSessionRequest{})
	b := createSession(t, svc, models.CreateSessionRequest{})
	_, err := svc.Start(ctx, b)
	require.NoError(t, err)

	running, err := svc.List(ctx, string(session.StatusInProgress))
	require.NoError(t, err)
	require.Len(t, running, 1)
	assert.Equal(t, b, running[0].ID)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, svc.Delete(ctx, a))
	assert.ErrorIs(t, svc.Delete(ctx, a), services.ErrNotFound)
	_, err = svc.Get(ctx, a)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
