package recovery_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boomerang-Apps/wave/ent/storyexecution"
	"github.com/Boomerang-Apps/wave/pkg/engine"
	"github.com/Boomerang-Apps/wave/pkg/gates"
	"github.com/Boomerang-Apps/wave/pkg/models"
	"github.com/Boomerang-Apps/wave/pkg/recovery"
	"github.com/Boomerang-Apps/wave/pkg/services"
	testdb "github.com/Boomerang-Apps/wave/test/database"
)

type recoveryFixture struct {
	manager   *recovery.Manager
	engine    *engine.Engine
	stories   *services.StoryService
	sessionID string
}

func newRecoveryFixture(t *testing.T) *recoveryFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	sess, err := sessions.Create(context.Background(), models.CreateSessionRequest{
		ProjectName: "checkout",
		StoryCount:  5,
	})
	require.NoError(t, err)

	stories := services.NewStoryService(client.Client)
	checkpoints := services.NewCheckpointService(client.Client)
	system, err := gates.NewSystem(gates.ModeStandard)
	require.NoError(t, err)

	return &recoveryFixture{
		manager:   recovery.NewManager(client.Client, stories, checkpoints, system),
		engine:    engine.New(client.Client, stories, checkpoints, system, 1, engine.Callbacks{}),
		stories:   stories,
		sessionID: sess.ID,
	}
}

// failStory starts a story, passes its first two gates, then fails it at
// gate 2 (max retries is 1, so a single failure escalates).
func (f *recoveryFixture) failStory(t *testing.T, storyID string) string {
	t.Helper()
	ctx := context.Background()
	execID, err := f.engine.StartExecution(ctx, models.CreateStoryExecutionRequest{
		SessionID: f.sessionID,
		StoryID:   storyID,
		Domain:    "auth",
	})
	require.NoError(t, err)

	for gate := 0; gate < 2; gate++ {
		require.NoError(t, f.engine.ExecuteGate(ctx, execID, models.GateResult{
			Gate:   gate,
			Status: models.GatePassed,
		}))
	}
	require.NoError(t, f.engine.ExecuteGate(ctx, execID, models.GateResult{
		Gate:   2,
		Status: models.GateFailed,
		Error:  "tests failed",
	}))
	return execID
}

func TestManager_RecoverStory_ResumeFromLast(t *testing.T) {
	f := newRecoveryFixture(t)
	ctx := context.Background()
	execID := f.failStory(t, "AUTH-001")

	require.NoError(t, f.manager.RecoverStory(ctx, f.sessionID, "AUTH-001", recovery.ResumeFromLast, 0))

	exec, err := f.stories.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, storyexecution.StatusInProgress, exec.Status)
	assert.Nil(t, exec.ErrorMessage)
	assert.Nil(t, exec.FailedAt)
	// gate position is untouched: the story resumes where it stopped
	assert.Equal(t, storyexecution.CurrentGate("gate-2"), exec.CurrentGate)

	// idempotent: recovering again converges to the same state
	require.NoError(t, f.manager.RecoverStory(ctx, f.sessionID, "AUTH-001", recovery.ResumeFromLast, 0))
	exec, err = f.stories.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, storyexecution.StatusInProgress, exec.Status)
}

func TestManager_RecoverStory_ResumeFromGate(t *testing.T) {
	f := newRecoveryFixture(t)
	ctx := context.Background()
	execID := f.failStory(t, "AUTH-001")

	t.Run("rewinds to a checkpointed gate", func(t *testing.T) {
		require.NoError(t, f.manager.RecoverStory(ctx, f.sessionID, "AUTH-001", recovery.ResumeFromGate, 1))

		exec, err := f.stories.Get(ctx, execID)
		require.NoError(t, err)
		assert.Equal(t, storyexecution.StatusInProgress, exec.Status)
		assert.Equal(t, storyexecution.CurrentGate("gate-1"), exec.CurrentGate)
	})

	t.Run("gate outside the system rejected", func(t *testing.T) {
		err := f.manager.RecoverStory(ctx, f.sessionID, "AUTH-001", recovery.ResumeFromGate, 42)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("gate never reached has no checkpoint", func(t *testing.T) {
		err := f.manager.RecoverStory(ctx, f.sessionID, "AUTH-001", recovery.ResumeFromGate, 7)
		assert.Error(t, err)
	})
}

func TestManager_RecoverStory_Restart(t *testing.T) {
	f := newRecoveryFixture(t)
	ctx := context.Background()
	execID := f.failStory(t, "AUTH-001")

	require.NoError(t, f.manager.RecoverStory(ctx, f.sessionID, "AUTH-001", recovery.Restart, 0))

	exec, err := f.stories.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, storyexecution.StatusPending, exec.Status)
	assert.Equal(t, storyexecution.CurrentGate("gate-0"), exec.CurrentGate)
	assert.Zero(t, exec.RetryCount)
	assert.Nil(t, exec.StartedAt)
}

func TestManager_RecoverStory_Skip(t *testing.T) {
	f := newRecoveryFixture(t)
	ctx := context.Background()
	execID := f.failStory(t, "AUTH-001")

	require.NoError(t, f.manager.RecoverStory(ctx, f.sessionID, "AUTH-001", recovery.Skip, 0))

	exec, err := f.stories.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, storyexecution.StatusCancelled, exec.Status)

	// cancelled is terminal: no further recovery
	err = f.manager.RecoverStory(ctx, f.sessionID, "AUTH-001", recovery.Skip, 0)
	assert.ErrorIs(t, err, recovery.ErrNotRecoverable)
}

func TestManager_RecoverStory_Validation(t *testing.T) {
	f := newRecoveryFixture(t)
	ctx := context.Background()
	f.failStory(t, "AUTH-001")

	err := f.manager.RecoverStory(ctx, f.sessionID, "AUTH-001", "REWIND_TIME", 0)
	assert.True(t, services.IsValidationError(err))

	err = f.manager.RecoverStory(ctx, f.sessionID, "GHOST-001", recovery.Restart, 0)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestManager_FindRecoveryPoints(t *testing.T) {
	f := newRecoveryFixture(t)
	ctx := context.Background()
	f.failStory(t, "AUTH-001")

	points, err := f.manager.FindRecoveryPoints(ctx, f.sessionID, "AUTH-001")
	require.NoError(t, err)
	// story_start + two gate passes + one error
	require.Len(t, points, 4)

	last := points[len(points)-1]
	assert.Equal(t, "error", last.Type)
	assert.False(t, last.CanResume, "trailing error checkpoint is a dead end")
	for _, p := range points[:len(points)-1] {
		assert.True(t, p.CanResume)
	}

	lastPoint, err := f.manager.GetLastRecoveryPoint(ctx, f.sessionID, "AUTH-001")
	require.NoError(t, err)
	assert.Equal(t, last.CheckpointID, lastPoint.CheckpointID)
	assert.False(t, lastPoint.CanResume)
}

func TestManager_SessionRecovery(t *testing.T) {
	f := newRecoveryFixture(t)
	ctx := context.Background()

	f.failStory(t, "AUTH-001")
	f.failStory(t, "PAY-001")
	require.NoError(t, f.manager.RecoverStory(ctx, f.sessionID, "PAY-001", recovery.Skip, 0))

	t.Run("status summarizes recoverability", func(t *testing.T) {
		status, err := f.manager.GetRecoveryStatus(ctx, f.sessionID)
		require.NoError(t, err)
		assert.Equal(t, 2, status.TotalStories)
		assert.Equal(t, []string{"AUTH-001"}, status.Recoverable)
		assert.Equal(t, 1, status.ByStatus["failed"])
		assert.Equal(t, 1, status.ByStatus["cancelled"])
	})

	t.Run("recover session touches only recoverable stories", func(t *testing.T) {
		result, err := f.manager.RecoverSession(ctx, f.sessionID, recovery.ResumeFromLast)
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalStories)
		assert.Equal(t, []string{"AUTH-001"}, result.Recovered)
		assert.Empty(t, result.Failed)
	})

	t.Run("can recover", func(t *testing.T) {
		ok, err := f.manager.CanRecover(ctx, f.sessionID, "AUTH-001")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = f.manager.CanRecover(ctx, f.sessionID, "PAY-001")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = f.manager.CanRecover(ctx, f.sessionID, "GHOST-001")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
