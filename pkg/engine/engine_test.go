package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boomerang-Apps/wave/ent/checkpoint"
	"github.com/Boomerang-Apps/wave/ent/storyexecution"
	"github.com/Boomerang-Apps/wave/pkg/engine"
	"github.com/Boomerang-Apps/wave/pkg/gates"
	"github.com/Boomerang-Apps/wave/pkg/models"
	"github.com/Boomerang-Apps/wave/pkg/services"
	testdb "github.com/Boomerang-Apps/wave/test/database"
)

type engineFixture struct {
	engine      *engine.Engine
	stories     *services.StoryService
	checkpoints *services.CheckpointService
	sessionID   string
}

func newEngineFixture(t *testing.T, maxRetries int, callbacks engine.Callbacks) *engineFixture {
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

	return &engineFixture{
		engine:      engine.New(client.Client, stories, checkpoints, system, maxRetries, callbacks),
		stories:     stories,
		checkpoints: checkpoints,
		sessionID:   sess.ID,
	}
}

func (f *engineFixture) startStory(t *testing.T, storyID string) string {
	t.Helper()
	id, err := f.engine.StartExecution(context.Background(), models.CreateStoryExecutionRequest{
		SessionID: f.sessionID,
		StoryID:   storyID,
		Title:     "Login form",
		Domain:    "auth",
		Agent:     "fe-agent",
		ACTotal:   3,
	})
	require.NoError(t, err)
	return id
}

func TestEngine_StartExecution(t *testing.T) {
	f := newEngineFixture(t, 3, engine.Callbacks{})
	ctx := context.Background()

	execID := f.startStory(t, "AUTH-001")

	exec, err := f.stories.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, storyexecution.StatusInProgress, exec.Status)
	assert.Equal(t, storyexecution.CurrentGate("gate-0"), exec.CurrentGate)
	assert.NotNil(t, exec.StartedAt)

	cps, err := f.checkpoints.ListByStory(ctx, f.sessionID, "AUTH-001")
	require.NoError(t, err)
	require.Len(t, cps, 1)
	assert.Equal(t, checkpoint.CheckpointTypeStoryStart, cps[0].CheckpointType)

	// duplicate (session, story) pair rejected
	_, err = f.engine.StartExecution(ctx, models.CreateStoryExecutionRequest{
		SessionID: f.sessionID,
		StoryID:   "AUTH-001",
		Domain:    "auth",
	})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestEngine_ExecuteGate_Pass(t *testing.T) {
	var completed []gates.Gate
	f := newEngineFixture(t, 3, engine.Callbacks{
		OnGateComplete: func(executionID string, gate gates.Gate, result models.GateResult) {
			completed = append(completed, gate)
		},
	})
	ctx := context.Background()
	execID := f.startStory(t, "AUTH-001")

	require.NoError(t, f.engine.ExecuteGate(ctx, execID, models.GateResult{
		Gate:     0,
		Status:   models.GatePassed,
		ACPassed: 3,
		ACTotal:  3,
	}))

	state, err := f.engine.GetCurrentState(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentGate)
	assert.Equal(t, 3, state.ACPassed)
	assert.Equal(t, []gates.Gate{0}, completed)

	cp, err := f.checkpoints.FindGateCheckpoint(ctx, f.sessionID, "AUTH-001", "gate-0")
	require.NoError(t, err)
	assert.Equal(t, "DESIGN_VALIDATED passed", cp.CheckpointName)
	assert.Equal(t, state.LatestCheckpoint, cp.ID)
}

func TestEngine_ExecuteGate_WrongGate(t *testing.T) {
	f := newEngineFixture(t, 3, engine.Callbacks{})
	execID := f.startStory(t, "AUTH-001")

	err := f.engine.ExecuteGate(context.Background(), execID, models.GateResult{
		Gate:   5,
		Status: models.GatePassed,
	})
	assert.ErrorIs(t, err, engine.ErrWrongGate)
}

func TestEngine_ExecuteGate_TerminalPassCompletesStory(t *testing.T) {
	f := newEngineFixture(t, 3, engine.Callbacks{})
	ctx := context.Background()
	execID := f.startStory(t, "AUTH-001")

	for gate := 0; gate <= 9; gate++ {
		require.NoError(t, f.engine.ExecuteGate(ctx, execID, models.GateResult{
			Gate:   gate,
			Status: models.GatePassed,
		}))
	}

	exec, err := f.stories.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, storyexecution.StatusComplete, exec.Status)
	assert.NotNil(t, exec.CompletedAt)

	// a completed story accepts no further gate results
	err = f.engine.ExecuteGate(ctx, execID, models.GateResult{Gate: 9, Status: models.GatePassed})
	assert.ErrorIs(t, err, engine.ErrInvalidTransition)
}

func TestEngine_ExecuteGate_FailAndEscalate(t *testing.T) {
	f := newEngineFixture(t, 2, engine.Callbacks{})
	ctx := context.Background()
	execID := f.startStory(t, "AUTH-001")

	// first failure: retry budget remains, story stays in progress
	require.NoError(t, f.engine.ExecuteGate(ctx, execID, models.GateResult{
		Gate:   0,
		Status: models.GateFailed,
		Error:  "lint errors",
	}))
	exec, err := f.stories.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, storyexecution.StatusInProgress, exec.Status)
	assert.Equal(t, 1, exec.RetryCount)

	// second failure hits max retries: story fails with the gate error
	require.NoError(t, f.engine.ExecuteGate(ctx, execID, models.GateResult{
		Gate:   0,
		Status: models.GateFailed,
		Error:  "lint errors",
	}))
	exec, err = f.stories.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, storyexecution.StatusFailed, exec.Status)
	assert.Equal(t, 2, exec.RetryCount)
	require.NotNil(t, exec.ErrorMessage)
	assert.Equal(t, "DESIGN_VALIDATED failed: lint errors", *exec.ErrorMessage)

	cps, err := f.checkpoints.ListByType(ctx, f.sessionID, checkpoint.CheckpointTypeError)
	require.NoError(t, err)
	assert.Len(t, cps, 1)
}

func TestEngine_TransitionState(t *testing.T) {
	f := newEngineFixture(t, 3, engine.Callbacks{})
	ctx := context.Background()
	execID := f.startStory(t, "AUTH-001")

	require.NoError(t, f.engine.TransitionState(ctx, execID, storyexecution.StatusReview, "QA handoff"))

	exec, err := f.stories.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, storyexecution.StatusReview, exec.Status)
	assert.Equal(t, "QA handoff", exec.MetaData["last_transition_reason"])

	err = f.engine.TransitionState(ctx, execID, storyexecution.StatusPending, "rewind")
	assert.ErrorIs(t, err, engine.ErrInvalidTransition)
}

func TestEngine_CompleteAndFailExecution(t *testing.T) {
	f := newEngineFixture(t, 3, engine.Callbacks{})
	ctx := context.Background()

	t.Run("complete records artefacts", func(t *testing.T) {
		execID := f.startStory(t, "AUTH-001")
		require.NoError(t, f.engine.CompleteExecution(ctx, execID, models.CompleteExecutionRequest{
			FilesCreated: []string{"src/auth/login.ts"},
			BranchName:   "run-1/auth",
			CommitSHA:    "abc123",
			TestsPassing: true,
			Coverage:     0.85,
		}))

		exec, err := f.stories.Get(ctx, execID)
		require.NoError(t, err)
		assert.Equal(t, storyexecution.StatusComplete, exec.Status)
		require.NotNil(t, exec.BranchName)
		assert.Equal(t, "run-1/auth", *exec.BranchName)
		require.NotNil(t, exec.TestsPassing)
		assert.True(t, *exec.TestsPassing)
	})

	t.Run("fail records error checkpoint", func(t *testing.T) {
		var reported error
		f := newEngineFixture(t, 3, engine.Callbacks{
			OnError: func(executionID string, err error) { reported = err },
		})
		execID := f.startStory(t, "AUTH-002")
		require.NoError(t, f.engine.FailExecution(ctx, execID, "emergency stop"))

		exec, err := f.stories.Get(ctx, execID)
		require.NoError(t, err)
		assert.Equal(t, storyexecution.StatusFailed, exec.Status)
		require.NotNil(t, exec.ErrorMessage)
		assert.Equal(t, "emergency stop", *exec.ErrorMessage)
		require.Error(t, reported)
		assert.Equal(t, "emergency stop", reported.Error())
	})
}
