package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boomerang-Apps/wave/ent/storyexecution"
	"github.com/Boomerang-Apps/wave/pkg/engine"
	"github.com/Boomerang-Apps/wave/pkg/gates"
	"github.com/Boomerang-Apps/wave/pkg/llm"
	"github.com/Boomerang-Apps/wave/pkg/models"
	"github.com/Boomerang-Apps/wave/pkg/safety"
	"github.com/Boomerang-Apps/wave/pkg/services"
	testdb "github.com/Boomerang-Apps/wave/test/database"
)

type runnerFixture struct {
	runner    *engine.Runner
	stories   *services.StoryService
	sessions  *services.SessionService
	sessionID string
}

func newRunnerFixture(t *testing.T, maxRetries int, provider llm.Provider, budget *safety.BudgetTracker) *runnerFixture {
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
	eng := engine.New(client.Client, stories, checkpoints, system, maxRetries, engine.Callbacks{})

	return &runnerFixture{
		runner:    engine.NewRunner(eng, sessions, provider, safety.NewChecker(0.85), budget, nil, ""),
		stories:   stories,
		sessions:  sessions,
		sessionID: sess.ID,
	}
}

func loginTask() models.StoryTask {
	return models.StoryTask{
		StoryID: "AUTH-001",
		Title:   "Login form",
		Domain:  "auth",
		Agent:   "fe-agent",
		AcceptanceCriteria: []string{
			"user can log in with email and password",
			"invalid credentials show an error",
		},
	}
}

// erroringProvider always fails, as if the upstream API were down.
type erroringProvider struct {
	llm.BaseProvider
}

func (p *erroringProvider) Name() string    { return "erroring" }
func (p *erroringProvider) Available() bool { return true }
func (p *erroringProvider) CreateMessage(context.Context, *llm.MessageRequest) (*llm.MessageResponse, error) {
	return nil, assert.AnError
}

func TestRunner_RunStory_AllGatesPass(t *testing.T) {
	f := newRunnerFixture(t, 3, llm.NewSimulatedProvider(), safety.NewBudgetTracker(1_000_000, 0, true))
	ctx := context.Background()

	result, err := f.runner.RunStory(ctx, f.sessionID, loginTask(), ".worktrees/auth")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Positive(t, result.TokensUsed)
	assert.Positive(t, result.CostUSD)
	assert.Positive(t, result.Duration)

	exec, err := f.stories.GetByStory(ctx, f.sessionID, "AUTH-001")
	require.NoError(t, err)
	assert.Equal(t, storyexecution.StatusComplete, exec.Status)

	// every gate's usage lands on the session
	sess, err := f.sessions.Get(ctx, f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, result.TokensUsed, sess.TokenCount)
}

func TestRunner_RunStory_BudgetHardStop(t *testing.T) {
	// a one-token hard limit is blown by the first gate
	f := newRunnerFixture(t, 3, llm.NewSimulatedProvider(), safety.NewBudgetTracker(1, 0, true))
	ctx := context.Background()

	result, err := f.runner.RunStory(ctx, f.sessionID, loginTask(), ".worktrees/auth")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrEmergencyStop)
	assert.Contains(t, result.Error, "token budget exceeded")

	exec, err := f.stories.GetByStory(ctx, f.sessionID, "AUTH-001")
	require.NoError(t, err)
	assert.Equal(t, storyexecution.StatusFailed, exec.Status)
}

func TestRunner_RunStory_SafetyEmergencyStop(t *testing.T) {
	provider := llm.NewSimulatedProvider()
	provider.Responder = func(*llm.MessageRequest) string {
		return "DROP TABLE users;"
	}
	f := newRunnerFixture(t, 3, provider, safety.NewBudgetTracker(1_000_000, 0, true))
	ctx := context.Background()

	result, err := f.runner.RunStory(ctx, f.sessionID, loginTask(), ".worktrees/auth")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrEmergencyStop)
	assert.Contains(t, result.Error, "safety score")
	assert.False(t, result.Success)

	exec, err := f.stories.GetByStory(ctx, f.sessionID, "AUTH-001")
	require.NoError(t, err)
	assert.Equal(t, storyexecution.StatusFailed, exec.Status)
}

func TestRunner_RunStory_UnsafeOutputFailsGate(t *testing.T) {
	// unsafe but not severe: the gate fails, retries run out, the story
	// ends failed without an emergency stop
	provider := llm.NewSimulatedProvider()
	provider.Responder = func(*llm.MessageRequest) string {
		return "run rm -rf /var/www to clean up"
	}
	f := newRunnerFixture(t, 1, provider, safety.NewBudgetTracker(1_000_000, 0, true))
	ctx := context.Background()

	result, err := f.runner.RunStory(ctx, f.sessionID, loginTask(), ".worktrees/auth")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "story AUTH-001 in status failed", result.Error)

	exec, err := f.stories.GetByStory(ctx, f.sessionID, "AUTH-001")
	require.NoError(t, err)
	assert.Equal(t, storyexecution.StatusFailed, exec.Status)
	require.NotNil(t, exec.ErrorMessage)
	assert.Contains(t, *exec.ErrorMessage, "safety check blocked output")
}

func TestRunner_RunStory_ProviderErrorConsumesRetries(t *testing.T) {
	f := newRunnerFixture(t, 1, &erroringProvider{}, safety.NewBudgetTracker(1_000_000, 0, true))
	ctx := context.Background()

	result, err := f.runner.RunStory(ctx, f.sessionID, loginTask(), ".worktrees/auth")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Zero(t, result.TokensUsed)
	assert.Equal(t, "story AUTH-001 in status failed", result.Error)
}
