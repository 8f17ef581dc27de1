package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscalate(t *testing.T) {
	state := Escalate(WorkflowState{Status: StatusRunning}, EscalationContext{
		RunID:      "run-1",
		Reason:     "max retries exceeded",
		RetryCount: 3,
		MaxRetries: 3,
	})

	assert.Equal(t, StatusPaused, state.Status)
	assert.True(t, state.NeedsHuman)
	require.NotNil(t, state.Escalation)
	assert.Equal(t, "max retries exceeded", state.Escalation.Reason)
	assert.False(t, state.Escalation.EscalatedAt.IsZero())
}

func TestResumeWorkflow(t *testing.T) {
	paused := Escalate(WorkflowState{Status: StatusRunning}, EscalationContext{RunID: "run-1"})

	t.Run("approval resumes", func(t *testing.T) {
		state, err := ResumeWorkflow(paused, &HumanDecision{Approved: true, Reviewer: "ops"})
		require.NoError(t, err)
		assert.Equal(t, StatusRunning, state.Status)
		assert.False(t, state.NeedsHuman)
		assert.Nil(t, state.Escalation)
	})

	t.Run("rejection cancels", func(t *testing.T) {
		state, err := ResumeWorkflow(paused, &HumanDecision{Approved: false})
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, state.Status)
	})

	t.Run("running workflow cannot resume", func(t *testing.T) {
		_, err := ResumeWorkflow(WorkflowState{Status: StatusRunning}, &HumanDecision{Approved: true})
		assert.ErrorIs(t, err, ErrNotPaused)
	})

	t.Run("resume without decision fails", func(t *testing.T) {
		_, err := ResumeWorkflow(paused, nil)
		assert.ErrorIs(t, err, ErrNoDecision)
	})
}
