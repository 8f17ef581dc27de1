package taskqueue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boomerang-Apps/wave/pkg/config"
	"github.com/Boomerang-Apps/wave/pkg/models"
)

func newTestSupervisor(t *testing.T) (*Supervisor, *Queue) {
	t.Helper()
	queue, _ := newTestQueue(t)
	return NewSupervisor(queue, config.QueueConfig{PMTimeout: 60 * time.Second}), queue
}

func TestSupervisor_PMTimeoutClamped(t *testing.T) {
	queue, _ := newTestQueue(t)

	low := NewSupervisor(queue, config.QueueConfig{PMTimeout: time.Second})
	assert.Equal(t, 30*time.Second, low.PMTimeout())

	high := NewSupervisor(queue, config.QueueConfig{PMTimeout: time.Hour})
	assert.Equal(t, 600*time.Second, high.PMTimeout())
}

func TestSupervisor_Dispatch(t *testing.T) {
	sup, queue := newTestSupervisor(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		dispatch func() (string, error)
		domain   models.Domain
		action   models.TaskAction
	}{
		{"pm", func() (string, error) { return sup.DispatchToPM(ctx, "AUTH-001", nil) }, models.DomainPM, models.ActionPlan},
		{"cto", func() (string, error) { return sup.DispatchToCTO(ctx, "AUTH-001", nil) }, models.DomainCTO, models.ActionReview},
		{"fe", func() (string, error) { return sup.DispatchToFE(ctx, "AUTH-001", nil) }, models.DomainFE, models.ActionDevelop},
		{"be", func() (string, error) { return sup.DispatchToBE(ctx, "AUTH-001", nil) }, models.DomainBE, models.ActionDevelop},
		{"qa", func() (string, error) { return sup.DispatchToQA(ctx, "AUTH-001", nil) }, models.DomainQA, models.ActionValidate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			taskID, err := tc.dispatch()
			require.NoError(t, err)
			assert.NotEmpty(t, taskID)

			task, err := queue.Dequeue(ctx, tc.domain, time.Second)
			require.NoError(t, err)
			assert.Equal(t, taskID, task.TaskID)
			assert.Equal(t, tc.action, task.Action)
			assert.Equal(t, "AUTH-001", task.StoryID)
		})
	}
}

func TestSupervisor_DispatchParallelDev(t *testing.T) {
	sup, queue := newTestSupervisor(t)
	ctx := context.Background()

	tasks, err := sup.DispatchParallelDev(ctx, "AUTH-001",
		[]string{"src/ui/login.tsx"},
		[]string{"src/api/login.ts"},
		map[string]interface{}{"branch": "run-1/auth"})
	require.NoError(t, err)
	assert.NotEqual(t, tasks.FETaskID, tasks.BETaskID)

	fe, err := queue.Dequeue(ctx, models.DomainFE, time.Second)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"src/ui/login.tsx"}, fe.Payload["files"])
	assert.Equal(t, "run-1/auth", fe.Payload["branch"])

	be, err := queue.Dequeue(ctx, models.DomainBE, time.Second)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"src/api/login.ts"}, be.Payload["files"])
}

func TestSupervisor_WaitForParallelDev(t *testing.T) {
	sup, queue := newTestSupervisor(t)
	ctx := context.Background()

	tasks, err := sup.DispatchParallelDev(ctx, "AUTH-001", nil, nil, nil)
	require.NoError(t, err)

	require.NoError(t, queue.SubmitResult(ctx, &models.TaskResult{
		TaskID: tasks.FETaskID,
		Status: models.TaskCompleted,
	}))

	results, err := sup.WaitForParallelDev(ctx, tasks, 50*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, results[tasks.FETaskID].Status)
	assert.Equal(t, models.TaskTimeout, results[tasks.BETaskID].Status)
}
