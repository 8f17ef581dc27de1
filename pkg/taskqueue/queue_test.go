package taskqueue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boomerang-Apps/wave/pkg/config"
	"github.com/Boomerang-Apps/wave/pkg/models"
)

func newTestQueue(t *testing.T) (*Queue, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, config.QueueConfig{
		ResultTTL:    time.Hour,
		PollInterval: 10 * time.Millisecond,
	}), client
}

func newTask(domain models.Domain) *models.AgentTask {
	return &models.AgentTask{
		TaskID:    "task-" + string(domain) + "-1",
		StoryID:   "AUTH-001",
		Domain:    domain,
		Action:    models.ActionDevelop,
		Priority:  models.PriorityNormal,
		CreatedAt: time.Now().UTC(),
	}
}

func TestQueue_EnqueueDequeue(t *testing.T) {
	queue, client := newTestQueue(t)
	ctx := context.Background()

	task := newTask(models.DomainBE)
	require.NoError(t, queue.Enqueue(ctx, task))

	t.Run("task hash records queue metadata", func(t *testing.T) {
		fields, err := client.HGetAll(ctx, taskKey(task.TaskID)).Result()
		require.NoError(t, err)
		assert.Equal(t, string(models.TaskPending), fields["status"])
		assert.Equal(t, "be", fields["queue"])
		assert.NotEmpty(t, fields["enqueued_at"])
	})

	t.Run("depth reflects waiting tasks", func(t *testing.T) {
		depth, err := queue.QueueDepth(ctx, models.DomainBE)
		require.NoError(t, err)
		assert.Equal(t, int64(1), depth)
	})

	t.Run("dequeue returns the task and marks it assigned", func(t *testing.T) {
		got, err := queue.Dequeue(ctx, models.DomainBE, time.Second)
		require.NoError(t, err)
		assert.Equal(t, task.TaskID, got.TaskID)
		assert.Equal(t, models.DomainBE, got.Domain)

		status, err := client.HGet(ctx, taskKey(task.TaskID), "status").Result()
		require.NoError(t, err)
		assert.Equal(t, string(models.TaskAssigned), status)

		depth, err := queue.QueueDepth(ctx, models.DomainBE)
		require.NoError(t, err)
		assert.Zero(t, depth)
	})

	t.Run("empty queue times out", func(t *testing.T) {
		_, err := queue.Dequeue(ctx, models.DomainBE, 50*time.Millisecond)
		assert.ErrorIs(t, err, ErrQueueEmpty)
	})
}

func TestQueue_InvalidDomainRejected(t *testing.T) {
	queue, _ := newTestQueue(t)
	task := newTask("marketing")
	err := queue.Enqueue(context.Background(), task)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid task domain")
}

func TestQueue_DomainIsolation(t *testing.T) {
	queue, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, newTask(models.DomainFE)))

	_, err := queue.Dequeue(ctx, models.DomainQA, 50*time.Millisecond)
	assert.ErrorIs(t, err, ErrQueueEmpty)

	got, err := queue.Dequeue(ctx, models.DomainFE, time.Second)
	require.NoError(t, err)
	assert.Equal(t, models.DomainFE, got.Domain)
}

func TestQueue_Results(t *testing.T) {
	queue, client := newTestQueue(t)
	ctx := context.Background()

	task := newTask(models.DomainQA)
	require.NoError(t, queue.Enqueue(ctx, task))
	require.NoError(t, queue.MarkInProgress(ctx, task.TaskID, "qa-worker-1"))

	t.Run("no result yet reads as nil", func(t *testing.T) {
		result, err := queue.GetResult(ctx, task.TaskID)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("submitted result round-trips", func(t *testing.T) {
		require.NoError(t, queue.SubmitResult(ctx, &models.TaskResult{
			TaskID:          task.TaskID,
			Status:          models.TaskCompleted,
			Domain:          models.DomainQA,
			AgentID:         "qa-worker-1",
			DurationSeconds: 1.5,
			SafetyScore:     0.95,
		}))

		result, err := queue.GetResult(ctx, task.TaskID)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, models.TaskCompleted, result.Status)
		assert.Equal(t, 0.95, result.SafetyScore)

		status, err := client.HGet(ctx, taskKey(task.TaskID), "status").Result()
		require.NoError(t, err)
		assert.Equal(t, string(models.TaskCompleted), status)
	})
}

func TestQueue_WaitForResult(t *testing.T) {
	queue, _ := newTestQueue(t)
	ctx := context.Background()

	t.Run("returns once the result lands", func(t *testing.T) {
		task := newTask(models.DomainFE)
		require.NoError(t, queue.Enqueue(ctx, task))

		go func() {
			time.Sleep(30 * time.Millisecond)
			_ = queue.SubmitResult(ctx, &models.TaskResult{
				TaskID: task.TaskID,
				Status: models.TaskCompleted,
			})
		}()

		result, err := queue.WaitForResult(ctx, task.TaskID, time.Second)
		require.NoError(t, err)
		assert.Equal(t, models.TaskCompleted, result.Status)
	})

	t.Run("timeout yields a synthetic result", func(t *testing.T) {
		result, err := queue.WaitForResult(ctx, "never-finished", 50*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, models.TaskTimeout, result.Status)
		assert.Equal(t, "never-finished", result.TaskID)
	})
}

func TestQueue_WaitForMultiple(t *testing.T) {
	queue, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, queue.SubmitResult(ctx, &models.TaskResult{
		TaskID: "fe-task",
		Status: models.TaskCompleted,
	}))

	results, err := queue.WaitForMultiple(ctx, []string{"fe-task", "be-task"}, 50*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, models.TaskCompleted, results["fe-task"].Status)
	assert.Equal(t, models.TaskTimeout, results["be-task"].Status)
}
