// Package taskqueue implements the Redis-backed per-domain task queues and
// the supervisor that dispatches typed work onto them.
package taskqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Boomerang-Apps/wave/pkg/config"
	"github.com/Boomerang-Apps/wave/pkg/models"
)

const (
	taskKeyPrefix   = "wave:task:"
	resultKeyPrefix = "wave:result:"
	queueKeyPrefix  = "wave:tasks:"
	resultsChannel  = "wave:results"
)

// ErrQueueEmpty is returned when a blocking dequeue times out.
var ErrQueueEmpty = errors.New("queue is empty")

// Queue is the Redis task queue. Each domain has a FIFO list; task payloads
// and results live in keys with a 24 h TTL.
type Queue struct {
	client       *redis.Client
	resultTTL    time.Duration
	pollInterval time.Duration
}

// New creates a queue from config.
func New(client *redis.Client, cfg config.QueueConfig) *Queue {
	return &Queue{
		client:       client,
		resultTTL:    cfg.ResultTTL,
		pollInterval: cfg.PollInterval,
	}
}

func queueKey(domain models.Domain) string { return queueKeyPrefix + string(domain) }
func taskKey(taskID string) string         { return taskKeyPrefix + taskID }
func resultKey(taskID string) string       { return resultKeyPrefix + taskID }

// Enqueue stores the task payload, pushes its ID onto the domain list, and
// announces it on the results channel.
func (q *Queue) Enqueue(ctx context.Context, task *models.AgentTask) error {
	if !task.Domain.IsValid() {
		return fmt.Errorf("invalid task domain %q", task.Domain)
	}
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to serialize task: %w", err)
	}

	pipe := q.client.TxPipeline()
	pipe.HSet(ctx, taskKey(task.TaskID), map[string]interface{}{
		"data":        payload,
		"status":      string(models.TaskPending),
		"queue":       string(task.Domain),
		"enqueued_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	pipe.Expire(ctx, taskKey(task.TaskID), q.resultTTL)
	pipe.LPush(ctx, queueKey(task.Domain), task.TaskID)
	pipe.Publish(ctx, resultsChannel, "task_enqueued:"+task.TaskID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to enqueue task %s: %w", task.TaskID, err)
	}

	slog.Debug("Task enqueued", "task_id", task.TaskID, "domain", string(task.Domain))
	return nil
}

// Dequeue blocks up to timeout for the next task on the domain list and
// marks it assigned. Returns ErrQueueEmpty on timeout.
func (q *Queue) Dequeue(ctx context.Context, domain models.Domain, timeout time.Duration) (*models.AgentTask, error) {
	values, err := q.client.BRPop(ctx, timeout, queueKey(domain)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrQueueEmpty
		}
		return nil, fmt.Errorf("failed to dequeue from %s: %w", domain, err)
	}
	taskID := values[1]

	raw, err := q.client.HGet(ctx, taskKey(taskID), "data").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load task %s: %w", taskID, err)
	}
	var task models.AgentTask
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		return nil, fmt.Errorf("failed to deserialize task %s: %w", taskID, err)
	}

	if err := q.client.HSet(ctx, taskKey(taskID),
		"status", string(models.TaskAssigned),
		"assigned_at", time.Now().UTC().Format(time.RFC3339Nano),
	).Err(); err != nil {
		return nil, fmt.Errorf("failed to mark task %s assigned: %w", taskID, err)
	}
	return &task, nil
}

// MarkInProgress records which agent picked the task up.
func (q *Queue) MarkInProgress(ctx context.Context, taskID, agentID string) error {
	err := q.client.HSet(ctx, taskKey(taskID),
		"status", string(models.TaskInProgress),
		"agent_id", agentID,
		"started_at", time.Now().UTC().Format(time.RFC3339Nano),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to mark task %s in progress: %w", taskID, err)
	}
	return nil
}

// SubmitResult stores a completed task's result, updates the task status,
// and announces completion on the results channel.
func (q *Queue) SubmitResult(ctx context.Context, result *models.TaskResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	pipe := q.client.TxPipeline()
	pipe.Set(ctx, resultKey(result.TaskID), payload, q.resultTTL)
	pipe.HSet(ctx, taskKey(result.TaskID),
		"status", string(result.Status),
		"completed_at", time.Now().UTC().Format(time.RFC3339Nano),
		"duration", fmt.Sprintf("%.3f", result.DurationSeconds),
	)
	pipe.Publish(ctx, resultsChannel, "task_completed:"+result.TaskID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to submit result for %s: %w", result.TaskID, err)
	}
	return nil
}

// GetResult returns the stored result for a task, or nil when none exists
// yet.
func (q *Queue) GetResult(ctx context.Context, taskID string) (*models.TaskResult, error) {
	raw, err := q.client.Get(ctx, resultKey(taskID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load result for %s: %w", taskID, err)
	}
	var result models.TaskResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to deserialize result for %s: %w", taskID, err)
	}
	return &result, nil
}

// WaitForResult polls for the task's result until it arrives or the timeout
// elapses, when it returns a synthetic timeout result.
func (q *Queue) WaitForResult(ctx context.Context, taskID string, timeout time.Duration) (*models.TaskResult, error) {
	deadline := time.Now().Add(timeout)
	for {
		result, err := q.GetResult(ctx, taskID)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
		if time.Now().After(deadline) {
			return models.TimeoutResult(taskID), nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(q.pollInterval):
		}
	}
}

// WaitForMultiple waits for every listed task, sharing one deadline.
// Missing results at the deadline become synthetic timeout results.
func (q *Queue) WaitForMultiple(ctx context.Context, taskIDs []string, timeout time.Duration) (map[string]*models.TaskResult, error) {
	deadline := time.Now().Add(timeout)
	results := make(map[string]*models.TaskResult, len(taskIDs))

	for {
		for _, id := range taskIDs {
			if _, done := results[id]; done {
				continue
			}
			result, err := q.GetResult(ctx, id)
			if err != nil {
				return nil, err
			}
			if result != nil {
				results[id] = result
			}
		}
		if len(results) == len(taskIDs) {
			return results, nil
		}
		if time.Now().After(deadline) {
			for _, id := range taskIDs {
				if _, done := results[id]; !done {
					results[id] = models.TimeoutResult(id)
				}
			}
			return results, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(q.pollInterval):
		}
	}
}

// QueueDepth returns the number of waiting tasks on a domain list.
func (q *Queue) QueueDepth(ctx context.Context, domain models.Domain) (int64, error) {
	depth, err := q.client.LLen(ctx, queueKey(domain)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read queue depth for %s: %w", domain, err)
	}
	return depth, nil
}
