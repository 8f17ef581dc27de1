package taskqueue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Boomerang-Apps/wave/pkg/config"
	"github.com/Boomerang-Apps/wave/pkg/models"
)

// Supervisor layers domain-typed dispatch over the queue.
type Supervisor struct {
	queue     *Queue
	pmTimeout time.Duration
}

// NewSupervisor creates a supervisor. The PM timeout is clamped to the
// supported range.
func NewSupervisor(queue *Queue, cfg config.QueueConfig) *Supervisor {
	return &Supervisor{
		queue:     queue,
		pmTimeout: config.ClampPMTimeout(cfg.PMTimeout),
	}
}

// PMTimeout returns the effective, clamped PM wait.
func (s *Supervisor) PMTimeout() time.Duration { return s.pmTimeout }

func (s *Supervisor) dispatch(ctx context.Context, domain models.Domain, action models.TaskAction, storyID string, payload map[string]interface{}, timeout time.Duration) (string, error) {
	task := &models.AgentTask{
		TaskID:         uuid.NewString(),
		StoryID:        storyID,
		Domain:         domain,
		Action:         action,
		Payload:        payload,
		Priority:       models.PriorityNormal,
		TimeoutSeconds: int(timeout.Seconds()),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.queue.Enqueue(ctx, task); err != nil {
		return "", fmt.Errorf("failed to dispatch %s task: %w", domain, err)
	}
	return task.TaskID, nil
}

// DispatchToPM sends a planning task to the product-manager agent.
func (s *Supervisor) DispatchToPM(ctx context.Context, storyID string, payload map[string]interface{}) (string, error) {
	return s.dispatch(ctx, models.DomainPM, models.ActionPlan, storyID, payload, s.pmTimeout)
}

// DispatchToCTO sends a review task to the CTO agent.
func (s *Supervisor) DispatchToCTO(ctx context.Context, storyID string, payload map[string]interface{}) (string, error) {
	return s.dispatch(ctx, models.DomainCTO, models.ActionReview, storyID, payload, s.pmTimeout)
}

// DispatchToFE sends a development task to the frontend agent.
func (s *Supervisor) DispatchToFE(ctx context.Context, storyID string, payload map[string]interface{}) (string, error) {
	return s.dispatch(ctx, models.DomainFE, models.ActionDevelop, storyID, payload, s.pmTimeout)
}

// DispatchToBE sends a development task to the backend agent.
func (s *Supervisor) DispatchToBE(ctx context.Context, storyID string, payload map[string]interface{}) (string, error) {
	return s.dispatch(ctx, models.DomainBE, models.ActionDevelop, storyID, payload, s.pmTimeout)
}

// DispatchToQA sends a validation task to the QA agent.
func (s *Supervisor) DispatchToQA(ctx context.Context, storyID string, payload map[string]interface{}) (string, error) {
	return s.dispatch(ctx, models.DomainQA, models.ActionValidate, storyID, payload, s.pmTimeout)
}

// ParallelDevTasks pairs the task IDs of a simultaneous FE/BE dispatch.
type ParallelDevTasks struct {
	FETaskID string `json:"fe_task_id"`
	BETaskID string `json:"be_task_id"`
}

// DispatchParallelDev enqueues frontend and backend development for the
// same story at once.
func (s *Supervisor) DispatchParallelDev(ctx context.Context, storyID string, feFiles, beFiles []string, payload map[string]interface{}) (*ParallelDevTasks, error) {
	fePayload := clonePayload(payload)
	fePayload["files"] = feFiles
	feID, err := s.DispatchToFE(ctx, storyID, fePayload)
	if err != nil {
		return nil, err
	}

	bePayload := clonePayload(payload)
	bePayload["files"] = beFiles
	beID, err := s.DispatchToBE(ctx, storyID, bePayload)
	if err != nil {
		return nil, err
	}
	return &ParallelDevTasks{FETaskID: feID, BETaskID: beID}, nil
}

// WaitForResult delegates to the queue's poll-based wait.
func (s *Supervisor) WaitForResult(ctx context.Context, taskID string, timeout time.Duration) (*models.TaskResult, error) {
	return s.queue.WaitForResult(ctx, taskID, timeout)
}

// WaitForParallelDev waits for both halves of a parallel dev dispatch.
func (s *Supervisor) WaitForParallelDev(ctx context.Context, tasks *ParallelDevTasks, timeout time.Duration) (map[string]*models.TaskResult, error) {
	return s.queue.WaitForMultiple(ctx, []string{tasks.FETaskID, tasks.BETaskID}, timeout)
}

func clonePayload(payload map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		out[k] = v
	}
	return out
}
