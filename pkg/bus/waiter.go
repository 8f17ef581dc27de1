package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Boomerang-Apps/wave/pkg/models"
)

// ResultWaiter is a handler-notified latch keyed by task ID. A bus handler
// calls Notify when a completion event arrives; waiters unblock within one
// bus round-trip instead of polling.
type ResultWaiter struct {
	mu      sync.Mutex
	pending map[string]chan *models.TaskResult
}

// NewResultWaiter creates an empty waiter.
func NewResultWaiter() *ResultWaiter {
	return &ResultWaiter{pending: map[string]chan *models.TaskResult{}}
}

// Expect registers interest in a task's result. Must be called before the
// result can arrive.
func (w *ResultWaiter) Expect(taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.pending[taskID]; !ok {
		w.pending[taskID] = make(chan *models.TaskResult, 1)
	}
}

// Notify fulfils a registered expectation. Results for unexpected tasks are
// dropped.
func (w *ResultWaiter) Notify(taskID string, result *models.TaskResult) {
	w.mu.Lock()
	ch, ok := w.pending[taskID]
	w.mu.Unlock()
	if !ok {
		return
	}
	select {
	case ch <- result:
	default:
	}
}

// Wait blocks until the task's result arrives, the timeout elapses, or the
// context is cancelled. On timeout a synthetic timeout result is returned.
func (w *ResultWaiter) Wait(ctx context.Context, taskID string, timeout time.Duration) (*models.TaskResult, error) {
	w.mu.Lock()
	ch, ok := w.pending[taskID]
	w.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no expectation registered for task %s", taskID)
	}
	defer w.forget(taskID)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-ch:
		return result, nil
	case <-timer.C:
		return models.TimeoutResult(taskID), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (w *ResultWaiter) forget(taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.pending, taskID)
}
