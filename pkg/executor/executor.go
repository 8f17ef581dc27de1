// Package executor runs story tasks in parallel with domain-conflict
// avoidance: each batch holds at most one story per domain, each story runs
// in its own worktree, and successful branches merge into an integration
// branch once every batch is done.
package executor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Boomerang-Apps/wave/pkg/models"
	"github.com/Boomerang-Apps/wave/pkg/worktree"
)

// AgentFn executes one story inside its dedicated worktree.
type AgentFn func(ctx context.Context, task models.StoryTask, worktreePath string) (models.StoryResult, error)

// Plan is one scheduling round: stories that can run now and stories that
// must wait for a later batch.
type Plan struct {
	ParallelBatch []models.StoryTask `json:"parallel_batch"`
	Waiting       []models.StoryTask `json:"waiting"`
	RunID         string             `json:"run_id"`
}

// Status summarizes a finished run.
type Status struct {
	TotalStories    int     `json:"total_stories"`
	Succeeded       int     `json:"succeeded"`
	Failed          int     `json:"failed"`
	TotalTokens     int64   `json:"total_tokens"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// Executor schedules and runs story batches.
type Executor struct {
	worktrees   *worktree.Manager
	maxParallel int

	mu      sync.Mutex
	results []models.StoryResult
	started time.Time
	ended   time.Time
}

// New creates an executor. maxParallel below 1 falls back to 4.
func New(worktrees *worktree.Manager, maxParallel int) *Executor {
	if maxParallel < 1 {
		maxParallel = 4
	}
	return &Executor{worktrees: worktrees, maxParallel: maxParallel}
}

// PlanBatch walks stories in input order; a story joins the batch iff its
// domain is unclaimed and the batch has room. Greedy and stable: equal
// inputs always produce equal plans.
func (e *Executor) PlanBatch(stories []models.StoryTask, runID string) Plan {
	if runID == "" {
		runID = uuid.NewString()[:8]
	}
	plan := Plan{RunID: runID}
	claimed := map[string]bool{}
	for _, story := range stories {
		if !claimed[story.Domain] && len(plan.ParallelBatch) < e.maxParallel {
			claimed[story.Domain] = true
			plan.ParallelBatch = append(plan.ParallelBatch, story)
			continue
		}
		plan.Waiting = append(plan.Waiting, story)
	}
	return plan
}

// Execute runs every story in conflict-free batches, then merges successful
// branches into the integration branch and cleans up all worktrees. A
// single story's failure never cancels its batch; merge failures are
// reported in the results' context but not re-raised.
func (e *Executor) Execute(ctx context.Context, stories []models.StoryTask, agentFn AgentFn) ([]models.StoryResult, error) {
	runID := uuid.NewString()[:8]
	e.mu.Lock()
	e.results = nil
	e.started = time.Now()
	e.mu.Unlock()

	defer func() {
		if err := e.worktrees.CleanupRunWorktrees(ctx, runID); err != nil {
			slog.Error("Worktree cleanup failed", "run_id", runID, "error", err)
		}
		e.mu.Lock()
		e.ended = time.Now()
		e.mu.Unlock()
	}()

	remaining := append([]models.StoryTask(nil), stories...)
	var all []models.StoryResult

	for len(remaining) > 0 {
		plan := e.PlanBatch(remaining, runID)
		batchResults := e.runBatch(ctx, plan, agentFn)
		all = append(all, batchResults...)
		remaining = plan.Waiting
	}

	e.mu.Lock()
	e.results = append([]models.StoryResult(nil), all...)
	e.mu.Unlock()

	e.mergeSuccessful(ctx, runID, all)
	return all, nil
}

// runBatch creates each story's worktree and dispatches the agent function
// to a bounded worker pool, collecting every result before returning.
func (e *Executor) runBatch(ctx context.Context, plan Plan, agentFn AgentFn) []models.StoryResult {
	results := make([]models.StoryResult, len(plan.ParallelBatch))
	g := &errgroup.Group{}
	g.SetLimit(e.maxParallel)

	for i, task := range plan.ParallelBatch {
		i, task := i, task
		g.Go(func() error {
			path, err := e.worktrees.CreateDomainWorktree(ctx, task.Domain, plan.RunID)
			if err != nil {
				results[i] = models.StoryResult{
					StoryID: task.StoryID,
					Domain:  task.Domain,
					Success: false,
					Error:   fmt.Sprintf("Failed to create worktree for %s", task.Domain),
				}
				slog.Error("Worktree creation failed", "story_id", task.StoryID, "domain", task.Domain, "error", err)
				return nil
			}
			results[i] = e.runAgent(ctx, task, path, agentFn)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// runAgent invokes the agent function with panic containment: exceptions
// become failed results instead of killing the batch.
func (e *Executor) runAgent(ctx context.Context, task models.StoryTask, worktreePath string, agentFn AgentFn) (result models.StoryResult) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result = models.StoryResult{
				StoryID:  task.StoryID,
				Domain:   task.Domain,
				Success:  false,
				Error:    fmt.Sprintf("agent panicked: %v", r),
				Duration: time.Since(started),
			}
			slog.Error("Agent panicked", "story_id", task.StoryID, "panic", r)
		}
	}()

	result, err := agentFn(ctx, task, worktreePath)
	result.StoryID = task.StoryID
	result.Domain = task.Domain
	if result.Duration == 0 {
		result.Duration = time.Since(started)
	}
	if err != nil {
		result.Success = false
		if result.Error == "" {
			result.Error = err.Error()
		}
	}
	return result
}

// mergeSuccessful merges successful stories' domain branches into the
// integration branch in completion order. Runs only when at least one
// story succeeded; conflicts and errors are logged, never raised.
func (e *Executor) mergeSuccessful(ctx context.Context, runID string, results []models.StoryResult) {
	var domains []string
	seen := map[string]bool{}
	for _, r := range results {
		if r.Success && !seen[r.Domain] {
			seen[r.Domain] = true
			domains = append(domains, r.Domain)
		}
	}
	if len(domains) == 0 {
		return
	}

	if _, err := e.worktrees.CreateIntegrationBranch(ctx, runID); err != nil {
		slog.Error("Integration branch creation failed", "run_id", runID, "error", err)
		return
	}
	merge, err := e.worktrees.MergeAllDomains(ctx, runID, domains)
	if err != nil {
		slog.Error("Integration merge failed", "run_id", runID, "error", err)
		return
	}
	if merge.HasConflicts {
		slog.Warn("Integration merge has conflicts", "run_id", runID, "message", merge.Message)
		return
	}
	slog.Info("Integration merge complete", "run_id", runID, "merged", merge.MergedDomains)
}

// GetStatus reports the last run's aggregate outcome.
func (e *Executor) GetStatus() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	status := Status{TotalStories: len(e.results)}
	for _, r := range e.results {
		if r.Success {
			status.Succeeded++
		} else {
			status.Failed++
		}
		status.TotalTokens += r.TokensUsed
	}
	if !e.started.IsZero() {
		end := e.ended
		if end.IsZero() {
			end = time.Now()
		}
		status.DurationSeconds = end.Sub(e.started).Seconds()
	}
	return status
}
