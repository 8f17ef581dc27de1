package executor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boomerang-Apps/wave/pkg/models"
	"github.com/Boomerang-Apps/wave/pkg/worktree"
)

func story(id, domain string) models.StoryTask {
	return models.StoryTask{StoryID: id, Title: id, Domain: domain}
}

func TestExecutor_PlanBatch(t *testing.T) {
	exec := New(worktree.NewManager(t.TempDir(), "", ""), 4)

	t.Run("no two batch tasks share a domain", func(t *testing.T) {
		plan := exec.PlanBatch([]models.StoryTask{
			story("AUTH-001", "auth"),
			story("AUTH-002", "auth"),
			story("PAY-001", "payments"),
			story("UI-001", "ui"),
		}, "run1")

		seen := map[string]bool{}
		for _, task := range plan.ParallelBatch {
			assert.False(t, seen[task.Domain], "domain %s scheduled twice", task.Domain)
			seen[task.Domain] = true
		}
		require.Len(t, plan.Waiting, 1)
		assert.Equal(t, "AUTH-002", plan.Waiting[0].StoryID)
	})

	t.Run("batch size is capped at max parallel", func(t *testing.T) {
		small := New(worktree.NewManager(t.TempDir(), "", ""), 2)
		plan := small.PlanBatch([]models.StoryTask{
			story("A-1", "a"), story("B-1", "b"), story("C-1", "c"),
		}, "run1")
		assert.Len(t, plan.ParallelBatch, 2)
		assert.Len(t, plan.Waiting, 1)
	})

	t.Run("planning is stable", func(t *testing.T) {
		stories := []models.StoryTask{
			story("AUTH-001", "auth"),
			story("PAY-001", "payments"),
			story("AUTH-002", "auth"),
		}
		first := exec.PlanBatch(stories, "run1")
		second := exec.PlanBatch(stories, "run1")
		assert.Equal(t, first, second)
	})

	t.Run("empty input plans nothing", func(t *testing.T) {
		plan := exec.PlanBatch(nil, "run1")
		assert.Empty(t, plan.ParallelBatch)
		assert.Empty(t, plan.Waiting)
	})
}

func TestExecutor_RunAgent(t *testing.T) {
	exec := New(worktree.NewManager(t.TempDir(), "", ""), 4)
	ctx := context.Background()

	t.Run("result is stamped with story and domain", func(t *testing.T) {
		result := exec.runAgent(ctx, story("AUTH-001", "auth"), "/tmp/wt", func(ctx context.Context, task models.StoryTask, path string) (models.StoryResult, error) {
			return models.StoryResult{Success: true, TokensUsed: 100}, nil
		})
		assert.True(t, result.Success)
		assert.Equal(t, "AUTH-001", result.StoryID)
		assert.Equal(t, "auth", result.Domain)
		assert.Greater(t, result.Duration, time.Duration(0))
	})

	t.Run("agent error becomes a failed result", func(t *testing.T) {
		result := exec.runAgent(ctx, story("AUTH-001", "auth"), "/tmp/wt", func(ctx context.Context, task models.StoryTask, path string) (models.StoryResult, error) {
			return models.StoryResult{}, assert.AnError
		})
		assert.False(t, result.Success)
		assert.Equal(t, assert.AnError.Error(), result.Error)
	})

	t.Run("panic is contained", func(t *testing.T) {
		result := exec.runAgent(ctx, story("AUTH-001", "auth"), "/tmp/wt", func(ctx context.Context, task models.StoryTask, path string) (models.StoryResult, error) {
			panic("boom")
		})
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "agent panicked")
		assert.Contains(t, result.Error, "boom")
	})
}

func TestExecutor_GetStatus(t *testing.T) {
	exec := New(worktree.NewManager(t.TempDir(), "", ""), 4)
	exec.results = []models.StoryResult{
		{StoryID: "A-1", Success: true, TokensUsed: 100},
		{StoryID: "B-1", Success: false, TokensUsed: 50},
		{StoryID: "C-1", Success: true, TokensUsed: 25},
	}
	exec.started = time.Now().Add(-2 * time.Second)
	exec.ended = time.Now()

	status := exec.GetStatus()
	assert.Equal(t, 3, status.TotalStories)
	assert.Equal(t, 2, status.Succeeded)
	assert.Equal(t, 1, status.Failed)
	assert.Equal(t, int64(175), status.TotalTokens)
	assert.Greater(t, status.DurationSeconds, 1.0)
}
