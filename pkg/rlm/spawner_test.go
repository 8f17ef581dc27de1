package rlm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelForComplexity(t *testing.T) {
	assert.Equal(t, TierHaiku, ModelForComplexity(ComplexitySimple))
	assert.Equal(t, TierSonnet, ModelForComplexity(ComplexityMedium))
	assert.Equal(t, TierOpus, ModelForComplexity(ComplexityComplex))
	assert.Equal(t, TierSonnet, ModelForComplexity("whatever"))
}

func TestSpawner_Spawn(t *testing.T) {
	ctx := context.Background()

	t.Run("context copy isolates the child", func(t *testing.T) {
		spawner := NewSpawner(3)
		parent := map[string]string{"a.ts": "original"}

		result, err := spawner.Spawn(ctx, "refactor a.ts", parent, func(_ context.Context, task string, files map[string]string, model ModelTier) (SubagentResult, error) {
			files["a.ts"] = "mutated"
			assert.Equal(t, TierHaiku, model)
			return SubagentResult{Success: true, TokensUsed: 10}, nil
		}, ComplexitySimple)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.NotEmpty(t, result.SubagentID)
		assert.Positive(t, result.Duration)
		assert.Equal(t, "original", parent["a.ts"])
	})

	t.Run("depth limit enforced", func(t *testing.T) {
		spawner := NewSpawner(2)
		child := spawner.Child().Child()
		assert.Equal(t, 2, child.Depth())

		_, err := child.Spawn(ctx, "too deep", nil, func(_ context.Context, _ string, _ map[string]string, _ ModelTier) (SubagentResult, error) {
			t.Fatal("task should not run past the depth limit")
			return SubagentResult{}, nil
		}, ComplexityMedium)
		assert.ErrorIs(t, err, ErrDepthExceeded)
	})

	t.Run("task error marks failure", func(t *testing.T) {
		spawner := NewSpawner(3)
		result, err := spawner.Spawn(ctx, "doomed", nil, func(_ context.Context, _ string, _ map[string]string, _ ModelTier) (SubagentResult, error) {
			return SubagentResult{}, assert.AnError
		}, ComplexityComplex)

		require.Error(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, assert.AnError.Error(), result.Error)
	})
}

func TestResultCollector(t *testing.T) {
	collector := NewResultCollector()
	collector.Add(SubagentResult{Success: true, TokensUsed: 100, FilesModified: []string{"a.ts", "b.ts"}})
	collector.Add(SubagentResult{Success: true, TokensUsed: 50, FilesModified: []string{"b.ts"}})
	collector.Add(SubagentResult{Success: false, TokensUsed: 25, Error: "lint failed"})

	summary := collector.Summarize()
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, int64(175), summary.TotalTokens)
	assert.Equal(t, []string{"a.ts", "b.ts"}, summary.FilesModified)
	assert.Equal(t, []string{"lint failed"}, summary.Errors)
}
