package rlm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeRepoFile writes content under root, creating parent directories.
func writeRepoFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// tenTokens is 40 bytes, which estimates to exactly 10 tokens.
var tenTokens = strings.Repeat("x", 40)

func TestContextCache_LRUEviction(t *testing.T) {
	root := t.TempDir()
	writeRepoFile(t, root, "a.ts", tenTokens)
	writeRepoFile(t, root, "b.ts", tenTokens)
	writeRepoFile(t, root, "c.ts", tenTokens)

	cache := NewContextCache(root, 20)

	loaded, missing, err := cache.LoadStoryContext([]string{"a.ts", "b.ts"})
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)
	assert.Empty(t, missing)
	assert.Equal(t, int64(20), cache.TokenCount())

	// Touch a.ts so b.ts becomes the LRU victim.
	_, err = cache.Retrieve("a.ts")
	require.NoError(t, err)

	_, _, err = cache.LoadStoryContext([]string{"c.ts"})
	require.NoError(t, err)

	ctx := cache.GetContext()
	assert.Contains(t, ctx, "a.ts")
	assert.Contains(t, ctx, "c.ts")
	assert.NotContains(t, ctx, "b.ts")
	assert.Equal(t, int64(20), cache.TokenCount())
}

func TestContextCache_PinnedFilesSurviveEviction(t *testing.T) {
	root := t.TempDir()
	writeRepoFile(t, root, "src/auth/login.ts", tenTokens)
	writeRepoFile(t, root, "big.ts", strings.Repeat("y", 200))

	cache := NewContextCache(root, 25)

	pinned, err := cache.LoadDomainContext([]string{"src/auth/**"})
	require.NoError(t, err)
	assert.Equal(t, 1, pinned)

	// big.ts blows the budget; only the unpinned entry can go.
	_, _, err = cache.LoadStoryContext([]string{"big.ts"})
	require.NoError(t, err)

	ctx := cache.GetContext()
	assert.Contains(t, ctx, "src/auth/login.ts")
	assert.NotContains(t, ctx, "big.ts")
}

func TestContextCache_MissingStoryFiles(t *testing.T) {
	root := t.TempDir()
	writeRepoFile(t, root, "a.ts", tenTokens)

	cache := NewContextCache(root, 100)
	loaded, missing, err := cache.LoadStoryContext([]string{"a.ts", "gone.ts"})
	require.NoError(t, err)
	assert.Equal(t, 1, loaded)
	assert.Equal(t, []string{"gone.ts"}, missing)
}

func TestContextCache_RetrieveLoadsOnMiss(t *testing.T) {
	root := t.TempDir()
	writeRepoFile(t, root, "a.ts", "export const a = 1;")

	cache := NewContextCache(root, 100)
	content, err := cache.Retrieve("a.ts")
	require.NoError(t, err)
	assert.Equal(t, "export const a = 1;", content)

	_, err = cache.Retrieve("missing.ts")
	assert.Error(t, err)
}
