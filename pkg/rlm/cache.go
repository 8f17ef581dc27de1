// Package rlm keeps per-agent working context inside a token budget: an
// LRU file cache with pinned domain files, an import-graph domain scoper,
// and a depth-limited subagent spawner.
package rlm

import (
	"container/list"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Boomerang-Apps/wave/pkg/safety"
)

type cacheEntry struct {
	path    string
	content string
	tokens  int64
	pinned  bool
	elem    *list.Element
}

// ContextCache is an LRU cache of file contents bounded by estimated token
// count. Pinned entries never evict; eviction stops when only pinned
// entries remain. Safe for concurrent use.
type ContextCache struct {
	repoRoot  string
	maxTokens int64

	mu      sync.Mutex
	entries map[string]*cacheEntry
	lru     *list.List // front = most recent
	tokens  int64
}

// NewContextCache creates a cache rooted at the repository. maxTokens of 0
// falls back to 100000.
func NewContextCache(repoRoot string, maxTokens int64) *ContextCache {
	if maxTokens <= 0 {
		maxTokens = 100_000
	}
	return &ContextCache{
		repoRoot:  repoRoot,
		maxTokens: maxTokens,
		entries:   map[string]*cacheEntry{},
		lru:       list.New(),
	}
}

// LoadDomainContext walks the repo and pins every file matching the
// agent's domain patterns. Pinned files are never evicted.
func (c *ContextCache) LoadDomainContext(patterns []string) (int, error) {
	loaded := 0
	err := filepath.WalkDir(c.repoRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(c.repoRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for _, pattern := range patterns {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				if _, err := c.load(rel, true); err != nil {
					return err
				}
				loaded++
				break
			}
		}
		return nil
	})
	if err != nil {
		return loaded, fmt.Errorf("failed to load domain context: %w", err)
	}
	return loaded, nil
}

// LoadStoryContext loads each listed file unpinned; missing files are
// reported, not fatal.
func (c *ContextCache) LoadStoryContext(readFiles []string) (loaded int, missing []string, err error) {
	for _, rel := range readFiles {
		if _, loadErr := c.load(filepath.ToSlash(rel), false); loadErr != nil {
			if os.IsNotExist(loadErr) {
				missing = append(missing, rel)
				continue
			}
			return loaded, missing, loadErr
		}
		loaded++
	}
	return loaded, missing, nil
}

// Retrieve returns cached content, loading on demand for cache misses.
func (c *ContextCache) Retrieve(relPath string) (string, error) {
	relPath = filepath.ToSlash(relPath)

	c.mu.Lock()
	if entry, ok := c.entries[relPath]; ok {
		c.lru.MoveToFront(entry.elem)
		content := entry.content
		c.mu.Unlock()
		return content, nil
	}
	c.mu.Unlock()

	return c.load(relPath, false)
}

// GetContext returns the full cached path-to-content map.
func (c *ContextCache) GetContext() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.entries))
	for path, entry := range c.entries {
		out[path] = entry.content
	}
	return out
}

// TokenCount returns the estimated token total currently cached.
func (c *ContextCache) TokenCount() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokens
}

func (c *ContextCache) load(relPath string, pinned bool) (string, error) {
	raw, err := os.ReadFile(filepath.Join(c.repoRoot, filepath.FromSlash(relPath)))
	if err != nil {
		return "", err
	}
	content := string(raw)

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[relPath]; ok {
		entry.pinned = entry.pinned || pinned
		c.lru.MoveToFront(entry.elem)
		return entry.content, nil
	}

	entry := &cacheEntry{
		path:    relPath,
		content: content,
		tokens:  safety.EstimateTokens(content),
		pinned:  pinned,
	}
	entry.elem = c.lru.PushFront(entry)
	c.entries[relPath] = entry
	c.tokens += entry.tokens

	c.evict()
	return content, nil
}

// evict removes least-recently-used unpinned entries until under budget;
// stops when only pinned entries remain.
func (c *ContextCache) evict() {
	for c.tokens > c.maxTokens {
		victim := c.oldestUnpinned()
		if victim == nil {
			return
		}
		c.lru.Remove(victim.elem)
		delete(c.entries, victim.path)
		c.tokens -= victim.tokens
	}
}

func (c *ContextCache) oldestUnpinned() *cacheEntry {
	for elem := c.lru.Back(); elem != nil; elem = elem.Prev() {
		entry := elem.Value.(*cacheEntry)
		if !entry.pinned {
			return entry
		}
	}
	return nil
}
