package rlm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Complexity tiers map to model tiers: simple work runs on the cheapest
// model, complex work on the strongest.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// ModelTier is the model class a subagent runs on.
type ModelTier string

const (
	TierHaiku  ModelTier = "haiku"
	TierSonnet ModelTier = "sonnet"
	TierOpus   ModelTier = "opus"
)

// DefaultMaxDepth bounds subagent nesting.
const DefaultMaxDepth = 3

// ErrDepthExceeded is returned when spawning past the depth limit.
var ErrDepthExceeded = errors.New("subagent depth limit exceeded")

// ModelForComplexity maps a complexity tier to a model tier. Unknown
// complexities run on sonnet.
func ModelForComplexity(c Complexity) ModelTier {
	switch c {
	case ComplexitySimple:
		return TierHaiku
	case ComplexityComplex:
		return TierOpus
	default:
		return TierSonnet
	}
}

// SubagentResult is what a child agent returns to its parent.
type SubagentResult struct {
	SubagentID    string        `json:"subagent_id"`
	Success       bool          `json:"success"`
	Output        string        `json:"output,omitempty"`
	TokensUsed    int64         `json:"tokens_used"`
	FilesModified []string      `json:"files_modified,omitempty"`
	Error         string        `json:"error,omitempty"`
	Duration      time.Duration `json:"duration"`
}

// TaskFn is the work a subagent performs over its isolated context.
type TaskFn func(ctx context.Context, task string, contextFiles map[string]string, model ModelTier) (SubagentResult, error)

// Subagent is one child agent with isolated context.
type Subagent struct {
	ID      string
	Task    string
	Depth   int
	Model   ModelTier
	context map[string]string
}

// Spawner creates depth-limited subagents for delegated work.
type Spawner struct {
	maxDepth int
	depth    int
}

// NewSpawner creates a root-level spawner. maxDepth of 0 falls back to the
// default.
func NewSpawner(maxDepth int) *Spawner {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Spawner{maxDepth: maxDepth}
}

// Child returns a spawner one level deeper, for agents that delegate
// further.
func (s *Spawner) Child() *Spawner {
	return &Spawner{maxDepth: s.maxDepth, depth: s.depth + 1}
}

// Depth returns the spawner's nesting level.
func (s *Spawner) Depth() int { return s.depth }

// Spawn creates a subagent at depth+1 and runs the task function with a
// copied context, so child mutations never leak back to the parent.
func (s *Spawner) Spawn(ctx context.Context, task string, contextFiles map[string]string, taskFn TaskFn, complexity Complexity) (SubagentResult, error) {
	childDepth := s.depth + 1
	if childDepth > s.maxDepth {
		return SubagentResult{}, fmt.Errorf("%w: depth %d > max %d", ErrDepthExceeded, childDepth, s.maxDepth)
	}

	sub := &Subagent{
		ID:      uuid.NewString(),
		Task:    task,
		Depth:   childDepth,
		Model:   ModelForComplexity(complexity),
		context: copyContext(contextFiles),
	}

	started := time.Now()
	result, err := taskFn(ctx, sub.Task, sub.context, sub.Model)
	result.SubagentID = sub.ID
	if result.Duration == 0 {
		result.Duration = time.Since(started)
	}
	if err != nil {
		result.Success = false
		if result.Error == "" {
			result.Error = err.Error()
		}
		return result, err
	}
	return result, nil
}

func copyContext(files map[string]string) map[string]string {
	out := make(map[string]string, len(files))
	for k, v := range files {
		out[k] = v
	}
	return out
}

// ResultCollector aggregates child results for a parent agent.
type ResultCollector struct {
	mu      sync.Mutex
	results []SubagentResult
}

// NewResultCollector creates an empty collector.
func NewResultCollector() *ResultCollector {
	return &ResultCollector{}
}

// Add records one child's result.
func (c *ResultCollector) Add(result SubagentResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, result)
}

// Summary rolls the collected results up for the parent.
type Summary struct {
	Total         int      `json:"total"`
	Succeeded     int      `json:"succeeded"`
	Failed        int      `json:"failed"`
	TotalTokens   int64    `json:"total_tokens"`
	FilesModified []string `json:"files_modified,omitempty"`
	Errors        []string `json:"errors,omitempty"`
}

// Summarize aggregates everything collected so far.
func (c *ResultCollector) Summarize() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	summary := Summary{Total: len(c.results)}
	seen := map[string]bool{}
	for _, r := range c.results {
		if r.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
			if r.Error != "" {
				summary.Errors = append(summary.Errors, r.Error)
			}
		}
		summary.TotalTokens += r.TokensUsed
		for _, f := range r.FilesModified {
			if !seen[f] {
				seen[f] = true
				summary.FilesModified = append(summary.FilesModified, f)
			}
		}
	}
	return summary
}
