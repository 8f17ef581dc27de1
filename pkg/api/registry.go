package api

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// WorkflowStatus tracks an API-started workflow.
type WorkflowStatus string

const (
	WorkflowRunning   WorkflowStatus = "running"
	WorkflowPaused    WorkflowStatus = "paused"
	WorkflowStopped   WorkflowStatus = "stopped"
	WorkflowComplete  WorkflowStatus = "complete"
	WorkflowFailed    WorkflowStatus = "failed"
	WorkflowCancelled WorkflowStatus = "cancelled"
)

// Workflow is one running orchestration, addressed by thread ID.
type Workflow struct {
	ThreadID     string         `json:"thread_id"`
	StoryID      string         `json:"story_id"`
	SessionID    string         `json:"session_id,omitempty"`
	ProjectPath  string         `json:"project_path"`
	Requirements string         `json:"requirements,omitempty"`
	WaveNumber   int            `json:"wave_number"`
	TokenLimit   int64          `json:"token_limit"`
	CostLimitUSD float64        `json:"cost_limit_usd"`
	Status       WorkflowStatus `json:"status"`
	NeedsHuman   bool           `json:"needs_human"`
	CurrentGate  int            `json:"current_gate"`
	Error        string         `json:"error,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	cancel context.CancelFunc
}

// Registry holds the in-memory set of workflows this instance owns.
type Registry struct {
	mu        sync.RWMutex
	workflows map[string]*Workflow
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{workflows: map[string]*Workflow{}}
}

// Create registers a new running workflow and returns it with a cancelable
// context derived from parent.
func (r *Registry) Create(parent context.Context, wf Workflow) (*Workflow, context.Context) {
	ctx, cancel := context.WithCancel(parent)
	wf.ThreadID = uuid.NewString()
	wf.Status = WorkflowRunning
	wf.CreatedAt = time.Now().UTC()
	wf.UpdatedAt = wf.CreatedAt
	wf.cancel = cancel

	r.mu.Lock()
	defer r.mu.Unlock()
	stored := wf
	r.workflows[stored.ThreadID] = &stored
	return &stored, ctx
}

// Get returns a workflow by thread ID.
func (r *Registry) Get(threadID string) (*Workflow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wf, ok := r.workflows[threadID]
	return wf, ok
}

// List returns all registered workflows.
func (r *Registry) List() []*Workflow {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Workflow, 0, len(r.workflows))
	for _, wf := range r.workflows {
		out = append(out, wf)
	}
	return out
}

// Update applies fn to the workflow under the registry lock.
func (r *Registry) Update(threadID string, fn func(*Workflow)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	wf, ok := r.workflows[threadID]
	if !ok {
		return false
	}
	fn(wf)
	wf.UpdatedAt = time.Now().UTC()
	return true
}

// Stop cancels the workflow's context and marks it stopped.
func (r *Registry) Stop(threadID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	wf, ok := r.workflows[threadID]
	if !ok {
		return false
	}
	if wf.cancel != nil {
		wf.cancel()
	}
	wf.Status = WorkflowStopped
	wf.UpdatedAt = time.Now().UTC()
	return true
}

// Reset clears a workflow's in-memory execution state back to a fresh
// running workflow, optionally rewinding the gate.
func (r *Registry) Reset(threadID string, resetToGate *int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	wf, ok := r.workflows[threadID]
	if !ok {
		return false
	}
	wf.Status = WorkflowRunning
	wf.NeedsHuman = false
	wf.Error = ""
	if resetToGate != nil {
		wf.CurrentGate = *resetToGate
	}
	wf.UpdatedAt = time.Now().UTC()
	return true
}
