package models

import "time"

// CreateSessionRequest is the input for creating a Session.
type CreateSessionRequest struct {
	SessionID   string
	ProjectName string
	WaveNumber  int
	BudgetUSD   float64
	StoryCount  int
	Metadata    map[string]interface{}
}

// CreateStoryExecutionRequest is the input for starting a story execution.
type CreateStoryExecutionRequest struct {
	ExecutionID string
	SessionID   string
	StoryID     string
	Title       string
	Domain      string
	Agent       string
	Priority    int
	StoryPoints int
	ACTotal     int
}

// GateStatus is the outcome reported for a single gate run.
type GateStatus string

// Gate result statuses.
const (
	GatePassed GateStatus = "passed"
	GateFailed GateStatus = "failed"
)

// GateResult carries the outcome of executing one gate for a story.
type GateResult struct {
	Gate     int
	Status   GateStatus
	ACPassed int
	ACTotal  int
	Error    string
}

// CompleteExecutionRequest carries the artefact references recorded when a
// story finishes successfully.
type CompleteExecutionRequest struct {
	FilesCreated  []string
	FilesModified []string
	BranchName    string
	CommitSHA     string
	PRURL         string
	TestsPassing  bool
	Coverage      float64
}

// ExecutionState is the engine's snapshot of a story execution.
type ExecutionState struct {
	ExecutionID      string
	SessionID        string
	StoryID          string
	Status           string
	CurrentGate      int
	ACPassed         int
	ACTotal          int
	RetryCount       int
	LatestCheckpoint string
}

// StoryTask is the unit of work handed to the parallel story executor.
type StoryTask struct {
	StoryID            string                 `json:"story_id"`
	Title              string                 `json:"title"`
	Domain             string                 `json:"domain"`
	Agent              string                 `json:"agent,omitempty"`
	Priority           int                    `json:"priority"`
	StoryPoints        int                    `json:"story_points"`
	AcceptanceCriteria []string               `json:"acceptance_criteria,omitempty"`
	Context            map[string]interface{} `json:"context,omitempty"`
}

// StoryResult is what an agent function returns for one story.
type StoryResult struct {
	StoryID       string        `json:"story_id"`
	Domain        string        `json:"domain"`
	Success       bool          `json:"success"`
	BranchName    string        `json:"branch_name,omitempty"`
	CommitSHA     string        `json:"commit_sha,omitempty"`
	FilesCreated  []string      `json:"files_created,omitempty"`
	FilesModified []string      `json:"files_modified,omitempty"`
	TokensUsed    int64         `json:"tokens_used,omitempty"`
	CostUSD       float64       `json:"cost_usd,omitempty"`
	Error         string        `json:"error,omitempty"`
	Duration      time.Duration `json:"duration,omitempty"`
}
