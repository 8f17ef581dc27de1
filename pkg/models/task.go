package models

import "time"

// Domain identifies an agent queue.
type Domain string

const (
	DomainPM     Domain = "pm"
	DomainCTO    Domain = "cto"
	DomainFE     Domain = "fe"
	DomainBE     Domain = "be"
	DomainQA     Domain = "qa"
	DomainSafety Domain = "safety"
	DomainHuman  Domain = "human"
)

// ValidDomains lists every agent queue.
var ValidDomains = []Domain{
	DomainPM, DomainCTO, DomainFE, DomainBE, DomainQA, DomainSafety, DomainHuman,
}

// IsValid reports whether the domain names a known queue.
func (d Domain) IsValid() bool {
	for _, v := range ValidDomains {
		if d == v {
			return true
		}
	}
	return false
}

// TaskAction is the kind of work a task asks for.
type TaskAction string

const (
	ActionPlan     TaskAction = "plan"
	ActionReview   TaskAction = "review"
	ActionDevelop  TaskAction = "develop"
	ActionValidate TaskAction = "validate"
	ActionFix      TaskAction = "fix"
	ActionEscalate TaskAction = "escalate"
)

// TaskStatus tracks a task through the queue.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskAssigned   TaskStatus = "assigned"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskFailed     TaskStatus = "failed"
	TaskTimeout    TaskStatus = "timeout"
)

// AgentTask is one unit of work dispatched to a domain agent.
type AgentTask struct {
	TaskID         string                 `json:"task_id"`
	StoryID        string                 `json:"story_id,omitempty"`
	Domain         Domain                 `json:"domain"`
	Action         TaskAction             `json:"action"`
	Payload        map[string]interface{} `json:"payload,omitempty"`
	Priority       Priority               `json:"priority"`
	TimeoutSeconds int                    `json:"timeout_seconds"`
	ThreadID       string                 `json:"thread_id,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// TaskResult is the agent's response to a task.
type TaskResult struct {
	TaskID          string                 `json:"task_id"`
	Status          TaskStatus             `json:"status"`
	Domain          Domain                 `json:"domain,omitempty"`
	AgentID         string                 `json:"agent_id,omitempty"`
	Result          map[string]interface{} `json:"result,omitempty"`
	DurationSeconds float64                `json:"duration_seconds,omitempty"`
	SafetyScore     float64                `json:"safety_score,omitempty"`
	Error           string                 `json:"error,omitempty"`
	CompletedAt     time.Time              `json:"completed_at,omitempty"`
}

// TimeoutResult builds the synthetic result returned when a wait elapses
// before the agent responds.
func TimeoutResult(taskID string) *TaskResult {
	return &TaskResult{
		TaskID:      taskID,
		Status:      TaskTimeout,
		Error:       "timed out waiting for result",
		CompletedAt: time.Now().UTC(),
	}
}
