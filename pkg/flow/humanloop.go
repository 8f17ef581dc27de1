package flow

import (
	"errors"
	"time"
)

// Workflow statuses relevant to the human loop.
const (
	StatusRunning   = "running"
	StatusPaused    = "paused"
	StatusCancelled = "cancelled"
)

var (
	// ErrNotPaused is returned when resuming a workflow that is not waiting
	// for a human.
	ErrNotPaused = errors.New("workflow is not paused for human review")

	// ErrNoDecision is returned when resume is attempted without a decision.
	ErrNoDecision = errors.New("a human decision is required to resume")
)

// EscalationContext is everything a reviewer needs to decide.
type EscalationContext struct {
	RunID            string    `json:"run_id"`
	Reason           string    `json:"reason"`
	QAFeedback       string    `json:"qa_feedback,omitempty"`
	RetryCount       int       `json:"retry_count"`
	MaxRetries       int       `json:"max_retries"`
	SafetyViolations []string  `json:"safety_violations,omitempty"`
	CurrentTask      string    `json:"current_task,omitempty"`
	CurrentAgent     string    `json:"current_agent,omitempty"`
	EscalatedAt      time.Time `json:"escalated_at"`
}

// WorkflowState is the slice of workflow state the human loop touches.
type WorkflowState struct {
	Status     string             `json:"status"`
	NeedsHuman bool               `json:"needs_human"`
	Escalation *EscalationContext `json:"escalation,omitempty"`
}

// HumanDecision is the reviewer's verdict on an escalated workflow.
type HumanDecision struct {
	Approved bool   `json:"approved"`
	Feedback string `json:"feedback,omitempty"`
	Reviewer string `json:"reviewer,omitempty"`
}

// Escalate pauses the workflow with the escalation context attached.
func Escalate(state WorkflowState, esc EscalationContext) WorkflowState {
	esc.EscalatedAt = time.Now().UTC()
	state.Status = StatusPaused
	state.NeedsHuman = true
	state.Escalation = &esc
	return state
}

// CanResume reports whether the workflow is waiting for a human.
func CanResume(state WorkflowState) bool {
	return state.Status == StatusPaused && state.NeedsHuman
}

// ResumeWorkflow applies a human decision: approval resumes the workflow,
// rejection cancels it. Only paused, human-flagged workflows can resume.
func ResumeWorkflow(state WorkflowState, decision *HumanDecision) (WorkflowState, error) {
	if !CanResume(state) {
		return state, ErrNotPaused
	}
	if decision == nil {
		return state, ErrNoDecision
	}

	state.NeedsHuman = false
	state.Escalation = nil
	if decision.Approved {
		state.Status = StatusRunning
	} else {
		state.Status = StatusCancelled
	}
	return state, nil
}
