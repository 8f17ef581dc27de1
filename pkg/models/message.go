package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// EventType identifies the kind of signal carried by a WaveMessage.
type EventType string

// Signal bus event types.
const (
	EventStoryStarted     EventType = "story_started"
	EventGateEntered      EventType = "gate_entered"
	EventGatePassed       EventType = "gate_passed"
	EventGateFailed       EventType = "gate_failed"
	EventAgentError       EventType = "agent_error"
	EventAgentHandoff     EventType = "agent_handoff"
	EventEmergencyStop    EventType = "emergency_stop"
	EventHealthCheck      EventType = "health_check"
	EventWorkflowStarted  EventType = "workflow_started"
	EventWorkflowComplete EventType = "workflow_complete"
	EventWorkflowFailed   EventType = "workflow_failed"
)

// ValidEventTypes lists every recognized signal event type.
var ValidEventTypes = []EventType{
	EventStoryStarted, EventGateEntered, EventGatePassed, EventGateFailed,
	EventAgentError, EventAgentHandoff, EventEmergencyStop, EventHealthCheck,
	EventWorkflowStarted, EventWorkflowComplete, EventWorkflowFailed,
}

// IsValid reports whether t is a recognized event type.
func (t EventType) IsValid() bool {
	for _, v := range ValidEventTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Priority is the delivery priority of a WaveMessage.
type Priority string

// Message priorities.
const (
	PriorityLow      Priority = "low"
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// WaveMessage is a pub/sub signal exchanged between distributed agent
// workers. Every message is namespaced by project: subscribers on project A
// never see project B traffic.
type WaveMessage struct {
	EventType     EventType              `json:"event_type"`
	Payload       map[string]interface{} `json:"payload"`
	Source        string                 `json:"source"`
	Project       string                 `json:"project"`
	Timestamp     time.Time              `json:"timestamp"`
	Priority      Priority               `json:"priority"`
	SessionID     string                 `json:"session_id,omitempty"`
	StoryID       string                 `json:"story_id,omitempty"`
	CorrelationID string                 `json:"correlation_id,omitempty"`
}

// NewWaveMessage builds a message with the timestamp set and normal priority.
func NewWaveMessage(eventType EventType, payload map[string]interface{}, source, project string) *WaveMessage {
	return &WaveMessage{
		EventType: eventType,
		Payload:   payload,
		Source:    source,
		Project:   strings.ToLower(project),
		Timestamp: time.Now().UTC(),
		Priority:  PriorityNormal,
	}
}

// ToStreamValues serializes the message into the flat string map a Redis
// stream entry can hold. The payload is JSON-encoded; optional fields are
// omitted when empty.
func (m *WaveMessage) ToStreamValues() (map[string]interface{}, error) {
	payloadJSON, err := json.Marshal(m.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	values := map[string]interface{}{
		"event_type": string(m.EventType),
		"payload":    string(payloadJSON),
		"source":     m.Source,
		"project":    m.Project,
		"timestamp":  m.Timestamp.Format(time.RFC3339Nano),
		"priority":   string(m.Priority),
	}
	if m.SessionID != "" {
		values["session_id"] = m.SessionID
	}
	if m.StoryID != "" {
		values["story_id"] = m.StoryID
	}
	if m.CorrelationID != "" {
		values["correlation_id"] = m.CorrelationID
	}
	return values, nil
}

// WaveMessageFromStreamValues reverses ToStreamValues. Unknown keys are
// ignored so the format can grow without breaking old consumers.
func WaveMessageFromStreamValues(values map[string]interface{}) (*WaveMessage, error) {
	str := func(key string) string {
		if v, ok := values[key].(string); ok {
			return v
		}
		return ""
	}

	msg := &WaveMessage{
		EventType:     EventType(str("event_type")),
		Source:        str("source"),
		Project:       str("project"),
		Priority:      Priority(str("priority")),
		SessionID:     str("session_id"),
		StoryID:       str("story_id"),
		CorrelationID: str("correlation_id"),
	}
	if !msg.EventType.IsValid() {
		return nil, fmt.Errorf("unknown event type %q", str("event_type"))
	}

	if raw := str("payload"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &msg.Payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}
	if raw := str("timestamp"); raw != "" {
		ts, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp: %w", err)
		}
		msg.Timestamp = ts
	}
	return msg, nil
}
