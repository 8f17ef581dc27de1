// Package bus implements the project-scoped signal bus on Redis Streams.
// All channels are namespaced by project, so concurrent projects never see
// each other's messages.
package bus

import (
	"fmt"
	"strings"
)

const (
	streamPrefix     = "wave:signals:"
	agentPrefix      = "wave:agent:"
	gatePrefix       = "wave:gate:"
	deadLetterPrefix = "wave:dead_letter:"

	// QAResultsChannel carries QA completion events for the merge watcher.
	QAResultsChannel = "wave:results:qa"

	// MergeEventsChannel carries merge outcomes.
	MergeEventsChannel = "wave:events:merge"
)

// SignalChannel is the main event stream for a project.
func SignalChannel(project string) string {
	return streamPrefix + normalize(project)
}

// AgentChannel is the direct stream for one agent within a project.
func AgentChannel(project, agent string) string {
	return fmt.Sprintf("%s%s:%s", agentPrefix, normalize(project), normalize(agent))
}

// GateChannel is the stream for one gate's events within a project.
func GateChannel(project string, gate int) string {
	return fmt.Sprintf("%s%s:gate-%d", gatePrefix, normalize(project), gate)
}

// DeadLetterChannel holds a project's entries whose handlers failed.
func DeadLetterChannel(project string) string {
	return deadLetterPrefix + normalize(project)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
