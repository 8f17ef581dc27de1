package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveMessage_StreamRoundTrip(t *testing.T) {
	t.Run("full message survives the trip", func(t *testing.T) {
		msg := NewWaveMessage(EventGatePassed, map[string]interface{}{
			"gate":      float64(5),
			"gate_name": "QA_PASSED",
		}, "qa-agent", "Checkout")
		msg.SessionID = "sess-1"
		msg.StoryID = "AUTH-001"
		msg.CorrelationID = "corr-1"
		msg.Priority = PriorityHigh

		values, err := msg.ToStreamValues()
		require.NoError(t, err)

		got, err := WaveMessageFromStreamValues(values)
		require.NoError(t, err)

		assert.Equal(t, EventGatePassed, got.EventType)
		assert.Equal(t, "checkout", got.Project) // projects normalize to lowercase
		assert.Equal(t, "qa-agent", got.Source)
		assert.Equal(t, "sess-1", got.SessionID)
		assert.Equal(t, "AUTH-001", got.StoryID)
		assert.Equal(t, "corr-1", got.CorrelationID)
		assert.Equal(t, PriorityHigh, got.Priority)
		assert.Equal(t, msg.Payload, got.Payload)
		assert.True(t, msg.Timestamp.Equal(got.Timestamp))
	})

	t.Run("optional fields are omitted when empty", func(t *testing.T) {
		msg := NewWaveMessage(EventHealthCheck, nil, "orchestrator", "wave")
		values, err := msg.ToStreamValues()
		require.NoError(t, err)

		assert.NotContains(t, values, "session_id")
		assert.NotContains(t, values, "story_id")
		assert.NotContains(t, values, "correlation_id")

		got, err := WaveMessageFromStreamValues(values)
		require.NoError(t, err)
		assert.Empty(t, got.SessionID)
		assert.Empty(t, got.StoryID)
	})

	t.Run("unknown event type rejects", func(t *testing.T) {
		_, err := WaveMessageFromStreamValues(map[string]interface{}{
			"event_type": "mystery_event",
		})
		assert.Error(t, err)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		msg := NewWaveMessage(EventStoryStarted, nil, "pm", "wave")
		values, err := msg.ToStreamValues()
		require.NoError(t, err)
		values["dead_letter_error"] = "handler exploded"

		got, err := WaveMessageFromStreamValues(values)
		require.NoError(t, err)
		assert.Equal(t, EventStoryStarted, got.EventType)
	})

	t.Run("timestamp keeps sub-second precision", func(t *testing.T) {
		msg := NewWaveMessage(EventGateEntered, nil, "engine", "wave")
		msg.Timestamp = time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)

		values, err := msg.ToStreamValues()
		require.NoError(t, err)
		got, err := WaveMessageFromStreamValues(values)
		require.NoError(t, err)
		assert.Equal(t, msg.Timestamp, got.Timestamp)
	})
}

func TestEventType_IsValid(t *testing.T) {
	for _, et := range ValidEventTypes {
		assert.True(t, et.IsValid())
	}
	assert.False(t, EventType("nope").IsValid())
	assert.False(t, EventType("").IsValid())
}

func TestTimeoutResult(t *testing.T) {
	result := TimeoutResult("task-1")
	assert.Equal(t, "task-1", result.TaskID)
	assert.Equal(t, TaskTimeout, result.Status)
	assert.NotEmpty(t, result.Error)
}
