package bus

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boomerang-Apps/wave/pkg/models"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestChannelNames(t *testing.T) {
	assert.Equal(t, "wave:signals:checkout", SignalChannel("Checkout"))
	assert.Equal(t, "wave:agent:checkout:fe", AgentChannel("checkout", "FE"))
	assert.Equal(t, "wave:gate:checkout:gate-5", GateChannel("checkout", 5))
	assert.Equal(t, "wave:dead_letter:checkout", DeadLetterChannel("checkout"))
}

func TestPublisher_Publish(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()
	pub := NewPublisher(client, "checkout", "engine")

	t.Run("appends to the project signal stream", func(t *testing.T) {
		id, err := pub.Publish(ctx, models.EventGatePassed, map[string]interface{}{
			"gate": float64(3),
		}, PublishOptions{SessionID: "sess-1", StoryID: "AUTH-001"})
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		entries, err := client.XRange(ctx, SignalChannel("checkout"), "-", "+").Result()
		require.NoError(t, err)
		require.Len(t, entries, 1)

		msg, err := models.WaveMessageFromStreamValues(entries[0].Values)
		require.NoError(t, err)
		assert.Equal(t, models.EventGatePassed, msg.EventType)
		assert.Equal(t, "engine", msg.Source)
		assert.Equal(t, "sess-1", msg.SessionID)
	})

	t.Run("invalid event type rejected", func(t *testing.T) {
		_, err := pub.Publish(ctx, models.EventType("mystery"), nil, PublishOptions{})
		assert.Error(t, err)
	})

	t.Run("agent and gate streams are separate", func(t *testing.T) {
		_, err := pub.PublishToAgent(ctx, "fe", models.EventStoryStarted, nil, PublishOptions{})
		require.NoError(t, err)
		_, err = pub.PublishGateEvent(ctx, 2, models.EventGateEntered, nil, PublishOptions{})
		require.NoError(t, err)

		agentLen, err := client.XLen(ctx, AgentChannel("checkout", "fe")).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), agentLen)

		gateLen, err := client.XLen(ctx, GateChannel("checkout", 2)).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), gateLen)
	})

	t.Run("batch publishes every message", func(t *testing.T) {
		fresh := NewPublisher(newTestRedis(t), "checkout", "engine")
		msgs := []*models.WaveMessage{
			models.NewWaveMessage(models.EventStoryStarted, nil, "engine", "checkout"),
			models.NewWaveMessage(models.EventWorkflowComplete, nil, "engine", "checkout"),
		}
		ids, err := fresh.PublishBatch(ctx, msgs)
		require.NoError(t, err)
		assert.Len(t, ids, 2)
	})
}

func TestSubscriber_ReadAndAck(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()

	pub := NewPublisher(client, "checkout", "engine")
	sub := NewSubscriber(client, "orchestrator", "consumer-1", SignalChannel("checkout"))

	_, err := pub.Publish(ctx, models.EventGatePassed, nil, PublishOptions{StoryID: "AUTH-001"})
	require.NoError(t, err)

	entries, err := sub.Read(ctx, 50*time.Millisecond, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.EventGatePassed, entries[0].Message.EventType)
	assert.Equal(t, "AUTH-001", entries[0].Message.StoryID)

	require.NoError(t, sub.Ack(ctx, entries[0].Channel, entries[0].StreamID))

	// Acked entries are not redelivered.
	entries, err = sub.Read(ctx, 50*time.Millisecond, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubscriber_ProjectIsolation(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()

	pub := NewPublisher(client, "storefront", "engine")
	_, err := pub.Publish(ctx, models.EventStoryStarted, nil, PublishOptions{})
	require.NoError(t, err)

	sub := NewSubscriber(client, "orchestrator", "consumer-1", SignalChannel("checkout"))
	entries, err := sub.Read(ctx, 50*time.Millisecond, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubscriber_MalformedEntrySkipped(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()

	channel := SignalChannel("checkout")
	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: channel,
		Values: map[string]interface{}{"event_type": "not_a_real_event"},
	}).Err())

	sub := NewSubscriber(client, "orchestrator", "consumer-1", channel)
	entries, err := sub.Read(ctx, 50*time.Millisecond, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubscriber_DeadLetter(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()

	sub := NewSubscriber(client, "orchestrator", "consumer-1", SignalChannel("checkout"))
	msg := models.NewWaveMessage(models.EventGateFailed, nil, "qa", "checkout")
	sub.deadLetter(ctx, Entry{Channel: SignalChannel("checkout"), StreamID: "1-0", Message: msg}, assert.AnError)

	entries, err := client.XRange(ctx, DeadLetterChannel("checkout"), "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, assert.AnError.Error(), entries[0].Values["dead_letter_error"])
	assert.Equal(t, SignalChannel("checkout"), entries[0].Values["dead_letter_source"])
}

func TestResultWaiter(t *testing.T) {
	ctx := context.Background()

	t.Run("notified result unblocks the waiter", func(t *testing.T) {
		waiter := NewResultWaiter()
		waiter.Expect("task-1")
		waiter.Notify("task-1", &models.TaskResult{TaskID: "task-1", Status: models.TaskCompleted})

		result, err := waiter.Wait(ctx, "task-1", time.Second)
		require.NoError(t, err)
		assert.Equal(t, models.TaskCompleted, result.Status)
	})

	t.Run("timeout yields a synthetic result", func(t *testing.T) {
		waiter := NewResultWaiter()
		waiter.Expect("task-2")

		result, err := waiter.Wait(ctx, "task-2", 20*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, models.TaskTimeout, result.Status)
	})

	t.Run("wait without expectation errors", func(t *testing.T) {
		waiter := NewResultWaiter()
		_, err := waiter.Wait(ctx, "never-registered", time.Second)
		assert.Error(t, err)
	})

	t.Run("unexpected notifications are dropped", func(t *testing.T) {
		waiter := NewResultWaiter()
		waiter.Notify("task-3", &models.TaskResult{TaskID: "task-3"})
		// no panic, nothing registered
	})
}
