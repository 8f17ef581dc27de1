package bus

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boomerang-Apps/wave/pkg/models"
)

func TestDispatcher_Run(t *testing.T) {
	client := newTestRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pub := NewPublisher(client, "checkout", "engine")
	sub := NewSubscriber(client, "orchestrator", "consumer-1", SignalChannel("checkout"))
	dispatcher := NewDispatcher(sub)

	var handled, observed atomic.Int64
	dispatcher.Register(models.EventGatePassed, func(_ context.Context, msg *models.WaveMessage) (HandlerResult, error) {
		handled.Add(1)
		assert.Equal(t, "AUTH-001", msg.StoryID)
		return HandlerResult{Success: true, ActionTaken: "advance_gate"}, nil
	})
	dispatcher.Observe(func(eventType models.EventType, result HandlerResult, err error) {
		observed.Add(1)
		assert.Equal(t, models.EventGatePassed, eventType)
		assert.True(t, result.Success)
		assert.NoError(t, err)
	})

	done := make(chan error, 1)
	go func() { done <- dispatcher.Run(ctx) }()

	_, err := pub.Publish(ctx, models.EventGatePassed, nil, PublishOptions{StoryID: "AUTH-001"})
	require.NoError(t, err)
	// no handler registered for this one: logged and acked, not dead-lettered
	_, err = pub.Publish(ctx, models.EventHealthCheck, nil, PublishOptions{})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return handled.Load() == 1 && observed.Load() == 1 },
		5*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	deadLetters, err := client.XLen(context.Background(), DeadLetterChannel("checkout")).Result()
	require.NoError(t, err)
	assert.Zero(t, deadLetters)
}

func TestDispatcher_HandlerFailureDeadLetters(t *testing.T) {
	client := newTestRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pub := NewPublisher(client, "checkout", "engine")
	sub := NewSubscriber(client, "orchestrator", "consumer-1", SignalChannel("checkout"))
	dispatcher := NewDispatcher(sub)

	dispatcher.Register(models.EventGateFailed, func(_ context.Context, _ *models.WaveMessage) (HandlerResult, error) {
		return HandlerResult{}, assert.AnError
	})

	go func() { _ = dispatcher.Run(ctx) }()

	_, err := pub.Publish(ctx, models.EventGateFailed, nil, PublishOptions{})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		n, err := client.XLen(context.Background(), DeadLetterChannel("checkout")).Result()
		return err == nil && n == 1
	}, 5*time.Second, 10*time.Millisecond)
}
