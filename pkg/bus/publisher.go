package bus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/Boomerang-Apps/wave/pkg/models"
)

// maxStreamLength caps stream growth; XADD trims approximately.
const maxStreamLength = 10000

// Publisher appends workflow events to a project's streams.
type Publisher struct {
	client  *redis.Client
	project string
	source  string
}

// NewPublisher creates a publisher for one project. source identifies the
// emitting component in every message.
func NewPublisher(client *redis.Client, project, source string) *Publisher {
	return &Publisher{client: client, project: project, source: source}
}

// PublishOptions carries the optional message fields.
type PublishOptions struct {
	SessionID     string
	StoryID       string
	Priority      models.Priority
	CorrelationID string
}

// Publish appends an event to the project's signal stream and returns the
// stream entry ID.
func (p *Publisher) Publish(ctx context.Context, eventType models.EventType, payload map[string]interface{}, opts PublishOptions) (string, error) {
	return p.publishTo(ctx, SignalChannel(p.project), eventType, payload, opts)
}

// PublishToAgent appends an event to a specific agent's stream.
func (p *Publisher) PublishToAgent(ctx context.Context, agent string, eventType models.EventType, payload map[string]interface{}, opts PublishOptions) (string, error) {
	return p.publishTo(ctx, AgentChannel(p.project, agent), eventType, payload, opts)
}

// PublishGateEvent appends an event to a gate's stream.
func (p *Publisher) PublishGateEvent(ctx context.Context, gate int, eventType models.EventType, payload map[string]interface{}, opts PublishOptions) (string, error) {
	return p.publishTo(ctx, GateChannel(p.project, gate), eventType, payload, opts)
}

// PublishToChannel appends an event to an arbitrary stream, for the fixed
// cross-project channels like QAResultsChannel and MergeEventsChannel.
func (p *Publisher) PublishToChannel(ctx context.Context, channel string, eventType models.EventType, payload map[string]interface{}, opts PublishOptions) (string, error) {
	return p.publishTo(ctx, channel, eventType, payload, opts)
}

// PublishBatch appends several pre-built messages to the signal stream in a
// single pipeline.
func (p *Publisher) PublishBatch(ctx context.Context, messages []*models.WaveMessage) ([]string, error) {
	channel := SignalChannel(p.project)
	pipe := p.client.Pipeline()
	cmds := make([]*redis.StringCmd, 0, len(messages))
	for _, msg := range messages {
		values, err := msg.ToStreamValues()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize message: %w", err)
		}
		cmds = append(cmds, pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: channel,
			MaxLen: maxStreamLength,
			Approx: true,
			Values: values,
		}))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to publish batch: %w", err)
	}
	ids := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		ids = append(ids, cmd.Val())
	}
	return ids, nil
}

func (p *Publisher) publishTo(ctx context.Context, channel string, eventType models.EventType, payload map[string]interface{}, opts PublishOptions) (string, error) {
	if !eventType.IsValid() {
		return "", fmt.Errorf("invalid event type %q", eventType)
	}

	msg := models.NewWaveMessage(eventType, payload, p.source, p.project)
	msg.SessionID = opts.SessionID
	msg.StoryID = opts.StoryID
	msg.CorrelationID = opts.CorrelationID
	if opts.Priority != "" {
		msg.Priority = opts.Priority
	}

	values, err := msg.ToStreamValues()
	if err != nil {
		return "", fmt.Errorf("failed to serialize message: %w", err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: channel,
		MaxLen: maxStreamLength,
		Approx: true,
		Values: values,
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to publish to %s: %w", channel, err)
	}

	slog.Debug("Published signal",
		"channel", channel,
		"event_type", string(eventType),
		"stream_id", id)
	return id, nil
}
