package bus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Boomerang-Apps/wave/pkg/models"
)

// Entry is one stream entry with its deserialized message.
type Entry struct {
	Channel  string
	StreamID string
	Message  *models.WaveMessage
}

// Handler processes one entry. A returned error sends the entry to the
// dead-letter channel; the entry stays unacked otherwise.
type Handler func(ctx context.Context, entry Entry) error

// Subscriber reads a project's streams through a consumer group. Unacked
// entries remain pending and are redelivered to the group.
type Subscriber struct {
	client   *redis.Client
	channels []string
	group    string
	consumer string
}

// NewSubscriber creates a consumer-group subscriber over the given
// channels. The groups are created idempotently on first read.
func NewSubscriber(client *redis.Client, group, consumer string, channels ...string) *Subscriber {
	return &Subscriber{
		client:   client,
		channels: channels,
		group:    group,
		consumer: consumer,
	}
}

// ensureGroups creates the consumer group on every channel, tolerating
// already-exists responses.
func (s *Subscriber) ensureGroups(ctx context.Context) error {
	for _, ch := range s.channels {
		err := s.client.XGroupCreateMkStream(ctx, ch, s.group, "0").Err()
		if err != nil && !isBusyGroup(err) {
			return fmt.Errorf("failed to create consumer group on %s: %w", ch, err)
		}
	}
	return nil
}

func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}

// Read blocks up to the given duration for new entries across all
// subscribed channels. Malformed entries are acked and skipped.
func (s *Subscriber) Read(ctx context.Context, block time.Duration, count int64) ([]Entry, error) {
	if err := s.ensureGroups(ctx); err != nil {
		return nil, err
	}

	streams := make([]string, 0, len(s.channels)*2)
	streams = append(streams, s.channels...)
	for range s.channels {
		streams = append(streams, ">")
	}

	result, err := s.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    s.group,
		Consumer: s.consumer,
		Streams:  streams,
		Count:    count,
		Block:    block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read streams: %w", err)
	}

	var entries []Entry
	for _, stream := range result {
		for _, xmsg := range stream.Messages {
			msg, err := models.WaveMessageFromStreamValues(xmsg.Values)
			if err != nil {
				slog.Warn("Dropping malformed stream entry",
					"channel", stream.Stream,
					"stream_id", xmsg.ID,
					"error", err)
				s.client.XAck(ctx, stream.Stream, s.group, xmsg.ID)
				continue
			}
			entries = append(entries, Entry{
				Channel:  stream.Stream,
				StreamID: xmsg.ID,
				Message:  msg,
			})
		}
	}
	return entries, nil
}

// Ack acknowledges one entry.
func (s *Subscriber) Ack(ctx context.Context, channel, streamID string) error {
	if err := s.client.XAck(ctx, channel, s.group, streamID).Err(); err != nil {
		return fmt.Errorf("failed to ack %s on %s: %w", streamID, channel, err)
	}
	return nil
}

// Listen drives the handler until the context is cancelled. Entries whose
// handler succeeds are acked; failures are copied to the dead-letter
// channel with an error tag and acked on the source stream.
func (s *Subscriber) Listen(ctx context.Context, handler Handler) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		entries, err := s.Read(ctx, 2*time.Second, 10)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Error("Stream read failed", "error", err)
			time.Sleep(time.Second)
			continue
		}

		for _, entry := range entries {
			if err := handler(ctx, entry); err != nil {
				s.deadLetter(ctx, entry, err)
			}
			if ackErr := s.Ack(ctx, entry.Channel, entry.StreamID); ackErr != nil {
				slog.Error("Failed to ack entry", "stream_id", entry.StreamID, "error", ackErr)
			}
		}
	}
}

// deadLetter copies a failed entry to the dead-letter channel with the
// handler error attached.
func (s *Subscriber) deadLetter(ctx context.Context, entry Entry, handlerErr error) {
	values, err := entry.Message.ToStreamValues()
	if err != nil {
		slog.Error("Failed to serialize dead-letter entry", "stream_id", entry.StreamID, "error", err)
		return
	}
	values["dead_letter_error"] = handlerErr.Error()
	values["dead_letter_source"] = entry.Channel

	if err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: DeadLetterChannel(entry.Message.Project),
		MaxLen: maxStreamLength,
		Approx: true,
		Values: values,
	}).Err(); err != nil {
		slog.Error("Failed to write dead-letter entry", "stream_id", entry.StreamID, "error", err)
		return
	}
	slog.Warn("Entry dead-lettered",
		"channel", entry.Channel,
		"stream_id", entry.StreamID,
		"error", handlerErr)
}
