package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/Boomerang-Apps/wave/pkg/bus"
	"github.com/Boomerang-Apps/wave/pkg/models"
)

var (
	mergeWatcherDryRun   bool
	mergeWatcherRedisURL string
)

var mergeWatcherCmd = &cobra.Command{
	Use:   "merge-watcher",
	Short: "Turn QA pass events into merge events",
	Long: `merge-watcher subscribes to the QA results channel and, for every
story that passed QA, emits a merge event on the merge events channel.
With --dry-run it only logs what it would emit.`,
	RunE: runMergeWatcher,
}

func init() {
	mergeWatcherCmd.Flags().BoolVar(&mergeWatcherDryRun, "dry-run", false, "Log merge events instead of publishing them")
	mergeWatcherCmd.Flags().StringVar(&mergeWatcherRedisURL, "redis-url", envOr("REDIS_URL", "redis://localhost:6379"), "Redis connection URL")
}

func envOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func runMergeWatcher(cmd *cobra.Command, args []string) error {
	opts, err := redis.ParseURL(mergeWatcherRedisURL)
	if err != nil {
		return fmt.Errorf("%w: invalid redis url: %s", errUsage, err)
	}
	client := redis.NewClient(opts)
	defer client.Close()

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	hostname, _ := os.Hostname()
	subscriber := bus.NewSubscriber(client, "merge-watcher", hostname, bus.QAResultsChannel)

	fmt.Printf("Watching %s (dry-run=%v)\n", bus.QAResultsChannel, mergeWatcherDryRun)
	err = subscriber.Listen(ctx, func(ctx context.Context, entry bus.Entry) error {
		msg := entry.Message
		if msg.EventType != models.EventGatePassed {
			return nil
		}

		if mergeWatcherDryRun {
			fmt.Printf("Would emit merge event: project=%s story=%s\n", msg.Project, msg.StoryID)
			return nil
		}

		publisher := bus.NewPublisher(client, msg.Project, "merge-watcher")
		payload := map[string]interface{}{
			"action": "merge",
			"source": "qa",
		}
		for k, v := range msg.Payload {
			payload[k] = v
		}
		if _, err := publisher.PublishToChannel(ctx, bus.MergeEventsChannel, models.EventGatePassed, payload, bus.PublishOptions{
			SessionID:     msg.SessionID,
			StoryID:       msg.StoryID,
			CorrelationID: msg.CorrelationID,
		}); err != nil {
			return err
		}
		fmt.Printf("Merge event emitted: project=%s story=%s\n", msg.Project, msg.StoryID)
		return nil
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}
