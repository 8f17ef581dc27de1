package slack

import (
	"context"
	"testing"

	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boomerang-Apps/wave/pkg/config"
	"github.com/Boomerang-Apps/wave/pkg/safety"
)

type capturedPost struct {
	url string
	msg *slackapi.WebhookMessage
}

func newCapturingNotifier(enabled bool) (*Notifier, *[]capturedPost) {
	posts := &[]capturedPost{}
	n := NewNotifier(&config.SlackConfig{
		Enabled:       enabled,
		WebhookURL:    "https://hooks.slack.test/T000/B000",
		Channel:       "#wave",
		BudgetChannel: "#wave-budget",
		AlertsChannel: "#wave-alerts",
	})
	n.post = func(_ context.Context, url string, msg *slackapi.WebhookMessage) error {
		*posts = append(*posts, capturedPost{url: url, msg: msg})
		return nil
	}
	return n, posts
}

func TestNotifier_Disabled(t *testing.T) {
	n, posts := newCapturingNotifier(false)
	require.NoError(t, n.Notify(context.Background(), SeverityInfo, "Session started", "wave 1"))
	assert.Empty(t, *posts)
}

func TestNotifier_Notify(t *testing.T) {
	n, posts := newCapturingNotifier(true)
	require.NoError(t, n.Notify(context.Background(), SeverityInfo, "Session started", "wave 1"))

	require.Len(t, *posts, 1)
	msg := (*posts)[0].msg
	assert.Equal(t, "#wave", msg.Channel)
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "[INFO] Session started", msg.Attachments[0].Title)
	assert.Equal(t, "#2e7d32", msg.Attachments[0].Color)
}

func TestNotifier_NotifyBudget(t *testing.T) {
	ctx := context.Background()

	t.Run("normal checks are dropped", func(t *testing.T) {
		n, posts := newCapturingNotifier(true)
		require.NoError(t, n.NotifyBudget(ctx, "sess-1", safety.BudgetCheck{Level: safety.AlertNormal}))
		assert.Empty(t, *posts)
	})

	t.Run("critical goes to the budget channel", func(t *testing.T) {
		n, posts := newCapturingNotifier(true)
		require.NoError(t, n.NotifyBudget(ctx, "sess-1", safety.BudgetCheck{
			Level:      safety.AlertCritical,
			PercentUse: 92.5,
			TokensUsed: 92500,
			TokenLimit: 100000,
			Message:    "budget critical",
		}))

		require.Len(t, *posts, 1)
		msg := (*posts)[0].msg
		assert.Equal(t, "#wave-budget", msg.Channel)
		assert.Equal(t, "#d32f2f", msg.Attachments[0].Color)
		assert.Equal(t, "92.5%", msg.Attachments[0].Fields[1].Value)
	})
}

func TestNotifier_Alerts(t *testing.T) {
	ctx := context.Background()

	t.Run("escalation", func(t *testing.T) {
		n, posts := newCapturingNotifier(true)
		require.NoError(t, n.NotifyEscalation(ctx, "run-1", "consensus below threshold"))
		require.Len(t, *posts, 1)
		msg := (*posts)[0].msg
		assert.Equal(t, "#wave-alerts", msg.Channel)
		assert.Contains(t, msg.Attachments[0].Title, "Human review required")
	})

	t.Run("emergency stop", func(t *testing.T) {
		n, posts := newCapturingNotifier(true)
		require.NoError(t, n.NotifyEmergencyStop(ctx, "sess-1", "safety score below 0.3"))
		require.Len(t, *posts, 1)
		msg := (*posts)[0].msg
		assert.Equal(t, "#wave-alerts", msg.Channel)
		assert.Equal(t, "[CRITICAL] Emergency stop", msg.Attachments[0].Title)
	})
}

func TestNotifier_PostErrorWrapped(t *testing.T) {
	n, _ := newCapturingNotifier(true)
	n.post = func(_ context.Context, _ string, _ *slackapi.WebhookMessage) error {
		return assert.AnError
	}
	err := n.Notify(context.Background(), SeverityWarning, "x", "y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to post slack notification")
}
