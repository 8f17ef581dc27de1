// Package slack sends workflow notifications: session lifecycle to the
// main channel, budget alerts to the budget channel, escalations and
// emergency stops to the alerts channel.
package slack

import (
	"context"
	"fmt"
	"log/slog"

	slackapi "github.com/slack-go/slack"

	"github.com/Boomerang-Apps/wave/pkg/config"
	"github.com/Boomerang-Apps/wave/pkg/safety"
)

// Severity grades a notification.
type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) color() string {
	switch s {
	case SeverityCritical:
		return "#d32f2f"
	case SeverityWarning:
		return "#f9a825"
	default:
		return "#2e7d32"
	}
}

// Notifier posts messages through a Slack incoming webhook. A disabled
// notifier drops messages silently, so callers never branch on config.
type Notifier struct {
	cfg  *config.SlackConfig
	post func(ctx context.Context, url string, msg *slackapi.WebhookMessage) error
}

// NewNotifier creates a notifier from config.
func NewNotifier(cfg *config.SlackConfig) *Notifier {
	return &Notifier{
		cfg: cfg,
		post: func(ctx context.Context, url string, msg *slackapi.WebhookMessage) error {
			return slackapi.PostWebhookContext(ctx, url, msg)
		},
	}
}

// Notify posts to the main channel.
func (n *Notifier) Notify(ctx context.Context, severity Severity, title, message string) error {
	return n.send(ctx, n.cfg.Channel, severity, title, message, nil)
}

// NotifyBudget posts a budget alert to the budget channel. NORMAL checks
// are dropped.
func (n *Notifier) NotifyBudget(ctx context.Context, sessionID string, check safety.BudgetCheck) error {
	severity := SeverityWarning
	switch check.Level {
	case safety.AlertNormal:
		return nil
	case safety.AlertCritical, safety.AlertExceeded:
		severity = SeverityCritical
	}

	fields := []slackapi.AttachmentField{
		{Title: "Session", Value: sessionID, Short: true},
		{Title: "Usage", Value: fmt.Sprintf("%.1f%%", check.PercentUse), Short: true},
		{Title: "Tokens", Value: fmt.Sprintf("%d / %d", check.TokensUsed, check.TokenLimit), Short: true},
	}
	return n.send(ctx, n.cfg.BudgetChannel, severity, fmt.Sprintf("Budget %s", check.Level), check.Message, fields)
}

// NotifyEscalation posts a human-escalation alert to the alerts channel.
func (n *Notifier) NotifyEscalation(ctx context.Context, runID, reason string) error {
	fields := []slackapi.AttachmentField{
		{Title: "Run", Value: runID, Short: true},
	}
	return n.send(ctx, n.cfg.AlertsChannel, SeverityWarning, "Human review required", reason, fields)
}

// NotifyEmergencyStop posts an E-STOP alert to the alerts channel.
func (n *Notifier) NotifyEmergencyStop(ctx context.Context, sessionID, reason string) error {
	fields := []slackapi.AttachmentField{
		{Title: "Session", Value: sessionID, Short: true},
	}
	return n.send(ctx, n.cfg.AlertsChannel, SeverityCritical, "Emergency stop", reason, fields)
}

func (n *Notifier) send(ctx context.Context, channel string, severity Severity, title, message string, fields []slackapi.AttachmentField) error {
	if !n.cfg.Enabled || n.cfg.WebhookURL == "" {
		return nil
	}

	msg := &slackapi.WebhookMessage{
		Channel: channel,
		Attachments: []slackapi.Attachment{{
			Color:  severity.color(),
			Title:  fmt.Sprintf("[%s] %s", severity, title),
			Text:   message,
			Fields: fields,
		}},
	}
	if err := n.post(ctx, n.cfg.WebhookURL, msg); err != nil {
		slog.Error("Slack notification failed", "channel", channel, "title", title, "error", err)
		return fmt.Errorf("failed to post slack notification: %w", err)
	}
	return nil
}
