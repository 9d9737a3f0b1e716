// Package notify delivers owner notifications for new intake submissions.
// Delivery is best-effort and at-most-once: a failed notification is logged
// and never rolls back the persisted record.
package notify

import (
	"context"
	"log/slog"
)

// Message is a fixed-format owner notification.
type Message struct {
	Title   string
	Content string
}

// Notifier announces a new submission to the business owner. Implementations
// must not return delivery failures to the caller; they log and move on.
type Notifier interface {
	Notify(ctx context.Context, msg Message)
}

// LogNotifier writes notifications to the structured log. Used when no
// Telegram credentials are configured.
type LogNotifier struct{}

var _ Notifier = LogNotifier{}

func (LogNotifier) Notify(_ context.Context, msg Message) {
	slog.Info("owner notification", "title", msg.Title, "content", msg.Content)
}
