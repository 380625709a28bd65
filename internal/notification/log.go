package notification

import (
	"context"
	"log/slog"
)

// LogNotifier writes notifications to the structured log. It is the default
// backend and the fallback when a remote backend is unavailable.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, msg Notification) error {
	n.logger.InfoContext(ctx, "notification",
		"kind", string(msg.Kind),
		"recipient_id", msg.RecipientID.String(),
		"group_id", msg.GroupID.String(),
		"message", msg.Message,
	)
	return nil
}
