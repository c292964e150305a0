package application

import (
	"context"
	"log/slog"
	"strings"

	"archivum/contexts/engagement/notification-dispatcher/ports"
	"archivum/internal/shared/events"
)

// Dispatcher hands emitted notifications to the external channel after the
// producing transition has committed. Delivery is best-effort: channel
// failures are logged and swallowed, never propagated, so a broken mail
// backend cannot roll back or fail a workflow operation.
type Dispatcher struct {
	Channel ports.Channel
	Logger  *slog.Logger
}

// Dispatch returns the number of notifications actually handed off.
// Events without a recipient are dropped; an anonymous suggester has nobody
// to notify.
func (d Dispatcher) Dispatch(ctx context.Context, notifications ...events.Notification) int {
	logger := ResolveLogger(d.Logger)
	delivered := 0
	for _, notification := range notifications {
		if strings.TrimSpace(notification.RecipientID) == "" {
			continue
		}
		if d.Channel == nil {
			logger.Warn("notification dropped, no channel configured",
				"event", "notification_dropped",
				"module", "engagement/notification-dispatcher",
				"layer", "application",
				"kind", string(notification.Kind),
			)
			continue
		}
		if err := d.Channel.Deliver(ctx, notification); err != nil {
			logger.Error("notification delivery failed",
				"event", "notification_delivery_failed",
				"module", "engagement/notification-dispatcher",
				"layer", "application",
				"kind", string(notification.Kind),
				"recipient_id", notification.RecipientID,
				"error", err.Error(),
			)
			continue
		}
		delivered++
		logger.Info("notification dispatched",
			"event", "notification_dispatched",
			"module", "engagement/notification-dispatcher",
			"layer", "application",
			"kind", string(notification.Kind),
			"recipient_id", notification.RecipientID,
			"subject_item_id", notification.SubjectItemID,
		)
	}
	return delivered
}
