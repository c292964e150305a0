package ports

import (
	"context"

	"archivum/internal/shared/events"
)

// Channel is the external delivery surface: in-app storage, email, push.
// It may fail independently of the workflow; the dispatcher never lets a
// channel error reach the caller.
type Channel interface {
	Deliver(ctx context.Context, notification events.Notification) error
}
