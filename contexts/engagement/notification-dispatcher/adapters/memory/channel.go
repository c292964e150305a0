package memory

import (
	"context"
	"sync"

	"archivum/internal/shared/events"
)

// Channel is an in-process delivery sink: it keeps every delivered
// notification, which makes it both the local in-app notification store and
// the recording double the tests assert against.
type Channel struct {
	mu        sync.RWMutex
	delivered []events.Notification
}

func NewChannel() *Channel {
	return &Channel{}
}

func (c *Channel) Deliver(_ context.Context, notification events.Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.delivered = append(c.delivered, notification)
	return nil
}

func (c *Channel) Delivered() []events.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]events.Notification(nil), c.delivered...)
}

// DeliveredTo filters the log by recipient.
func (c *Channel) DeliveredTo(recipientID string) []events.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var items []events.Notification
	for _, notification := range c.delivered {
		if notification.RecipientID == recipientID {
			items = append(items, notification)
		}
	}
	return items
}
