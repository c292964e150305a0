package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"archivum/contexts/engagement/notification-dispatcher/adapters/memory"
	"archivum/internal/shared/events"
)

type failingChannel struct {
	attempts int
}

func (c *failingChannel) Deliver(_ context.Context, _ events.Notification) error {
	c.attempts++
	return errors.New("smtp connection refused")
}

func notification(recipient string) events.Notification {
	return events.Notification{
		RecipientID:   recipient,
		Kind:          events.KindPostApproved,
		SubjectItemID: "item-1",
		OccurredAtUTC: time.Now().UTC(),
	}
}

func TestDispatchSwallowsChannelFailures(t *testing.T) {
	channel := &failingChannel{}
	dispatcher := Dispatcher{Channel: channel}

	delivered := dispatcher.Dispatch(context.Background(), notification("user-1"), notification("user-2"))
	if delivered != 0 {
		t.Fatalf("failed deliveries must not count, got %d", delivered)
	}
	if channel.attempts != 2 {
		t.Fatalf("one failure must not stop the rest, attempts=%d", channel.attempts)
	}
}

func TestDispatchSkipsEmptyRecipients(t *testing.T) {
	channel := memory.NewChannel()
	dispatcher := Dispatcher{Channel: channel}

	delivered := dispatcher.Dispatch(context.Background(), notification(""), notification("user-1"))
	if delivered != 1 {
		t.Fatalf("expected one delivery, got %d", delivered)
	}
	if len(channel.Delivered()) != 1 || channel.Delivered()[0].RecipientID != "user-1" {
		t.Fatalf("unexpected delivery log %+v", channel.Delivered())
	}
}

func TestDispatchWithoutChannelDropsEverything(t *testing.T) {
	dispatcher := Dispatcher{}

	delivered := dispatcher.Dispatch(context.Background(), notification("user-1"))
	if delivered != 0 {
		t.Fatalf("no channel means no delivery, got %d", delivered)
	}
}
