package ports

import (
	"context"
	"time"

	"archivum/contexts/publishing/content-workflow/domain/entities"
)

type ContentFilter struct {
	AuthorID string
	Kind     entities.ContentKind
	State    entities.ContentState
	Limit    int
	Offset   int
}

// Repository persists content items. UpdateContentItem is a conditional
// write: the row is updated only while its stored state still equals
// expectedState, so concurrent transitions on one item serialize and the
// loser observes ErrInvalidState.
type Repository interface {
	CreateContentItem(ctx context.Context, item entities.ContentItem) error
	UpdateContentItem(ctx context.Context, item entities.ContentItem, expectedState entities.ContentState) error
	GetContentItem(ctx context.Context, itemID string) (entities.ContentItem, error)
	ListContentItems(ctx context.Context, filter ContentFilter) ([]entities.ContentItem, error)
	ListPendingApproval(ctx context.Context, kind entities.ContentKind, limit, offset int) ([]entities.ContentItem, error)
	PurgeStaleDrafts(ctx context.Context, before time.Time) (int, error)
}

// EditGrantConsumer checks and consumes one-shot edit capabilities issued by
// the suggestion engine. Consume removes the grant on success.
type EditGrantConsumer interface {
	ConsumeGrant(ctx context.Context, itemID string, userID string) (bool, error)
}

// PayloadValidator runs kind-specific payload checks before any
// state-changing write accepts a payload.
type PayloadValidator interface {
	ValidatePayload(kind entities.ContentKind, payload entities.Payload) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
