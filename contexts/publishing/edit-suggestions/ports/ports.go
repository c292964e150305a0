package ports

import (
	"context"
	"time"

	"archivum/contexts/publishing/edit-suggestions/domain/entities"
)

// Repository persists edit suggestions. UpdateDecision writes only while the
// stored decision is still pending, so concurrent decisions on one
// suggestion serialize and the loser observes ErrInvalidState.
type Repository interface {
	CreateSuggestion(ctx context.Context, suggestion entities.EditSuggestion) error
	GetSuggestion(ctx context.Context, suggestionID string) (entities.EditSuggestion, error)
	UpdateDecision(ctx context.Context, suggestion entities.EditSuggestion) error
	ListByItem(ctx context.Context, itemID string) ([]entities.EditSuggestion, error)
	ListPendingForAuthor(ctx context.Context, authorID string) ([]entities.EditSuggestion, error)
}

// ContentRef is the slice of a content item the suggestion engine needs.
type ContentRef struct {
	ItemID    string
	AuthorID  string
	Published bool
}

// ContentReader is the client port onto the content workflow, wired at the
// composition root.
type ContentReader interface {
	GetContentRef(ctx context.Context, itemID string) (ContentRef, error)
}

// EditGrantIssuer records one-shot edit capabilities for approved suggesters.
type EditGrantIssuer interface {
	IssueGrant(ctx context.Context, itemID string, userID string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
