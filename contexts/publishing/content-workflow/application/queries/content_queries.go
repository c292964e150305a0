package queries

import (
	"context"
	"log/slog"
	"strings"

	"archivum/contexts/publishing/content-workflow/domain/entities"
	domainerrors "archivum/contexts/publishing/content-workflow/domain/errors"
	"archivum/contexts/publishing/content-workflow/ports"
)

type ListPendingQuery struct {
	Kind   string
	Limit  int
	Offset int
}

type ListByAuthorQuery struct {
	AuthorID string
	State    string
}

type QueryUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (uc QueryUseCase) GetContentItem(ctx context.Context, itemID string) (entities.ContentItem, error) {
	return uc.Repository.GetContentItem(ctx, strings.TrimSpace(itemID))
}

// ListPending is the moderation queue: items awaiting decision across all
// kinds, oldest submission first.
func (uc QueryUseCase) ListPending(ctx context.Context, query ListPendingQuery) ([]entities.ContentItem, error) {
	kind := entities.ContentKind(strings.TrimSpace(strings.ToLower(query.Kind)))
	if kind != "" && !entities.ValidKind(kind) {
		return nil, domainerrors.ErrInvalidContentKind
	}
	if query.Limit <= 0 {
		query.Limit = 20
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.Offset < 0 {
		return nil, domainerrors.ErrInvalidInput
	}
	return uc.Repository.ListPendingApproval(ctx, kind, query.Limit, query.Offset)
}

func (uc QueryUseCase) ListByAuthor(ctx context.Context, query ListByAuthorQuery) ([]entities.ContentItem, error) {
	authorID := strings.TrimSpace(query.AuthorID)
	if authorID == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	state := entities.ContentState(strings.TrimSpace(strings.ToLower(query.State)))
	if state != "" {
		switch state {
		case entities.ContentStateDraft, entities.ContentStatePendingApproval, entities.ContentStatePublished:
		default:
			return nil, domainerrors.ErrInvalidInput
		}
	}
	return uc.Repository.ListContentItems(ctx, ports.ContentFilter{
		AuthorID: authorID,
		State:    state,
	})
}
