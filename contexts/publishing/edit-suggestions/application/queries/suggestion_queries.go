package queries

import (
	"context"
	"log/slog"
	"strings"

	"archivum/contexts/publishing/edit-suggestions/domain/entities"
	domainerrors "archivum/contexts/publishing/edit-suggestions/domain/errors"
	"archivum/contexts/publishing/edit-suggestions/ports"
)

type QueryUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (uc QueryUseCase) GetSuggestion(ctx context.Context, suggestionID string) (entities.EditSuggestion, error) {
	return uc.Repository.GetSuggestion(ctx, strings.TrimSpace(suggestionID))
}

func (uc QueryUseCase) ListByItem(ctx context.Context, itemID string) ([]entities.EditSuggestion, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	return uc.Repository.ListByItem(ctx, strings.TrimSpace(itemID))
}

// ListPendingForAuthor feeds the author dashboard: undecided suggestions
// across all of the author's items.
func (uc QueryUseCase) ListPendingForAuthor(ctx context.Context, authorID string) ([]entities.EditSuggestion, error) {
	if strings.TrimSpace(authorID) == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	return uc.Repository.ListPendingForAuthor(ctx, strings.TrimSpace(authorID))
}
