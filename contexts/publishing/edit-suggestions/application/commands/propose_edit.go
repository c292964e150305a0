package commands

import (
	"context"
	"log/slog"
	"strings"

	application "archivum/contexts/publishing/edit-suggestions/application"
	"archivum/contexts/publishing/edit-suggestions/domain/entities"
	domainerrors "archivum/contexts/publishing/edit-suggestions/domain/errors"
	"archivum/contexts/publishing/edit-suggestions/ports"
	"archivum/internal/shared/events"
)

type ProposeEditCommand struct {
	ItemID      string
	SuggesterID string // empty for anonymous suggesters
	Text        string
}

// ProposeEditUseCase records a suggestion against a published item and
// notifies the author, except when the author is suggesting on their own
// post.
type ProposeEditUseCase struct {
	Repository ports.Repository
	Content    ports.ContentReader
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc ProposeEditUseCase) Execute(ctx context.Context, cmd ProposeEditCommand) (entities.EditSuggestion, []events.Notification, error) {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(cmd.Text) == "" {
		return entities.EditSuggestion{}, nil, domainerrors.ErrInvalidInput
	}

	ref, err := uc.Content.GetContentRef(ctx, strings.TrimSpace(cmd.ItemID))
	if err != nil {
		return entities.EditSuggestion{}, nil, err
	}
	if !ref.Published {
		return entities.EditSuggestion{}, nil, domainerrors.ErrItemNotPublished
	}

	suggestionID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.EditSuggestion{}, nil, err
	}
	now := uc.Clock.Now().UTC()
	suggestion := entities.EditSuggestion{
		SuggestionID:   suggestionID,
		ContentItemID:  ref.ItemID,
		ItemAuthorID:   ref.AuthorID,
		SuggesterID:    strings.TrimSpace(cmd.SuggesterID),
		SuggestionText: strings.TrimSpace(cmd.Text),
		Decision:       entities.SuggestionDecisionPending,
		CreatedAt:      now,
	}
	if !suggestion.ValidateCreate() {
		return entities.EditSuggestion{}, nil, domainerrors.ErrInvalidInput
	}
	if err := uc.Repository.CreateSuggestion(ctx, suggestion); err != nil {
		return entities.EditSuggestion{}, nil, err
	}

	logger.Info("edit suggested",
		"event", "edit_suggested",
		"module", "publishing/edit-suggestions",
		"layer", "application",
		"suggestion_id", suggestion.SuggestionID,
		"item_id", suggestion.ContentItemID,
	)

	// No self-notification when the author suggests on their own item.
	var emitted []events.Notification
	if suggestion.SuggesterID != ref.AuthorID {
		emitted = append(emitted, events.Notification{
			RecipientID:   ref.AuthorID,
			Kind:          events.KindEditSuggested,
			SubjectItemID: ref.ItemID,
			ContextText:   suggestion.SuggestionText,
			OccurredAtUTC: now,
		})
	}
	return suggestion, emitted, nil
}
