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

type ApproveSuggestionCommand struct {
	SuggestionID string
	DeciderID    string
}

type RejectSuggestionCommand struct {
	SuggestionID string
	DeciderID    string
	Reason       string
}

// DecideSuggestionUseCase applies the item author's decision. Approval issues
// a one-shot edit grant for the suggester; approving does not touch the item
// payload, the suggester performs the edit themselves. Anonymous suggesters
// get neither a grant nor a notification.
type DecideSuggestionUseCase struct {
	Repository ports.Repository
	Grants     ports.EditGrantIssuer
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc DecideSuggestionUseCase) Approve(ctx context.Context, cmd ApproveSuggestionCommand) (entities.EditSuggestion, []events.Notification, error) {
	logger := application.ResolveLogger(uc.Logger)
	suggestion, err := uc.loadPending(ctx, cmd.SuggestionID, cmd.DeciderID)
	if err != nil {
		return entities.EditSuggestion{}, nil, err
	}

	now := uc.Clock.Now().UTC()
	suggestion.Decision = entities.SuggestionDecisionApproved
	suggestion.DecidedAt = &now
	if err := uc.Repository.UpdateDecision(ctx, suggestion); err != nil {
		return entities.EditSuggestion{}, nil, err
	}
	if !suggestion.Anonymous() {
		if err := uc.Grants.IssueGrant(ctx, suggestion.ContentItemID, suggestion.SuggesterID); err != nil {
			return entities.EditSuggestion{}, nil, err
		}
	}

	logger.Info("edit suggestion approved",
		"event", "suggestion_approved",
		"module", "publishing/edit-suggestions",
		"layer", "application",
		"suggestion_id", suggestion.SuggestionID,
		"item_id", suggestion.ContentItemID,
	)

	var emitted []events.Notification
	if !suggestion.Anonymous() {
		emitted = append(emitted, events.Notification{
			RecipientID:   suggestion.SuggesterID,
			Kind:          events.KindSuggestionApproved,
			SubjectItemID: suggestion.ContentItemID,
			OccurredAtUTC: now,
		})
	}
	return suggestion, emitted, nil
}

func (uc DecideSuggestionUseCase) Reject(ctx context.Context, cmd RejectSuggestionCommand) (entities.EditSuggestion, []events.Notification, error) {
	logger := application.ResolveLogger(uc.Logger)
	suggestion, err := uc.loadPending(ctx, cmd.SuggestionID, cmd.DeciderID)
	if err != nil {
		return entities.EditSuggestion{}, nil, err
	}

	now := uc.Clock.Now().UTC()
	suggestion.Decision = entities.SuggestionDecisionRejected
	suggestion.RejectionReason = strings.TrimSpace(cmd.Reason)
	suggestion.DecidedAt = &now
	if err := uc.Repository.UpdateDecision(ctx, suggestion); err != nil {
		return entities.EditSuggestion{}, nil, err
	}

	logger.Info("edit suggestion rejected",
		"event", "suggestion_rejected",
		"module", "publishing/edit-suggestions",
		"layer", "application",
		"suggestion_id", suggestion.SuggestionID,
		"item_id", suggestion.ContentItemID,
	)

	var emitted []events.Notification
	if !suggestion.Anonymous() {
		emitted = append(emitted, events.Notification{
			RecipientID:   suggestion.SuggesterID,
			Kind:          events.KindSuggestionRejected,
			SubjectItemID: suggestion.ContentItemID,
			ContextText:   suggestion.RejectionReason,
			OccurredAtUTC: now,
		})
	}
	return suggestion, emitted, nil
}

func (uc DecideSuggestionUseCase) loadPending(ctx context.Context, suggestionID, deciderID string) (entities.EditSuggestion, error) {
	suggestion, err := uc.Repository.GetSuggestion(ctx, strings.TrimSpace(suggestionID))
	if err != nil {
		return entities.EditSuggestion{}, err
	}
	if strings.TrimSpace(deciderID) == "" || strings.TrimSpace(deciderID) != suggestion.ItemAuthorID {
		return entities.EditSuggestion{}, domainerrors.ErrForbidden
	}
	if suggestion.Decision != entities.SuggestionDecisionPending {
		return entities.EditSuggestion{}, domainerrors.ErrInvalidState
	}
	return suggestion, nil
}
