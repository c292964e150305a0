package commands

import (
	"context"
	"log/slog"
	"strings"

	application "archivum/contexts/publishing/content-workflow/application"
	"archivum/contexts/publishing/content-workflow/domain/entities"
	domainerrors "archivum/contexts/publishing/content-workflow/domain/errors"
	"archivum/contexts/publishing/content-workflow/ports"
)

type SaveDraftCommand struct {
	ItemID  string
	ActorID string
	Payload entities.Payload
}

// SaveDraftUseCase updates an item's payload. The author may edit a draft;
// a non-author may edit a published item exactly once by consuming an edit
// grant, which re-submits the item for approval without clearing its
// publication history.
type SaveDraftUseCase struct {
	Repository ports.Repository
	Validator  ports.PayloadValidator
	Grants     ports.EditGrantConsumer
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc SaveDraftUseCase) Execute(ctx context.Context, cmd SaveDraftCommand) (entities.ContentItem, error) {
	logger := application.ResolveLogger(uc.Logger)
	actorID := strings.TrimSpace(cmd.ActorID)
	if actorID == "" {
		return entities.ContentItem{}, domainerrors.ErrForbidden
	}

	item, err := uc.Repository.GetContentItem(ctx, strings.TrimSpace(cmd.ItemID))
	if err != nil {
		return entities.ContentItem{}, err
	}
	if err := uc.Validator.ValidatePayload(item.Kind, cmd.Payload); err != nil {
		return entities.ContentItem{}, err
	}

	now := uc.Clock.Now().UTC()
	previousState := item.State

	switch {
	case actorID == item.AuthorID:
		if item.State != entities.ContentStateDraft {
			return entities.ContentItem{}, domainerrors.ErrInvalidState
		}
		item.Payload = cmd.Payload
		item.UpdatedAt = now

	case item.State == entities.ContentStatePublished:
		ok, err := uc.consumeGrant(ctx, item.ItemID, actorID)
		if err != nil {
			return entities.ContentItem{}, err
		}
		if !ok {
			return entities.ContentItem{}, domainerrors.ErrForbidden
		}
		item.Payload = cmd.Payload
		item.State = entities.ContentStatePendingApproval
		item.SubmittedAt = &now
		item.UpdatedAt = now

	default:
		return entities.ContentItem{}, domainerrors.ErrForbidden
	}

	if err := uc.Repository.UpdateContentItem(ctx, item, previousState); err != nil {
		return entities.ContentItem{}, err
	}

	logger.Info("content saved",
		"event", "content_saved",
		"module", "publishing/content-workflow",
		"layer", "application",
		"item_id", item.ItemID,
		"actor_id", actorID,
		"state", string(item.State),
	)
	return item, nil
}

func (uc SaveDraftUseCase) consumeGrant(ctx context.Context, itemID, userID string) (bool, error) {
	if uc.Grants == nil {
		return false, nil
	}
	return uc.Grants.ConsumeGrant(ctx, itemID, userID)
}
