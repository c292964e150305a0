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

type CreateDraftCommand struct {
	AuthorID string
	Kind     entities.ContentKind
	Payload  entities.Payload
}

type CreateDraftUseCase struct {
	Repository ports.Repository
	Validator  ports.PayloadValidator
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc CreateDraftUseCase) Execute(ctx context.Context, cmd CreateDraftCommand) (entities.ContentItem, error) {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(cmd.AuthorID) == "" {
		return entities.ContentItem{}, domainerrors.ErrInvalidInput
	}
	if !entities.ValidKind(cmd.Kind) {
		return entities.ContentItem{}, domainerrors.ErrInvalidContentKind
	}
	if err := uc.Validator.ValidatePayload(cmd.Kind, cmd.Payload); err != nil {
		return entities.ContentItem{}, err
	}

	itemID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.ContentItem{}, err
	}
	now := uc.Clock.Now().UTC()
	item := entities.ContentItem{
		ItemID:    itemID,
		Kind:      cmd.Kind,
		AuthorID:  strings.TrimSpace(cmd.AuthorID),
		Payload:   cmd.Payload,
		State:     entities.ContentStateDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if !item.ValidateCreate() {
		return entities.ContentItem{}, domainerrors.ErrInvalidInput
	}
	if err := uc.Repository.CreateContentItem(ctx, item); err != nil {
		return entities.ContentItem{}, err
	}

	logger.Info("draft created",
		"event", "content_draft_created",
		"module", "publishing/content-workflow",
		"layer", "application",
		"item_id", item.ItemID,
		"kind", string(item.Kind),
		"author_id", item.AuthorID,
	)
	return item, nil
}
