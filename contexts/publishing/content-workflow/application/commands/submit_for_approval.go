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

type SubmitForApprovalCommand struct {
	ItemID  string
	ActorID string
}

// SubmitForApprovalUseCase moves a draft into the moderation queue.
// Submission is silent: moderators poll the queue, no event is emitted.
type SubmitForApprovalUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc SubmitForApprovalUseCase) Execute(ctx context.Context, cmd SubmitForApprovalCommand) (entities.ContentItem, error) {
	logger := application.ResolveLogger(uc.Logger)
	item, err := uc.Repository.GetContentItem(ctx, strings.TrimSpace(cmd.ItemID))
	if err != nil {
		return entities.ContentItem{}, err
	}
	if strings.TrimSpace(cmd.ActorID) != item.AuthorID {
		return entities.ContentItem{}, domainerrors.ErrForbidden
	}
	if item.State != entities.ContentStateDraft {
		return entities.ContentItem{}, domainerrors.ErrInvalidState
	}

	now := uc.Clock.Now().UTC()
	item.State = entities.ContentStatePendingApproval
	item.SubmittedAt = &now
	item.RejectionReason = ""
	item.UpdatedAt = now
	if err := uc.Repository.UpdateContentItem(ctx, item, entities.ContentStateDraft); err != nil {
		return entities.ContentItem{}, err
	}

	logger.Info("content submitted for approval",
		"event", "content_submitted",
		"module", "publishing/content-workflow",
		"layer", "application",
		"item_id", item.ItemID,
		"kind", string(item.Kind),
	)
	return item, nil
}
