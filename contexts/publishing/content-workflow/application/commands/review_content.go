package commands

import (
	"context"
	"log/slog"
	"strings"

	application "archivum/contexts/publishing/content-workflow/application"
	"archivum/contexts/publishing/content-workflow/domain/entities"
	domainerrors "archivum/contexts/publishing/content-workflow/domain/errors"
	"archivum/contexts/publishing/content-workflow/ports"
	"archivum/internal/shared/events"
)

type ApproveContentCommand struct {
	ItemID      string
	ModeratorID string
}

type RejectContentCommand struct {
	ItemID      string
	ModeratorID string
	Reason      string
}

// ReviewContentUseCase applies moderator decisions. Both transitions are
// conditional on the item still being pending, so a duplicate decision fails
// with ErrInvalidState instead of fanning out a second notification.
// Emitted notifications are returned to the caller, which dispatches them
// after the write has committed.
type ReviewContentUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc ReviewContentUseCase) Approve(ctx context.Context, cmd ApproveContentCommand) (entities.ContentItem, []events.Notification, error) {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(cmd.ModeratorID) == "" {
		return entities.ContentItem{}, nil, domainerrors.ErrForbidden
	}
	item, err := uc.Repository.GetContentItem(ctx, strings.TrimSpace(cmd.ItemID))
	if err != nil {
		return entities.ContentItem{}, nil, err
	}
	if item.State != entities.ContentStatePendingApproval {
		return entities.ContentItem{}, nil, domainerrors.ErrInvalidState
	}

	now := uc.Clock.Now().UTC()
	item.State = entities.ContentStatePublished
	if item.PublishedAt == nil {
		item.PublishedAt = &now
	}
	item.UpdatedAt = now
	if err := uc.Repository.UpdateContentItem(ctx, item, entities.ContentStatePendingApproval); err != nil {
		return entities.ContentItem{}, nil, err
	}

	logger.Info("content approved",
		"event", "content_approved",
		"module", "publishing/content-workflow",
		"layer", "application",
		"item_id", item.ItemID,
		"moderator_id", strings.TrimSpace(cmd.ModeratorID),
	)
	emitted := []events.Notification{{
		RecipientID:   item.AuthorID,
		Kind:          events.KindPostApproved,
		SubjectItemID: item.ItemID,
		OccurredAtUTC: now,
	}}
	return item, emitted, nil
}

func (uc ReviewContentUseCase) Reject(ctx context.Context, cmd RejectContentCommand) (entities.ContentItem, []events.Notification, error) {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(cmd.ModeratorID) == "" {
		return entities.ContentItem{}, nil, domainerrors.ErrForbidden
	}
	item, err := uc.Repository.GetContentItem(ctx, strings.TrimSpace(cmd.ItemID))
	if err != nil {
		return entities.ContentItem{}, nil, err
	}
	if item.State != entities.ContentStatePendingApproval {
		return entities.ContentItem{}, nil, domainerrors.ErrInvalidState
	}

	now := uc.Clock.Now().UTC()
	item.State = entities.ContentStateDraft
	item.RejectionReason = strings.TrimSpace(cmd.Reason)
	item.UpdatedAt = now
	if err := uc.Repository.UpdateContentItem(ctx, item, entities.ContentStatePendingApproval); err != nil {
		return entities.ContentItem{}, nil, err
	}

	logger.Info("content rejected",
		"event", "content_rejected",
		"module", "publishing/content-workflow",
		"layer", "application",
		"item_id", item.ItemID,
		"moderator_id", strings.TrimSpace(cmd.ModeratorID),
	)
	emitted := []events.Notification{{
		RecipientID:   item.AuthorID,
		Kind:          events.KindPostRejected,
		SubjectItemID: item.ItemID,
		ContextText:   item.RejectionReason,
		OccurredAtUTC: now,
	}}
	return item, emitted, nil
}
