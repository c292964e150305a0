package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"archivum/contexts/publishing/content-workflow/application/commands"
	"archivum/contexts/publishing/content-workflow/application/queries"
	"archivum/contexts/publishing/content-workflow/domain/entities"
	httptransport "archivum/contexts/publishing/content-workflow/transport/http"
	"archivum/internal/shared/events"
)

type Handler struct {
	CreateDraft   commands.CreateDraftUseCase
	SaveDraft     commands.SaveDraftUseCase
	Submit        commands.SubmitForApprovalUseCase
	ReviewContent commands.ReviewContentUseCase
	Queries       queries.QueryUseCase
	Logger        *slog.Logger
}

func (h Handler) CreateDraftHandler(
	ctx context.Context,
	authorID string,
	req httptransport.CreateDraftRequest,
) (httptransport.ContentItemResponse, error) {
	item, err := h.CreateDraft.Execute(ctx, commands.CreateDraftCommand{
		AuthorID: authorID,
		Kind:     entities.ContentKind(req.Kind),
		Payload:  payloadFromDTO(req.Payload),
	})
	if err != nil {
		return httptransport.ContentItemResponse{}, err
	}
	return httptransport.ContentItemResponse{Item: mapContentItem(item)}, nil
}

func (h Handler) SaveDraftHandler(
	ctx context.Context,
	actorID string,
	itemID string,
	req httptransport.SaveDraftRequest,
) (httptransport.ContentItemResponse, error) {
	item, err := h.SaveDraft.Execute(ctx, commands.SaveDraftCommand{
		ItemID:  itemID,
		ActorID: actorID,
		Payload: payloadFromDTO(req.Payload),
	})
	if err != nil {
		return httptransport.ContentItemResponse{}, err
	}
	return httptransport.ContentItemResponse{Item: mapContentItem(item)}, nil
}

func (h Handler) SubmitHandler(
	ctx context.Context,
	actorID string,
	itemID string,
) (httptransport.ContentItemResponse, error) {
	item, err := h.Submit.Execute(ctx, commands.SubmitForApprovalCommand{
		ItemID:  itemID,
		ActorID: actorID,
	})
	if err != nil {
		return httptransport.ContentItemResponse{}, err
	}
	return httptransport.ContentItemResponse{Item: mapContentItem(item)}, nil
}

func (h Handler) ApproveHandler(
	ctx context.Context,
	moderatorID string,
	itemID string,
) (httptransport.ContentItemResponse, []events.Notification, error) {
	item, emitted, err := h.ReviewContent.Approve(ctx, commands.ApproveContentCommand{
		ItemID:      itemID,
		ModeratorID: moderatorID,
	})
	if err != nil {
		return httptransport.ContentItemResponse{}, nil, err
	}
	return httptransport.ContentItemResponse{Item: mapContentItem(item)}, emitted, nil
}

func (h Handler) RejectHandler(
	ctx context.Context,
	moderatorID string,
	itemID string,
	req httptransport.RejectContentRequest,
) (httptransport.ContentItemResponse, []events.Notification, error) {
	item, emitted, err := h.ReviewContent.Reject(ctx, commands.RejectContentCommand{
		ItemID:      itemID,
		ModeratorID: moderatorID,
		Reason:      req.Reason,
	})
	if err != nil {
		return httptransport.ContentItemResponse{}, nil, err
	}
	return httptransport.ContentItemResponse{Item: mapContentItem(item)}, emitted, nil
}

func (h Handler) GetContentItemHandler(ctx context.Context, itemID string) (httptransport.ContentItemResponse, error) {
	item, err := h.Queries.GetContentItem(ctx, itemID)
	if err != nil {
		return httptransport.ContentItemResponse{}, err
	}
	return httptransport.ContentItemResponse{Item: mapContentItem(item)}, nil
}

func (h Handler) ListByAuthorHandler(
	ctx context.Context,
	authorID string,
	state string,
) (httptransport.ListContentItemsResponse, error) {
	items, err := h.Queries.ListByAuthor(ctx, queries.ListByAuthorQuery{
		AuthorID: authorID,
		State:    state,
	})
	if err != nil {
		return httptransport.ListContentItemsResponse{}, err
	}
	result := make([]httptransport.ContentItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapContentItem(item))
	}
	return httptransport.ListContentItemsResponse{Items: result}, nil
}

func (h Handler) ModerationQueueHandler(
	ctx context.Context,
	kind string,
	limit int,
	offset int,
) (httptransport.ModerationQueueResponse, error) {
	items, err := h.Queries.ListPending(ctx, queries.ListPendingQuery{
		Kind:   kind,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return httptransport.ModerationQueueResponse{}, err
	}
	result := make([]httptransport.ContentItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapContentItem(item))
	}
	return httptransport.ModerationQueueResponse{Items: result}, nil
}

func payloadFromDTO(dto httptransport.PayloadDTO) entities.Payload {
	payload := entities.Payload{}
	if dto.Article != nil {
		payload.Article = &entities.ArticlePayload{
			Title:            dto.Article.Title,
			Slug:             dto.Article.Slug,
			Body:             dto.Article.Body,
			Excerpt:          dto.Article.Excerpt,
			FeaturedImageURL: dto.Article.FeaturedImageURL,
			AltText:          dto.Article.AltText,
			Tags:             append([]string(nil), dto.Article.Tags...),
		}
	}
	if dto.BookReview != nil {
		payload.BookReview = &entities.BookReviewPayload{
			BookTitle:     dto.BookReview.BookTitle,
			BookAuthor:    dto.BookReview.BookAuthor,
			ISBN:          dto.BookReview.ISBN,
			ReviewTitle:   dto.BookReview.ReviewTitle,
			Slug:          dto.BookReview.Slug,
			Body:          dto.BookReview.Body,
			Rating:        dto.BookReview.Rating,
			CoverImageURL: dto.BookReview.CoverImageURL,
			Tags:          append([]string(nil), dto.BookReview.Tags...),
		}
	}
	if dto.MediaAsset != nil {
		payload.MediaAsset = &entities.MediaAssetPayload{
			Title:       dto.MediaAsset.Title,
			Description: dto.MediaAsset.Description,
			MediaType:   dto.MediaAsset.MediaType,
			FileURL:     dto.MediaAsset.FileURL,
			AltText:     dto.MediaAsset.AltText,
			Category:    dto.MediaAsset.Category,
			Tags:        append([]string(nil), dto.MediaAsset.Tags...),
		}
	}
	return payload
}

func payloadToDTO(payload entities.Payload) httptransport.PayloadDTO {
	dto := httptransport.PayloadDTO{}
	if payload.Article != nil {
		dto.Article = &httptransport.ArticlePayloadDTO{
			Title:            payload.Article.Title,
			Slug:             payload.Article.Slug,
			Body:             payload.Article.Body,
			Excerpt:          payload.Article.Excerpt,
			FeaturedImageURL: payload.Article.FeaturedImageURL,
			AltText:          payload.Article.AltText,
			Tags:             append([]string(nil), payload.Article.Tags...),
		}
	}
	if payload.BookReview != nil {
		dto.BookReview = &httptransport.BookReviewPayloadDTO{
			BookTitle:     payload.BookReview.BookTitle,
			BookAuthor:    payload.BookReview.BookAuthor,
			ISBN:          payload.BookReview.ISBN,
			ReviewTitle:   payload.BookReview.ReviewTitle,
			Slug:          payload.BookReview.Slug,
			Body:          payload.BookReview.Body,
			Rating:        payload.BookReview.Rating,
			CoverImageURL: payload.BookReview.CoverImageURL,
			Tags:          append([]string(nil), payload.BookReview.Tags...),
		}
	}
	if payload.MediaAsset != nil {
		dto.MediaAsset = &httptransport.MediaAssetPayloadDTO{
			Title:       payload.MediaAsset.Title,
			Description: payload.MediaAsset.Description,
			MediaType:   payload.MediaAsset.MediaType,
			FileURL:     payload.MediaAsset.FileURL,
			AltText:     payload.MediaAsset.AltText,
			Category:    payload.MediaAsset.Category,
			Tags:        append([]string(nil), payload.MediaAsset.Tags...),
		}
	}
	return dto
}

func mapContentItem(item entities.ContentItem) httptransport.ContentItemDTO {
	dto := httptransport.ContentItemDTO{
		ItemID:          item.ItemID,
		Kind:            string(item.Kind),
		AuthorID:        item.AuthorID,
		Payload:         payloadToDTO(item.Payload),
		State:           string(item.State),
		RejectionReason: item.RejectionReason,
		CreatedAt:       item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       item.UpdatedAt.Format(time.RFC3339),
	}
	if item.SubmittedAt != nil {
		dto.SubmittedAt = item.SubmittedAt.Format(time.RFC3339)
	}
	if item.PublishedAt != nil {
		dto.PublishedAt = item.PublishedAt.Format(time.RFC3339)
	}
	return dto
}
