package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"archivum/contexts/publishing/edit-suggestions/application/commands"
	"archivum/contexts/publishing/edit-suggestions/application/queries"
	"archivum/contexts/publishing/edit-suggestions/domain/entities"
	httptransport "archivum/contexts/publishing/edit-suggestions/transport/http"
	"archivum/internal/shared/events"
)

type Handler struct {
	ProposeEdit commands.ProposeEditUseCase
	Decide      commands.DecideSuggestionUseCase
	Queries     queries.QueryUseCase
	Logger      *slog.Logger
}

func (h Handler) ProposeEditHandler(
	ctx context.Context,
	suggesterID string,
	itemID string,
	req httptransport.ProposeEditRequest,
) (httptransport.SuggestionResponse, []events.Notification, error) {
	suggestion, emitted, err := h.ProposeEdit.Execute(ctx, commands.ProposeEditCommand{
		ItemID:      itemID,
		SuggesterID: suggesterID,
		Text:        req.SuggestionText,
	})
	if err != nil {
		return httptransport.SuggestionResponse{}, nil, err
	}
	return httptransport.SuggestionResponse{Suggestion: mapSuggestion(suggestion)}, emitted, nil
}

func (h Handler) ApproveSuggestionHandler(
	ctx context.Context,
	deciderID string,
	suggestionID string,
) (httptransport.SuggestionResponse, []events.Notification, error) {
	suggestion, emitted, err := h.Decide.Approve(ctx, commands.ApproveSuggestionCommand{
		SuggestionID: suggestionID,
		DeciderID:    deciderID,
	})
	if err != nil {
		return httptransport.SuggestionResponse{}, nil, err
	}
	return httptransport.SuggestionResponse{Suggestion: mapSuggestion(suggestion)}, emitted, nil
}

func (h Handler) RejectSuggestionHandler(
	ctx context.Context,
	deciderID string,
	suggestionID string,
	req httptransport.RejectSuggestionRequest,
) (httptransport.SuggestionResponse, []events.Notification, error) {
	suggestion, emitted, err := h.Decide.Reject(ctx, commands.RejectSuggestionCommand{
		SuggestionID: suggestionID,
		DeciderID:    deciderID,
		Reason:       req.Reason,
	})
	if err != nil {
		return httptransport.SuggestionResponse{}, nil, err
	}
	return httptransport.SuggestionResponse{Suggestion: mapSuggestion(suggestion)}, emitted, nil
}

func (h Handler) ListByItemHandler(ctx context.Context, itemID string) (httptransport.ListSuggestionsResponse, error) {
	items, err := h.Queries.ListByItem(ctx, itemID)
	if err != nil {
		return httptransport.ListSuggestionsResponse{}, err
	}
	return httptransport.ListSuggestionsResponse{Items: mapSuggestions(items)}, nil
}

func (h Handler) ListPendingForAuthorHandler(ctx context.Context, authorID string) (httptransport.ListSuggestionsResponse, error) {
	items, err := h.Queries.ListPendingForAuthor(ctx, authorID)
	if err != nil {
		return httptransport.ListSuggestionsResponse{}, err
	}
	return httptransport.ListSuggestionsResponse{Items: mapSuggestions(items)}, nil
}

func mapSuggestions(items []entities.EditSuggestion) []httptransport.SuggestionDTO {
	result := make([]httptransport.SuggestionDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapSuggestion(item))
	}
	return result
}

func mapSuggestion(item entities.EditSuggestion) httptransport.SuggestionDTO {
	dto := httptransport.SuggestionDTO{
		SuggestionID:    item.SuggestionID,
		ContentItemID:   item.ContentItemID,
		ItemAuthorID:    item.ItemAuthorID,
		SuggesterID:     item.SuggesterID,
		SuggestionText:  item.SuggestionText,
		Decision:        string(item.Decision),
		RejectionReason: item.RejectionReason,
		CreatedAt:       item.CreatedAt.Format(time.RFC3339),
	}
	if item.DecidedAt != nil {
		dto.DecidedAt = item.DecidedAt.Format(time.RFC3339)
	}
	return dto
}
