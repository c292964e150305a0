package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ProposeEditRequest struct {
	SuggestionText string `json:"suggestion_text"`
}

type RejectSuggestionRequest struct {
	Reason string `json:"reason"`
}

type SuggestionDTO struct {
	SuggestionID    string `json:"suggestion_id"`
	ContentItemID   string `json:"content_item_id"`
	ItemAuthorID    string `json:"item_author_id"`
	SuggesterID     string `json:"suggester_id,omitempty"`
	SuggestionText  string `json:"suggestion_text"`
	Decision        string `json:"decision"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	CreatedAt       string `json:"created_at"`
	DecidedAt       string `json:"decided_at,omitempty"`
}

type SuggestionResponse struct {
	Suggestion SuggestionDTO `json:"suggestion"`
}

type ListSuggestionsResponse struct {
	Items []SuggestionDTO `json:"items"`
}
