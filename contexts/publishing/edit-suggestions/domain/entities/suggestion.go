package entities

import (
	"strings"
	"time"
)

type SuggestionDecision string

const (
	SuggestionDecisionPending  SuggestionDecision = "pending"
	SuggestionDecisionApproved SuggestionDecision = "approved"
	SuggestionDecisionRejected SuggestionDecision = "rejected"
)

// EditSuggestion is one proposed change to a published content item.
// SuggesterID is empty for anonymous suggesters. ItemAuthorID is denormalized
// at proposal time so decision authorization never needs the content row.
// Decision moves pending -> approved or pending -> rejected, never back.
type EditSuggestion struct {
	SuggestionID    string
	ContentItemID   string
	ItemAuthorID    string
	SuggesterID     string
	SuggestionText  string
	Decision        SuggestionDecision
	RejectionReason string
	CreatedAt       time.Time
	DecidedAt       *time.Time
}

func (s EditSuggestion) Anonymous() bool {
	return strings.TrimSpace(s.SuggesterID) == ""
}

func (s EditSuggestion) ValidateCreate() bool {
	return strings.TrimSpace(s.ContentItemID) != "" &&
		strings.TrimSpace(s.ItemAuthorID) != "" &&
		strings.TrimSpace(s.SuggestionText) != ""
}
