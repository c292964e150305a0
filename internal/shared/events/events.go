package events

import "time"

// Kind names a notification event type.
type Kind string

const (
	KindPostApproved       Kind = "post_approved"
	KindPostRejected       Kind = "post_rejected"
	KindEditSuggested      Kind = "edit_suggested"
	KindSuggestionApproved Kind = "suggestion_approved"
	KindSuggestionRejected Kind = "suggestion_rejected"
	KindCommentPosted      Kind = "comment_posted"
	KindCommentReplied     Kind = "comment_replied"
	KindMessageReceived    Kind = "message_received"
)

// Notification is the shared event shape produced by the workflow and
// suggestion engines and consumed by the notification channel. Events are
// ephemeral values, never persisted by the core.
type Notification struct {
	RecipientID   string    `json:"recipient_id"`
	Kind          Kind      `json:"kind"`
	SubjectItemID string    `json:"subject_item_id"`
	ContextText   string    `json:"context_text"`
	OccurredAtUTC time.Time `json:"occurred_at_utc"`
}
