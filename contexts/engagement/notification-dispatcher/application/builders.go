package application

import (
	"strings"
	"time"

	"archivum/internal/shared/events"
)

// Builders for notifications about subsystems that live outside this core
// (comments, private messages). They encode only the addressing and
// suppression rules; the host produces the inputs and dispatches the result.

// BuildCommentPosted addresses a new-comment notification to the post
// author. Authors are not notified about their own comments, and guest
// comments still notify the author.
func BuildCommentPosted(postID, postAuthorID, commenterID, commentText string, now time.Time) (events.Notification, bool) {
	author := strings.TrimSpace(postAuthorID)
	if author == "" {
		return events.Notification{}, false
	}
	if strings.TrimSpace(commenterID) == author {
		return events.Notification{}, false
	}
	return events.Notification{
		RecipientID:   author,
		Kind:          events.KindCommentPosted,
		SubjectItemID: strings.TrimSpace(postID),
		ContextText:   commentText,
		OccurredAtUTC: now.UTC(),
	}, true
}

// BuildCommentReplied addresses a reply notification to the parent comment's
// author. Guest parents cannot be notified and self-replies are suppressed.
func BuildCommentReplied(postID, parentAuthorID, replierID, replyText string, now time.Time) (events.Notification, bool) {
	parent := strings.TrimSpace(parentAuthorID)
	if parent == "" {
		return events.Notification{}, false
	}
	if strings.TrimSpace(replierID) == parent {
		return events.Notification{}, false
	}
	return events.Notification{
		RecipientID:   parent,
		Kind:          events.KindCommentReplied,
		SubjectItemID: strings.TrimSpace(postID),
		ContextText:   replyText,
		OccurredAtUTC: now.UTC(),
	}, true
}

// BuildMessageReceived addresses a direct-message notification.
func BuildMessageReceived(threadID, recipientID, senderID string, now time.Time) (events.Notification, bool) {
	recipient := strings.TrimSpace(recipientID)
	if recipient == "" || strings.TrimSpace(senderID) == recipient {
		return events.Notification{}, false
	}
	return events.Notification{
		RecipientID:   recipient,
		Kind:          events.KindMessageReceived,
		SubjectItemID: strings.TrimSpace(threadID),
		OccurredAtUTC: now.UTC(),
	}, true
}
