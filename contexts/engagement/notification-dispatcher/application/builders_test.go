package application

import (
	"testing"
	"time"

	"archivum/internal/shared/events"
)

func TestBuildCommentPosted(t *testing.T) {
	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

	built, ok := BuildCommentPosted("post-1", "author-1", "commenter-1", "great read", now)
	if !ok {
		t.Fatalf("expected a notification")
	}
	if built.RecipientID != "author-1" || built.Kind != events.KindCommentPosted {
		t.Fatalf("unexpected notification %+v", built)
	}
	if built.ContextText != "great read" || built.SubjectItemID != "post-1" {
		t.Fatalf("notification should carry the comment context, got %+v", built)
	}

	if _, ok := BuildCommentPosted("post-1", "author-1", "author-1", "talking to myself", now); ok {
		t.Fatalf("authors are not notified about their own comments")
	}
	if _, ok := BuildCommentPosted("post-1", "", "commenter-1", "orphan", now); ok {
		t.Fatalf("no author means nobody to notify")
	}
	if _, ok := BuildCommentPosted("post-1", "author-1", "", "guest comment", now); !ok {
		t.Fatalf("guest comments still notify the author")
	}
}

func TestBuildCommentReplied(t *testing.T) {
	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

	built, ok := BuildCommentReplied("post-1", "parent-1", "replier-1", "good point", now)
	if !ok || built.RecipientID != "parent-1" || built.Kind != events.KindCommentReplied {
		t.Fatalf("unexpected reply notification %+v ok=%v", built, ok)
	}

	if _, ok := BuildCommentReplied("post-1", "", "replier-1", "reply to guest", now); ok {
		t.Fatalf("guest parents cannot be notified")
	}
	if _, ok := BuildCommentReplied("post-1", "parent-1", "parent-1", "self reply", now); ok {
		t.Fatalf("self replies are suppressed")
	}
}

func TestBuildMessageReceived(t *testing.T) {
	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

	built, ok := BuildMessageReceived("thread-1", "user-2", "user-1", now)
	if !ok || built.RecipientID != "user-2" || built.Kind != events.KindMessageReceived {
		t.Fatalf("unexpected message notification %+v ok=%v", built, ok)
	}

	if _, ok := BuildMessageReceived("thread-1", "user-1", "user-1", now); ok {
		t.Fatalf("self messages are suppressed")
	}
	if _, ok := BuildMessageReceived("thread-1", "", "user-1", now); ok {
		t.Fatalf("missing recipient is suppressed")
	}
}
