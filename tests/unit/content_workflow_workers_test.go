package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	contentworkflow "archivum/contexts/publishing/content-workflow"
	"archivum/contexts/publishing/content-workflow/application/workers"
	"archivum/contexts/publishing/content-workflow/domain/entities"
	domainerrors "archivum/contexts/publishing/content-workflow/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestStaleDraftJobPurgesOnlyAbandonedDrafts(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	old := now.Add(-60 * 24 * time.Hour)
	recent := now.Add(-2 * 24 * time.Hour)

	seed := []entities.ContentItem{
		{
			ItemID:    "draft-abandoned",
			Kind:      entities.ContentKindArticle,
			AuthorID:  "author-1",
			Payload:   entities.Payload{Article: &entities.ArticlePayload{Title: "Old", Slug: "old", Body: "b"}},
			State:     entities.ContentStateDraft,
			CreatedAt: old,
			UpdatedAt: old,
		},
		{
			ItemID:    "draft-fresh",
			Kind:      entities.ContentKindArticle,
			AuthorID:  "author-1",
			Payload:   entities.Payload{Article: &entities.ArticlePayload{Title: "Fresh", Slug: "fresh", Body: "b"}},
			State:     entities.ContentStateDraft,
			CreatedAt: recent,
			UpdatedAt: recent,
		},
		{
			// Rejected and back in draft: it has a submission history
			// and must never be swept.
			ItemID:      "draft-reworked",
			Kind:        entities.ContentKindArticle,
			AuthorID:    "author-2",
			Payload:     entities.Payload{Article: &entities.ArticlePayload{Title: "Rework", Slug: "rework", Body: "b"}},
			State:       entities.ContentStateDraft,
			SubmittedAt: timePtr(old),
			CreatedAt:   old,
			UpdatedAt:   old,
		},
		{
			ItemID:      "pending-old",
			Kind:        entities.ContentKindArticle,
			AuthorID:    "author-3",
			Payload:     entities.Payload{Article: &entities.ArticlePayload{Title: "Pending", Slug: "pending", Body: "b"}},
			State:       entities.ContentStatePendingApproval,
			SubmittedAt: timePtr(old),
			CreatedAt:   old,
			UpdatedAt:   old,
		},
	}
	module := contentworkflow.NewInMemoryModule(seed, nil, nil)

	job := workers.StaleDraftJob{
		Repository: module.Store,
		Clock:      fixedClock{now: now},
		MaxAge:     30 * 24 * time.Hour,
	}
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("job should succeed: %v", err)
	}

	if _, err := module.Store.GetContentItem(context.Background(), "draft-abandoned"); !errors.Is(err, domainerrors.ErrItemNotFound) {
		t.Fatalf("abandoned draft should be purged, got %v", err)
	}
	for _, kept := range []string{"draft-fresh", "draft-reworked", "pending-old"} {
		if _, err := module.Store.GetContentItem(context.Background(), kept); err != nil {
			t.Fatalf("%s should survive the sweep: %v", kept, err)
		}
	}
}
