package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	contentworkflow "archivum/contexts/publishing/content-workflow"
	"archivum/contexts/publishing/content-workflow/domain/entities"
	domainerrors "archivum/contexts/publishing/content-workflow/domain/errors"
	httptransport "archivum/contexts/publishing/content-workflow/transport/http"
)

func articlePayload(title string) httptransport.PayloadDTO {
	return httptransport.PayloadDTO{
		Article: &httptransport.ArticlePayloadDTO{
			Title: title,
			Slug:  "igbo-naming-ceremonies",
			Body:  "A long-form piece on naming ceremonies.",
		},
	}
}

func timePtr(value time.Time) *time.Time {
	return &value
}

func TestDraftSubmitApprovePublishes(t *testing.T) {
	module := contentworkflow.NewInMemoryModule(nil, nil, nil)

	created, err := module.Handler.CreateDraftHandler(context.Background(), "author-1", httptransport.CreateDraftRequest{
		Kind:    "article",
		Payload: articlePayload("Naming Ceremonies"),
	})
	if err != nil {
		t.Fatalf("create draft should succeed: %v", err)
	}
	if created.Item.State != "draft" {
		t.Fatalf("expected draft state, got %s", created.Item.State)
	}
	if created.Item.SubmittedAt != "" || created.Item.PublishedAt != "" {
		t.Fatalf("new draft should have no submission or publication timestamps")
	}

	submitted, err := module.Handler.SubmitHandler(context.Background(), "author-1", created.Item.ItemID)
	if err != nil {
		t.Fatalf("submit should succeed: %v", err)
	}
	if submitted.Item.State != "pending_approval" {
		t.Fatalf("expected pending_approval, got %s", submitted.Item.State)
	}
	if submitted.Item.SubmittedAt == "" {
		t.Fatalf("submission should stamp submitted_at")
	}

	approved, emitted, err := module.Handler.ApproveHandler(context.Background(), "moderator-1", created.Item.ItemID)
	if err != nil {
		t.Fatalf("approve should succeed: %v", err)
	}
	if approved.Item.State != "published" {
		t.Fatalf("expected published, got %s", approved.Item.State)
	}
	if approved.Item.PublishedAt == "" {
		t.Fatalf("approval should stamp published_at")
	}
	if len(emitted) != 1 {
		t.Fatalf("expected one notification, got %d", len(emitted))
	}
	if emitted[0].RecipientID != "author-1" || string(emitted[0].Kind) != "post_approved" {
		t.Fatalf("unexpected notification %+v", emitted[0])
	}
}

func TestApproveTwiceFailsInvalidState(t *testing.T) {
	module := contentworkflow.NewInMemoryModule(nil, nil, nil)

	created, err := module.Handler.CreateDraftHandler(context.Background(), "author-1", httptransport.CreateDraftRequest{
		Kind:    "article",
		Payload: articlePayload("Once Only"),
	})
	if err != nil {
		t.Fatalf("create draft should succeed: %v", err)
	}
	if _, err := module.Handler.SubmitHandler(context.Background(), "author-1", created.Item.ItemID); err != nil {
		t.Fatalf("submit should succeed: %v", err)
	}
	if _, _, err := module.Handler.ApproveHandler(context.Background(), "moderator-1", created.Item.ItemID); err != nil {
		t.Fatalf("first approve should succeed: %v", err)
	}

	_, emitted, err := module.Handler.ApproveHandler(context.Background(), "moderator-2", created.Item.ItemID)
	if !errors.Is(err, domainerrors.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
	if len(emitted) != 0 {
		t.Fatalf("duplicate decision must not emit notifications")
	}
}

func TestRejectReturnsDraftAndResubmitClearsReason(t *testing.T) {
	module := contentworkflow.NewInMemoryModule(nil, nil, nil)

	created, err := module.Handler.CreateDraftHandler(context.Background(), "author-1", httptransport.CreateDraftRequest{
		Kind:    "article",
		Payload: articlePayload("Needs Work"),
	})
	if err != nil {
		t.Fatalf("create draft should succeed: %v", err)
	}
	if _, err := module.Handler.SubmitHandler(context.Background(), "author-1", created.Item.ItemID); err != nil {
		t.Fatalf("submit should succeed: %v", err)
	}

	rejected, emitted, err := module.Handler.RejectHandler(
		context.Background(),
		"moderator-1",
		created.Item.ItemID,
		httptransport.RejectContentRequest{Reason: "sources missing"},
	)
	if err != nil {
		t.Fatalf("reject should succeed: %v", err)
	}
	if rejected.Item.State != "draft" {
		t.Fatalf("rejection should return item to draft, got %s", rejected.Item.State)
	}
	if rejected.Item.RejectionReason != "sources missing" {
		t.Fatalf("rejection reason should be retained, got %q", rejected.Item.RejectionReason)
	}
	if len(emitted) != 1 || string(emitted[0].Kind) != "post_rejected" {
		t.Fatalf("expected one post_rejected notification, got %+v", emitted)
	}
	if emitted[0].ContextText != "sources missing" {
		t.Fatalf("rejection notification should carry the reason")
	}

	resubmitted, err := module.Handler.SubmitHandler(context.Background(), "author-1", created.Item.ItemID)
	if err != nil {
		t.Fatalf("resubmit should succeed: %v", err)
	}
	if resubmitted.Item.RejectionReason != "" {
		t.Fatalf("resubmission should clear the rejection reason")
	}

	approved, _, err := module.Handler.ApproveHandler(context.Background(), "moderator-1", created.Item.ItemID)
	if err != nil {
		t.Fatalf("approve after resubmit should succeed: %v", err)
	}
	if approved.Item.State != "published" {
		t.Fatalf("expected published after rework, got %s", approved.Item.State)
	}
}

func TestSubmitByNonAuthorForbidden(t *testing.T) {
	module := contentworkflow.NewInMemoryModule(nil, nil, nil)

	created, err := module.Handler.CreateDraftHandler(context.Background(), "author-1", httptransport.CreateDraftRequest{
		Kind:    "article",
		Payload: articlePayload("Mine"),
	})
	if err != nil {
		t.Fatalf("create draft should succeed: %v", err)
	}

	_, err = module.Handler.SubmitHandler(context.Background(), "author-2", created.Item.ItemID)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCreateDraftValidationFailureListsFields(t *testing.T) {
	module := contentworkflow.NewInMemoryModule(nil, nil, nil)

	_, err := module.Handler.CreateDraftHandler(context.Background(), "author-1", httptransport.CreateDraftRequest{
		Kind: "book_review",
		Payload: httptransport.PayloadDTO{
			BookReview: &httptransport.BookReviewPayloadDTO{
				BookTitle: "Things Fall Apart",
				Rating:    9,
			},
		},
	})
	if !errors.Is(err, domainerrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}

	var validation *domainerrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected a ValidationError, got %T", err)
	}
	byField := map[string]bool{}
	for _, field := range validation.Fields {
		byField[field.Field] = true
	}
	for _, expected := range []string{"review_title", "slug", "body", "rating"} {
		if !byField[expected] {
			t.Fatalf("expected offending field %s in %+v", expected, validation.Fields)
		}
	}
}

func TestCreateDraftUnknownKindRejected(t *testing.T) {
	module := contentworkflow.NewInMemoryModule(nil, nil, nil)

	_, err := module.Handler.CreateDraftHandler(context.Background(), "author-1", httptransport.CreateDraftRequest{
		Kind:    "podcast",
		Payload: articlePayload("Nope"),
	})
	if !errors.Is(err, domainerrors.ErrInvalidContentKind) {
		t.Fatalf("expected invalid content kind, got %v", err)
	}
}

func TestModerationQueueOrderAndKindFilter(t *testing.T) {
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	seed := []entities.ContentItem{
		{
			ItemID:      "item-article-late",
			Kind:        entities.ContentKindArticle,
			AuthorID:    "author-1",
			Payload:     entities.Payload{Article: &entities.ArticlePayload{Title: "Late", Slug: "late", Body: "b"}},
			State:       entities.ContentStatePendingApproval,
			SubmittedAt: timePtr(base.Add(2 * time.Hour)),
			CreatedAt:   base,
			UpdatedAt:   base,
		},
		{
			ItemID:      "item-review",
			Kind:        entities.ContentKindBookReview,
			AuthorID:    "author-2",
			Payload:     entities.Payload{BookReview: &entities.BookReviewPayload{BookTitle: "TFA", ReviewTitle: "r", Slug: "r", Body: "b", Rating: 4}},
			State:       entities.ContentStatePendingApproval,
			SubmittedAt: timePtr(base.Add(time.Hour)),
			CreatedAt:   base,
			UpdatedAt:   base,
		},
		{
			ItemID:      "item-article-early",
			Kind:        entities.ContentKindArticle,
			AuthorID:    "author-3",
			Payload:     entities.Payload{Article: &entities.ArticlePayload{Title: "Early", Slug: "early", Body: "b"}},
			State:       entities.ContentStatePendingApproval,
			SubmittedAt: timePtr(base),
			CreatedAt:   base,
			UpdatedAt:   base,
		},
		{
			ItemID:    "item-draft",
			Kind:      entities.ContentKindArticle,
			AuthorID:  "author-4",
			Payload:   entities.Payload{Article: &entities.ArticlePayload{Title: "Draft", Slug: "draft", Body: "b"}},
			State:     entities.ContentStateDraft,
			CreatedAt: base,
			UpdatedAt: base,
		},
	}
	module := contentworkflow.NewInMemoryModule(seed, nil, nil)

	all, err := module.Handler.ModerationQueueHandler(context.Background(), "", 0, 0)
	if err != nil {
		t.Fatalf("queue listing should succeed: %v", err)
	}
	if len(all.Items) != 3 {
		t.Fatalf("expected three pending items, got %d", len(all.Items))
	}
	order := []string{all.Items[0].ItemID, all.Items[1].ItemID, all.Items[2].ItemID}
	expected := []string{"item-article-early", "item-review", "item-article-late"}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("expected oldest-first order %v, got %v", expected, order)
		}
	}

	articles, err := module.Handler.ModerationQueueHandler(context.Background(), "article", 0, 0)
	if err != nil {
		t.Fatalf("filtered listing should succeed: %v", err)
	}
	if len(articles.Items) != 2 {
		t.Fatalf("expected two pending articles, got %d", len(articles.Items))
	}
	for _, item := range articles.Items {
		if item.Kind != "article" {
			t.Fatalf("kind filter leaked %s", item.Kind)
		}
	}

	_, err = module.Handler.ModerationQueueHandler(context.Background(), "podcast", 0, 0)
	if !errors.Is(err, domainerrors.ErrInvalidContentKind) {
		t.Fatalf("expected invalid content kind for unknown filter, got %v", err)
	}

	_, err = module.Handler.ModerationQueueHandler(context.Background(), "", 0, -1)
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for negative offset, got %v", err)
	}
}

func TestListByAuthorStateFilter(t *testing.T) {
	module := contentworkflow.NewInMemoryModule(nil, nil, nil)

	created, err := module.Handler.CreateDraftHandler(context.Background(), "author-1", httptransport.CreateDraftRequest{
		Kind:    "article",
		Payload: articlePayload("Dashboard"),
	})
	if err != nil {
		t.Fatalf("create draft should succeed: %v", err)
	}
	if _, err := module.Handler.CreateDraftHandler(context.Background(), "author-2", httptransport.CreateDraftRequest{
		Kind:    "article",
		Payload: articlePayload("Other Author"),
	}); err != nil {
		t.Fatalf("create draft should succeed: %v", err)
	}

	drafts, err := module.Handler.ListByAuthorHandler(context.Background(), "author-1", "draft")
	if err != nil {
		t.Fatalf("list by author should succeed: %v", err)
	}
	if len(drafts.Items) != 1 || drafts.Items[0].ItemID != created.Item.ItemID {
		t.Fatalf("expected only author-1's draft, got %+v", drafts.Items)
	}

	_, err = module.Handler.ListByAuthorHandler(context.Background(), "author-1", "archived")
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown state, got %v", err)
	}
}

func TestGetContentItemNotFound(t *testing.T) {
	module := contentworkflow.NewInMemoryModule(nil, nil, nil)

	_, err := module.Handler.GetContentItemHandler(context.Background(), "missing")
	if !errors.Is(err, domainerrors.ErrItemNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
