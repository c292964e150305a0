package unit

import (
	"context"
	"errors"
	"testing"

	editsuggestions "archivum/contexts/publishing/edit-suggestions"
	domainerrors "archivum/contexts/publishing/edit-suggestions/domain/errors"
	"archivum/contexts/publishing/edit-suggestions/ports"
	httptransport "archivum/contexts/publishing/edit-suggestions/transport/http"
)

// contentRefStub is a fixed view onto the content workflow for suggestion
// tests that do not need the full workflow module.
type contentRefStub map[string]ports.ContentRef

func (s contentRefStub) GetContentRef(_ context.Context, itemID string) (ports.ContentRef, error) {
	ref, ok := s[itemID]
	if !ok {
		return ports.ContentRef{}, domainerrors.ErrSuggestionNotFound
	}
	return ref, nil
}

func publishedContent() contentRefStub {
	return contentRefStub{
		"item-published": {ItemID: "item-published", AuthorID: "author-1", Published: true},
		"item-draft":     {ItemID: "item-draft", AuthorID: "author-1", Published: false},
	}
}

func TestProposeEditOnUnpublishedItemFails(t *testing.T) {
	module := editsuggestions.NewInMemoryModule(nil, publishedContent(), nil)

	_, _, err := module.Handler.ProposeEditHandler(
		context.Background(),
		"suggester-1",
		"item-draft",
		httptransport.ProposeEditRequest{SuggestionText: "fix the opening"},
	)
	if !errors.Is(err, domainerrors.ErrItemNotPublished) {
		t.Fatalf("expected item not published, got %v", err)
	}
}

func TestProposeEditNotifiesAuthor(t *testing.T) {
	module := editsuggestions.NewInMemoryModule(nil, publishedContent(), nil)

	resp, emitted, err := module.Handler.ProposeEditHandler(
		context.Background(),
		"suggester-1",
		"item-published",
		httptransport.ProposeEditRequest{SuggestionText: "the date in paragraph two is wrong"},
	)
	if err != nil {
		t.Fatalf("propose should succeed: %v", err)
	}
	if resp.Suggestion.Decision != "pending" {
		t.Fatalf("new suggestion should be pending, got %s", resp.Suggestion.Decision)
	}
	if len(emitted) != 1 {
		t.Fatalf("expected one notification, got %d", len(emitted))
	}
	if emitted[0].RecipientID != "author-1" || string(emitted[0].Kind) != "edit_suggested" {
		t.Fatalf("unexpected notification %+v", emitted[0])
	}
}

func TestProposeEditByAuthorEmitsNothing(t *testing.T) {
	module := editsuggestions.NewInMemoryModule(nil, publishedContent(), nil)

	_, emitted, err := module.Handler.ProposeEditHandler(
		context.Background(),
		"author-1",
		"item-published",
		httptransport.ProposeEditRequest{SuggestionText: "note to self"},
	)
	if err != nil {
		t.Fatalf("propose should succeed: %v", err)
	}
	if len(emitted) != 0 {
		t.Fatalf("author suggesting on their own item should not notify, got %+v", emitted)
	}
}

func TestProposeEditEmptyTextRejected(t *testing.T) {
	module := editsuggestions.NewInMemoryModule(nil, publishedContent(), nil)

	_, _, err := module.Handler.ProposeEditHandler(
		context.Background(),
		"suggester-1",
		"item-published",
		httptransport.ProposeEditRequest{SuggestionText: "   "},
	)
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestApproveSuggestionIssuesGrantAndNotifies(t *testing.T) {
	module := editsuggestions.NewInMemoryModule(nil, publishedContent(), nil)

	proposed, _, err := module.Handler.ProposeEditHandler(
		context.Background(),
		"suggester-1",
		"item-published",
		httptransport.ProposeEditRequest{SuggestionText: "tighten the conclusion"},
	)
	if err != nil {
		t.Fatalf("propose should succeed: %v", err)
	}

	approved, emitted, err := module.Handler.ApproveSuggestionHandler(context.Background(), "author-1", proposed.Suggestion.SuggestionID)
	if err != nil {
		t.Fatalf("approve should succeed: %v", err)
	}
	if approved.Suggestion.Decision != "approved" {
		t.Fatalf("expected approved decision, got %s", approved.Suggestion.Decision)
	}
	if len(emitted) != 1 || string(emitted[0].Kind) != "suggestion_approved" || emitted[0].RecipientID != "suggester-1" {
		t.Fatalf("expected suggestion_approved to suggester, got %+v", emitted)
	}

	ok, err := module.Grants.ConsumeGrant(context.Background(), "item-published", "suggester-1")
	if err != nil || !ok {
		t.Fatalf("approval should have issued a grant: ok=%v err=%v", ok, err)
	}
	ok, err = module.Grants.ConsumeGrant(context.Background(), "item-published", "suggester-1")
	if err != nil || ok {
		t.Fatalf("grant must be one-shot: ok=%v err=%v", ok, err)
	}
}

func TestApproveAnonymousSuggestionIssuesNothing(t *testing.T) {
	module := editsuggestions.NewInMemoryModule(nil, publishedContent(), nil)

	proposed, emitted, err := module.Handler.ProposeEditHandler(
		context.Background(),
		"",
		"item-published",
		httptransport.ProposeEditRequest{SuggestionText: "anonymous correction"},
	)
	if err != nil {
		t.Fatalf("anonymous propose should succeed: %v", err)
	}
	if len(emitted) != 1 {
		t.Fatalf("author should still be notified of anonymous suggestions")
	}

	approved, emitted, err := module.Handler.ApproveSuggestionHandler(context.Background(), "author-1", proposed.Suggestion.SuggestionID)
	if err != nil {
		t.Fatalf("approve should succeed: %v", err)
	}
	if approved.Suggestion.Decision != "approved" {
		t.Fatalf("expected approved decision, got %s", approved.Suggestion.Decision)
	}
	if len(emitted) != 0 {
		t.Fatalf("anonymous suggester cannot be notified, got %+v", emitted)
	}

	ok, err := module.Grants.ConsumeGrant(context.Background(), "item-published", "")
	if err != nil || ok {
		t.Fatalf("no grant should exist for an anonymous suggester: ok=%v err=%v", ok, err)
	}
}

func TestDecideSuggestionAuthorOnly(t *testing.T) {
	module := editsuggestions.NewInMemoryModule(nil, publishedContent(), nil)

	proposed, _, err := module.Handler.ProposeEditHandler(
		context.Background(),
		"suggester-1",
		"item-published",
		httptransport.ProposeEditRequest{SuggestionText: "swap the images"},
	)
	if err != nil {
		t.Fatalf("propose should succeed: %v", err)
	}

	_, _, err = module.Handler.ApproveSuggestionHandler(context.Background(), "suggester-1", proposed.Suggestion.SuggestionID)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("only the item author may decide, got %v", err)
	}
	_, _, err = module.Handler.RejectSuggestionHandler(
		context.Background(),
		"moderator-1",
		proposed.Suggestion.SuggestionID,
		httptransport.RejectSuggestionRequest{Reason: "no"},
	)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("only the item author may decide, got %v", err)
	}
}

func TestDecideSuggestionTwiceFails(t *testing.T) {
	module := editsuggestions.NewInMemoryModule(nil, publishedContent(), nil)

	proposed, _, err := module.Handler.ProposeEditHandler(
		context.Background(),
		"suggester-1",
		"item-published",
		httptransport.ProposeEditRequest{SuggestionText: "dedupe the references"},
	)
	if err != nil {
		t.Fatalf("propose should succeed: %v", err)
	}
	if _, _, err := module.Handler.ApproveSuggestionHandler(context.Background(), "author-1", proposed.Suggestion.SuggestionID); err != nil {
		t.Fatalf("first decision should succeed: %v", err)
	}

	_, _, err = module.Handler.RejectSuggestionHandler(
		context.Background(),
		"author-1",
		proposed.Suggestion.SuggestionID,
		httptransport.RejectSuggestionRequest{Reason: "changed my mind"},
	)
	if !errors.Is(err, domainerrors.ErrInvalidState) {
		t.Fatalf("decisions are final, got %v", err)
	}
}

func TestRejectSuggestionRecordsReasonAndNotifies(t *testing.T) {
	module := editsuggestions.NewInMemoryModule(nil, publishedContent(), nil)

	proposed, _, err := module.Handler.ProposeEditHandler(
		context.Background(),
		"suggester-1",
		"item-published",
		httptransport.ProposeEditRequest{SuggestionText: "rewrite in first person"},
	)
	if err != nil {
		t.Fatalf("propose should succeed: %v", err)
	}

	rejected, emitted, err := module.Handler.RejectSuggestionHandler(
		context.Background(),
		"author-1",
		proposed.Suggestion.SuggestionID,
		httptransport.RejectSuggestionRequest{Reason: "conflicts with the house style"},
	)
	if err != nil {
		t.Fatalf("reject should succeed: %v", err)
	}
	if rejected.Suggestion.Decision != "rejected" {
		t.Fatalf("expected rejected decision, got %s", rejected.Suggestion.Decision)
	}
	if rejected.Suggestion.RejectionReason != "conflicts with the house style" {
		t.Fatalf("rejection reason should be recorded, got %q", rejected.Suggestion.RejectionReason)
	}
	if len(emitted) != 1 || string(emitted[0].Kind) != "suggestion_rejected" {
		t.Fatalf("expected suggestion_rejected notification, got %+v", emitted)
	}

	ok, err := module.Grants.ConsumeGrant(context.Background(), "item-published", "suggester-1")
	if err != nil || ok {
		t.Fatalf("rejection must not issue a grant: ok=%v err=%v", ok, err)
	}
}

func TestListPendingForAuthor(t *testing.T) {
	module := editsuggestions.NewInMemoryModule(nil, publishedContent(), nil)

	first, _, err := module.Handler.ProposeEditHandler(
		context.Background(),
		"suggester-1",
		"item-published",
		httptransport.ProposeEditRequest{SuggestionText: "first"},
	)
	if err != nil {
		t.Fatalf("propose should succeed: %v", err)
	}
	if _, _, err := module.Handler.ProposeEditHandler(
		context.Background(),
		"suggester-2",
		"item-published",
		httptransport.ProposeEditRequest{SuggestionText: "second"},
	); err != nil {
		t.Fatalf("propose should succeed: %v", err)
	}
	if _, _, err := module.Handler.ApproveSuggestionHandler(context.Background(), "author-1", first.Suggestion.SuggestionID); err != nil {
		t.Fatalf("approve should succeed: %v", err)
	}

	pending, err := module.Handler.ListPendingForAuthorHandler(context.Background(), "author-1")
	if err != nil {
		t.Fatalf("list pending should succeed: %v", err)
	}
	if len(pending.Items) != 1 || pending.Items[0].SuggestionText != "second" {
		t.Fatalf("expected only the undecided suggestion, got %+v", pending.Items)
	}
}
