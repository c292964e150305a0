package entities

import (
	"strings"
	"time"
)

type ContentState string

const (
	ContentStateDraft           ContentState = "draft"
	ContentStatePendingApproval ContentState = "pending_approval"
	ContentStatePublished       ContentState = "published"
)

type ContentKind string

const (
	ContentKindArticle    ContentKind = "article"
	ContentKindBookReview ContentKind = "book_review"
	ContentKindMediaAsset ContentKind = "media_asset"
)

func ValidKind(kind ContentKind) bool {
	switch kind {
	case ContentKindArticle, ContentKindBookReview, ContentKindMediaAsset:
		return true
	default:
		return false
	}
}

// ContentItem is the moderated unit of content. The workflow never inspects
// payload contents; kinds differ in payload only, not in lifecycle.
// A rejected item is a draft with RejectionReason retained until the next
// submission clears it.
type ContentItem struct {
	ItemID          string
	Kind            ContentKind
	AuthorID        string
	Payload         Payload
	State           ContentState
	SubmittedAt     *time.Time
	PublishedAt     *time.Time
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Payload is the kind-tagged content body. Exactly one variant is set,
// matching Kind on the owning item.
type Payload struct {
	Article    *ArticlePayload
	BookReview *BookReviewPayload
	MediaAsset *MediaAssetPayload
}

type ArticlePayload struct {
	Title            string
	Slug             string
	Body             string
	Excerpt          string
	FeaturedImageURL string
	AltText          string
	Tags             []string
}

type BookReviewPayload struct {
	BookTitle     string
	BookAuthor    string
	ISBN          string
	ReviewTitle   string
	Slug          string
	Body          string
	Rating        int
	CoverImageURL string
	Tags          []string
}

type MediaAssetPayload struct {
	Title       string
	Description string
	MediaType   string
	FileURL     string
	AltText     string
	Category    string
	Tags        []string
}

func ValidMediaType(value string) bool {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "image", "video", "document", "artifact":
		return true
	default:
		return false
	}
}

// KindOf reports which variant the payload carries, empty when none or more
// than one is set.
func (p Payload) KindOf() ContentKind {
	var kind ContentKind
	count := 0
	if p.Article != nil {
		kind = ContentKindArticle
		count++
	}
	if p.BookReview != nil {
		kind = ContentKindBookReview
		count++
	}
	if p.MediaAsset != nil {
		kind = ContentKindMediaAsset
		count++
	}
	if count != 1 {
		return ""
	}
	return kind
}

func (c ContentItem) ValidateCreate() bool {
	return strings.TrimSpace(c.AuthorID) != "" &&
		ValidKind(c.Kind) &&
		c.Payload.KindOf() == c.Kind
}
