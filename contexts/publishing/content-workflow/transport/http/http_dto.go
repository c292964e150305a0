package http

type ErrorResponse struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Fields  []FieldDetail `json:"fields,omitempty"`
}

type FieldDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type ArticlePayloadDTO struct {
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Body             string   `json:"body"`
	Excerpt          string   `json:"excerpt,omitempty"`
	FeaturedImageURL string   `json:"featured_image_url,omitempty"`
	AltText          string   `json:"alt_text,omitempty"`
	Tags             []string `json:"tags,omitempty"`
}

type BookReviewPayloadDTO struct {
	BookTitle     string   `json:"book_title"`
	BookAuthor    string   `json:"book_author"`
	ISBN          string   `json:"isbn,omitempty"`
	ReviewTitle   string   `json:"review_title"`
	Slug          string   `json:"slug"`
	Body          string   `json:"body"`
	Rating        int      `json:"rating"`
	CoverImageURL string   `json:"cover_image_url,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

type MediaAssetPayloadDTO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	MediaType   string   `json:"media_type"`
	FileURL     string   `json:"file_url"`
	AltText     string   `json:"alt_text,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type PayloadDTO struct {
	Article    *ArticlePayloadDTO    `json:"article,omitempty"`
	BookReview *BookReviewPayloadDTO `json:"book_review,omitempty"`
	MediaAsset *MediaAssetPayloadDTO `json:"media_asset,omitempty"`
}

type CreateDraftRequest struct {
	Kind    string     `json:"kind"`
	Payload PayloadDTO `json:"payload"`
}

type SaveDraftRequest struct {
	Payload PayloadDTO `json:"payload"`
}

type RejectContentRequest struct {
	Reason string `json:"reason"`
}

type ContentItemDTO struct {
	ItemID          string     `json:"item_id"`
	Kind            string     `json:"kind"`
	AuthorID        string     `json:"author_id"`
	Payload         PayloadDTO `json:"payload"`
	State           string     `json:"state"`
	SubmittedAt     string     `json:"submitted_at,omitempty"`
	PublishedAt     string     `json:"published_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CreatedAt       string     `json:"created_at"`
	UpdatedAt       string     `json:"updated_at"`
}

type ContentItemResponse struct {
	Item ContentItemDTO `json:"item"`
}

type ListContentItemsResponse struct {
	Items []ContentItemDTO `json:"items"`
}

type ModerationQueueResponse struct {
	Items []ContentItemDTO `json:"items"`
}
