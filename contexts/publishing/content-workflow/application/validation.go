package application

import (
	"strings"

	"archivum/contexts/publishing/content-workflow/domain/entities"
	domainerrors "archivum/contexts/publishing/content-workflow/domain/errors"
)

// PayloadRules is the default payload validator: required-field checks per
// content kind. Hosts with richer validation (file size, mime type) supply
// their own ports.PayloadValidator.
type PayloadRules struct{}

func (PayloadRules) ValidatePayload(kind entities.ContentKind, payload entities.Payload) error {
	if payload.KindOf() != kind {
		return domainerrors.NewValidationError(domainerrors.FieldReason{
			Field:  "payload",
			Reason: "payload variant does not match content kind",
		})
	}

	var fields []domainerrors.FieldReason
	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			fields = append(fields, domainerrors.FieldReason{Field: field, Reason: "required"})
		}
	}

	switch kind {
	case entities.ContentKindArticle:
		p := payload.Article
		require("title", p.Title)
		require("slug", p.Slug)
		require("body", p.Body)
	case entities.ContentKindBookReview:
		p := payload.BookReview
		require("book_title", p.BookTitle)
		require("review_title", p.ReviewTitle)
		require("slug", p.Slug)
		require("body", p.Body)
		if p.Rating < 1 || p.Rating > 5 {
			fields = append(fields, domainerrors.FieldReason{Field: "rating", Reason: "must be between 1 and 5"})
		}
	case entities.ContentKindMediaAsset:
		p := payload.MediaAsset
		require("title", p.Title)
		require("description", p.Description)
		require("file_url", p.FileURL)
		if !entities.ValidMediaType(p.MediaType) {
			fields = append(fields, domainerrors.FieldReason{Field: "media_type", Reason: "must be one of image, video, document, artifact"})
		}
	default:
		return domainerrors.ErrInvalidContentKind
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}
	return nil
}
