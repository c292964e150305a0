package errors

import "errors"

var (
	ErrSuggestionNotFound = errors.New("edit suggestion not found")
	ErrInvalidInput       = errors.New("invalid suggestion input")
	ErrForbidden          = errors.New("actor is not authorized to decide this suggestion")
	ErrInvalidState       = errors.New("operation not legal from current suggestion state")
	ErrItemNotPublished   = errors.New("target item is not published")
)
