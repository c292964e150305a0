package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrItemNotFound       = errors.New("content item not found")
	ErrInvalidContentKind = errors.New("invalid content kind")
	ErrInvalidInput       = errors.New("invalid content input")
	ErrForbidden          = errors.New("actor is not authorized for this item")
	ErrInvalidState       = errors.New("operation not legal from current state")
	ErrValidationFailed   = errors.New("payload validation failed")
)

type FieldReason struct {
	Field  string
	Reason string
}

// ValidationError carries field-level validator output. It matches
// ErrValidationFailed under errors.Is so callers can branch on the class
// while transports render the field list.
type ValidationError struct {
	Fields []FieldReason
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "payload validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func NewValidationError(fields ...FieldReason) error {
	return &ValidationError{Fields: fields}
}
