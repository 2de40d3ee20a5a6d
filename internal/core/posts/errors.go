package posts

import (
	"errors"
	"fmt"
)

var (
	// ErrPostNotFound is returned when a post lookup finds no matching row
	ErrPostNotFound = errors.New("post not found")

	// ErrPostDeleted indicates the post was already soft-deleted
	ErrPostDeleted = errors.New("post already deleted")

	// ErrNotAuthor indicates the acting user doesn't own the post
	ErrNotAuthor = errors.New("only the post author may modify it")

	// ErrUnknownBoardType indicates no strategy is registered for the
	// board's type. This is a wiring fault, not a per-request condition:
	// cmd/server registers every known type at startup.
	ErrUnknownBoardType = errors.New("no strategy registered for board type")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
