package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidSide is returned when a card side is neither Front nor Back.
	ErrInvalidSide = errors.New("invalid card side")

	// ErrDesignNotFound is returned when no design option has the requested ID.
	ErrDesignNotFound = errors.New("design option not found")

	// ErrNoImage is returned when a side has no generated image to hand out.
	ErrNoImage = errors.New("no image generated for side")
)

// ValidationError carries the offending field alongside a wrapped sentinel,
// so callers can match with errors.Is and still report which field failed.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap exposes both ErrValidation and the specific sentinel.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Err}
}
