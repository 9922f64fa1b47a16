package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/apprentice-kiosk/internal/api/shared"
	"github.com/phrazzld/apprentice-kiosk/internal/domain"
	"github.com/phrazzld/apprentice-kiosk/internal/kiosk"
	"github.com/phrazzld/apprentice-kiosk/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, kiosk.ErrSessionNotFound),
		errors.Is(err, domain.ErrDesignNotFound),
		errors.Is(err, domain.ErrNoImage):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, shared.ErrInvalidRequestBody),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidSide),
		errors.Is(err, kiosk.ErrEmptyName),
		errors.Is(err, kiosk.ErrInvalidBaseURL):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrNoDesignSelected):
		return http.StatusConflict

	// Session ended while the request was in flight
	case errors.Is(err, service.ErrCoordinatorClosed):
		return http.StatusGone

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, kiosk.ErrSessionNotFound):
		return "Session not found"

	case errors.Is(err, domain.ErrDesignNotFound):
		return "Design not found"

	case errors.Is(err, domain.ErrNoImage):
		return "No image has been generated for this side"

	case errors.Is(err, shared.ErrInvalidRequestBody):
		return "Invalid request format"

	case errors.Is(err, domain.ErrInvalidSide):
		return "Side must be front or back"

	case errors.Is(err, kiosk.ErrEmptyName):
		return "Please enter your name"

	case errors.Is(err, kiosk.ErrInvalidBaseURL):
		return "Invalid base URL"

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	case errors.Is(err, service.ErrNoDesignSelected):
		return "Choose a design before regenerating a side"

	case errors.Is(err, service.ErrCoordinatorClosed):
		return "Session has ended"

	default:
		return "An unexpected error occurred"
	}
}

// respondWithMappedError writes the status and safe message for err and
// logs the redacted details.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// SanitizeValidationError turns a validator error into a short message that
// names the offending field without echoing its value.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}

	fe := verrs[0]
	return fmt.Sprintf("Invalid %s: %s", strings.ToLower(fe.Field()), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	case "min":
		return "too short"
	default:
		return "validation failed"
	}
}
