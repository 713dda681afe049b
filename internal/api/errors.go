package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/bibliotheque-api/internal/api/shared"
	"github.com/phrazzld/bibliotheque-api/internal/domain"
	"github.com/phrazzld/bibliotheque-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err.
// Internal details never appear in the result.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgInternalError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return MsgInvalidID

	// The title is the only validated field.
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return MsgTitleRequired

	case errors.Is(err, store.ErrNotFound):
		return MsgBookNotFound

	default:
		return MsgInternalError
	}
}

// HandleAPIError writes the status and message mapped from err and logs the
// redacted error. A non-empty message overrides the mapped one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
