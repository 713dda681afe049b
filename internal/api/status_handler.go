package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/bibliotheque-api/internal/api/shared"
)

// PublicHandler handles GET /public.
func PublicHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithMessage(w, r, http.StatusOK, MsgPublicOK)
}

// ProtectedHandler handles GET /protected. It is only reached once the
// auth middleware has accepted the token.
func ProtectedHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithMessage(w, r, http.StatusOK, MsgProtectedOK)
}

// NewHealthHandler returns the plain-text liveness handler.
func NewHealthHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("Failed to write health check response", "error", err)
		}
	}
}

// NotFoundHandler answers requests for unknown routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, MsgRouteNotFound)
}

// MethodNotAllowedHandler answers known routes called with an unsupported method.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
