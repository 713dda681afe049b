package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/bibliotheque-api/internal/api/shared"
	"github.com/phrazzld/bibliotheque-api/internal/platform/logger"
	"github.com/phrazzld/bibliotheque-api/internal/service/auth"
)

// Messages returned in the 401 body when authentication fails.
const (
	MsgMissingToken    = "Token manquant"
	MsgMalformedHeader = "Format attendu: Bearer <token>"
	MsgExpiredToken    = "Token expiré"
	MsgInvalidToken    = "Token invalide"
	MsgAuthFailure     = "Erreur interne"
)

// ClaimsContextKey is the context key under which verified claims are stored.
const ClaimsContextKey shared.ContextKey = "claims"

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	if jwtService == nil {
		panic("jwtService cannot be nil") // ALLOW-PANIC
	}
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate verifies the bearer token in the Authorization header before
// calling next. Rejected requests get a 401 and next is never invoked, so no
// body validation or state change happens for them.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := auth.VerifyAuthorizationHeader(
			r.Context(),
			m.jwtService,
			r.Header.Get("Authorization"),
		)
		if err != nil {
			status, message := authFailure(err)
			shared.RespondWithErrorAndLog(w, r, status, message, err, shared.WithElevatedLogLevel())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		if claims != nil && claims.Subject != "" {
			log := logger.FromContext(ctx).With(slog.String("subject", claims.Subject))
			ctx = logger.WithLogger(ctx, log)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authFailure maps a verification error to the status and message sent to the client.
func authFailure(err error) (int, string) {
	var invalid *auth.InvalidTokenError
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized, MsgMissingToken
	case errors.Is(err, auth.ErrMalformedHeader):
		return http.StatusUnauthorized, MsgMalformedHeader
	case errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized, MsgExpiredToken
	case errors.As(err, &invalid):
		return http.StatusUnauthorized, MsgInvalidToken + ": " + invalid.Detail
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, MsgInvalidToken + ": " + err.Error()
	default:
		return http.StatusInternalServerError, MsgAuthFailure
	}
}

// GetClaims returns the verified claims stored by Authenticate.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(ClaimsContextKey).(*auth.Claims)
	return claims, ok && claims != nil
}
