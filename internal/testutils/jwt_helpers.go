package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/bibliotheque-api/internal/config"
	"github.com/phrazzld/bibliotheque-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

const (
	// TestJWTSecret is a dedicated test-only secret for signing JWTs
	// This must never be used in production
	TestJWTSecret = "test-jwt-secret-that-is-32-chars-long"

	// TestTokenLifetime is the default lifetime for test tokens
	TestTokenLifetime = 15 * time.Minute
)

// TestAuthConfig returns the auth configuration used across tests.
func TestAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret: TestJWTSecret,
		Algorithm: jwt.SigningMethodHS256.Name,
	}
}

// NewTestJWTService creates a real JWT service backed by TestJWTSecret.
func NewTestJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(TestAuthConfig())
	require.NoError(t, err, "Failed to create test JWT service")
	return svc
}

// GenerateAuthHeader returns a valid "Bearer <token>" header value for svc.
func GenerateAuthHeader(t *testing.T, svc auth.JWTService) string {
	t.Helper()
	token, err := svc.GenerateToken(context.Background(), "test-user", TestTokenLifetime)
	require.NoError(t, err, "Failed to generate test token")
	return auth.BearerPrefix + token
}

// SignToken signs claims with an arbitrary method and key, for building
// tokens the service must reject.
func SignToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err, "Failed to sign test token")
	return token
}

// ExpiredToken returns a token signed with TestJWTSecret whose exp is an hour in the past.
func ExpiredToken(t *testing.T) string {
	t.Helper()
	past := time.Now().Add(-time.Hour)
	return SignToken(t, jwt.SigningMethodHS256, []byte(TestJWTSecret), jwt.MapClaims{
		"sub": "test-user",
		"iat": jwt.NewNumericDate(past.Add(-time.Minute)),
		"exp": jwt.NewNumericDate(past),
	})
}
