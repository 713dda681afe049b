package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/bibliotheque-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

func testConfig(secret, alg string) config.AuthConfig {
	return config.AuthConfig{JWTSecret: secret, Algorithm: alg}
}

func mustService(t *testing.T, cfg config.AuthConfig, now func() time.Time) JWTService {
	t.Helper()
	svc, err := NewJWTServiceWithClock(cfg, now)
	require.NoError(t, err)
	return svc
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.AuthConfig
		wantErr string
	}{
		{name: "HS256", cfg: testConfig(testSecret, "HS256")},
		{name: "HS512", cfg: testConfig(testSecret, "HS512")},
		{name: "empty algorithm defaults to HS256", cfg: testConfig(testSecret, "")},
		{name: "short secret", cfg: testConfig("short", "HS256"), wantErr: "at least 32"},
		{name: "asymmetric algorithm", cfg: testConfig(testSecret, "RS256"), wantErr: "unsupported signing algorithm"},
		{name: "unknown algorithm", cfg: testConfig(testSecret, "XX999"), wantErr: "unsupported signing algorithm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewJWTService(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := mustService(t, testConfig(testSecret, "HS256"), func() time.Time { return fixedTime })

	token, err := svc.GenerateToken(context.Background(), "librarian", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "librarian", claims.Subject)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateToken_WithoutExpiry(t *testing.T) {
	t.Parallel()

	svc := mustService(t, testConfig(testSecret, "HS256"), nil)

	token, err := svc.GenerateToken(context.Background(), "forever", 0)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.IsZero(), "tokens without exp never expire")
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	atFixed := func() time.Time { return fixedTime }
	later := func() time.Time { return fixedTime.Add(2 * time.Hour) }

	signer := mustService(t, testConfig(testSecret, "HS256"), atFixed)
	validToken, err := signer.GenerateToken(context.Background(), "user", time.Hour)
	require.NoError(t, err)

	wrongSecretSigner := mustService(t, testConfig(wrongSecret, "HS256"), atFixed)
	wrongSecretToken, err := wrongSecretSigner.GenerateToken(context.Background(), "user", time.Hour)
	require.NoError(t, err)

	wrongAlgSigner := mustService(t, testConfig(testSecret, "HS512"), atFixed)
	wrongAlgToken, err := wrongAlgSigner.GenerateToken(context.Background(), "user", time.Hour)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name        string
		now         func() time.Time
		clockSkew   int
		token       string
		wantErr     error
		wantInvalid bool
	}{
		{name: "valid token", now: atFixed, token: validToken},
		{name: "expired token", now: later, token: validToken, wantErr: ErrExpiredToken},
		{name: "expired token within leeway", now: later, clockSkew: 7200, token: validToken},
		{name: "wrong secret", now: atFixed, token: wrongSecretToken, wantInvalid: true},
		{name: "wrong algorithm", now: atFixed, token: wrongAlgToken, wantInvalid: true},
		{name: "unsigned token", now: atFixed, token: noneToken, wantInvalid: true},
		{name: "empty token", now: atFixed, token: "", wantInvalid: true},
		{name: "garbage", now: atFixed, token: "not.a.jwt", wantInvalid: true},
		{name: "wrong secret and expired", now: later, token: wrongSecretToken, wantInvalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(testSecret, "HS256")
			cfg.ClockSkewSeconds = tt.clockSkew
			svc := mustService(t, cfg, tt.now)

			claims, err := svc.ValidateToken(context.Background(), tt.token)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			case tt.wantInvalid:
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidToken))
				var invalid *InvalidTokenError
				require.ErrorAs(t, err, &invalid)
				assert.NotEmpty(t, invalid.Detail, "decoder message should be surfaced")
				assert.Nil(t, claims)
			default:
				require.NoError(t, err)
				assert.Equal(t, "user", claims.Subject)
			}
		})
	}
}

func TestInvalidTokenError(t *testing.T) {
	t.Parallel()

	err := &InvalidTokenError{Detail: "token is malformed"}

	assert.Equal(t, "invalid authentication token: token is malformed", err.Error())
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, ErrExpiredToken)
}
