package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/bibliotheque-api/internal/config"
	"github.com/phrazzld/bibliotheque-api/internal/platform/logger"
)

// MinSecretLength is the shortest accepted HMAC secret, in bytes.
const MinSecretLength = 32

// hmacJWTService is an implementation of JWTService using HMAC-SHA signing.
type hmacJWTService struct {
	signingKey []byte
	method     *jwt.SigningMethodHMAC
	timeFunc   func() time.Time // Injectable for testing
	clockSkew  time.Duration
}

// Ensure hmacJWTService implements JWTService interface
var _ JWTService = (*hmacJWTService)(nil)

// NewJWTService creates a new JWT service for the configured secret and HMAC algorithm.
func NewJWTService(cfg config.AuthConfig) (JWTService, error) {
	return newHMACJWTService(cfg, time.Now)
}

// NewJWTServiceWithClock is NewJWTService with an injected clock, used to
// mint or check tokens relative to a fixed time.
func NewJWTServiceWithClock(cfg config.AuthConfig, now func() time.Time) (JWTService, error) {
	if now == nil {
		now = time.Now
	}
	return newHMACJWTService(cfg, now)
}

func newHMACJWTService(cfg config.AuthConfig, now func() time.Time) (*hmacJWTService, error) {
	if len(cfg.JWTSecret) < MinSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", MinSecretLength)
	}

	alg := cfg.Algorithm
	if alg == "" {
		alg = jwt.SigningMethodHS256.Name
	}
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q: only HMAC algorithms are allowed", alg)
	}

	return &hmacJWTService{
		signingKey: []byte(cfg.JWTSecret),
		method:     method,
		timeFunc:   now,
		clockSkew:  time.Duration(cfg.ClockSkewSeconds) * time.Second,
	}, nil
}

// ValidateToken validates a token and returns its registered claims.
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time {
			return now
		}),
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug("token validation failed: token expired", "error", err)
			return nil, ErrExpiredToken
		}
		log.Debug("token validation failed",
			"error", err,
			"error_type", fmt.Sprintf("%T", err))
		return nil, &InvalidTokenError{Detail: err.Error()}
	}

	if !token.Valid {
		log.Debug("token validation failed: token not valid")
		return nil, &InvalidTokenError{Detail: "token is invalid"}
	}

	result := claimsFromMap(claims)
	log.Debug("token validated successfully",
		"subject", result.Subject,
		"token_id", result.ID)
	return result, nil
}

// GenerateToken creates a signed token for subject.
func (s *hmacJWTService) GenerateToken(
	ctx context.Context,
	subject string,
	lifetime time.Duration,
) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := jwt.MapClaims{
		"sub": subject,
		"iat": jwt.NewNumericDate(now),
		"jti": uuid.New().String(),
	}
	if lifetime > 0 {
		claims["exp"] = jwt.NewNumericDate(now.Add(lifetime))
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign token",
			"error", err,
			"signing_method", s.method.Alg())
		return "", fmt.Errorf("failed to sign token with %s: %w", s.method.Alg(), err)
	}

	return signed, nil
}

// claimsFromMap extracts the registered claims it understands, ignoring the rest.
func claimsFromMap(m jwt.MapClaims) *Claims {
	c := &Claims{}
	if sub, err := m.GetSubject(); err == nil {
		c.Subject = sub
	}
	if iat, err := m.GetIssuedAt(); err == nil && iat != nil {
		c.IssuedAt = iat.Time
	}
	if exp, err := m.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	if jti, ok := m["jti"].(string); ok {
		c.ID = jti
	}
	return c
}
