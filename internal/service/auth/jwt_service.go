package auth

import (
	"context"
	"time"
)

// JWTService defines operations for verifying and minting bearer tokens.
type JWTService interface {
	// ValidateToken checks the signature and time-based claims of tokenString.
	// Returns ErrExpiredToken if exp has passed, or an *InvalidTokenError for
	// any other failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateToken mints a token for subject signed with the configured key.
	// A non-positive lifetime produces a token without an exp claim.
	// Only used for out-of-band issuance; no HTTP route exposes it.
	GenerateToken(ctx context.Context, subject string, lifetime time.Duration) (string, error)
}

// Claims holds the registered claims of a verified token. The service does
// not make authorization decisions from them; they are kept for logging.
type Claims struct {
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
