package auth

import (
	"context"
	"strings"
)

// BearerPrefix is the scheme prefix expected at the start of the Authorization header.
const BearerPrefix = "Bearer "

// ParseBearerHeader extracts the token from an Authorization header value.
//
// The token is the second space-separated field, so "Bearer " yields an
// empty token (rejected later by ValidateToken) and anything after a second
// space is ignored.
func ParseBearerHeader(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", ErrMalformedHeader
	}
	return strings.Split(header, " ")[1], nil
}

// VerifyAuthorizationHeader parses header and validates the bearer token it carries.
// It has no side effects.
func VerifyAuthorizationHeader(ctx context.Context, svc JWTService, header string) (*Claims, error) {
	token, err := ParseBearerHeader(header)
	if err != nil {
		return nil, err
	}
	return svc.ValidateToken(ctx, token)
}
