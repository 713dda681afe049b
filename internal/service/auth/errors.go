package auth

import "errors"

// Common authentication service errors
var (
	// ErrMissingToken indicates the Authorization header was absent or empty.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrMalformedHeader indicates the Authorization header does not use the Bearer scheme.
	ErrMalformedHeader = errors.New("authorization header must use the Bearer scheme")

	// ErrExpiredToken indicates the token's exp claim has passed.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrInvalidToken indicates the token format is invalid or signature doesn't match.
	// Returned wrapped in an *InvalidTokenError carrying the decoder's message.
	ErrInvalidToken = errors.New("invalid authentication token")
)

// InvalidTokenError reports a token rejected for any reason other than expiry.
// Detail is the message produced by the JWT decoder.
type InvalidTokenError struct {
	Detail string
}

// Error implements the error interface.
func (e *InvalidTokenError) Error() string {
	return ErrInvalidToken.Error() + ": " + e.Detail
}

// Unwrap lets errors.Is(err, ErrInvalidToken) match.
func (e *InvalidTokenError) Unwrap() error {
	return ErrInvalidToken
}
