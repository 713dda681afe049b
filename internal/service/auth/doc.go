// Package auth verifies bearer credentials. Tokens are HMAC-signed JWTs checked
// against a shared secret and a single configured algorithm.
package auth
