// Package middleware contains the HTTP middleware wrapped around the router:
// bearer authentication, the static CORS policy and per-request tracing.
package middleware
