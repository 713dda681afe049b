// Package shared holds the response, request-decoding and context helpers
// used by both the api handlers and the middleware package.
package shared
