// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the book service, translating HTTP concerns to catalog operations.
// Every client-facing message is French.
package api
