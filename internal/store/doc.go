// Package store defines the persistence contract for book records.
// Handlers and services depend on BookStore only, so the in-memory backend
// can be swapped for the PostgreSQL one without touching request handling.
package store
