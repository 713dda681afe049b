// Package service contains the application use cases for the book catalog.
// It orchestrates the domain rules and the store.BookStore contract so that
// HTTP handlers never talk to a storage backend directly.
//
// Error handling principles:
//  1. Expected conditions surface as sentinel errors (domain.ErrBookTitleEmpty,
//     store.ErrBookNotFound) that callers match with errors.Is.
//  2. Unexpected failures are wrapped in *BookServiceError with the operation name.
//  3. The API layer maps these errors to HTTP status codes.
package service
