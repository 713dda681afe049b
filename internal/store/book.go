package store

import (
	"context"

	"github.com/phrazzld/bibliotheque-api/internal/domain"
)

// BookStore defines the interface for book persistence.
//
// Implementations must serialize mutating operations so that concurrent
// requests never observe lost updates or duplicate identifiers. Identifiers
// are assigned by the store, start at 1 and are never handed out twice.
type BookStore interface {
	// Create appends a new book with the given title and returns it with its
	// assigned ID. The title must already be validated by the caller.
	Create(ctx context.Context, title string) (*domain.Book, error)

	// List returns every book currently held, in insertion order.
	// An empty store yields an empty, non-nil slice.
	List(ctx context.Context) ([]*domain.Book, error)

	// GetByID retrieves a book by its ID.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id int) (*domain.Book, error)

	// UpdateTitle replaces the title of an existing book and returns the updated record.
	// Returns ErrBookNotFound if the book does not exist.
	UpdateTitle(ctx context.Context, id int, title string) (*domain.Book, error)

	// Delete removes a book and returns the record as it was before removal.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id int) (*domain.Book, error)
}
