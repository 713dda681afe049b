package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/bibliotheque-api/internal/domain"
	"github.com/phrazzld/bibliotheque-api/internal/redact"
	"github.com/phrazzld/bibliotheque-api/internal/store"
)

// PostgresBookStore implements the store.BookStore interface
// using a PostgreSQL database as the storage backend.
//
// Identifiers come from an identity column, so they are unique across the
// whole table history and concurrent inserts never collide.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

// NewPostgresBookStore creates a new PostgreSQL implementation of the BookStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresBookStore(db store.DBTX, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Create implements store.BookStore.Create.
func (s *PostgresBookStore) Create(ctx context.Context, title string) (*domain.Book, error) {
	if err := domain.ValidateTitle(title); err != nil {
		return nil, store.NewStoreError("book", "create", "invalid title", store.ErrInvalidEntity)
	}

	const query = `
		INSERT INTO books (title)
		VALUES ($1)
		RETURNING id, title`

	var book domain.Book
	err := s.db.QueryRowContext(ctx, query, title).Scan(&book.ID, &book.Title)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to insert book", "error", redact.Error(err))
		return nil, store.NewStoreError("book", "create", "insert failed", MapError(err))
	}

	s.logger.DebugContext(ctx, "book inserted", "book_id", book.ID)
	return &book, nil
}

// List implements store.BookStore.List.
func (s *PostgresBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	const query = `SELECT id, title FROM books ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, store.NewStoreError("book", "list", "query failed", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.WarnContext(ctx, "failed to close rows", "error", closeErr)
		}
	}()

	books := make([]*domain.Book, 0)
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Title); err != nil {
			return nil, store.NewStoreError("book", "list", "scan failed", err)
		}
		books = append(books, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("book", "list", "iteration failed", MapError(err))
	}

	return books, nil
}

// GetByID implements store.BookStore.GetByID.
func (s *PostgresBookStore) GetByID(ctx context.Context, id int) (*domain.Book, error) {
	const query = `SELECT id, title FROM books WHERE id = $1`

	return s.scanOne(ctx, "get", query, id)
}

// UpdateTitle implements store.BookStore.UpdateTitle.
func (s *PostgresBookStore) UpdateTitle(ctx context.Context, id int, title string) (*domain.Book, error) {
	if err := domain.ValidateTitle(title); err != nil {
		return nil, store.NewStoreError("book", "update", "invalid title", store.ErrInvalidEntity)
	}

	const query = `
		UPDATE books
		SET title = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title`

	return s.scanOne(ctx, "update", query, id, title)
}

// Delete implements store.BookStore.Delete.
func (s *PostgresBookStore) Delete(ctx context.Context, id int) (*domain.Book, error) {
	const query = `DELETE FROM books WHERE id = $1 RETURNING id, title`

	return s.scanOne(ctx, "delete", query, id)
}

// scanOne runs a single-row query returning (id, title). sql.ErrNoRows
// becomes store.ErrBookNotFound.
func (s *PostgresBookStore) scanOne(ctx context.Context, op, query string, args ...any) (*domain.Book, error) {
	var book domain.Book
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&book.ID, &book.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrBookNotFound
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "book query failed", "operation", op, "error", redact.Error(err))
		return nil, store.NewStoreError("book", op, "query failed", MapError(err))
	}
	return &book, nil
}
