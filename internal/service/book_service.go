package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/bibliotheque-api/internal/domain"
	"github.com/phrazzld/bibliotheque-api/internal/platform/logger"
	"github.com/phrazzld/bibliotheque-api/internal/redact"
	"github.com/phrazzld/bibliotheque-api/internal/store"
)

// BookService provides the catalog operations exposed over HTTP.
type BookService interface {
	// CreateBook validates the title and appends a new book.
	CreateBook(ctx context.Context, title string) (*domain.Book, error)

	// ListBooks returns every book in insertion order.
	ListBooks(ctx context.Context) ([]*domain.Book, error)

	// UpdateBookTitle replaces the title of the book with the given ID.
	UpdateBookTitle(ctx context.Context, id int, title string) (*domain.Book, error)

	// DeleteBook removes the book with the given ID and returns it.
	DeleteBook(ctx context.Context, id int) (*domain.Book, error)
}

// bookServiceImpl implements the BookService interface
type bookServiceImpl struct {
	books  store.BookStore
	logger *slog.Logger
}

// NewBookService creates a new BookService.
// It returns an error if the store is nil.
func NewBookService(books store.BookStore, logger *slog.Logger) (BookService, error) {
	if books == nil {
		return nil, domain.NewValidationError("books", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &bookServiceImpl{
		books:  books,
		logger: logger.With(slog.String("component", "book_service")),
	}, nil
}

// CreateBook implements BookService.CreateBook
func (s *bookServiceImpl) CreateBook(ctx context.Context, title string) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateTitle(title); err != nil {
		return nil, err
	}

	book, err := s.books.Create(ctx, title)
	if err != nil {
		log.Error("failed to create book", "error", redact.Error(err))
		return nil, NewBookServiceError("create", "failed to store book", err)
	}

	log.Info("book created", "book_id", book.ID)
	return book, nil
}

// ListBooks implements BookService.ListBooks
func (s *bookServiceImpl) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list books", "error", redact.Error(err))
		return nil, NewBookServiceError("list", "failed to list books", err)
	}
	if books == nil {
		books = []*domain.Book{}
	}
	return books, nil
}

// UpdateBookTitle implements BookService.UpdateBookTitle
func (s *bookServiceImpl) UpdateBookTitle(ctx context.Context, id int, title string) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateTitle(title); err != nil {
		return nil, err
	}

	book, err := s.books.UpdateTitle(ctx, id, title)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			log.Debug("book to update not found", "book_id", id)
			return nil, err
		}
		log.Error("failed to update book", "book_id", id, "error", redact.Error(err))
		return nil, NewBookServiceError("update", "failed to update book", err)
	}

	log.Info("book updated", "book_id", book.ID)
	return book, nil
}

// DeleteBook implements BookService.DeleteBook
func (s *bookServiceImpl) DeleteBook(ctx context.Context, id int) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	book, err := s.books.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			log.Debug("book to delete not found", "book_id", id)
			return nil, err
		}
		log.Error("failed to delete book", "book_id", id, "error", redact.Error(err))
		return nil, NewBookServiceError("delete", "failed to delete book", err)
	}

	log.Info("book deleted", "book_id", book.ID)
	return book, nil
}
