package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/bibliotheque-api/internal/domain"
	"github.com/phrazzld/bibliotheque-api/internal/store"
)

// BookStore keeps books in an ordered slice guarded by a mutex.
type BookStore struct {
	mu     sync.RWMutex
	books  []domain.Book
	nextID int
	logger *slog.Logger
}

// Ensure BookStore implements store.BookStore interface
var _ store.BookStore = (*BookStore)(nil)

// NewBookStore creates an empty store. If logger is nil, slog.Default() is used.
func NewBookStore(logger *slog.Logger) *BookStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookStore{
		books:  make([]domain.Book, 0),
		nextID: 1,
		logger: logger.With(slog.String("component", "memory_book_store")),
	}
}

// Create implements store.BookStore.Create.
func (s *BookStore) Create(ctx context.Context, title string) (*domain.Book, error) {
	if err := domain.ValidateTitle(title); err != nil {
		return nil, store.NewStoreError("book", "create", "invalid title", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book := domain.Book{ID: s.nextID, Title: title}
	s.nextID++
	s.books = append(s.books, book)

	s.logger.DebugContext(ctx, "book appended", "book_id", book.ID, "count", len(s.books))
	return &book, nil
}

// List implements store.BookStore.List.
func (s *BookStore) List(ctx context.Context) ([]*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]*domain.Book, 0, len(s.books))
	for i := range s.books {
		b := s.books[i]
		books = append(books, &b)
	}
	return books, nil
}

// GetByID implements store.BookStore.GetByID.
func (s *BookStore) GetByID(ctx context.Context, id int) (*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, store.ErrBookNotFound
	}
	b := s.books[idx]
	return &b, nil
}

// UpdateTitle implements store.BookStore.UpdateTitle.
func (s *BookStore) UpdateTitle(ctx context.Context, id int, title string) (*domain.Book, error) {
	if err := domain.ValidateTitle(title); err != nil {
		return nil, store.NewStoreError("book", "update", "invalid title", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, store.ErrBookNotFound
	}
	s.books[idx].Title = title

	b := s.books[idx]
	return &b, nil
}

// Delete implements store.BookStore.Delete.
func (s *BookStore) Delete(ctx context.Context, id int) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, store.ErrBookNotFound
	}
	removed := s.books[idx]
	s.books = append(s.books[:idx], s.books[idx+1:]...)

	s.logger.DebugContext(ctx, "book removed", "book_id", id, "count", len(s.books))
	return &removed, nil
}

// indexOf does a linear scan; the caller must hold the lock.
func (s *BookStore) indexOf(id int) int {
	for i := range s.books {
		if s.books[i].ID == id {
			return i
		}
	}
	return -1
}
