package mocks

import (
	"context"

	"github.com/phrazzld/bibliotheque-api/internal/domain"
	"github.com/phrazzld/bibliotheque-api/internal/store"
)

// MockBookStore implements store.BookStore for testing
type MockBookStore struct {
	CreateFn      func(ctx context.Context, title string) (*domain.Book, error)
	ListFn        func(ctx context.Context) ([]*domain.Book, error)
	GetByIDFn     func(ctx context.Context, id int) (*domain.Book, error)
	UpdateTitleFn func(ctx context.Context, id int, title string) (*domain.Book, error)
	DeleteFn      func(ctx context.Context, id int) (*domain.Book, error)

	// Default values used when functions aren't explicitly defined
	Book  *domain.Book
	Books []*domain.Book
	Err   error

	// Calls counts invocations per method name.
	Calls map[string]int
}

var _ store.BookStore = (*MockBookStore)(nil)

func (m *MockBookStore) record(method string) {
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[method]++
}

// Create implements store.BookStore
func (m *MockBookStore) Create(ctx context.Context, title string) (*domain.Book, error) {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, title)
	}
	return m.Book, m.Err
}

// List implements store.BookStore
func (m *MockBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	m.record("List")
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Books, m.Err
}

// GetByID implements store.BookStore
func (m *MockBookStore) GetByID(ctx context.Context, id int) (*domain.Book, error) {
	m.record("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Book, m.Err
}

// UpdateTitle implements store.BookStore
func (m *MockBookStore) UpdateTitle(ctx context.Context, id int, title string) (*domain.Book, error) {
	m.record("UpdateTitle")
	if m.UpdateTitleFn != nil {
		return m.UpdateTitleFn(ctx, id, title)
	}
	return m.Book, m.Err
}

// Delete implements store.BookStore
func (m *MockBookStore) Delete(ctx context.Context, id int) (*domain.Book, error) {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Book, m.Err
}
