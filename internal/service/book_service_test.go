package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/bibliotheque-api/internal/domain"
	"github.com/phrazzld/bibliotheque-api/internal/mocks"
	"github.com/phrazzld/bibliotheque-api/internal/service"
	"github.com/phrazzld/bibliotheque-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, books store.BookStore) service.BookService {
	t.Helper()
	svc, err := service.NewBookService(books, nil)
	require.NoError(t, err)
	return svc
}

func TestNewBookService_RequiresStore(t *testing.T) {
	t.Parallel()

	svc, err := service.NewBookService(nil, nil)

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateBook(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		m := &mocks.MockBookStore{
			CreateFn: func(ctx context.Context, title string) (*domain.Book, error) {
				return &domain.Book{ID: 1, Title: title}, nil
			},
		}

		book, err := newService(t, m).CreateBook(context.Background(), "A")

		require.NoError(t, err)
		assert.Equal(t, &domain.Book{ID: 1, Title: "A"}, book)
	})

	t.Run("empty title never reaches the store", func(t *testing.T) {
		m := &mocks.MockBookStore{}

		book, err := newService(t, m).CreateBook(context.Background(), "")

		assert.Nil(t, book)
		assert.ErrorIs(t, err, domain.ErrBookTitleEmpty)
		assert.Zero(t, m.Calls["Create"])
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		storeErr := errors.New("disk on fire")
		m := &mocks.MockBookStore{Err: storeErr}

		_, err := newService(t, m).CreateBook(context.Background(), "A")

		var svcErr *service.BookServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "create", svcErr.Operation)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestListBooks(t *testing.T) {
	t.Parallel()

	t.Run("nil from store becomes empty slice", func(t *testing.T) {
		books, err := newService(t, &mocks.MockBookStore{}).ListBooks(context.Background())

		require.NoError(t, err)
		require.NotNil(t, books)
		assert.Empty(t, books)
	})

	t.Run("passes through records", func(t *testing.T) {
		want := []*domain.Book{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}

		books, err := newService(t, &mocks.MockBookStore{Books: want}).ListBooks(context.Background())

		require.NoError(t, err)
		assert.Equal(t, want, books)
	})

	t.Run("store failure", func(t *testing.T) {
		_, err := newService(t, &mocks.MockBookStore{Err: errors.New("boom")}).ListBooks(context.Background())

		var svcErr *service.BookServiceError
		assert.ErrorAs(t, err, &svcErr)
	})
}

func TestUpdateBookTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		title      string
		storeErr   error
		wantErr    error
		wantSvcErr bool
		wantCalls  int
	}{
		{name: "success", title: "B", wantCalls: 1},
		{name: "empty title", title: "", wantErr: domain.ErrBookTitleEmpty, wantCalls: 0},
		{name: "not found", title: "B", storeErr: store.ErrBookNotFound, wantErr: store.ErrBookNotFound, wantCalls: 1},
		{name: "store failure", title: "B", storeErr: errors.New("boom"), wantSvcErr: true, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mocks.MockBookStore{
				UpdateTitleFn: func(ctx context.Context, id int, title string) (*domain.Book, error) {
					if tt.storeErr != nil {
						return nil, tt.storeErr
					}
					return &domain.Book{ID: id, Title: title}, nil
				},
			}

			book, err := newService(t, m).UpdateBookTitle(context.Background(), 3, tt.title)

			assert.Equal(t, tt.wantCalls, m.Calls["UpdateTitle"])
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, book)
			case tt.wantSvcErr:
				var svcErr *service.BookServiceError
				assert.ErrorAs(t, err, &svcErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, &domain.Book{ID: 3, Title: "B"}, book)
			}
		})
	}
}

func TestDeleteBook(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		m := &mocks.MockBookStore{Book: &domain.Book{ID: 2, Title: "B"}}

		book, err := newService(t, m).DeleteBook(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, 2, book.ID)
	})

	t.Run("not found is not wrapped", func(t *testing.T) {
		m := &mocks.MockBookStore{Err: store.ErrBookNotFound}

		_, err := newService(t, m).DeleteBook(context.Background(), 2)

		assert.ErrorIs(t, err, store.ErrBookNotFound)
		var svcErr *service.BookServiceError
		assert.False(t, errors.As(err, &svcErr))
	})
}
