package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrBookNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup 3: %w", ErrBookNotFound)))
	assert.False(t, IsNotFoundError(ErrInvalidEntity))
	assert.False(t, IsNotFoundError(nil))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	t.Run("with wrapped error", func(t *testing.T) {
		err := NewStoreError("book", "update", "no such row", ErrBookNotFound)
		assert.Equal(t, "update operation on book failed: no such row: entity not found: book", err.Error())
		assert.True(t, errors.Is(err, ErrBookNotFound))
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("book", "create", "title rejected", nil)
		assert.Equal(t, "create operation on book failed: title rejected", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})
}
