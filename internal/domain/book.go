package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBookTitleEmpty is returned when a book's title is missing or blank.
var ErrBookTitleEmpty = fmt.Errorf("%w: book title cannot be empty", ErrValidation)

// Book is a catalog record. Only the identifier and title are tracked.
type Book struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// ValidateTitle checks that a title is usable for a book.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrBookTitleEmpty
	}
	return nil
}

// Validate checks if the Book has valid data.
func (b *Book) Validate() error {
	if b.ID <= 0 {
		return NewValidationError("id", "must be positive", ErrInvalidID)
	}
	return ValidateTitle(b.Title)
}

// ParseBookID parses a book identifier taken from a URL path segment.
// Surrounding whitespace is tolerated; anything that is not a base-10
// integer yields an error wrapping ErrInvalidID.
func ParseBookID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, NewValidationError("id", "has invalid format", fmt.Errorf("%w: %v", ErrInvalidID, err))
	}
	return id, nil
}
