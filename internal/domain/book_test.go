package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateTitle("Les Misérables"))
	assert.NoError(t, ValidateTitle(" "), "only presence is checked")

	err := ValidateTitle("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBookTitleEmpty))
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestBook_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		book    Book
		wantErr error
	}{
		{name: "valid", book: Book{ID: 1, Title: "Germinal"}},
		{name: "zero id", book: Book{ID: 0, Title: "Germinal"}, wantErr: ErrInvalidID},
		{name: "negative id", book: Book{ID: -3, Title: "Germinal"}, wantErr: ErrInvalidID},
		{name: "empty title", book: Book{ID: 2}, wantErr: ErrBookTitleEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.book.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseBookID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "42", want: 42},
		{raw: "+7", want: 7},
		{raw: "-1", want: -1},
		{raw: " 12 ", want: 12},
		{raw: "abc", wantErr: true},
		{raw: "1.5", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "99999999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseBookID(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidID)

				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "id", vErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
