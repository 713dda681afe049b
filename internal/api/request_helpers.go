package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bibliotheque-api/internal/api/shared"
	"github.com/phrazzld/bibliotheque-api/internal/domain"
)

// bookIDParam is the chi URL parameter holding the book id.
const bookIDParam = "id"

// getPathBookID parses the {id} path segment. Non-integer values yield an
// error wrapping domain.ErrInvalidID, distinct from the not-found case.
func getPathBookID(r *http.Request) (int, error) {
	return domain.ParseBookID(chi.URLParam(r, bookIDParam))
}

// decodeBookRequest decodes and validates a {"title"} body. A malformed or
// missing body is reported the same way as a missing title.
func decodeBookRequest(r *http.Request) (BookRequest, error) {
	var req BookRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		return BookRequest{}, domain.NewValidationError(
			"title",
			"is required",
			fmt.Errorf("%w: %v", domain.ErrBookTitleEmpty, err),
		)
	}
	return req, nil
}
