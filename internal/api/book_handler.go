package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/bibliotheque-api/internal/api/shared"
	"github.com/phrazzld/bibliotheque-api/internal/platform/logger"
	"github.com/phrazzld/bibliotheque-api/internal/service"
)

// BookHandler handles book-related HTTP requests
type BookHandler struct {
	bookService service.BookService
	logger      *slog.Logger
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(bookService service.BookService, logger *slog.Logger) *BookHandler {
	if bookService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("bookService cannot be nil for BookHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for BookHandler")
	}

	return &BookHandler{
		bookService: bookService,
		logger:      logger.With(slog.String("component", "book_handler")),
	}
}

// CreateBook handles POST /books requests.
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, err := decodeBookRequest(r)
	if err != nil {
		log.Debug("rejected book creation", slog.String("reason", "missing title"))
		HandleAPIError(w, r, err, MsgTitleRequired)
		return
	}

	book, err := h.bookService.CreateBook(r.Context(), req.Title)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BookMutationResponse{
		Message: MsgBookCreated,
		Book:    bookToResponse(book),
	})
}

// ListBooks handles GET /books requests.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListBooks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, booksToResponse(books))
}

// UpdateBook handles PUT /books/{id} requests.
// The body is checked before the id, so a bad body on a bad id reports the title.
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, err := decodeBookRequest(r)
	if err != nil {
		log.Debug("rejected book update", slog.String("reason", "missing title"))
		HandleAPIError(w, r, err, MsgTitleRequired)
		return
	}

	id, err := getPathBookID(r)
	if err != nil {
		log.Debug("invalid book id", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, MsgInvalidID)
		return
	}

	book, err := h.bookService.UpdateBookTitle(r.Context(), id, req.Title)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BookMutationResponse{
		Message: MsgBookUpdated,
		Book:    bookToResponse(book),
	})
}

// DeleteBook handles DELETE /books/{id} requests.
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathBookID(r)
	if err != nil {
		log.Debug("invalid book id", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, MsgInvalidID)
		return
	}

	book, err := h.bookService.DeleteBook(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BookMutationResponse{
		Message: MsgBookDeleted,
		Book:    bookToResponse(book),
	})
}
