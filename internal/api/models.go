package api

import "github.com/phrazzld/bibliotheque-api/internal/domain"

// Messages sent in the "message" field of responses.
const (
	MsgPublicOK        = "Route publique OK"
	MsgProtectedOK     = "Accès autorisé avec token valide"
	MsgBookCreated     = "Livre ajouté"
	MsgBookUpdated     = "Livre modifié"
	MsgBookDeleted     = "Livre supprimé"
	MsgTitleRequired   = "title requis"
	MsgInvalidID       = "ID invalide"
	MsgBookNotFound    = "Livre non trouvé"
	MsgRouteNotFound   = "Route non trouvée"
	MsgMethodNotAllowed= "Méthode non autorisée"
	MsgInternalError   = "Erreur interne"
)

// BookRequest is the body accepted by POST /books and PUT /books/{id}.
type BookRequest struct {
	Title string `json:"title" validate:"required"`
}

// BookResponse is the wire form of a book.
type BookResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// BookMutationResponse is returned by create, update and delete.
type BookMutationResponse struct {
	Message string       `json:"message"`
	Book    BookResponse `json:"book"`
}

// bookToResponse converts a domain book to its wire form.
func bookToResponse(b *domain.Book) BookResponse {
	return BookResponse{ID: b.ID, Title: b.Title}
}

// booksToResponse never returns nil so an empty catalog encodes as [].
func booksToResponse(books []*domain.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, bookToResponse(b))
	}
	return out
}
