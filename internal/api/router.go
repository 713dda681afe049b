package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/phrazzld/bibliotheque-api/internal/api/middleware"
	"github.com/phrazzld/bibliotheque-api/internal/config"
	"github.com/phrazzld/bibliotheque-api/internal/service"
	"github.com/phrazzld/bibliotheque-api/internal/service/auth"
)

// RouterDeps holds everything NewRouter needs to build the handler tree.
type RouterDeps struct {
	BookService service.BookService
	JWTService  auth.JWTService
	CORS        config.CORSConfig
	Logger      *slog.Logger
}

// NewRouter creates the application router with all routes and middleware.
// The CORS policy is the outermost middleware so its headers reach every
// response, including 404, 405 and recovered panics.
func NewRouter(deps RouterDeps) http.Handler {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(apiMiddleware.NewCORSMiddleware(deps.CORS))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(log))

	authMiddleware := apiMiddleware.NewAuthMiddleware(deps.JWTService)
	bookHandler := NewBookHandler(deps.BookService, log)

	r.NotFound(NotFoundHandler)
	r.MethodNotAllowed(MethodNotAllowedHandler)

	r.Get("/public", PublicHandler)
	r.Get("/books", bookHandler.ListBooks)
	r.Get("/health", NewHealthHandler(log))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/protected", ProtectedHandler)
		r.Post("/books", bookHandler.CreateBook)
		r.Put("/books/{id}", bookHandler.UpdateBook)
		r.Delete("/books/{id}", bookHandler.DeleteBook)
	})

	return r
}
