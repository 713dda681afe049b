package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/bibliotheque-api/internal/api"
	"github.com/phrazzld/bibliotheque-api/internal/config"
	"github.com/phrazzld/bibliotheque-api/internal/platform/memory"
	"github.com/phrazzld/bibliotheque-api/internal/platform/postgres"
	"github.com/phrazzld/bibliotheque-api/internal/service"
	"github.com/phrazzld/bibliotheque-api/internal/service/auth"
	"github.com/phrazzld/bibliotheque-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil for the memory backend.
	db *sql.DB

	bookStore   store.BookStore
	bookService service.BookService
	jwtService  auth.JWTService
}

// newApplication wires the store selected by cfg.Store.Backend, the services
// and the token verifier. For the postgres backend the schema is migrated
// to the latest version before the store is used.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	switch cfg.Store.Backend {
	case "postgres":
		db, err := postgres.Open(ctx, cfg.Store.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		app.db = db

		if err := postgres.Migrate(ctx, db, "up", logger); err != nil {
			app.cleanup()
			return nil, err
		}
		app.bookStore = postgres.NewPostgresBookStore(db, logger)
	case "memory":
		app.bookStore = memory.NewBookStore(logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	bookService, err := service.NewBookService(app.bookStore, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create book service: %w", err)
	}
	app.bookService = bookService

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	app.jwtService = jwtService

	logger.Info("application initialized", slog.String("store_backend", cfg.Store.Backend))
	return app, nil
}

// router builds the HTTP handler tree from the application's services.
func (app *application) router() http.Handler {
	return api.NewRouter(api.RouterDeps{
		BookService: app.bookService,
		JWTService:  app.jwtService,
		CORS:        app.config.CORS,
		Logger:      app.logger,
	})
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", slog.String("error", err.Error()))
		return
	}
	app.db = nil
	app.logger.Info("database connection closed")
}
