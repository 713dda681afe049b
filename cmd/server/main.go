// Package main implements the entry point for the bibliotheque API server,
// which serves a bearer-token protected catalog of books.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/bibliotheque-api/internal/config"
	"github.com/phrazzld/bibliotheque-api/internal/platform/logger"
	"github.com/phrazzld/bibliotheque-api/internal/platform/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		log.Fatalf("bibliotheque-api: %v", err)
	}
}

// run parses flags, loads configuration and either executes a migration
// command or serves HTTP until ctx is canceled.
func run(ctx context.Context, args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("bibliotheque-api", flag.ContinueOnError)
	flags.SetOutput(stderr)
	migrateCmd := flags.String(
		"migrate",
		"",
		"Run a database migration command and exit (up|down|status|version|reset)",
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("store_backend", cfg.Store.Backend),
		slog.String("jwt_algorithm", cfg.Auth.Algorithm))

	if *migrateCmd != "" {
		return runMigrations(ctx, cfg, *migrateCmd, l)
	}

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	return app.startHTTPServer(ctx, app.router())
}

// runMigrations executes a single goose command against the configured database.
func runMigrations(ctx context.Context, cfg *config.Config, command string, l *slog.Logger) error {
	if cfg.Store.DatabaseURL == "" {
		return fmt.Errorf("migration command %q requires store.database_url to be set", command)
	}

	db, err := postgres.Open(ctx, cfg.Store.DatabaseURL, l)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			l.Error("failed to close database connection", slog.String("error", cerr.Error()))
		}
	}()

	return postgres.Migrate(ctx, db, command, l)
}
