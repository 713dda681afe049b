// Command token-generator mints a bearer token accepted by the API server.
// The API has no login route, so tokens are issued out of band with this tool.
//
// Secret and algorithm default to the server configuration (config.yaml and
// BIBLIO_* environment variables) and can be overridden with flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/phrazzld/bibliotheque-api/internal/config"
	"github.com/phrazzld/bibliotheque-api/internal/service/auth"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "token-generator: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := flag.NewFlagSet("token-generator", flag.ContinueOnError)
	flags.SetOutput(stderr)
	subject := flags.String("sub", "bibliotheque-client", "Subject claim of the token")
	lifetime := flags.Duration("lifetime", time.Hour, "Token lifetime; 0 produces a token without exp")
	secret := flags.String("secret", cfg.Auth.JWTSecret, "HMAC signing secret")
	algorithm := flags.String("alg", cfg.Auth.Algorithm, "Signing algorithm (HS256, HS384 or HS512)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret: *secret,
		Algorithm: *algorithm,
	})
	if err != nil {
		return err
	}

	token, err := svc.GenerateToken(context.Background(), *subject, *lifetime)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	_, err = fmt.Fprintln(stdout, token)
	return err
}
