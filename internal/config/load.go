package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. BIBLIO_SERVER_PORT or BIBLIO_AUTH_JWT_SECRET.
const EnvPrefix = "BIBLIO"

// ConfigPathEnv names an explicit config file to read instead of ./config.yaml.
const ConfigPathEnv = "BIBLIO_CONFIG_PATH"

// Default values. They reproduce the behavior of the service before its
// settings were externalized.
const (
	DefaultPort         = 8000
	DefaultLogLevel     = "info"
	DefaultJWTSecret    = "a-string-secret-at-least-256-bits-long"
	DefaultAlgorithm    = "HS256"
	DefaultAllowOrigin  = "http://localhost:4200"
	DefaultCORSMaxAge   = 600
	DefaultStoreBackend = "memory"
)

// DefaultAllowHeaders is the request header allow-list sent with CORS responses.
var DefaultAllowHeaders = []string{"Authorization", "Content-Type"}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path := os.Getenv(ConfigPathEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so that AutomaticEnv can resolve it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("auth.jwt_secret", DefaultJWTSecret)
	v.SetDefault("auth.algorithm", DefaultAlgorithm)
	v.SetDefault("auth.clock_skew_seconds", 0)

	v.SetDefault("cors.allow_origin", DefaultAllowOrigin)
	v.SetDefault("cors.allow_headers", DefaultAllowHeaders)
	v.SetDefault("cors.max_age", DefaultCORSMaxAge)

	v.SetDefault("store.backend", DefaultStoreBackend)
	v.SetDefault("store.database_url", "")
}
