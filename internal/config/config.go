package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
	CORS   CORSConfig   `mapstructure:"cors"   validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds graceful shutdown of in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// AuthConfig contains bearer token verification settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
	// Algorithm is the single HMAC signing method accepted for tokens.
	Algorithm string `mapstructure:"algorithm" validate:"required,oneof=HS256 HS384 HS512"`
	// ClockSkewSeconds is the leeway applied to exp/nbf checks.
	ClockSkewSeconds int `mapstructure:"clock_skew_seconds" validate:"gte=0"`
}

// CORSConfig is the static cross-origin policy applied to every response.
type CORSConfig struct {
	AllowOrigin  string   `mapstructure:"allow_origin"  validate:"required"`
	AllowHeaders []string `mapstructure:"allow_headers" validate:"required,min=1"`
	MaxAge       int      `mapstructure:"max_age"       validate:"gte=0"`
}

// StoreConfig selects and configures the book storage backend.
type StoreConfig struct {
	Backend     string `mapstructure:"backend"      validate:"required,oneof=memory postgres"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Backend postgres"`
}
