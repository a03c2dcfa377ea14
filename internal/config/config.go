package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config holds all application configuration.
type Config struct {
	// Environment is the deployment environment name reported by the
	// health endpoint: development, production or test.
	Environment string `env:"APP_ENV,default=production"`
	Host        string `env:"HOST,default=127.0.0.1"`
	Port        int    `env:"PORT,default=3000"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`

	Database DatabaseConfig
	Auth     AuthConfig
	OpenAPI  OpenAPIConfig
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	// InMemory selects an in-process SQLite engine instead of Postgres.
	InMemory bool   `env:"DB_IN_MEMORY,default=false"`
	Host     string `env:"DB_HOST,default=127.0.0.1"`
	Port     int    `env:"DB_PORT,default=5432"`
	User     string `env:"DB_USER,default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME,default=app"`
	SSL      bool   `env:"DB_SSL,default=false"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,default=10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME,default=30m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME,default=5m"`

	// RunMigrate and RunSeed apply migrations and sample data on startup.
	RunMigrate bool `env:"DB_RUN_MIGRATE,default=false"`
	RunSeed    bool `env:"DB_RUN_SEED,default=false"`
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET"` // JWT signing secret

	// TokenTTL of zero issues tokens without an expiry claim.
	TokenTTL time.Duration `env:"JWT_TTL,default=0"`

	// CacheSize of zero disables the token verification cache.
	CacheSize int           `env:"JWT_CACHE_SIZE,default=0"`
	CacheTTL  time.Duration `env:"JWT_CACHE_TTL,default=1m"`
}

// OpenAPIConfig controls serving of the generated OpenAPI document.
type OpenAPIConfig struct {
	Enabled bool `env:"OPENAPI_ENABLED,default=false"`
	UI      bool `env:"OPENAPI_UI,default=false"`
}

// Load loads configuration from environment variables with sensible defaults.
// Parse errors name the offending variable and value.
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	// Validate critical settings
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set; required for production")
	}

	return &cfg, nil
}

// LoadWithDefaults is like Load but uses a safe default for JWT_SECRET in development.
// WARNING: Only use in development! Use Load() in production.
func LoadWithDefaults() (*Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "dev-secret-change-me"
	}
	return &cfg, nil
}

// Address returns the host:port pair the HTTP server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	db := "postgres"
	if c.Database.InMemory {
		db = "in-memory"
	}
	return fmt.Sprintf("Config{Env: %s, Addr: %s, DB: %s, Auth: *** (masked) ***}",
		c.Environment, c.Address(), db)
}
