package config

import (
	"os"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "HOST", "PORT", "LOG_LEVEL",
		"DB_IN_MEMORY", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
		"DB_RUN_MIGRATE", "DB_RUN_SEED",
		"JWT_SECRET", "JWT_TTL", "JWT_CACHE_SIZE", "JWT_CACHE_TTL",
		"OPENAPI_ENABLED", "OPENAPI_UI",
	} {
		os.Unsetenv(k)
	}
}

func TestLoadWithDefaults_Succeeds(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadWithDefaults()
	if err != nil {
		t.Fatalf("LoadWithDefaults: %v", err)
	}
	if cfg.Environment != "production" || cfg.Port != 3000 || cfg.Auth.JWTSecret == "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Database.MaxOpenConns != 10 || cfg.Database.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("unexpected pool defaults: %+v", cfg.Database)
	}
	if cfg.Auth.TokenTTL != 0 || cfg.Auth.CacheSize != 0 {
		t.Fatalf("unexpected auth defaults: %+v", cfg.Auth)
	}
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	clearEnv(t)
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when JWT_SECRET is not set")
	}
	// When set, it should succeed
	t.Setenv("JWT_SECRET", "x")
	if _, err := Load(); err != nil {
		t.Fatalf("Load with secret set: %v", err)
	}
}

func TestLoad_RejectsMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed PORT")
	}

	t.Setenv("PORT", "8080")
	t.Setenv("DB_CONN_MAX_LIFETIME", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed DB_CONN_MAX_LIFETIME")
	}
}

func TestAddress(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "8080")
	cfg, err := LoadWithDefaults()
	if err != nil {
		t.Fatalf("LoadWithDefaults: %v", err)
	}
	if got := cfg.Address(); got != "0.0.0.0:8080" {
		t.Fatalf("address: %s", got)
	}
}
