package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/testutil"
	"blogapi/repository"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Host:        "127.0.0.1",
		Port:        0,
		LogLevel:    "disabled",
		Database:    config.DatabaseConfig{InMemory: true},
		Auth:        config.AuthConfig{JWTSecret: testSecret},
	}
}

func newTestServer(t *testing.T, name string) (*Server, *gorm.DB) {
	t.Helper()
	d := testutil.OpenInMemoryDB(t, name)
	s := New(testConfig(), zerolog.Nop(), d,
		repository.NewUserRepository(d), repository.NewPostRepository(d))
	return s, d
}

func doJSON(t *testing.T, s *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealth_OK(t *testing.T) {
	s, _ := newTestServer(t, "health-ok")

	rec := doJSON(t, s, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decode(t, rec, &body)
	require.Equal(t, "ok", body["status"])
	require.Equal(t, "test", body["environment"])
	require.Equal(t, true, body["inMemory"])
	require.NotEmpty(t, body["timestamp"])
}

func TestHealth_DegradedDatabaseStays200(t *testing.T) {
	s, d := newTestServer(t, "health-degraded")
	require.NoError(t, db.Close(d))

	rec := doJSON(t, s, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, "health must never surface a 5xx")

	var body map[string]interface{}
	decode(t, rec, &body)
	require.Equal(t, "error", body["status"])
}

func TestUnknownRouteRendersTaxonomy(t *testing.T) {
	s, _ := newTestServer(t, "unknown-route")

	rec := doJSON(t, s, http.MethodGet, "/api/nope", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	decode(t, rec, &body)
	require.Equal(t, "ERR_NOT_FOUND", body["code"])
}

func TestOpenAPI_DisabledByDefault(t *testing.T) {
	s, _ := newTestServer(t, "openapi-disabled")
	rec := doJSON(t, s, http.MethodGet, "/api/openapi.json", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOpenAPI_Enabled(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "openapi-enabled")
	cfg := testConfig()
	cfg.OpenAPI.Enabled = true
	cfg.OpenAPI.UI = true
	s := New(cfg, zerolog.Nop(), d,
		repository.NewUserRepository(d), repository.NewPostRepository(d))

	rec := doJSON(t, s, http.MethodGet, "/api/openapi.json", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]interface{}
	decode(t, rec, &doc)
	require.Equal(t, "3.0.3", doc["openapi"])
	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	for _, p := range []string{"/api/health", "/api/login", "/api/signup", "/api/profile", "/api/posts", "/api/posts/{id}"} {
		require.Contains(t, paths, p)
	}

	ui := doJSON(t, s, http.MethodGet, "/api/docs", "", nil)
	require.Equal(t, http.StatusOK, ui.Code)
	require.Contains(t, ui.Body.String(), "swagger-ui")
}

func TestGracefulStartAndShutdown(t *testing.T) {
	s, _ := newTestServer(t, "start-shutdown")

	shutdown, err := s.Start()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, shutdown(ctx))
}
