package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"blogapi/internal/db"
)

type healthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
	InMemory    bool   `json:"inMemory"`
}

// handleHealth probes the database and reports the outcome in the body.
// The HTTP status is 200 in both outcomes; a degraded database is
// reported as status "error", never as a 5xx.
func (s *Server) handleHealth(c echo.Context) error {
	status := "ok"
	if err := db.Ping(s.db); err != nil {
		s.log.Error().Err(err).Msg("health probe failed")
		status = "error"
	}
	return c.JSON(http.StatusOK, healthResponse{
		Status:      status,
		Environment: s.cfg.Environment,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		InMemory:    s.cfg.Database.InMemory,
	})
}
