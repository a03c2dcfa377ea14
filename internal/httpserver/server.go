package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/repository"
)

// Server bundles dependencies and exposes the HTTP API under /api.
type Server struct {
	cfg   *config.Config
	log   zerolog.Logger
	db    *gorm.DB
	users repository.UserRepositoryI
	posts repository.PostRepositoryI
	echo  *echo.Echo
}

// New assembles the echo application: middleware, error rendering,
// request validation and all routes.
func New(cfg *config.Config, log zerolog.Logger, db *gorm.DB, users repository.UserRepositoryI, posts repository.PostRepositoryI) *Server {
	s := &Server{cfg: cfg, log: log, db: db, users: users, posts: posts}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError
	e.Validator = newValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogMethod:  true,
		LogURI:     true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.CacheSize, cfg.Auth.CacheTTL)

	api := e.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/login", s.handleLogin)
	api.POST("/signup", s.handleSignup)

	authed := api.Group("", auth.Middleware(verifier))
	authed.GET("/profile", s.handleProfile)

	postsGroup := authed.Group("/posts")
	postsGroup.GET("", s.handleListPosts)
	postsGroup.POST("", s.handleCreatePost)
	postsGroup.GET("/:id", s.handleGetPost)
	postsGroup.PUT("/:id", s.handleUpdatePost)
	postsGroup.DELETE("/:id", s.handleDeletePost)

	if cfg.OpenAPI.Enabled {
		api.GET("/openapi.json", s.handleOpenAPIDocument)
		if cfg.OpenAPI.UI {
			api.GET("/docs", s.handleOpenAPIUI)
		}
	}

	s.echo = e
	return s
}

// Handler exposes the assembled application for in-process testing.
func (s *Server) Handler() http.Handler { return s.echo }

// Start begins serving on the configured address and returns a shutdown
// function that drains in-flight requests until its context expires.
func (s *Server) Start() (func(context.Context) error, error) {
	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return nil, err
	}
	s.echo.Listener = ln

	go func() {
		if err := s.echo.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("http server stopped")
		}
	}()

	return func(ctx context.Context) error {
		return s.echo.Shutdown(ctx)
	}, nil
}
