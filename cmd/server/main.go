package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/httpserver"
	"blogapi/repository"
)

func main() {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}
	log.Info().Stringer("config", cfg).Msg("configuration loaded")

	// Open DB
	d, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("open db")
	}
	defer func() {
		if err := db.Close(d); err != nil {
			log.Error().Err(err).Msg("close db")
		}
	}()

	if cfg.Database.RunMigrate {
		log.Info().Msg("running migrations")
		if err := db.Migrate(d); err != nil {
			log.Fatal().Err(err).Msg("migrate")
		}
	}
	if cfg.Database.RunSeed {
		log.Info().Msg("running seed")
		if err := db.Seed(d); err != nil {
			log.Fatal().Err(err).Msg("seed")
		}
	}

	users := repository.NewUserRepository(d)
	posts := repository.NewPostRepository(d)

	// Start HTTP server
	srv := httpserver.New(cfg, log, d, users, posts)
	shutdown, err := srv.Start()
	if err != nil {
		log.Fatal().Err(err).Msg("start http server")
	}
	log.Info().Str("addr", cfg.Address()).Msg("http server listening")

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
