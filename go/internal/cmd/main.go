package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/clubsite/go/internal/api"
	"github.com/mcdev12/clubsite/go/internal/cache"
	"github.com/mcdev12/clubsite/go/internal/pagination"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	loc, err := cfg.location()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := setupDatabase(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	store, closeCache, err := setupCache(ctx, cfg, clockwork.NewRealClock())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up response cache")
	}
	defer closeCache()

	pager := pagination.Paginator{DefaultSize: cfg.PageSize, MaxSize: cfg.MaxPageSize}
	services := setupServices(database, pager, api.NewFormatter(cfg.MediaURL, loc))
	responses := cache.NewMiddleware(store, cfg.CacheTTL, cfg.CachePrefix)
	server := setupServer(cfg, newHandler(cfg, log.Logger, services, responses))

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	log.Info().Msg("clubsite api shutdown complete")
}
