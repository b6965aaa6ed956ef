package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mcdev12/clubsite/go/internal/api"
	"github.com/mcdev12/clubsite/go/internal/cache"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(cfg Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// newHandler assembles the routes and the middleware chain around them
func newHandler(cfg Config, logger zerolog.Logger, services *Services, responses *cache.Middleware) http.Handler {
	mux := http.NewServeMux()

	// Register services
	registerServices(mux, services, responses.Handler)

	// Add health check endpoint
	setupHealthCheck(mux)

	mux.Handle("/", api.NotFoundHandler())

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedOrigins: cfg.CORSOrigins,
		AllowedHeaders: []string{"*"},
	})

	var handler http.Handler = c.Handler(mux)
	handler = hlog.AccessHandler(logRequest)(handler)
	handler = hlog.RequestIDHandler("req_id", "X-Request-Id")(handler)
	handler = hlog.NewHandler(logger)(handler)
	return handler
}

func registerServices(mux *http.ServeMux, services *Services, cached func(http.Handler) http.Handler) {
	services.News.RegisterRoutes(mux, cached)
	services.Players.RegisterRoutes(mux, cached)
	services.Coaches.RegisterRoutes(mux, cached)
	services.Club.RegisterRoutes(mux, cached)
	services.Search.RegisterRoutes(mux)
}

func logRequest(r *http.Request, status, size int, duration time.Duration) {
	level := zerolog.InfoLevel
	if status >= http.StatusInternalServerError {
		level = zerolog.ErrorLevel
	}
	hlog.FromRequest(r).WithLevel(level).
		Str("method", r.Method).
		Stringer("url", r.URL).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("failed to write health check response")
		}
	})
}
