// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/b-ciq/brandkit/cmd/brandkit-api/handlers"
	"github.com/b-ciq/brandkit/cmd/brandkit-api/middleware"
	"github.com/b-ciq/brandkit/internal/cache"
	"github.com/b-ciq/brandkit/internal/config"
	"github.com/b-ciq/brandkit/internal/inventory"
	"github.com/b-ciq/brandkit/internal/match"
	"github.com/b-ciq/brandkit/internal/observability"
)

// NewRouter creates the main API router with all routes configured.
func NewRouter(logger *observability.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestContext)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))

	cacheClient := newCacheClient(logger, cfg)
	loader := inventory.NewLoader(cfg.Inventory, logger)
	service := match.NewService(logger, loader, cacheClient, *cfg)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"brandkit"}`))
	})

	// Readiness requires a loadable inventory.
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := service.Ready(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.Write([]byte(`{"status":"ready"}`))
	})

	assetsHandler := handlers.NewAssetsHandler(logger, service)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/assets", func(r chi.Router) {
			r.Post("/query", assetsHandler.Query)
			r.Get("/", assetsHandler.List)
		})
		r.Get("/products", assetsHandler.Products)
		r.Get("/guidelines", assetsHandler.Guidelines)
		r.Post("/refresh", assetsHandler.Refresh)
	})

	return r
}

// newCacheClient builds the configured cache backend, falling back to memory
// when Redis is unreachable so the API still serves requests.
func newCacheClient(logger *observability.Logger, cfg *config.Config) cache.Client {
	if cfg.Cache.Driver == "redis" {
		client, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			PoolSize: cfg.Cache.Redis.PoolSize,
		})
		if err == nil {
			logger.Info().Str("addr", cfg.Cache.Redis.Addr).Msg("Using Redis response cache")
			return client
		}
		logger.Warn().Err(err).Msg("Redis unavailable, falling back to in-memory cache")
	}
	return cache.NewMemoryClient(cfg.Cache.MaxEntries)
}
