package routes

import (
	"net/http"
	"time"

	"jetcongo/backend/internal/api"
	"jetcongo/backend/internal/common"
	"jetcongo/backend/internal/config"
	"jetcongo/backend/internal/db"
	"jetcongo/backend/internal/logging"
	"jetcongo/backend/internal/metrics"
	"jetcongo/backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes builds the application router with its middleware chain
// and every API endpoint wired to its handler.
func RegisterRoutes(cfg *config.Config, cache common.CacheInterface, upSince time.Time) http.Handler {

	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	deps, err := api.InitDependencies(cfg, cache)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	RegisterAPIRoutes(r, cfg, deps, metricsReg)

	return r
}
