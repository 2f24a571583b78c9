package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"jetcongo/backend/internal/common"
	"jetcongo/backend/internal/config"
	"jetcongo/backend/internal/db"
	"jetcongo/backend/internal/logging"
	"jetcongo/backend/internal/routes"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("JetCongo API starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect with sqlx (health checks, dashboard aggregates)
	if err := db.InitPostgres(cfg.DSN()); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect with GORM (repositories)
	gormDB, err := db.InitPostgresORM(cfg.DSN())
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	if err := db.Migrate(gormDB); err != nil {
		logging.Error("Migration failed", "error", err.Error())
		log.Fatalf("Migration failed: %v", err)
	}
	logging.Info("Schema migrated, vol indexes ensured")

	if os.Getenv("SEED_ON_START") == "true" {
		if err := db.SeedBasicData(gormDB); err != nil {
			logging.Error("Seeding failed", "error", err.Error())
			log.Fatalf("Seeding failed: %v", err)
		}
		logging.Info("Seed data ensured")
	}

	cache := buildCache(cfg)
	defer func() { _ = cache.Close() }()

	upSince := time.Now()
	router := routes.RegisterRoutes(cfg, cache, upSince)

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())

	appServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	metricsServer := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		logging.Info("API server starting", "port", cfg.Port, "environment", cfg.AppEnv)
		return appServer.ListenAndServe()
	})
	g.Go(func() error {
		logging.Info("Metrics server starting", "port", cfg.MetricsPort)
		return metricsServer.ListenAndServe()
	})

	if err := g.Wait(); err != nil {
		logging.Error("Server stopped", "error", err.Error())
		log.Fatal(err)
	}
}

// buildCache picks the cache backend. Redis failures fall back to the
// in-memory cache so a missing Redis never blocks startup.
func buildCache(cfg *config.Config) common.CacheInterface {
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService(cfg.RedisAddr(), cfg.RedisPassword)
		if err == nil {
			logging.Info("Using Redis cache", "addr", cfg.RedisAddr())
			return redisCache
		}
		logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
	}
	logging.Info("Using in-memory cache")
	return common.NewCacheService(60, 600)
}
