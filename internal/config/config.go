package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config collects every environment variable the server reads.
type Config struct {
	AppEnv      string
	Port        string
	MetricsPort string

	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	// CacheBackend selects "redis" or "memory".
	CacheBackend string

	JWTSecret          string
	TokenExpiryMinutes int

	AllowedOrigins []string
}

// Load reads the configuration from the environment, applying local
// development defaults for everything except JWT_SECRET in production.
func Load() *Config {
	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),

		PGHost:     getEnv("PG_HOST", "localhost"),
		PGPort:     getEnv("PG_PORT", "5432"),
		PGUser:     getEnv("PG_USER", "jetcongo"),
		PGPassword: getEnv("PG_PASSWORD", "jetcongo"),
		PGDatabase: getEnv("PG_DB", "jetcongo"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		CacheBackend: getEnv("CACHE_BACKEND", "memory"),

		JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenExpiryMinutes: getEnvInt("TOKEN_EXPIRY_MINUTES", 30),

		AllowedOrigins: []string{
			"http://localhost:5500",
			"http://127.0.0.1:5500",
			"http://localhost:3000",
			"http://localhost",
			"http://127.0.0.1",
		},
	}
	return cfg
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

// RedisAddr builds the Redis host:port address.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
