package main

import (
	"log"

	"jetcongo/backend/internal/config"
	"jetcongo/backend/internal/db"
)

// Seeds the database with a starter fleet and schedule. Safe to rerun.
func main() {
	cfg := config.Load()

	gormDB, err := db.InitPostgresORM(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := db.SeedBasicData(gormDB); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seed data ensured")
}
