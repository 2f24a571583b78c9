package db

import (
	"fmt"

	gormModels "jetcongo/backend/internal/models/gorm"

	"gorm.io/gorm"
)

// flightIndexes are the search indexes on vol. Every statement carries an
// IF NOT EXISTS guard so running the migration repeatedly is a no-op.
var flightIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_vol_ville_depart ON vol(ville_depart);`,
	`CREATE INDEX IF NOT EXISTS idx_vol_ville_arrivee ON vol(ville_arrivee);`,
	`CREATE INDEX IF NOT EXISTS idx_vol_date_depart ON vol(date_depart);`,
	`CREATE INDEX IF NOT EXISTS idx_vol_prix ON vol(prix);`,
	`CREATE INDEX IF NOT EXISTS idx_vol_statut ON vol(statut);`,
	`CREATE INDEX IF NOT EXISTS idx_vol_avion_id ON vol(avion_id);`,
}

// Migrate creates or updates every table and then applies the vol search
// indexes. Safe to run at every startup.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&gormModels.User{},
		&gormModels.Aircraft{},
		&gormModels.Flight{},
		&gormModels.Reservation{},
		&gormModels.PaymentMode{},
		&gormModels.Payment{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return EnsureFlightIndexes(db)
}

// EnsureFlightIndexes issues the idempotent index DDL on vol.
func EnsureFlightIndexes(db *gorm.DB) error {
	for _, stmt := range flightIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
