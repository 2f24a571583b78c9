package db

import (
	"fmt"

	"jetcongo/backend/internal/constants"
	gormModels "jetcongo/backend/internal/models/gorm"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// SeedBasicData inserts a starter fleet and a few Kinshasa/Goma/Lubumbashi
// flights. Each table is only filled when empty, so reruns are no-ops.
func SeedBasicData(db *gorm.DB) error {
	var aircraftCount int64
	if err := db.Model(&gormModels.Aircraft{}).Count(&aircraftCount).Error; err != nil {
		return fmt.Errorf("count avion: %w", err)
	}

	if aircraftCount == 0 {
		fleet := []gormModels.Aircraft{
			{Modele: "Boeing 737-800", Capacite: 180, Statut: constants.AircraftStatusAvailable, Compagnie: strPtr("Congo Airways")},
			{Modele: "Airbus A320", Capacite: 160, Statut: constants.AircraftStatusAvailable, Compagnie: strPtr("FlyCAA")},
			{Modele: "Bombardier Q400", Capacite: 78, Statut: constants.AircraftStatusAvailable, Compagnie: strPtr("Congo Airways")},
		}
		if err := db.Create(&fleet).Error; err != nil {
			return fmt.Errorf("seed avion: %w", err)
		}
	}

	var fleet []gormModels.Aircraft
	if err := db.Order("id asc").Limit(3).Find(&fleet).Error; err != nil {
		return fmt.Errorf("load avion: %w", err)
	}
	if len(fleet) < 3 {
		return nil
	}

	var flightCount int64
	if err := db.Model(&gormModels.Flight{}).Count(&flightCount).Error; err != nil {
		return fmt.Errorf("count vol: %w", err)
	}
	if flightCount > 0 {
		return nil
	}

	flights := []gormModels.Flight{
		{VilleDepart: "Kinshasa", VilleArrivee: "Goma", DateDepart: "2026-03-20", HeureDepart: "08:30", Prix: 245.00, Statut: constants.FlightStatusActive, AvionID: fleet[0].ID},
		{VilleDepart: "Kinshasa", VilleArrivee: "Goma", DateDepart: "2026-03-20", HeureDepart: "14:15", Prix: 280.00, Statut: constants.FlightStatusActive, AvionID: fleet[1].ID},
		{VilleDepart: "Kinshasa", VilleArrivee: "Goma", DateDepart: "2026-03-21", HeureDepart: "06:00", Prix: 195.00, Statut: constants.FlightStatusActive, AvionID: fleet[2].ID},
		{VilleDepart: "Goma", VilleArrivee: "Lubumbashi", DateDepart: "2026-03-20", HeureDepart: "09:45", Prix: 220.00, Statut: constants.FlightStatusActive, AvionID: fleet[0].ID},
	}
	if err := db.Create(&flights).Error; err != nil {
		return fmt.Errorf("seed vol: %w", err)
	}

	return nil
}
