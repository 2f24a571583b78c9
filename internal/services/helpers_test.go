package services

import (
	"context"
	"testing"
	"time"

	"jetcongo/backend/internal/common"
	"jetcongo/backend/internal/constants"
	"jetcongo/backend/internal/db"
	"jetcongo/backend/internal/db/repositories"
	gormModels "jetcongo/backend/internal/models/gorm"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func newTestCache() common.CacheInterface {
	return common.NewCacheService(60, 600)
}

func seedUser(t *testing.T, gdb *gorm.DB, email, role string) *gormModels.User {
	t.Helper()
	user := &gormModels.User{
		Email:        email,
		Nom:          "Jean Kabila",
		PasswordHash: "x",
		Role:         role,
	}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedAircraft(t *testing.T, gdb *gorm.DB, capacite int) *gormModels.Aircraft {
	t.Helper()
	aircraft := &gormModels.Aircraft{
		Modele:   "Boeing 737-800",
		Capacite: capacite,
		Statut:   constants.AircraftStatusAvailable,
	}
	if err := gdb.Create(aircraft).Error; err != nil {
		t.Fatalf("seed aircraft: %v", err)
	}
	return aircraft
}

func seedFlight(t *testing.T, gdb *gorm.DB, avionID int64, prix float64, statut string) *gormModels.Flight {
	t.Helper()
	flight := &gormModels.Flight{
		VilleDepart:  "Kinshasa",
		VilleArrivee: "Goma",
		DateDepart:   "2026-03-20",
		HeureDepart:  "08:30",
		Prix:         prix,
		Statut:       statut,
		AvionID:      avionID,
	}
	if err := gdb.Create(flight).Error; err != nil {
		t.Fatalf("seed flight: %v", err)
	}
	return flight
}

func newFlightService(gdb *gorm.DB) *FlightService {
	return NewFlightService(
		repositories.NewFlightRepository(gdb),
		repositories.NewAircraftRepository(gdb),
		repositories.NewReservationRepository(gdb),
		newTestCache(),
	)
}

func newReservationService(gdb *gorm.DB) *ReservationService {
	return NewReservationService(
		repositories.NewReservationRepository(gdb),
		repositories.NewFlightRepository(gdb),
		repositories.NewUserRepository(gdb),
	)
}

func newUserService(gdb *gorm.DB) *UserService {
	return NewUserService(
		repositories.NewUserRepository(gdb),
		repositories.NewReservationRepository(gdb),
		"test-secret",
		30*time.Minute,
	)
}

func newPaymentService(gdb *gorm.DB) *PaymentService {
	return NewPaymentService(
		repositories.NewPaymentRepository(gdb),
		repositories.NewReservationRepository(gdb),
	)
}

func testCtx() context.Context {
	return context.Background()
}
