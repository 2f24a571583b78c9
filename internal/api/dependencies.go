package api

import (
	"time"

	"jetcongo/backend/internal/common"
	"jetcongo/backend/internal/config"
	"jetcongo/backend/internal/db"
	"jetcongo/backend/internal/db/repositories"
	"jetcongo/backend/internal/services"
)

type Repositories struct {
	User        *repositories.UserRepository
	Aircraft    *repositories.AircraftRepository
	Flight      *repositories.FlightRepository
	Reservation *repositories.ReservationRepository
	Payment     *repositories.PaymentRepository
	Stats       *repositories.StatsRepo
}

type Services struct {
	Cache        common.CacheInterface
	Users        *services.UserService
	Flights      *services.FlightService
	Reservations *services.ReservationService
	Payments     *services.PaymentService
	Fleet        *services.FleetService
	Stats        *services.StatsService
	Receipts     *services.ReceiptService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

func InitDependencies(cfg *config.Config, cache common.CacheInterface) (*Dependencies, error) {
	repos := &Repositories{
		User:        repositories.NewUserRepository(db.PgDB),
		Aircraft:    repositories.NewAircraftRepository(db.PgDB),
		Flight:      repositories.NewFlightRepository(db.PgDB),
		Reservation: repositories.NewReservationRepository(db.PgDB),
		Payment:     repositories.NewPaymentRepository(db.PgDB),
		Stats:       repositories.NewStatsRepo(db.DB),
	}

	tokenExpiry := time.Duration(cfg.TokenExpiryMinutes) * time.Minute
	userSvc := services.NewUserService(repos.User, repos.Reservation, cfg.JWTSecret, tokenExpiry)
	flightSvc := services.NewFlightService(repos.Flight, repos.Aircraft, repos.Reservation, cache)

	svcs := &Services{
		Cache:        cache,
		Users:        userSvc,
		Flights:      flightSvc,
		Reservations: services.NewReservationService(repos.Reservation, repos.Flight, repos.User),
		Payments:     services.NewPaymentService(repos.Payment, repos.Reservation),
		Fleet:        services.NewFleetService(repos.Aircraft, repos.Flight),
		Stats:        services.NewStatsService(repos.Stats, repos.Reservation, repos.Flight),
		Receipts:     services.NewReceiptService(repos.Reservation, repos.Payment),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
