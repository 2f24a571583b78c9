package services

import (
	"context"
	"errors"
	"fmt"

	"jetcongo/backend/internal/constants"
	"jetcongo/backend/internal/db/repositories"
	"jetcongo/backend/internal/models/dtos"
	gormModels "jetcongo/backend/internal/models/gorm"

	"gorm.io/gorm"
)

// ReservationService holds the booking rules: seat capacity is checked
// against the aircraft, and the total includes the fixed booking tax.
type ReservationService struct {
	resRepo    *repositories.ReservationRepository
	flightRepo *repositories.FlightRepository
	userRepo   *repositories.UserRepository
}

func NewReservationService(resRepo *repositories.ReservationRepository, flightRepo *repositories.FlightRepository, userRepo *repositories.UserRepository) *ReservationService {
	return &ReservationService{
		resRepo:    resRepo,
		flightRepo: flightRepo,
		userRepo:   userRepo,
	}
}

// checkCapacity verifies that seats more places fit on the flight,
// skipping excludeID when an existing reservation is being resized.
func (s *ReservationService) checkCapacity(ctx context.Context, flight *gormModels.Flight, seats int, excludeID int64) error {
	if flight.Avion == nil || flight.Avion.Capacite <= 0 {
		return ErrUnusableAircraft
	}

	taken, err := s.resRepo.SeatsTaken(ctx, flight.ID, excludeID)
	if err != nil {
		return err
	}

	remaining := flight.Avion.Capacite - taken
	if seats > remaining {
		if remaining < 0 {
			remaining = 0
		}
		return &CapacityError{Remaining: remaining}
	}
	return nil
}

func totalWithTax(price float64, seats int) float64 {
	return price*float64(seats) + constants.BookingTax
}

// Create books seats on an active flight for the current user. The
// reservation starts EN_ATTENTE until its payment goes through.
func (s *ReservationService) Create(ctx context.Context, user *gormModels.User, req *dtos.CreateReservationRequest) (*dtos.ReservationCreatedResponse, error) {
	if req.Seats <= 0 {
		return nil, ErrInvalidSeats
	}

	flight, err := s.flightRepo.GetActiveByID(ctx, req.VolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}

	if err := s.checkCapacity(ctx, flight, req.Seats, 0); err != nil {
		return nil, err
	}

	reservation := &gormModels.Reservation{
		Statut:        constants.ReservationStatusPending,
		UtilisateurID: user.ID,
		VolID:         flight.ID,
		NombrePlace:   req.Seats,
		TotalPayer:    totalWithTax(flight.Prix, req.Seats),
	}
	if err := s.resRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	return &dtos.ReservationCreatedResponse{
		ID:         reservation.ID,
		Statut:     reservation.Statut,
		VolID:      reservation.VolID,
		Seats:      reservation.NombrePlace,
		TotalPayer: fmt.Sprintf("%.2f", reservation.TotalPayer),
	}, nil
}

// GetOwned returns one reservation with its flight, scoped to the owner.
func (s *ReservationService) GetOwned(ctx context.Context, user *gormModels.User, id int64) (*dtos.ReservationDetailResponse, error) {
	reservation, err := s.resRepo.GetOwned(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	detail := &dtos.ReservationDetailResponse{
		ID:          reservation.ID,
		Statut:      reservation.Statut,
		NombrePlace: reservation.NombrePlace,
		TotalPayer:  fmt.Sprintf("%.2f", reservation.TotalPayer),
	}
	if reservation.Vol != nil {
		detail.Vol = dtos.ReservationFlightInfo{
			ID:           reservation.Vol.ID,
			VilleDepart:  reservation.Vol.VilleDepart,
			VilleArrivee: reservation.Vol.VilleArrivee,
			DateDepart:   reservation.Vol.DateDepart,
			HeureDepart:  reservation.Vol.HeureDepart,
			DateArrivee:  reservation.Vol.DateArrivee,
			HeureArrivee: reservation.Vol.HeureArrivee,
			Prix:         fmt.Sprintf("%.2f", reservation.Vol.Prix),
		}
	}
	return detail, nil
}

// --- Back-office ---

func toAdminReservationItem(r *gormModels.Reservation) dtos.AdminReservationItem {
	item := dtos.AdminReservationItem{
		ID:              r.ID,
		Statut:          r.Statut,
		DateReservation: r.DateReservation,
		NombrePlace:     r.NombrePlace,
		TotalPayer:      r.TotalPayer,
	}
	if r.Utilisateur != nil {
		item.Utilisateur = &dtos.AdminReservationUser{
			ID:    r.Utilisateur.ID,
			Nom:   r.Utilisateur.Nom,
			Email: r.Utilisateur.Email,
		}
	}
	if r.Vol != nil {
		item.Vol = &dtos.AdminReservationFlight{
			ID:           r.Vol.ID,
			VilleDepart:  r.Vol.VilleDepart,
			VilleArrivee: r.Vol.VilleArrivee,
			DateDepart:   r.Vol.DateDepart,
			HeureDepart:  r.Vol.HeureDepart,
		}
	}
	return item
}

func (s *ReservationService) AdminList(ctx context.Context) (*dtos.AdminReservationListResponse, error) {
	reservations, err := s.resRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dtos.AdminReservationItem, 0, len(reservations))
	for i := range reservations {
		items = append(items, toAdminReservationItem(&reservations[i]))
	}
	return &dtos.AdminReservationListResponse{Items: items, Total: len(items)}, nil
}

// AdminCreate books on behalf of a user. Capacity rules apply the same
// as on the public endpoint.
func (s *ReservationService) AdminCreate(ctx context.Context, req *dtos.AdminReservationCreateRequest) (*dtos.ReservationCreatedResponse, error) {
	if req.Seats <= 0 {
		return nil, ErrInvalidSeats
	}

	user, err := s.userRepo.GetByID(ctx, req.UtilisateurID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	flight, err := s.flightRepo.GetByID(ctx, req.VolID)
	if err != nil {
		return nil, ErrFlightNotFound
	}

	if err := s.checkCapacity(ctx, flight, req.Seats, 0); err != nil {
		return nil, err
	}

	reservation := &gormModels.Reservation{
		Statut:        constants.ReservationStatusPending,
		UtilisateurID: user.ID,
		VolID:         flight.ID,
		NombrePlace:   req.Seats,
		TotalPayer:    totalWithTax(flight.Prix, req.Seats),
	}
	if err := s.resRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	return &dtos.ReservationCreatedResponse{
		ID:         reservation.ID,
		Statut:     reservation.Statut,
		VolID:      reservation.VolID,
		Seats:      reservation.NombrePlace,
		TotalPayer: fmt.Sprintf("%.2f", reservation.TotalPayer),
	}, nil
}

// AdminUpdate resizes and/or restatuses a reservation. Changing the seat
// count re-checks capacity and reprices the total.
func (s *ReservationService) AdminUpdate(ctx context.Context, id int64, req *dtos.AdminReservationUpdateRequest) (*dtos.ReservationStatusResponse, error) {
	reservation, err := s.resRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrReservationNotFound
	}

	if req.Seats != nil && *req.Seats != reservation.NombrePlace {
		if *req.Seats <= 0 {
			return nil, ErrInvalidSeats
		}
		if reservation.Vol == nil {
			return nil, ErrFlightNotFound
		}
		if err := s.checkCapacity(ctx, reservation.Vol, *req.Seats, reservation.ID); err != nil {
			return nil, err
		}
		reservation.NombrePlace = *req.Seats
		reservation.TotalPayer = totalWithTax(reservation.Vol.Prix, *req.Seats)
	}
	if req.Statut != nil {
		reservation.Statut = *req.Statut
	}

	if err := s.resRepo.Save(ctx, reservation); err != nil {
		return nil, err
	}

	return &dtos.ReservationStatusResponse{
		ID:          reservation.ID,
		Statut:      reservation.Statut,
		NombrePlace: reservation.NombrePlace,
		TotalPayer:  reservation.TotalPayer,
	}, nil
}

func (s *ReservationService) setStatus(ctx context.Context, id int64, status string) (*dtos.ReservationStatusResponse, error) {
	reservation, err := s.resRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrReservationNotFound
	}

	reservation.Statut = status
	if err := s.resRepo.Save(ctx, reservation); err != nil {
		return nil, err
	}

	return &dtos.ReservationStatusResponse{
		ID:     reservation.ID,
		Statut: reservation.Statut,
	}, nil
}

func (s *ReservationService) Confirm(ctx context.Context, id int64) (*dtos.ReservationStatusResponse, error) {
	return s.setStatus(ctx, id, constants.ReservationStatusConfirmed)
}

func (s *ReservationService) Cancel(ctx context.Context, id int64) (*dtos.ReservationStatusResponse, error) {
	return s.setStatus(ctx, id, constants.ReservationStatusCancelled)
}
