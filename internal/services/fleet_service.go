package services

import (
	"context"
	"strings"

	"jetcongo/backend/internal/constants"
	"jetcongo/backend/internal/db/repositories"
	"jetcongo/backend/internal/models/dtos"
	gormModels "jetcongo/backend/internal/models/gorm"
)

// FleetService manages the avion table for the back-office.
type FleetService struct {
	aircraftRepo *repositories.AircraftRepository
	flightRepo   *repositories.FlightRepository
}

func NewFleetService(aircraftRepo *repositories.AircraftRepository, flightRepo *repositories.FlightRepository) *FleetService {
	return &FleetService{
		aircraftRepo: aircraftRepo,
		flightRepo:   flightRepo,
	}
}

func aircraftAvailable(status string) bool {
	switch strings.ToLower(status) {
	case "disponible", "available":
		return true
	}
	return false
}

// List returns the fleet with a flight count per aircraft.
func (s *FleetService) List(ctx context.Context) (*dtos.AdminAircraftListResponse, error) {
	fleet, err := s.aircraftRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(fleet))
	for i := range fleet {
		ids = append(ids, fleet[i].ID)
	}
	counts, err := s.flightRepo.CountByAircraft(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]dtos.AdminAircraftItem, 0, len(fleet))
	for i := range fleet {
		a := &fleet[i]
		items = append(items, dtos.AdminAircraftItem{
			ID:        a.ID,
			Modele:    a.Modele,
			Capacite:  a.Capacite,
			Statut:    a.Statut,
			Compagnie: a.Compagnie,
			VolsCount: counts[a.ID],
		})
	}

	return &dtos.AdminAircraftListResponse{Items: items, Total: len(items)}, nil
}

func (s *FleetService) Create(ctx context.Context, req *dtos.AircraftCreateRequest) (*gormModels.Aircraft, error) {
	if req.Capacite <= 0 {
		return nil, ErrInvalidCapacity
	}

	status := req.Statut
	if status == "" {
		status = constants.AircraftStatusAvailable
	}

	aircraft := &gormModels.Aircraft{
		Modele:    req.Modele,
		Capacite:  req.Capacite,
		Statut:    status,
		Compagnie: req.Compagnie,
	}
	if err := s.aircraftRepo.Create(ctx, aircraft); err != nil {
		return nil, err
	}
	return aircraft, nil
}

// Update applies a partial update. When the aircraft stops being available
// its active flights are blocked so they disappear from the public search.
func (s *FleetService) Update(ctx context.Context, id int64, req *dtos.AircraftUpdateRequest) (*gormModels.Aircraft, error) {
	aircraft, err := s.aircraftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAircraftNotFound
	}

	originalStatus := aircraft.Statut

	if req.Modele != nil {
		aircraft.Modele = *req.Modele
	}
	if req.Capacite != nil {
		if *req.Capacite <= 0 {
			return nil, ErrInvalidCapacity
		}
		aircraft.Capacite = *req.Capacite
	}
	if req.Statut != nil {
		aircraft.Statut = *req.Statut
	}
	if req.Compagnie != nil {
		aircraft.Compagnie = req.Compagnie
	}

	if originalStatus != aircraft.Statut && !aircraftAvailable(aircraft.Statut) {
		if err := s.flightRepo.BlockActiveByAircraft(ctx, aircraft.ID); err != nil {
			return nil, err
		}
	}

	if err := s.aircraftRepo.Save(ctx, aircraft); err != nil {
		return nil, err
	}
	return aircraft, nil
}

// Delete removes an aircraft only when no flight references it.
func (s *FleetService) Delete(ctx context.Context, id int64) error {
	aircraft, err := s.aircraftRepo.GetByID(ctx, id)
	if err != nil {
		return ErrAircraftNotFound
	}

	count, err := s.flightRepo.CountForAircraft(ctx, aircraft.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAircraftInUse
	}

	return s.aircraftRepo.Delete(ctx, aircraft)
}
