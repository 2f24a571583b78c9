package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jetcongo/backend/internal/common"
	"jetcongo/backend/internal/constants"
	"jetcongo/backend/internal/db/repositories"
	"jetcongo/backend/internal/models/dtos"
	gormModels "jetcongo/backend/internal/models/gorm"

	"gorm.io/gorm"
)

const (
	searchCacheTTL = 30 * time.Second
	detailCacheTTL = 60 * time.Second
)

// FlightService serves the public flight search and the back-office flight
// management.
type FlightService struct {
	flightRepo   *repositories.FlightRepository
	aircraftRepo *repositories.AircraftRepository
	resRepo      *repositories.ReservationRepository
	cache        common.CacheInterface
}

func NewFlightService(flightRepo *repositories.FlightRepository, aircraftRepo *repositories.AircraftRepository, resRepo *repositories.ReservationRepository, cache common.CacheInterface) *FlightService {
	return &FlightService{
		flightRepo:   flightRepo,
		aircraftRepo: aircraftRepo,
		resRepo:      resRepo,
		cache:        cache,
	}
}

func toAircraftResponse(a *gormModels.Aircraft) *dtos.AircraftResponse {
	if a == nil {
		return nil
	}
	return &dtos.AircraftResponse{
		ID:        a.ID,
		Modele:    a.Modele,
		Capacite:  a.Capacite,
		Statut:    a.Statut,
		Compagnie: a.Compagnie,
	}
}

func toFlightResponse(f *gormModels.Flight) dtos.FlightResponse {
	return dtos.FlightResponse{
		ID:           f.ID,
		VilleDepart:  f.VilleDepart,
		VilleArrivee: f.VilleArrivee,
		DateDepart:   f.DateDepart,
		HeureDepart:  f.HeureDepart,
		DateArrivee:  f.DateArrivee,
		HeureArrivee: f.HeureArrivee,
		Prix:         f.Prix,
		Statut:       f.Statut,
		AvionID:      f.AvionID,
		Avion:        toAircraftResponse(f.Avion),
	}
}

// Search runs the paginated public search. Page and limit are normalized
// here so every caller gets the same bounds. Results are cached for a few
// seconds; schedules rarely change faster than that.
func (s *FlightService) Search(ctx context.Context, params repositories.FlightSearch) (*dtos.PaginatedFlightsResponse, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}
	if params.Limit > 100 {
		params.Limit = 100
	}

	cacheKey := fmt.Sprintf("flights:search:%s:%s:%s:%t:%d:%d",
		params.Depart, params.Arrivee, params.Date, params.SortDesc, params.Page, params.Limit)

	if val, found := s.cache.Get(cacheKey); found {
		if cached, ok := val.(*dtos.PaginatedFlightsResponse); ok {
			return cached, nil
		}
	}

	flights, err := s.flightRepo.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	data := make([]dtos.FlightResponse, 0, len(flights))
	for i := range flights {
		data = append(data, toFlightResponse(&flights[i]))
	}

	response := &dtos.PaginatedFlightsResponse{
		Data:    data,
		Page:    params.Page,
		Limit:   params.Limit,
		HasMore: len(flights) == params.Limit,
	}

	s.cache.Set(cacheKey, response, searchCacheTTL)
	return response, nil
}

// GetFlight returns one active flight with its aircraft for the booking page.
func (s *FlightService) GetFlight(ctx context.Context, id int64) (*dtos.FlightResponse, error) {
	cacheKey := fmt.Sprintf("flights:detail:%d", id)
	if val, found := s.cache.Get(cacheKey); found {
		if cached, ok := val.(*dtos.FlightResponse); ok {
			return cached, nil
		}
	}

	flight, err := s.flightRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}

	response := toFlightResponse(flight)
	s.cache.Set(cacheKey, &response, detailCacheTTL)
	return &response, nil
}

func (s *FlightService) invalidateDetail(id int64) {
	s.cache.Delete(fmt.Sprintf("flights:detail:%d", id))
}

// --- Back-office ---

func flightCode(id int64) string {
	return fmt.Sprintf("JC-%03d", id)
}

func rawLoadFactor(seatsBooked, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(seatsBooked) / float64(capacity) * 100.0
}

// round1 keeps one decimal, like the dashboard displays it.
func round1(x float64) float64 {
	return float64(int(x*10+0.5)) / 10
}

func loadFactor(seatsBooked, capacity int) float64 {
	return round1(rawLoadFactor(seatsBooked, capacity))
}

func (s *FlightService) toAdminItem(f *gormModels.Flight, seatsBooked int) dtos.AdminFlightItem {
	capacity := 0
	var model *string
	if f.Avion != nil {
		capacity = f.Avion.Capacite
		model = &f.Avion.Modele
	}

	return dtos.AdminFlightItem{
		ID:               f.ID,
		FlightCode:       flightCode(f.ID),
		DepartCity:       f.VilleDepart,
		ArriveeCity:      f.VilleArrivee,
		DateDepart:       f.DateDepart,
		HeureDepart:      f.HeureDepart,
		DateArrivee:      f.DateArrivee,
		HeureArrivee:     f.HeureArrivee,
		Price:            f.Prix,
		Status:           f.Statut,
		AircraftModel:    model,
		AircraftCapacity: capacity,
		SeatsBooked:      seatsBooked,
		LoadFactor:       loadFactor(seatsBooked, capacity),
	}
}

// AdminList returns up to limit flights with seat occupancy per flight.
func (s *FlightService) AdminList(ctx context.Context, limit int) (*dtos.AdminFlightListResponse, error) {
	flights, total, err := s.flightRepo.ListAll(ctx, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(flights))
	for i := range flights {
		ids = append(ids, flights[i].ID)
	}
	seats, err := s.resRepo.SeatsBookedByFlight(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]dtos.AdminFlightItem, 0, len(flights))
	for i := range flights {
		items = append(items, s.toAdminItem(&flights[i], seats[flights[i].ID]))
	}

	return &dtos.AdminFlightListResponse{
		Items: items,
		Total: total,
		Limit: limit,
	}, nil
}

// AdminCreate adds a flight after checking the aircraft exists.
func (s *FlightService) AdminCreate(ctx context.Context, req *dtos.FlightCreateRequest) (*dtos.AdminFlightItem, error) {
	aircraft, err := s.aircraftRepo.GetByID(ctx, req.AircraftID)
	if err != nil {
		return nil, ErrAircraftNotFound
	}

	status := req.Status
	if status == "" {
		status = constants.FlightStatusActive
	}

	flight := &gormModels.Flight{
		VilleDepart:  req.DepartCity,
		VilleArrivee: req.ArriveeCity,
		DateDepart:   req.DateDepart,
		HeureDepart:  req.HeureDepart,
		Prix:         req.Price,
		Statut:       status,
		AvionID:      aircraft.ID,
	}
	if err := s.flightRepo.Create(ctx, flight); err != nil {
		return nil, err
	}

	flight.Avion = aircraft
	item := s.toAdminItem(flight, 0)
	return &item, nil
}

// AdminUpdate applies a partial update to a flight.
func (s *FlightService) AdminUpdate(ctx context.Context, id int64, req *dtos.FlightUpdateRequest) (*gormModels.Flight, error) {
	flight, err := s.flightRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrFlightNotFound
	}

	if req.AircraftID != nil {
		if _, err := s.aircraftRepo.GetByID(ctx, *req.AircraftID); err != nil {
			return nil, ErrAircraftNotFound
		}
		flight.AvionID = *req.AircraftID
	}
	if req.DepartCity != nil {
		flight.VilleDepart = *req.DepartCity
	}
	if req.ArriveeCity != nil {
		flight.VilleArrivee = *req.ArriveeCity
	}
	if req.DateDepart != nil {
		flight.DateDepart = *req.DateDepart
	}
	if req.HeureDepart != nil {
		flight.HeureDepart = *req.HeureDepart
	}
	if req.Price != nil {
		flight.Prix = *req.Price
	}
	if req.Status != nil {
		flight.Statut = *req.Status
	}

	if err := s.flightRepo.Save(ctx, flight); err != nil {
		return nil, err
	}

	s.invalidateDetail(flight.ID)
	return flight, nil
}

// AdminDelete removes a flight unless reservations reference it.
func (s *FlightService) AdminDelete(ctx context.Context, id int64) error {
	flight, err := s.flightRepo.GetByID(ctx, id)
	if err != nil {
		return ErrFlightNotFound
	}

	count, err := s.resRepo.CountByFlight(ctx, flight.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrFlightHasBookings
	}

	if err := s.flightRepo.Delete(ctx, flight); err != nil {
		return err
	}

	s.invalidateDetail(id)
	return nil
}
