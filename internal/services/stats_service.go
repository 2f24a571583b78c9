package services

import (
	"context"
	"fmt"
	"time"

	"jetcongo/backend/internal/common"
	"jetcongo/backend/internal/constants"
	"jetcongo/backend/internal/db/repositories"
	"jetcongo/backend/internal/models/dtos"
	"jetcongo/backend/internal/models/entities"
)

// weekdayLabels maps time.Weekday to the French labels the dashboard
// renders, Monday first.
var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Lun",
	time.Tuesday:   "Mar",
	time.Wednesday: "Mer",
	time.Thursday:  "Jeu",
	time.Friday:    "Ven",
	time.Saturday:  "Sam",
	time.Sunday:    "Dim",
}

var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// StatsService aggregates the numbers behind the agent dashboard.
type StatsService struct {
	statsRepo  *repositories.StatsRepo
	resRepo    *repositories.ReservationRepository
	flightRepo *repositories.FlightRepository

	// now is swapped out in tests.
	now func() time.Time
}

func NewStatsService(statsRepo *repositories.StatsRepo, resRepo *repositories.ReservationRepository, flightRepo *repositories.FlightRepository) *StatsService {
	return &StatsService{
		statsRepo:  statsRepo,
		resRepo:    resRepo,
		flightRepo: flightRepo,
		now:        time.Now,
	}
}

// Overview returns the headline counters.
func (s *StatsService) Overview(ctx context.Context) (*entities.OverviewStats, error) {
	return s.statsRepo.Overview(ctx)
}

// WeeklyBookings counts the reservations of the last seven days grouped by
// weekday, Monday first.
func (s *StatsService) WeeklyBookings(ctx context.Context) (*dtos.WeeklyBookingsResponse, error) {
	since := s.now().AddDate(0, 0, -7)
	reservations, err := s.resRepo.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	counts := make(map[time.Weekday]int)
	for i := range reservations {
		counts[reservations[i].DateReservation.Weekday()]++
	}

	data := make([]dtos.DayCount, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		data = append(data, dtos.DayCount{
			Day:   weekdayLabels[day],
			Count: counts[day],
		})
	}
	return &dtos.WeeklyBookingsResponse{Data: data}, nil
}

// RecentReservations lists the latest bookings with display fields for the
// dashboard table.
func (s *StatsService) RecentReservations(ctx context.Context, limit int) (*dtos.RecentReservationsResponse, error) {
	if limit < 1 {
		limit = 5
	}

	reservations, err := s.resRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dtos.RecentReservationItem, 0, len(reservations))
	for i := range reservations {
		r := &reservations[i]

		name := "Inconnu"
		if r.Utilisateur != nil {
			name = r.Utilisateur.Nom
		}

		code := fmt.Sprintf("%03d", r.ID)
		if r.Vol != nil {
			code = fmt.Sprintf("%s-%s-%03d",
				common.CityCode(r.Vol.VilleDepart),
				common.CityCode(r.Vol.VilleArrivee),
				r.ID)
		}

		items = append(items, dtos.RecentReservationItem{
			ID:            r.ID,
			PassengerName: name,
			Initials:      common.Initials(name),
			FlightCode:    code,
			Status:        r.Statut,
			Amount:        r.TotalPayer,
		})
	}
	return &dtos.RecentReservationsResponse{Items: items}, nil
}

// FlightsSummary reports today's schedule size, the average seat occupancy
// across today's flights, and how many flights sit in a cancelled state.
func (s *StatsService) FlightsSummary(ctx context.Context) (*dtos.FlightsSummaryResponse, error) {
	today := s.now().Format("2006-01-02")

	flights, err := s.flightRepo.ListByDate(ctx, today)
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

	// Raw factors are averaged first and rounded once, so per-flight
	// rounding never skews the mean.
	var factorSum float64
	counted := 0
	for i := range flights {
		f := &flights[i]
		if f.Avion == nil || f.Avion.Capacite <= 0 {
			continue
		}
		factorSum += rawLoadFactor(seats[f.ID], f.Avion.Capacite)
		counted++
	}

	avg := 0.0
	if counted > 0 {
		avg = round1(factorSum / float64(counted))
	}

	cancelled, err := s.flightRepo.CountByStatuses(ctx, constants.CancelledFlightStatuses)
	if err != nil {
		return nil, err
	}

	return &dtos.FlightsSummaryResponse{
		TotalFlightsToday:    len(flights),
		AvgLoadFactor:        avg,
		PendingCancellations: int(cancelled),
	}, nil
}
