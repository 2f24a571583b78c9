package repositories

import (
	"context"

	"jetcongo/backend/internal/constants"
	gormModels "jetcongo/backend/internal/models/gorm"

	"gorm.io/gorm"
)

// FlightSearch carries the public search filters. Empty fields are skipped.
type FlightSearch struct {
	Depart  string
	Arrivee string
	Date    string
	// SortDesc orders by price descending; default is ascending.
	SortDesc bool
	Page     int
	Limit    int
}

type FlightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// Search returns one page of active flights with their aircraft preloaded.
func (r *FlightRepository) Search(ctx context.Context, params FlightSearch) ([]gormModels.Flight, error) {
	query := r.db.WithContext(ctx).
		Preload("Avion").
		Where("statut = ?", constants.FlightStatusActive)

	if params.Depart != "" {
		query = query.Where("ville_depart = ?", params.Depart)
	}
	if params.Arrivee != "" {
		query = query.Where("ville_arrivee = ?", params.Arrivee)
	}
	if params.Date != "" {
		query = query.Where("date_depart = ?", params.Date)
	}

	if params.SortDesc {
		query = query.Order("prix desc")
	} else {
		query = query.Order("prix asc")
	}

	offset := (params.Page - 1) * params.Limit

	var flights []gormModels.Flight
	if err := query.Limit(params.Limit).Offset(offset).Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

// GetActiveByID loads one active flight with its aircraft.
func (r *FlightRepository) GetActiveByID(ctx context.Context, id int64) (*gormModels.Flight, error) {
	var flight gormModels.Flight
	err := r.db.WithContext(ctx).
		Preload("Avion").
		Where("id = ? AND statut = ?", id, constants.FlightStatusActive).
		First(&flight).Error
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *FlightRepository) GetByID(ctx context.Context, id int64) (*gormModels.Flight, error) {
	var flight gormModels.Flight
	if err := r.db.WithContext(ctx).Preload("Avion").First(&flight, id).Error; err != nil {
		return nil, err
	}
	return &flight, nil
}

// ListAll returns up to limit flights ordered by departure, plus the total
// row count for the back-office table header.
func (r *FlightRepository) ListAll(ctx context.Context, limit int) ([]gormModels.Flight, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&gormModels.Flight{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var flights []gormModels.Flight
	err := r.db.WithContext(ctx).
		Preload("Avion").
		Order("date_depart asc, heure_depart asc").
		Limit(limit).
		Find(&flights).Error
	if err != nil {
		return nil, 0, err
	}
	return flights, total, nil
}

// ListByDate returns every flight departing on the given day, any status.
func (r *FlightRepository) ListByDate(ctx context.Context, date string) ([]gormModels.Flight, error) {
	var flights []gormModels.Flight
	err := r.db.WithContext(ctx).
		Preload("Avion").
		Where("date_depart = ?", date).
		Find(&flights).Error
	if err != nil {
		return nil, err
	}
	return flights, nil
}

// CountByStatuses counts flights whose status matches any of the given
// spellings, case-insensitively.
func (r *FlightRepository) CountByStatuses(ctx context.Context, statuses []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.Flight{}).
		Where("LOWER(statut) IN ?", statuses).
		Count(&count).Error
	return count, err
}

// CountByAircraft returns the number of flights per aircraft id.
func (r *FlightRepository) CountByAircraft(ctx context.Context, aircraftIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int)
	if len(aircraftIDs) == 0 {
		return counts, nil
	}

	type row struct {
		AvionID int64
		Total   int
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&gormModels.Flight{}).
		Select("avion_id, COUNT(id) AS total").
		Where("avion_id IN ?", aircraftIDs).
		Group("avion_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rw := range rows {
		counts[rw.AvionID] = rw.Total
	}
	return counts, nil
}

// CountForAircraft counts flights referencing the aircraft, any status.
func (r *FlightRepository) CountForAircraft(ctx context.Context, aircraftID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.Flight{}).
		Where("avion_id = ?", aircraftID).
		Count(&count).Error
	return count, err
}

// BlockActiveByAircraft marks an aircraft's active flights as blocked, used
// when the aircraft leaves the "disponible" state.
func (r *FlightRepository) BlockActiveByAircraft(ctx context.Context, aircraftID int64) error {
	return r.db.WithContext(ctx).
		Model(&gormModels.Flight{}).
		Where("avion_id = ? AND statut = ?", aircraftID, constants.FlightStatusActive).
		Update("statut", constants.FlightStatusBlocked).Error
}

func (r *FlightRepository) Create(ctx context.Context, flight *gormModels.Flight) error {
	return r.db.WithContext(ctx).Create(flight).Error
}

func (r *FlightRepository) Save(ctx context.Context, flight *gormModels.Flight) error {
	return r.db.WithContext(ctx).Save(flight).Error
}

func (r *FlightRepository) Delete(ctx context.Context, flight *gormModels.Flight) error {
	return r.db.WithContext(ctx).Delete(flight).Error
}
