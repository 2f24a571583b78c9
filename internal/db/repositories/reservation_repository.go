package repositories

import (
	"context"
	"time"

	"jetcongo/backend/internal/constants"
	gormModels "jetcongo/backend/internal/models/gorm"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *gormModels.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *ReservationRepository) Save(ctx context.Context, reservation *gormModels.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*gormModels.Reservation, error) {
	var reservation gormModels.Reservation
	err := r.db.WithContext(ctx).
		Preload("Vol").
		Preload("Vol.Avion").
		First(&reservation, id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// GetOwned loads a reservation only when it belongs to the given user.
func (r *ReservationRepository) GetOwned(ctx context.Context, id, userID int64) (*gormModels.Reservation, error) {
	var reservation gormModels.Reservation
	err := r.db.WithContext(ctx).
		Preload("Vol").
		Preload("Vol.Avion").
		Where("id = ? AND utilisateur_id = ?", id, userID).
		First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// SeatsTaken sums the seats already booked on a flight, ignoring cancelled
// reservations. excludeID skips one reservation (used when resizing it);
// pass 0 to count everything.
func (r *ReservationRepository) SeatsTaken(ctx context.Context, volID, excludeID int64) (int, error) {
	query := r.db.WithContext(ctx).
		Model(&gormModels.Reservation{}).
		Where("vol_id = ? AND statut <> ?", volID, constants.ReservationStatusCancelled)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var taken *int
	if err := query.Select("COALESCE(SUM(nombre_place), 0)").Scan(&taken).Error; err != nil {
		return 0, err
	}
	if taken == nil {
		return 0, nil
	}
	return *taken, nil
}

// SeatsBookedByFlight returns booked seat totals per flight id, all statuses.
func (r *ReservationRepository) SeatsBookedByFlight(ctx context.Context, volIDs []int64) (map[int64]int, error) {
	seats := make(map[int64]int)
	if len(volIDs) == 0 {
		return seats, nil
	}

	type row struct {
		VolID int64
		Total int
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&gormModels.Reservation{}).
		Select("vol_id, COALESCE(SUM(nombre_place), 0) AS total").
		Where("vol_id IN ?", volIDs).
		Group("vol_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rw := range rows {
		seats[rw.VolID] = rw.Total
	}
	return seats, nil
}

func (r *ReservationRepository) CountByFlight(ctx context.Context, volID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.Reservation{}).
		Where("vol_id = ?", volID).
		Count(&count).Error
	return count, err
}

func (r *ReservationRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.Reservation{}).
		Where("utilisateur_id = ?", userID).
		Count(&count).Error
	return count, err
}

// ListSince returns reservations booked at or after the given instant.
func (r *ReservationRepository) ListSince(ctx context.Context, since time.Time) ([]gormModels.Reservation, error) {
	var reservations []gormModels.Reservation
	err := r.db.WithContext(ctx).
		Where("date_reservation >= ?", since).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListRecent returns the latest reservations across all users.
func (r *ReservationRepository) ListRecent(ctx context.Context, limit int) ([]gormModels.Reservation, error) {
	var reservations []gormModels.Reservation
	err := r.db.WithContext(ctx).
		Preload("Utilisateur").
		Preload("Vol").
		Order("date_reservation desc").
		Limit(limit).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListAll returns every reservation with user and flight joined, newest first.
func (r *ReservationRepository) ListAll(ctx context.Context) ([]gormModels.Reservation, error) {
	var reservations []gormModels.Reservation
	err := r.db.WithContext(ctx).
		Preload("Utilisateur").
		Preload("Vol").
		Order("date_reservation desc").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}
