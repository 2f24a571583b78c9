package repositories

import (
	"context"

	gormModels "jetcongo/backend/internal/models/gorm"

	"gorm.io/gorm"
)

type AircraftRepository struct {
	db *gorm.DB
}

func NewAircraftRepository(db *gorm.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

func (r *AircraftRepository) GetByID(ctx context.Context, id int64) (*gormModels.Aircraft, error) {
	var aircraft gormModels.Aircraft
	if err := r.db.WithContext(ctx).First(&aircraft, id).Error; err != nil {
		return nil, err
	}
	return &aircraft, nil
}

func (r *AircraftRepository) List(ctx context.Context) ([]gormModels.Aircraft, error) {
	var fleet []gormModels.Aircraft
	if err := r.db.WithContext(ctx).Order("id asc").Find(&fleet).Error; err != nil {
		return nil, err
	}
	return fleet, nil
}

func (r *AircraftRepository) Create(ctx context.Context, aircraft *gormModels.Aircraft) error {
	return r.db.WithContext(ctx).Create(aircraft).Error
}

func (r *AircraftRepository) Save(ctx context.Context, aircraft *gormModels.Aircraft) error {
	return r.db.WithContext(ctx).Save(aircraft).Error
}

func (r *AircraftRepository) Delete(ctx context.Context, aircraft *gormModels.Aircraft) error {
	return r.db.WithContext(ctx).Delete(aircraft).Error
}
