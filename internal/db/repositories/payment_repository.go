package repositories

import (
	"context"

	gormModels "jetcongo/backend/internal/models/gorm"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// GetByReservation returns (nil, nil) when the reservation is unpaid.
func (r *PaymentRepository) GetByReservation(ctx context.Context, reservationID int64) (*gormModels.Payment, error) {
	var payment gormModels.Payment
	err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		First(&payment).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) Create(ctx context.Context, payment *gormModels.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// GetOrCreateMode finds a payment mode by libelle, creating it on first use.
func (r *PaymentRepository) GetOrCreateMode(ctx context.Context, libelle string) (*gormModels.PaymentMode, error) {
	var mode gormModels.PaymentMode
	err := r.db.WithContext(ctx).Where("libelle = ?", libelle).First(&mode).Error
	if err == nil {
		return &mode, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	mode = gormModels.PaymentMode{Libelle: libelle}
	if err := r.db.WithContext(ctx).Create(&mode).Error; err != nil {
		return nil, err
	}
	return &mode, nil
}
