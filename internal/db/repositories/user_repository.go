package repositories

import (
	"context"

	gormModels "jetcongo/backend/internal/models/gorm"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*gormModels.User, error) {
	var user gormModels.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns (nil, nil) when no user carries the email, so callers
// can distinguish "not registered" from a database failure.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*gormModels.User, error) {
	var user gormModels.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *gormModels.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) Save(ctx context.Context, user *gormModels.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *UserRepository) Delete(ctx context.Context, user *gormModels.User) error {
	return r.db.WithContext(ctx).Delete(user).Error
}

// List returns users ordered by id, optionally filtered by role and status.
func (r *UserRepository) List(ctx context.Context, role, status string) ([]gormModels.User, error) {
	query := r.db.WithContext(ctx).Model(&gormModels.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var users []gormModels.User
	if err := query.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
