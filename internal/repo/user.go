package repo

import (
	"context"

	"mixmodas-api/internal/models"
)

// CreateUser inserts one user. A duplicate email violates the primary key
// and comes back as a plain write error, not a distinguished condition.
func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	if r.DB == nil {
		return ErrUnavailable
	}

	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if r.DB == nil {
		return nil, ErrUnavailable
	}

	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
