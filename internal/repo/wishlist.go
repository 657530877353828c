package repo

import (
	"context"

	"gorm.io/gorm"

	"mixmodas-api/internal/models"
)

func (r *GormRepo) AddWishlistEntry(ctx context.Context, entry *models.WishlistEntry) (*models.WishlistEntry, error) {
	if r.DB == nil {
		return nil, ErrUnavailable
	}

	if err := r.DB.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *GormRepo) ListWishlist(ctx context.Context, email string) ([]models.WishlistEntry, error) {
	if r.DB == nil {
		return nil, ErrUnavailable
	}

	items := make([]models.WishlistEntry, 0)
	if err := r.DB.WithContext(ctx).Where("user_email = ?", email).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) DeleteWishlistEntry(ctx context.Context, id uint) error {
	if r.DB == nil {
		return ErrUnavailable
	}

	res := r.DB.WithContext(ctx).Delete(&models.WishlistEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
