package repo

import (
	"context"

	"mixmodas-api/internal/models"
)

// ListProducts returns every product, or only those whose category matches
// case-insensitively. No rows is an empty slice, not an error.
func (r *GormRepo) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	if r.DB == nil {
		return nil, ErrUnavailable
	}

	q := r.DB.WithContext(ctx).Model(&models.Product{}).Order("id ASC")
	if category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", category)
	}

	items := make([]models.Product, 0)
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if r.DB == nil {
		return nil, ErrUnavailable
	}

	if err := r.DB.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, err
	}
	return prod, nil
}
