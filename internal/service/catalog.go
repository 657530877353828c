package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"mixmodas-api/internal/models"
	"mixmodas-api/internal/repo"
	"mixmodas-api/internal/transport"
)

var ErrValidation = errors.New("validation failed")

const defaultCategory = "Other"

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, category)
}

// CreateProduct applies the catalog defaults and inserts the row. Name and a
// finite numeric price are mandatory; quantity falls back to 0 when absent,
// unparseable or negative; category falls back to "Other". imagePath is
// already resolved by the caller (uploaded file or verbatim field value).
func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest, imagePath string) (*models.Product, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(req.Price.String()), 64)
	if req.Name == "" || err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, ErrValidation
	}

	quantity := 0
	if q, qerr := strconv.Atoi(strings.TrimSpace(req.Quantity.String())); qerr == nil && q > 0 {
		quantity = q
	}

	category := req.Category
	if category == "" {
		category = defaultCategory
	}

	prod := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Quantity:    uint(quantity),
		Category:    category,
		Image:       imagePath,
	}

	return s.Repo.CreateProduct(ctx, prod)
}
