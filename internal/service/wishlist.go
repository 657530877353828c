package service

import (
	"context"

	"mixmodas-api/internal/models"
	"mixmodas-api/internal/repo"
)

type WishlistService struct {
	Repo *repo.GormRepo
}

func (s *WishlistService) Add(ctx context.Context, email string, productID uint) (*models.WishlistEntry, error) {
	if email == "" || productID == 0 {
		return nil, ErrValidation
	}

	entry := &models.WishlistEntry{
		UserEmail: email,
		ProductID: productID,
	}
	return s.Repo.AddWishlistEntry(ctx, entry)
}

func (s *WishlistService) List(ctx context.Context, email string) ([]models.WishlistEntry, error) {
	return s.Repo.ListWishlist(ctx, email)
}

func (s *WishlistService) Remove(ctx context.Context, id uint) error {
	return s.Repo.DeleteWishlistEntry(ctx, id)
}
