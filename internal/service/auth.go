package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mixmodas-api/internal/hash"
	"mixmodas-api/internal/models"
	"mixmodas-api/internal/repo"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password,
// so callers cannot enumerate registered users.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	Repo *repo.GormRepo
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hashed, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		Role:         "user",
	}

	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.Repo.FindUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
