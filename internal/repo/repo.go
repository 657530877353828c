package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrUnavailable is returned by every method when the store never opened.
// The process keeps serving; data routes degrade instead of crashing.
var ErrUnavailable = errors.New("store unavailable")

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) Available() bool {
	return r.DB != nil
}
