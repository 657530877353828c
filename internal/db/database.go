package db

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"mixmodas-api/internal/models"
)

const seedProductName = "Sample Product"

// Open connects to the single-file store at path and runs the idempotent
// bootstrap: migrate the three tables, then seed one demo product if it is
// not already present.
func Open(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("DATABASE_PATH is empty")
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.Product{}, &models.WishlistEntry{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}

	if err := seed(gdb); err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}

	return gdb, nil
}

func seed(gdb *gorm.DB) error {
	var existing models.Product
	err := gdb.Where("name = ?", seedProductName).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return gdb.Create(&models.Product{
		Name:        seedProductName,
		Description: "Sample description",
		Price:       29.99,
		Quantity:    10,
		Category:    "Clothing",
	}).Error
}
