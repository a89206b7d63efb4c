package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Catalog{},
		&Category{},
		&Product{},
		&Review{},
		&User{},
	)
}

// SeedUsers creates the default accounts when they do not exist yet.
func SeedUsers(db *gorm.DB) error {
	defaults := map[string]string{
		"admin": "admin123",
		"user":  "user123",
	}

	for username, password := range defaults {
		var existing User
		err := db.Where("username = ?", username).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up user %s: %w", username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", username, err)
		}

		user := User{
			ID:       uuid.New(),
			Username: username,
			Password: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", username, err)
		}
	}
	return nil
}
