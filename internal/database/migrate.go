package database

import (
	"gorm.io/gorm"

	"github.com/devconnector/backend/internal/models"
)

// RunMigrations brings the schema up to date.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
	)
}
