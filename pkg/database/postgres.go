package database

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"eventexplorer/internal/config"
	"eventexplorer/internal/models"
	"eventexplorer/pkg/bcrypt"
)

func New(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	// TranslateError surfaces unique-constraint violations as
	// gorm.ErrDuplicatedKey so repositories can map them.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.EventParticipation{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedAdmin(db, cfg); err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	return db, nil
}

// seedAdmin creates the bootstrap administrator account if it does not exist.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: cfg.AdminUsername,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
