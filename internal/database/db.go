package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
)

// Connect opens the Postgres connection and migrates the schema.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables for every entity. Shared with the
// test harness, which runs it against an in-memory sqlite handle.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Job{},
		&models.Candidate{},
		&models.Offer{},
		&models.Onboarding{},
	)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
