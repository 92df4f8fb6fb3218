package config

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"postable/models"
)

const (
	dbConnectAttempts = 5
	dbConnectBaseWait = time.Second
)

// InitDB opens the Postgres connection and migrates the schema.
// The initial connection is retried with doubling backoff; individual
// queries later on rely on the driver's own timeouts.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	wait := dbConnectBaseWait
	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err == nil {
			break
		}
		if attempt == dbConnectAttempts {
			return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", dbConnectAttempts, err)
		}
		log.Printf("Database connection attempt %d failed: %v, retrying in %s", attempt, err, wait)
		time.Sleep(wait)
		wait *= 2
	}

	if err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Like{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
