package database

import (
	"fmt"
	"log"
	"time"

	"waitlist/config"
	"waitlist/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection, retrying a few times so the app
// survives the database coming up after it, and migrates the schema.
func Connect(cfg config.App) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	var db *gorm.DB
	var err error
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		log.Printf("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(time.Second * 3)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to database after %d attempts: %w", maxRetries, err)
	}

	log.Println("Connected to database successfully")

	if err := db.AutoMigrate(&models.Member{}, &models.TrackableURL{}, &models.Click{}, &models.Admin{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	log.Println("Database migration completed")
	return db, nil
}
