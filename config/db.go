package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Flame02op/multiplayer-bingo-app/models"
)

// SetupDatabase connects to Postgres and migrates the archive schema.
// Returns nil when no DSN is configured; the server runs without history.
func SetupDatabase(dsn string) *gorm.DB {
	if dsn == "" {
		log.Println("[INFO] DATABASE_URL not set, round archive disabled")
		return nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[FATAL] Failed to connect to DB: %v", err)
	}

	if err := db.AutoMigrate(&models.Round{}); err != nil {
		log.Fatalf("[FATAL] Migration failed: %v", err)
	}

	log.Println("✅ Database connected and migrated")
	return db
}
