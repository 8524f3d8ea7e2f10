package main

import (
	"log"

	"github.com/Flame02op/multiplayer-bingo-app/config"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("[FATAL] DATABASE_URL is required to migrate")
	}
	db := config.SetupDatabase(cfg.DatabaseURL) // connects + migrates
	_ = db
	log.Println("✅ Database migration completed successfully")
}
