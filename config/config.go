package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	CORSOrigin      string
	AnnouncerAPIKey string
	AnnouncerAPIURL string
	AnnouncerModel  string
}

// Load reads .env (if present) and assembles the config from the
// environment. Everything has a workable default except the database, which
// is optional: without DATABASE_URL the round archive is simply disabled.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	return &Config{
		Port:            getEnv("PORT", "4000"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:3000"),
		AnnouncerAPIKey: getEnv("ANNOUNCER_API_KEY", ""),
		AnnouncerAPIURL: getEnv("ANNOUNCER_API_URL", "https://api.openai.com/v1"),
		AnnouncerModel:  getEnv("ANNOUNCER_MODEL", "gpt-4o-mini"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
