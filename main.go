package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Flame02op/multiplayer-bingo-app/config"
	"github.com/Flame02op/multiplayer-bingo-app/routes"
	"github.com/Flame02op/multiplayer-bingo-app/services"
	"github.com/Flame02op/multiplayer-bingo-app/utils/logger"
)

// setupRouter initializes Gin routes and middleware
func setupRouter(cfg *config.Config, svc *services.Service) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup REST routes
	routes.SetupRoutes(r, svc)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// WebSocket session endpoint
	r.GET("/ws/:code", svc.HandleWebSocket)

	return r
}

func main() {
	// Load env variables
	cfg := config.Load()

	// Connect to database (optional, archive only)
	db := config.SetupDatabase(cfg.DatabaseURL)

	// Wire the announcer and in-memory session service
	announcer := services.NewAnnouncer(cfg.AnnouncerAPIKey, cfg.AnnouncerAPIURL, cfg.AnnouncerModel)
	svc := services.New(announcer, services.NewArchive(db))

	// Setup Gin router
	router := setupRouter(cfg, svc)

	// Start server
	logger.Infof("🚀 Bingo server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
