package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Flame02op/multiplayer-bingo-app/controllers"
	"github.com/Flame02op/multiplayer-bingo-app/services"
)

func SetupRoutes(r *gin.Engine, svc *services.Service) {
	sessions := controllers.NewSessionController(svc)

	api := r.Group("/api")

	// ----------------------
	// Session routes
	// ----------------------
	api.POST("/sessions", sessions.CreateSession)   // Mint a shareable session code
	api.GET("/sessions/:code", sessions.GetSession) // Current session snapshot

	// ----------------------
	// Round history
	// ----------------------
	api.GET("/rounds", sessions.ListRounds) // Archived finished rounds
}
