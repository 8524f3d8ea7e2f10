package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Flame02op/multiplayer-bingo-app/game"
	"github.com/Flame02op/multiplayer-bingo-app/services"
)

type SessionController struct {
	Service *services.Service
}

func NewSessionController(svc *services.Service) *SessionController {
	return &SessionController{Service: svc}
}

// CreateSession mints a new session code for a shareable link.
func (sc *SessionController) CreateSession(c *gin.Context) {
	room := sc.Service.CreateRoom()
	c.JSON(http.StatusOK, gin.H{"code": room.Code})
}

// GetSession returns the current snapshot of a session. Unknown codes are
// 404 here; only the WebSocket path creates sessions lazily.
func (sc *SessionController) GetSession(c *gin.Context) {
	code := game.NormalizeCode(c.Param("code"))
	room, ok := sc.Service.Lookup(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, room.Snapshot())
}

// ListRounds returns recently archived rounds.
func (sc *SessionController) ListRounds(c *gin.Context) {
	rounds, err := sc.Service.Archive().RecentRounds(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load rounds"})
		return
	}
	c.JSON(http.StatusOK, rounds)
}
