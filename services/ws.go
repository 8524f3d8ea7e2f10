package services

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Flame02op/multiplayer-bingo-app/game"
	"github.com/Flame02op/multiplayer-bingo-app/utils/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket attaches a viewer to a session. The code comes from the
// share link; an unknown code gets a fresh lobby. The first state frame is
// pushed immediately so late or reconnecting viewers resynchronize by
// replacing their local copy.
func (s *Service) HandleWebSocket(c *gin.Context) {
	code := game.NormalizeCode(c.Param("code"))
	if len(code) != game.CodeLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session code"})
		return
	}
	room := s.Room(code)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("[WS] upgrade error: %v", err)
		return
	}

	client := &Client{
		conn: conn,
		room: room,
		send: make(chan []byte, 32),
	}
	room.addClient(client)
}
