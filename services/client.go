package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Flame02op/multiplayer-bingo-app/utils/logger"
)

// Client is one WebSocket viewer of a room. A client only becomes a player
// (and gets a playerID) once it sends a join action.
type Client struct {
	playerID string
	conn     *websocket.Conn
	room     *Room
	send     chan []byte
	once     sync.Once
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

// actionMessage is what clients send over the wire.
type actionMessage struct {
	Action     string `json:"action"`
	Name       string `json:"name,omitempty"`
	IntervalMs int    `json:"intervalMs,omitempty"`
}

func (c *Client) readPump() {
	defer func() {
		c.room.removeClient(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debugf("[Room %s] client disconnected normally", c.room.Code)
			} else {
				logger.Debugf("[Room %s] read error: %v", c.room.Code, err)
			}
			return
		}
		c.handleMessage(message)
	}
}

func (c *Client) handleMessage(raw []byte) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[Room %s] recovered handling client message: %v", c.room.Code, r)
		}
	}()

	var msg actionMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		logger.Debugf("[Room %s] invalid message: %v", c.room.Code, err)
		return
	}

	switch msg.Action {
	case "join":
		c.room.handleJoin(c, msg.Name)
	case "start":
		c.room.handleStart(c)
	case "draw":
		c.room.handleDraw(c)
	case "auto_draw":
		c.room.handleToggleAutoDraw(c)
	case "draw_interval":
		c.room.handleSetDrawInterval(c, msg.IntervalMs)
	case "reset":
		c.room.handleReset(c)
	default:
		logger.Debugf("[Room %s] unknown action: %q", c.room.Code, msg.Action)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Debugf("[Room %s] write error: %v", c.room.Code, err)
			return
		}
	}
}

// sendRaw queues a frame, dropping it if the client's buffer is full and
// absorbing the race against a concurrent Close.
func (c *Client) sendRaw(b []byte) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf("[Room %s] send to closed client", c.room.Code)
		}
	}()
	select {
	case c.send <- b:
	default:
		logger.Warnf("[Room %s] dropping message to slow viewer", c.room.Code)
	}
}

func (c *Client) sendMessage(msg WSMessage) {
	b, err := json.Marshal(msg)
	if err != nil {
		logger.Errorf("[Room %s] marshal error: %v", c.room.Code, err)
		return
	}
	c.sendRaw(b)
}
