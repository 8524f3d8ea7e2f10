package services

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Flame02op/multiplayer-bingo-app/game"
	"github.com/Flame02op/multiplayer-bingo-app/models"
	"github.com/Flame02op/multiplayer-bingo-app/utils/logger"
)

// WSMessage is the envelope for everything sent to viewers. "state" messages
// carry a full session snapshot that replaces the viewer's local copy
// wholesale; viewers must never merge.
type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Room owns one live session. All mutations run through the pure transition
// functions in the game package under the room mutex, so every committed
// snapshot is consistent; connected clients only ever see whole post-commit
// snapshots.
type Room struct {
	Code string

	mu      sync.RWMutex
	session *models.Session
	clients map[*Client]bool

	// drawing gates drawNumber so a manual click racing the auto-draw tick
	// commits at most one draw.
	drawing atomic.Bool

	autoCancel   chan struct{}
	runStartedAt time.Time

	announcer *Announcer
	archive   *Archive
}

func NewRoom(code string, announcer *Announcer, archive *Archive) *Room {
	return &Room{
		Code:      code,
		session:   game.NewSession(code, time.Now()),
		clients:   make(map[*Client]bool),
		announcer: announcer,
		archive:   archive,
	}
}

// Snapshot returns a deep copy of the current session.
func (r *Room) Snapshot() *models.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.session.Clone()
}

// -------------------- Client management --------------------

func (r *Room) addClient(c *Client) {
	r.mu.Lock()
	r.clients[c] = true
	total := len(r.clients)
	r.mu.Unlock()

	go c.writePump()
	go c.readPump()

	logger.Infof("[Room %s] viewer connected (total=%d)", r.Code, total)
	c.sendMessage(WSMessage{Type: "state", Data: r.Snapshot()})
}

func (r *Room) removeClient(c *Client) {
	r.mu.Lock()
	if _, ok := r.clients[c]; ok {
		delete(r.clients, c)
		c.Close()
	}
	total := len(r.clients)
	r.mu.Unlock()

	logger.Infof("[Room %s] viewer disconnected (total=%d)", r.Code, total)
}

// -------------------- Operations --------------------

func (r *Room) handleJoin(c *Client, name string) {
	r.mu.Lock()
	next, player, ok := game.Join(r.session, name, time.Now())
	if ok {
		r.session = next
		c.playerID = player.ID
	}
	r.mu.Unlock()

	if !ok {
		r.notifyClient(c, "A name is required to join.")
		return
	}
	logger.Infof("[Room %s] player %q joined as %s", r.Code, player.Name, player.ID)
	c.sendMessage(WSMessage{Type: "joined", Data: map[string]string{"playerId": player.ID}})
	r.broadcastState()
}

func (r *Room) handleStart(c *Client) {
	r.mu.Lock()
	next, ok := game.Start(r.session, c.playerID)
	var resumeAuto bool
	if ok {
		r.session = next
		r.runStartedAt = time.Now()
		resumeAuto = next.AutoDrawEnabled
	}
	r.mu.Unlock()

	if !ok {
		return
	}
	logger.Infof("[Room %s] game started by host", r.Code)
	r.broadcastState()
	if resumeAuto {
		r.startAutoDraw()
	}
}

func (r *Room) handleDraw(c *Client) {
	r.drawNumber(c.playerID)
}

// drawNumber runs the whole draw transaction. The in-flight guard is released
// as soon as the numeric commit and broadcast are done; the announcement is
// fetched on its own goroutine so announcer latency never delays the next
// draw.
func (r *Room) drawNumber(actorID string) {
	if !r.drawing.CompareAndSwap(false, true) {
		logger.Debugf("[Room %s] draw suppressed, one already in flight", r.Code)
		return
	}
	defer r.drawing.Store(false)

	r.mu.Lock()
	next, outcome, ok := game.Draw(r.session, actorID)
	var closeLines, drawnCount int
	var ended bool
	if ok {
		r.session = next
		ended = next.State == models.StateEnded
		drawnCount = len(next.DrawnNumbers)
		closeLines = game.CloseLines(next.Players)
	}
	r.mu.Unlock()

	if !ok {
		return
	}

	r.broadcastState()

	if ended {
		r.stopAutoDraw()
		r.archiveRound()
	}
	if outcome.Exhausted {
		logger.Infof("[Room %s] all 75 numbers drawn, game over", r.Code)
		return
	}

	logger.Debugf("[Room %s] drew %s-%d (%d/75)", r.Code, outcome.Letter, outcome.Number, drawnCount)
	for _, w := range outcome.Winners {
		logger.Infof("[Room %s] BINGO for %q", r.Code, w.Name)
	}

	go r.announceDraw(outcome, drawnCount, closeLines)
}

func (r *Room) announceDraw(outcome game.DrawOutcome, drawnCount, closeLines int) {
	text := r.announcer.Announce(outcome.Number, drawnCount, closeLines)
	r.broadcast(WSMessage{Type: "announcement", Data: map[string]interface{}{
		"number": outcome.Number,
		"letter": outcome.Letter,
		"text":   text,
	}})
}

func (r *Room) handleToggleAutoDraw(c *Client) {
	r.mu.Lock()
	next, ok := game.ToggleAutoDraw(r.session, c.playerID)
	var enabled bool
	if ok {
		r.session = next
		enabled = next.AutoDrawEnabled
	}
	r.mu.Unlock()

	if !ok {
		return
	}
	r.broadcastState()
	if enabled {
		r.startAutoDraw()
	} else {
		// future ticks stop; a draw already in flight finishes normally
		r.stopAutoDraw()
	}
}

func (r *Room) handleSetDrawInterval(c *Client, ms int) {
	r.mu.Lock()
	next, ok := game.SetDrawInterval(r.session, c.playerID, ms)
	if ok {
		r.session = next
	}
	r.mu.Unlock()

	if ok {
		r.broadcastState()
	}
}

func (r *Room) handleReset(c *Client) {
	r.mu.Lock()
	next, ok := game.Reset(r.session, c.playerID)
	if ok {
		r.session = next
	}
	r.mu.Unlock()

	if !ok {
		return
	}
	r.stopAutoDraw()
	logger.Infof("[Room %s] session reset to lobby", r.Code)
	r.broadcastState()
}

// -------------------- Auto draw --------------------

func (r *Room) startAutoDraw() {
	r.mu.Lock()
	if r.autoCancel != nil || !r.session.AutoDrawEnabled || r.session.State != models.StatePlaying {
		r.mu.Unlock()
		return
	}
	cancel := make(chan struct{})
	r.autoCancel = cancel
	r.mu.Unlock()

	go r.runAutoDraw(cancel)
}

func (r *Room) stopAutoDraw() {
	r.mu.Lock()
	if r.autoCancel != nil {
		close(r.autoCancel)
		r.autoCancel = nil
	}
	r.mu.Unlock()
}

func (r *Room) runAutoDraw(cancel chan struct{}) {
	// clear the handle when this loop exits on its own, so a later
	// startAutoDraw is not blocked by a channel nobody listens on
	defer func() {
		r.mu.Lock()
		if r.autoCancel == cancel {
			r.autoCancel = nil
		}
		r.mu.Unlock()
	}()

	for {
		r.mu.RLock()
		interval := time.Duration(r.session.DrawIntervalMs) * time.Millisecond
		active := r.session.AutoDrawEnabled && r.session.State == models.StatePlaying
		host := r.session.HostID
		r.mu.RUnlock()

		if !active {
			return
		}

		select {
		case <-cancel:
			return
		case <-time.After(interval):
			r.drawNumber(host)
		}
	}
}

// -------------------- Archive --------------------

func (r *Room) archiveRound() {
	if r.archive == nil || !r.archive.Enabled() {
		return
	}
	snapshot := r.Snapshot()
	r.mu.RLock()
	startedAt := r.runStartedAt
	r.mu.RUnlock()

	go func() {
		if err := r.archive.SaveRound(snapshot, startedAt, time.Now()); err != nil {
			logger.Errorf("[Room %s] failed to archive round: %v", r.Code, err)
		}
	}()
}

// -------------------- Broadcast --------------------

func (r *Room) broadcastState() {
	r.broadcast(WSMessage{Type: "state", Data: r.Snapshot()})
}

func (r *Room) broadcast(msg WSMessage) {
	b, err := json.Marshal(msg)
	if err != nil {
		logger.Errorf("[Room %s] marshal error: %v", r.Code, err)
		return
	}

	r.mu.RLock()
	clients := make([]*Client, 0, len(r.clients))
	for c := range r.clients {
		clients = append(clients, c)
	}
	r.mu.RUnlock()

	for _, c := range clients {
		c.sendRaw(b)
	}
}

func (r *Room) notifyClient(c *Client, message string) {
	c.sendMessage(WSMessage{Type: "notification", Data: map[string]string{"message": message}})
}
