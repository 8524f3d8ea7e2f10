package game

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Flame02op/multiplayer-bingo-app/models"
)

// Auto-draw cadence limits, matching the host's speed slider.
const (
	MinDrawIntervalMs     = 1000
	MaxDrawIntervalMs     = 10000
	DefaultDrawIntervalMs = 3000
)

// NewSession returns a fresh session in the lobby state under the given code.
func NewSession(code string, now time.Time) *models.Session {
	return &models.Session{
		Code:           code,
		State:          models.StateLobby,
		DrawnNumbers:   []int{},
		Winners:        map[string]*models.Player{},
		Players:        map[string]*models.Player{},
		DrawIntervalMs: DefaultDrawIntervalMs,
		CreatedAt:      now,
	}
}

// DrawOutcome describes what one Draw call did.
type DrawOutcome struct {
	Number    int
	Letter    string
	Winners   []*models.Player
	Exhausted bool
}

// The transition functions below are pure: they deep-copy the session, apply
// one operation, and return the new value. A false second return means the
// operation was rejected (wrong actor, wrong state, bad input) and the input
// session is still authoritative.

// Join registers a new player and deals them a card. The first player to join
// becomes host and keeps that role for the life of the session. An empty name
// after trimming is rejected.
func Join(s *models.Session, name string, now time.Time) (*models.Session, *models.Player, bool) {
	name = strings.TrimSpace(name)
	if s == nil || name == "" {
		return s, nil, false
	}

	next := s.Clone()
	player := &models.Player{
		ID:       uuid.New().String(),
		Name:     name,
		Card:     GenerateCard(),
		JoinedAt: now,
	}
	next.Players[player.ID] = player
	if next.HostID == "" {
		next.HostID = player.ID
	}
	return next, player, true
}

// Start moves the session to playing. Host only. Draw history and winners are
// cleared and every registered player gets a fresh card.
func Start(s *models.Session, actorID string) (*models.Session, bool) {
	if s == nil || actorID == "" || actorID != s.HostID {
		return s, false
	}

	next := s.Clone()
	next.State = models.StatePlaying
	next.DrawnNumbers = []int{}
	next.CurrentNumber = 0
	next.Winners = map[string]*models.Player{}
	for _, p := range next.Players {
		p.Card = GenerateCard()
		p.HasWon = false
	}
	return next, true
}

// Draw performs one full draw transaction: pick the next number, mark every
// card, and record every player whose card just became a winner. Multiple
// players winning on the same number are all recorded. Any winner, or an
// exhausted pool, ends the session. Host only, playing only.
func Draw(s *models.Session, actorID string) (*models.Session, DrawOutcome, bool) {
	if s == nil || actorID == "" || actorID != s.HostID || s.State != models.StatePlaying {
		return s, DrawOutcome{}, false
	}

	number, ok := DrawNext(s.DrawnNumbers)
	if !ok {
		next := s.Clone()
		next.State = models.StateEnded
		return next, DrawOutcome{Exhausted: true}, true
	}

	next := s.Clone()
	next.DrawnNumbers = append(next.DrawnNumbers, number)
	next.CurrentNumber = number

	outcome := DrawOutcome{Number: number, Letter: Letter(number)}
	for _, p := range next.Players {
		p.Card.Mark(number)
		if !p.HasWon && HasWon(p.Card) {
			p.HasWon = true
			next.Winners[p.ID] = p
			outcome.Winners = append(outcome.Winners, p)
		}
	}
	if len(outcome.Winners) > 0 {
		next.State = models.StateEnded
	}
	return next, outcome, true
}

// ToggleAutoDraw flips the auto-draw flag. Host only.
func ToggleAutoDraw(s *models.Session, actorID string) (*models.Session, bool) {
	if s == nil || actorID == "" || actorID != s.HostID {
		return s, false
	}
	next := s.Clone()
	next.AutoDrawEnabled = !next.AutoDrawEnabled
	return next, true
}

// SetDrawInterval sets the auto-draw cadence, clamped to the slider's range.
// Host only.
func SetDrawInterval(s *models.Session, actorID string, ms int) (*models.Session, bool) {
	if s == nil || actorID == "" || actorID != s.HostID {
		return s, false
	}
	if ms < MinDrawIntervalMs {
		ms = MinDrawIntervalMs
	}
	if ms > MaxDrawIntervalMs {
		ms = MaxDrawIntervalMs
	}
	next := s.Clone()
	next.DrawIntervalMs = ms
	return next, true
}

// Reset returns the session to the lobby: draw history, current number,
// winners and every hasWon flag are cleared, and auto-draw is switched off.
// Cards stay as they are until the next Start deals new ones. Host only.
func Reset(s *models.Session, actorID string) (*models.Session, bool) {
	if s == nil || actorID == "" || actorID != s.HostID {
		return s, false
	}

	next := s.Clone()
	next.State = models.StateLobby
	next.DrawnNumbers = []int{}
	next.CurrentNumber = 0
	next.Winners = map[string]*models.Player{}
	next.AutoDrawEnabled = false
	for _, p := range next.Players {
		p.HasWon = false
	}
	return next, true
}
