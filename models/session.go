package models

import "time"

type SessionState string

const (
	StateLobby   SessionState = "lobby"
	StatePlaying SessionState = "playing"
	StateEnded   SessionState = "ended"
)

// Session is the root aggregate for one game, keyed by a short shareable code.
// CurrentNumber is zero when nothing has been drawn in the current run.
type Session struct {
	Code            string             `json:"code"`
	State           SessionState       `json:"state"`
	DrawnNumbers    []int              `json:"drawnNumbers"`
	CurrentNumber   int                `json:"currentNumber,omitempty"`
	Winners         map[string]*Player `json:"winners"`
	HostID          string             `json:"hostId,omitempty"`
	AutoDrawEnabled bool               `json:"autoDrawEnabled"`
	DrawIntervalMs  int                `json:"drawIntervalMs"`
	Players         map[string]*Player `json:"players"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// Clone returns a deep copy of the session. Transition functions operate on
// clones so a committed snapshot is never mutated behind a reader's back.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	cp.DrawnNumbers = append([]int(nil), s.DrawnNumbers...)
	cp.Players = make(map[string]*Player, len(s.Players))
	for id, p := range s.Players {
		cp.Players[id] = p.Clone()
	}
	cp.Winners = make(map[string]*Player, len(s.Winners))
	for id := range s.Winners {
		// winners reference the same player objects as the players map
		if p, ok := cp.Players[id]; ok {
			cp.Winners[id] = p
		} else {
			cp.Winners[id] = s.Winners[id].Clone()
		}
	}
	return &cp
}
