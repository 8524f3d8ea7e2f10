package models

import "time"

type Player struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Card     Card      `json:"card"`
	HasWon   bool      `json:"hasWon"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Clone returns a deep copy of the player, card included.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Card = p.Card.Clone()
	return &cp
}
