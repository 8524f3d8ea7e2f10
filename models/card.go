package models

// Cell is a single square on a bingo card. The free center square carries no
// number and is marked from the moment the card is generated.
type Cell struct {
	Number int  `json:"number"`
	Free   bool `json:"free,omitempty"`
	Marked bool `json:"marked"`
}

// Card is a player's 5x5 grid stored column-major: Card[col][row].
// Columns map to the letters B, I, N, G, O in order.
type Card [][]Cell

// Clone returns a deep copy of the card.
func (c Card) Clone() Card {
	if c == nil {
		return nil
	}
	out := make(Card, len(c))
	for i, col := range c {
		out[i] = append([]Cell(nil), col...)
	}
	return out
}

// Mark sets the marked flag on every cell holding the given number and
// reports whether anything changed. The free cell never matches.
func (c Card) Mark(number int) bool {
	changed := false
	for col := range c {
		for row := range c[col] {
			cell := &c[col][row]
			if !cell.Free && cell.Number == number && !cell.Marked {
				cell.Marked = true
				changed = true
			}
		}
	}
	return changed
}
