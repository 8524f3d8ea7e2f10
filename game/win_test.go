package game

import (
	"testing"

	"github.com/Flame02op/multiplayer-bingo-app/models"
)

// plainCard builds a deterministic unmarked card (free center aside) with
// column c holding the first five values of its range.
func plainCard() models.Card {
	card := make(models.Card, CardSize)
	for col := 0; col < CardSize; col++ {
		card[col] = make([]models.Cell, CardSize)
		for row := 0; row < CardSize; row++ {
			if col == 2 && row == 2 {
				card[col][row] = models.Cell{Free: true, Marked: true}
				continue
			}
			card[col][row] = models.Cell{Number: 1 + 15*col + row}
		}
	}
	return card
}

func TestHasWonRows(t *testing.T) {
	for row := 0; row < CardSize; row++ {
		card := plainCard()
		for col := 0; col < CardSize; col++ {
			card[col][row].Marked = true
		}
		if !HasWon(card) {
			t.Errorf("fully marked row %d not detected", row)
		}
	}
}

func TestHasWonColumns(t *testing.T) {
	for col := 0; col < CardSize; col++ {
		card := plainCard()
		for row := 0; row < CardSize; row++ {
			card[col][row].Marked = true
		}
		if !HasWon(card) {
			t.Errorf("fully marked column %d not detected", col)
		}
	}
}

func TestHasWonDiagonals(t *testing.T) {
	card := plainCard()
	for i := 0; i < CardSize; i++ {
		card[i][i].Marked = true
	}
	if !HasWon(card) {
		t.Error("main diagonal not detected")
	}

	card = plainCard()
	for i := 0; i < CardSize; i++ {
		card[i][CardSize-1-i].Marked = true
	}
	if !HasWon(card) {
		t.Error("anti-diagonal not detected")
	}
}

func TestHasWonNoLine(t *testing.T) {
	card := plainCard()
	// scatter marks that never complete a line
	card[0][0].Marked = true
	card[1][2].Marked = true
	card[3][4].Marked = true
	card[4][1].Marked = true
	if HasWon(card) {
		t.Error("scattered marks reported as a win")
	}
}

func TestHasWonMalformed(t *testing.T) {
	if HasWon(nil) {
		t.Error("nil card reported as a win")
	}
	if HasWon(models.Card{}) {
		t.Error("empty card reported as a win")
	}
	short := plainCard()[:3]
	if HasWon(short) {
		t.Error("3-column card reported as a win")
	}
	ragged := plainCard()
	ragged[4] = ragged[4][:2]
	if HasWon(ragged) {
		t.Error("ragged card reported as a win")
	}
}

func TestCloseLines(t *testing.T) {
	card := plainCard()
	// row 0 missing one mark
	for col := 0; col < CardSize-1; col++ {
		card[col][0].Marked = true
	}
	players := map[string]*models.Player{
		"p1": {ID: "p1", Card: card},
		"p2": {ID: "p2", Card: plainCard()},
	}
	// the four marks on row 0 also leave columns 0..3 each needing 4 more,
	// so only the row itself is one away
	if got := CloseLines(players); got != 1 {
		t.Errorf("CloseLines = %d, want 1", got)
	}
}
