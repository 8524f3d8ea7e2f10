package game

import "github.com/Flame02op/multiplayer-bingo-app/models"

// HasWon reports whether any of the card's 12 lines (5 rows, 5 columns, both
// diagonals) is fully marked. A nil or malformed card is simply not a winner;
// this never panics on bad input.
func HasWon(card models.Card) bool {
	if len(card) != CardSize {
		return false
	}
	for _, col := range card {
		if len(col) != CardSize {
			return false
		}
	}

	// rows
	for row := 0; row < CardSize; row++ {
		won := true
		for col := 0; col < CardSize; col++ {
			if !card[col][row].Marked {
				won = false
				break
			}
		}
		if won {
			return true
		}
	}

	// columns
	for col := 0; col < CardSize; col++ {
		won := true
		for row := 0; row < CardSize; row++ {
			if !card[col][row].Marked {
				won = false
				break
			}
		}
		if won {
			return true
		}
	}

	// diagonals
	diag, anti := true, true
	for i := 0; i < CardSize; i++ {
		if !card[i][i].Marked {
			diag = false
		}
		if !card[i][CardSize-1-i].Marked {
			anti = false
		}
	}
	return diag || anti
}

// CloseLines counts, across all players, the row and column lines missing
// exactly one mark. It feeds the announcer's sense of how tense the game is.
func CloseLines(players map[string]*models.Player) int {
	count := 0
	for _, p := range players {
		card := p.Card
		if len(card) != CardSize {
			continue
		}
		for row := 0; row < CardSize; row++ {
			missing := 0
			for col := 0; col < CardSize; col++ {
				if row < len(card[col]) && !card[col][row].Marked {
					missing++
				}
			}
			if missing == 1 {
				count++
			}
		}
		for col := 0; col < CardSize; col++ {
			missing := 0
			for row := 0; row < len(card[col]); row++ {
				if !card[col][row].Marked {
					missing++
				}
			}
			if missing == 1 {
				count++
			}
		}
	}
	return count
}
