package game

import (
	"math/rand"

	"github.com/Flame02op/multiplayer-bingo-app/models"
)

const (
	CardSize   = 5
	MaxNumber  = 75
	rangeWidth = 15
)

const freeCol, freeRow = 2, 2

// Letter returns the B/I/N/G/O column letter for a number in 1..75.
func Letter(n int) string {
	switch {
	case n <= 15:
		return "B"
	case n <= 30:
		return "I"
	case n <= 45:
		return "N"
	case n <= 60:
		return "G"
	default:
		return "O"
	}
}

// GenerateCard builds a fresh 5x5 card. Column c takes 5 distinct values from
// [1+15c, 15+15c], sampled by drawing and removing from a shrinking pool, so
// every 5-subset and ordering is equally likely. The center square is the
// pre-marked free space and consumes no number from its range.
func GenerateCard() models.Card {
	card := make(models.Card, CardSize)
	for col := 0; col < CardSize; col++ {
		low := 1 + rangeWidth*col
		pool := make([]int, rangeWidth)
		for i := range pool {
			pool[i] = low + i
		}

		column := make([]models.Cell, CardSize)
		for row := 0; row < CardSize; row++ {
			if col == freeCol && row == freeRow {
				column[row] = models.Cell{Free: true, Marked: true}
				continue
			}
			idx := rand.Intn(len(pool))
			column[row] = models.Cell{Number: pool[idx]}
			pool[idx] = pool[len(pool)-1]
			pool = pool[:len(pool)-1]
		}
		card[col] = column
	}
	return card
}
