package game

import "testing"

func TestGenerateCardColumns(t *testing.T) {
	for trial := 0; trial < 100; trial++ {
		card := GenerateCard()
		if len(card) != CardSize {
			t.Fatalf("expected %d columns, got %d", CardSize, len(card))
		}

		seen := map[int]bool{}
		for col := 0; col < CardSize; col++ {
			if len(card[col]) != CardSize {
				t.Fatalf("column %d has %d cells", col, len(card[col]))
			}
			low, high := 1+15*col, 15+15*col
			for row := 0; row < CardSize; row++ {
				cell := card[col][row]
				if col == 2 && row == 2 {
					if !cell.Free || !cell.Marked {
						t.Fatalf("center cell must be free and pre-marked, got %+v", cell)
					}
					continue
				}
				if cell.Free {
					t.Fatalf("unexpected free cell at [%d][%d]", col, row)
				}
				if cell.Marked {
					t.Fatalf("fresh cell at [%d][%d] is already marked", col, row)
				}
				if cell.Number < low || cell.Number > high {
					t.Fatalf("cell [%d][%d] = %d outside [%d,%d]", col, row, cell.Number, low, high)
				}
				if seen[cell.Number] {
					t.Fatalf("duplicate number %d on card", cell.Number)
				}
				seen[cell.Number] = true
			}
		}
		if len(seen) != CardSize*CardSize-1 {
			t.Fatalf("expected 24 numbered cells, got %d", len(seen))
		}
	}
}

func TestLetter(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "B"}, {15, "B"}, {16, "I"}, {30, "I"}, {31, "N"},
		{45, "N"}, {46, "G"}, {60, "G"}, {61, "O"}, {75, "O"},
	}
	for _, tc := range cases {
		if got := Letter(tc.n); got != tc.want {
			t.Errorf("Letter(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
