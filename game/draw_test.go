package game

import "testing"

func TestDrawNextFullRun(t *testing.T) {
	drawn := []int{}
	seen := map[int]bool{}
	for i := 0; i < MaxNumber; i++ {
		n, ok := DrawNext(drawn)
		if !ok {
			t.Fatalf("pool exhausted after %d draws", i)
		}
		if n < 1 || n > MaxNumber {
			t.Fatalf("drew %d, outside 1..%d", n, MaxNumber)
		}
		if seen[n] {
			t.Fatalf("drew %d twice", n)
		}
		seen[n] = true
		drawn = append(drawn, n)
	}

	if _, ok := DrawNext(drawn); ok {
		t.Fatal("expected exhaustion after 75 draws")
	}
}

func TestDrawNextDoesNotMutate(t *testing.T) {
	drawn := []int{5, 10, 15}
	snapshot := append([]int(nil), drawn...)
	DrawNext(drawn)
	for i := range drawn {
		if drawn[i] != snapshot[i] {
			t.Fatalf("DrawNext mutated its argument: %v != %v", drawn, snapshot)
		}
	}
}

func TestDrawNextLastNumber(t *testing.T) {
	drawn := make([]int, 0, MaxNumber-1)
	for n := 1; n <= MaxNumber; n++ {
		if n != 42 {
			drawn = append(drawn, n)
		}
	}
	got, ok := DrawNext(drawn)
	if !ok || got != 42 {
		t.Fatalf("DrawNext = (%d, %v), want (42, true)", got, ok)
	}
}
