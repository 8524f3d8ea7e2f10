package game

import "math/rand"

// DrawNext picks one number uniformly from the complement of drawn within
// 1..75. The second return is false when the pool is exhausted. The drawn
// slice is never mutated; appending the result is the caller's job.
func DrawNext(drawn []int) (int, bool) {
	seen := make(map[int]bool, len(drawn))
	for _, n := range drawn {
		seen[n] = true
	}

	available := make([]int, 0, MaxNumber-len(seen))
	for n := 1; n <= MaxNumber; n++ {
		if !seen[n] {
			available = append(available, n)
		}
	}
	if len(available) == 0 {
		return 0, false
	}
	return available[rand.Intn(len(available))], true
}
