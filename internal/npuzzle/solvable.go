package npuzzle

import "math/rand/v2"

// inversions counts pairs of non-blank labels out of relative order in the
// row-major listing.
func inversions(b Board) int {
	count := 0
	for i := 0; i < Area; i++ {
		if b[i] == Blank {
			continue
		}
		for j := i + 1; j < Area; j++ {
			if b[j] != Blank && b[i] > b[j] {
				count++
			}
		}
	}
	return count
}

// Solvable reports whether goal is reachable from b by legal slides. On an
// odd-width grid a slide never changes inversion parity, so the two boards
// are mutually reachable exactly when their inversion counts share parity.
// Against the canonical goal (zero inversions) this is the classic "even
// inversion count" rule.
func Solvable(b, goal Board) bool {
	return inversions(b)%2 == inversions(goal)%2
}

// Scramble draws random permutations of the goal's labels until one is
// solvable and returns it. Half of all permutations qualify, so the loop
// terminates quickly.
func Scramble(goal Board, r *rand.Rand) Board {
	b := goal
	for {
		r.Shuffle(Area, func(i, j int) {
			b[i], b[j] = b[j], b[i]
		})
		if Solvable(b, goal) {
			return b
		}
	}
}
