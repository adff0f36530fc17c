package npuzzle

// goalIndex maps each label to its cell index in the goal board.
type goalIndex [Area]int

func indexGoal(goal Board) goalIndex {
	var idx goalIndex
	for i, t := range goal {
		idx[t] = i
	}
	return idx
}

func manhattan(b Board, idx goalIndex) int {
	sum := 0
	for i, t := range b {
		if t == Blank {
			continue
		}
		j := idx[t]
		dr := i/Size - j/Size
		dc := i%Size - j%Size
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		sum += dr + dc
	}
	return sum
}

// ManhattanDistance sums |Δrow| + |Δcol| between every non-blank tile's
// position in b and its position in goal. It never overestimates the true
// remaining slide count, and one slide changes it by exactly 1, which is
// what A* needs for optimality.
func ManhattanDistance(b, goal Board) int {
	return manhattan(b, indexGoal(goal))
}
