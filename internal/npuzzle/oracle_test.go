package npuzzle

import "sync"

// Test oracle: exact shortest distances by breadth-first search over the
// reachable half of the permutation space.

var (
	goalDistOnce sync.Once
	goalDist     map[Board]int
)

func bfsSweep(from Board) map[Board]int {
	dist := map[Board]int{from: 0}
	queue := []Board{from}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		s, err := NewState(b)
		if err != nil {
			panic(err)
		}
		for _, n := range s.Neighbors() {
			nb := n.State.Board()
			if _, seen := dist[nb]; !seen {
				dist[nb] = dist[b] + 1
				queue = append(queue, nb)
			}
		}
	}
	return dist
}

// bfsDistance returns the true optimal slide count from b to goal. The
// sweep from the canonical goal is shared across tests since it visits
// all 181440 reachable boards.
func bfsDistance(b, goal Board) int {
	if goal == Goal() {
		goalDistOnce.Do(func() {
			goalDist = bfsSweep(goal)
		})
		if d, ok := goalDist[b]; ok {
			return d
		}
		return -1
	}
	if d, ok := bfsSweep(goal)[b]; ok {
		return d
	}
	return -1
}
