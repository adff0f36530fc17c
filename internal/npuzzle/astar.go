package npuzzle

import (
	"container/heap"
	"errors"
	"fmt"
)

var (
	// ErrUnsolvable means the frontier emptied without reaching the goal.
	// Callers that gate solves behind Solvable never see it.
	ErrUnsolvable = errors.New("puzzle is not solvable")
	// ErrBudgetExceeded means the solver hit its expansion budget before
	// finding the goal. Retrying with a larger budget is safe.
	ErrBudgetExceeded = errors.New("expansion budget exceeded")
)

// Solution is a complete optimal path from start to goal. States holds
// every board along the way, start and goal included, so States[i+1] is
// States[i] after Moves[i].
type Solution struct {
	Moves    []Move
	States   []State
	Expanded int
}

// Length is the number of slides in the solution.
func (s *Solution) Length() int {
	return len(s.Moves)
}

type node struct {
	state  State
	g, h   int
	seq    int // insertion order, breaks f ties FIFO
	index  int
	parent *node
	move   Move
}

type frontier []*node

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	fi := f[i].g + f[i].h
	fj := f[j].g + f[j].h
	if fi == fj {
		return f[i].seq < f[j].seq
	}
	return fi < fj
}
func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}
func (f *frontier) Push(x any) {
	n := x.(*node)
	n.index = len(*f)
	*f = append(*f, n)
}
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	item.index = -1
	*f = old[:n-1]
	return item
}

// Solve finds the shortest slide sequence turning start into goal,
// searching without an expansion budget.
func Solve(start, goal Board) (*Solution, error) {
	return SolveLimited(start, goal, 0)
}

// SolveLimited runs A* with Manhattan distance over unit-cost slides.
// maxExpand caps the number of expanded states, 0 meaning no cap; hitting
// the cap fails with ErrBudgetExceeded. Every call owns its frontier and
// closed set, so concurrent solves do not interfere.
func SolveLimited(start, goal Board, maxExpand int) (*Solution, error) {
	startState, err := NewState(start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	goalState, err := NewState(goal)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}

	idx := indexGoal(goal)
	open := &frontier{}
	heap.Init(open)

	seq := 0
	root := &node{state: startState, g: 0, h: manhattan(start, idx), seq: seq}
	heap.Push(open, root)

	// best g found so far per board, open or closed
	bestG := map[Board]int{start: 0}
	closed := map[Board]bool{}
	expanded := 0

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)
		if current.state.Board() == goalState.Board() {
			return reconstruct(current, expanded), nil
		}
		if closed[current.state.Board()] {
			continue // stale duplicate left on the heap
		}
		closed[current.state.Board()] = true

		expanded++
		if maxExpand > 0 && expanded > maxExpand {
			return nil, ErrBudgetExceeded
		}

		for _, nb := range current.state.Neighbors() {
			b := nb.State.Board()
			g := current.g + 1
			if known, ok := bestG[b]; ok && known <= g {
				continue
			}
			bestG[b] = g
			seq++
			heap.Push(open, &node{
				state:  nb.State,
				g:      g,
				h:      manhattan(b, idx),
				seq:    seq,
				parent: current,
				move:   nb.Move,
			})
		}
	}

	return nil, ErrUnsolvable
}

func reconstruct(goal *node, expanded int) *Solution {
	sol := &Solution{
		Moves:    make([]Move, 0, goal.g),
		States:   make([]State, 0, goal.g+1),
		Expanded: expanded,
	}
	for n := goal; n != nil; n = n.parent {
		sol.States = append(sol.States, n.state)
		if n.parent != nil {
			sol.Moves = append(sol.Moves, n.move)
		}
	}
	for i, j := 0, len(sol.Moves)-1; i < j; i, j = i+1, j-1 {
		sol.Moves[i], sol.Moves[j] = sol.Moves[j], sol.Moves[i]
	}
	for i, j := 0, len(sol.States)-1; i < j; i, j = i+1, j-1 {
		sol.States[i], sol.States[j] = sol.States[j], sol.States[i]
	}
	return sol
}
