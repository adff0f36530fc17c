package npuzzle

import "fmt"

// Move names the direction the blank slides. Equivalently, the adjacent
// tile on that side moves into the blank's cell.
type Move int8

const (
	Up Move = iota
	Down
	Left
	Right
)

func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("move(%d)", int8(m))
	}
}

// ParseMove is the inverse of Move.String.
func ParseMove(s string) (Move, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("unknown move %q", s)
	}
}

func (m Move) delta() (dr, dc int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// moveOrder fixes the neighbor generation order so that equal-cost search
// paths tie-break the same way on every run.
var moveOrder = [4]Move{Up, Down, Left, Right}

// Apply slides the blank one cell in the given direction, returning the
// resulting state. ok is false when the move would leave the grid.
func (s State) Apply(m Move) (next State, ok bool) {
	row, col := s.Blank()
	dr, dc := m.delta()
	row, col = row+dr, col+dc
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return State{}, false
	}
	i := row*Size + col
	return State{board: s.board.Swapped(s.blank, i), blank: i}, true
}

// Neighbor is a state reachable in one slide together with the move that
// produced it.
type Neighbor struct {
	Move  Move
	State State
}

// Neighbors returns the at most four states one slide away, always in
// Up, Down, Left, Right order.
func (s State) Neighbors() []Neighbor {
	out := make([]Neighbor, 0, 4)
	for _, m := range moveOrder {
		if next, ok := s.Apply(m); ok {
			out = append(out, Neighbor{Move: m, State: next})
		}
	}
	return out
}

// Replay folds a move sequence over a start board and returns the final
// board. It fails if any move would slide the blank off the grid.
func Replay(start Board, moves []Move) (Board, error) {
	s, err := NewState(start)
	if err != nil {
		return Board{}, err
	}
	for i, m := range moves {
		next, ok := s.Apply(m)
		if !ok {
			return Board{}, fmt.Errorf("move %d (%s) leaves the grid", i, m)
		}
		s = next
	}
	return s.Board(), nil
}
