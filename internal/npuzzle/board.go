// Package npuzzle implements the 8-puzzle search core: board values,
// move generation, the inversion-parity solvability check and an A*
// solver producing optimal slide sequences.
package npuzzle

import (
	"fmt"
	"strings"
)

const (
	// Size is the puzzle's grid width and height.
	Size = 3
	// Area is the number of cells on the board.
	Area = Size * Size
)

// Tile is a cell label in [0, 8]. Blank marks the empty cell.
type Tile int8

const Blank Tile = 0

// Board is a 3x3 arrangement of tiles in row-major order. It is a plain
// value: copies are independent and boards compare with ==, which makes
// them usable as map keys for visited sets.
type Board [Area]Tile

// InvalidBoardError reports a malformed board: wrong length, a label out
// of range or a duplicate label.
type InvalidBoardError struct {
	Reason string
}

func (e InvalidBoardError) Error() string {
	return "invalid board: " + e.Reason
}

// NewBoard builds a Board from exactly Area labels, each of 0..8 appearing
// once.
func NewBoard(labels []Tile) (Board, error) {
	var b Board
	if len(labels) != Area {
		return b, InvalidBoardError{
			Reason: fmt.Sprintf("want %d labels, got %d", Area, len(labels)),
		}
	}
	copy(b[:], labels)
	return b, b.Validate()
}

// Validate checks that every label 0..8 is present exactly once.
func (b Board) Validate() error {
	var seen [Area]bool
	for _, t := range b {
		if t < 0 || t >= Area {
			return InvalidBoardError{
				Reason: fmt.Sprintf("label %d out of range", t),
			}
		}
		if seen[t] {
			return InvalidBoardError{
				Reason: fmt.Sprintf("duplicate label %d", t),
			}
		}
		seen[t] = true
	}
	return nil
}

// At returns the tile at the given row and column.
func (b Board) At(row, col int) Tile {
	return b[row*Size+col]
}

// Swapped returns a copy of b with the tiles at i and j exchanged.
func (b Board) Swapped(i, j int) Board {
	b[i], b[j] = b[j], b[i]
	return b
}

func (b Board) blankIndex() int {
	for i, t := range b {
		if t == Blank {
			return i
		}
	}
	return -1 // unreachable on a valid board
}

// String renders the board as rows joined by '|', the blank as '_'.
func (b Board) String() string {
	var sb strings.Builder
	for i, t := range b {
		if t == Blank {
			sb.WriteByte('_')
		} else {
			fmt.Fprintf(&sb, "%d", t)
		}
		if i%Size == Size-1 && i != Area-1 {
			sb.WriteByte('|')
		}
	}
	return sb.String()
}

// Goal is the canonical solved board: 1..8 in row-major order, blank last.
func Goal() Board {
	return Board{1, 2, 3, 4, 5, 6, 7, 8, Blank}
}

// State is a validated board with its blank position cached. States are
// immutable values; deriving a neighbor never touches the receiver.
type State struct {
	board Board
	blank int
}

// NewState validates the board and caches the blank's index.
func NewState(b Board) (State, error) {
	if err := b.Validate(); err != nil {
		return State{}, err
	}
	return State{board: b, blank: b.blankIndex()}, nil
}

// Board returns the underlying board value.
func (s State) Board() Board {
	return s.board
}

// Blank returns the blank cell's row and column.
func (s State) Blank() (row, col int) {
	return s.blank / Size, s.blank % Size
}

func (s State) String() string {
	return s.board.String()
}
