package npuzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBoard reads a board from a comma-joined label list, e.g.
// "1,2,3,4,0,6,7,5,8". The inverse of FormatBoard.
func ParseBoard(s string) (Board, error) {
	parts := strings.Split(s, ",")
	labels := make([]Tile, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Board{}, fmt.Errorf("bad label %q: %w", p, err)
		}
		// range-check before narrowing to Tile, or 257 would alias 1
		if n < 0 || n >= Area {
			return Board{}, InvalidBoardError{
				Reason: fmt.Sprintf("label %d out of range", n),
			}
		}
		labels = append(labels, Tile(n))
	}
	return NewBoard(labels)
}

// FormatBoard renders a board as a comma-joined label list.
func FormatBoard(b Board) string {
	parts := make([]string, Area)
	for i, t := range b {
		parts[i] = strconv.Itoa(int(t))
	}
	return strings.Join(parts, ",")
}
