package handlers

import (
	"github.com/gorilla/schema"

	"github.com/avdeyev/npuzzle-server/internal/npuzzle"
)

// Boards travel as comma-joined label lists, e.g. "1,2,3,4,0,6,7,5,8".

type SolveDTO struct {
	Board     string `schema:"board,required"`
	Goal      string `schema:"goal"`
	MaxExpand int    `schema:"max_expand"`
}

func ParseSolveDTO(src map[string][]string) (SolveDTO, error) {
	var dto SolveDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type ScrambleDTO struct {
	Goal string `schema:"goal"`
}

func ParseScrambleDTO(src map[string][]string) (ScrambleDTO, error) {
	var dto ScrambleDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// goalOrDefault parses an optional goal parameter, falling back to the
// canonical solved board.
func goalOrDefault(s string) (npuzzle.Board, error) {
	if s == "" {
		return npuzzle.Goal(), nil
	}
	return npuzzle.ParseBoard(s)
}

func boardLabels(b npuzzle.Board) []int {
	labels := make([]int, npuzzle.Area)
	for i, t := range b {
		labels[i] = int(t)
	}
	return labels
}

func moveNames(moves []npuzzle.Move) []string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return names
}

type ScrambleResponseDTO struct {
	Board  []int  `json:"board"`
	BoardS string `json:"board_str"`
	Goal   []int  `json:"goal"`
}

type SolveSessionDTO struct {
	SolveSessionId int64    `json:"solve_session_id"`
	Board          []int    `json:"board"`
	Goal           []int    `json:"goal"`
	Moves          []string `json:"moves"`
	States         [][]int  `json:"states"`
	Length         int      `json:"length"`
	Expanded       int      `json:"expanded"`
	SolveMs        float64  `json:"solve_ms"`
}

func NewSolveSessionDTO(
	sessionId int64, rec *npuzzle.Record, solveMs float64,
) (*SolveSessionDTO, error) {
	steps, err := rec.Steps()
	if err != nil {
		return nil, err
	}
	states := make([][]int, len(steps))
	for i, s := range steps {
		states[i] = boardLabels(s.Board())
	}
	return &SolveSessionDTO{
		SolveSessionId: sessionId,
		Board:          boardLabels(rec.Start),
		Goal:           boardLabels(rec.Goal),
		Moves:          moveNames(rec.Moves),
		States:         states,
		Length:         len(rec.Moves),
		Expanded:       rec.Expanded,
		SolveMs:        solveMs,
	}, nil
}
