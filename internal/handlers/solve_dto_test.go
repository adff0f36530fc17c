package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeyev/npuzzle-server/internal/npuzzle"
)

func TestParseSolveDTO(t *testing.T) {
	query := url.Values{
		"board":      {"1,2,3,4,0,6,7,5,8"},
		"max_expand": {"100"},
		"extra":      {"ignored"},
	}
	dto, err := ParseSolveDTO(query)
	require.NoError(t, err)
	assert.Equal(t, "1,2,3,4,0,6,7,5,8", dto.Board)
	assert.Equal(t, "", dto.Goal)
	assert.Equal(t, 100, dto.MaxExpand)
}

func TestParseSolveDTORequiresBoard(t *testing.T) {
	_, err := ParseSolveDTO(url.Values{})
	assert.Error(t, err)
}

func TestGoalOrDefault(t *testing.T) {
	goal, err := goalOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, npuzzle.Goal(), goal)

	custom, err := goalOrDefault("0,1,2,3,4,5,6,7,8")
	require.NoError(t, err)
	assert.Equal(t, npuzzle.Blank, custom[0])

	_, err = goalOrDefault("1,2,3")
	assert.Error(t, err)
}

func TestNewSolveSessionDTO(t *testing.T) {
	start, err := npuzzle.ParseBoard("1,2,3,4,0,6,7,5,8")
	require.NoError(t, err)

	rec := npuzzle.Record{
		Start:    start,
		Goal:     npuzzle.Goal(),
		Moves:    []npuzzle.Move{npuzzle.Down, npuzzle.Right},
		Expanded: 2,
	}
	dto, err := NewSolveSessionDTO(7, &rec, 0.5)
	require.NoError(t, err)

	assert.Equal(t, int64(7), dto.SolveSessionId)
	assert.Equal(t, []string{"down", "right"}, dto.Moves)
	assert.Equal(t, 2, dto.Length)
	require.Len(t, dto.States, 3)
	assert.Equal(t, []int{1, 2, 3, 4, 0, 6, 7, 5, 8}, dto.States[0])
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, dto.States[2])
}
