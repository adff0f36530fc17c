package npuzzle

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveAlreadySolved(t *testing.T) {
	sol, err := Solve(Goal(), Goal())
	require.NoError(t, err)
	assert.Empty(t, sol.Moves)
	require.Len(t, sol.States, 1)
	assert.Equal(t, Goal(), sol.States[0].Board())
	assert.Equal(t, 0, sol.Expanded)
}

func TestSolveTwoMoveInstance(t *testing.T) {
	start, err := NewBoard([]Tile{1, 2, 3, 4, 0, 6, 7, 5, 8})
	require.NoError(t, err)

	sol, err := Solve(start, Goal())
	require.NoError(t, err)

	// Tile 5 slides up into place, then tile 8 slides left; optimal and
	// unique, confirmed by the breadth-first oracle.
	assert.Equal(t, bfsDistance(start, Goal()), sol.Length())
	assert.Equal(t, []Move{Down, Right}, sol.Moves)

	end, err := Replay(start, sol.Moves)
	require.NoError(t, err)
	assert.Equal(t, Goal(), end)
}

func TestSolveFindsOptimalPaths(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	goal := Goal()
	for range 25 {
		start := Scramble(goal, r)

		sol, err := Solve(start, goal)
		require.NoError(t, err, "board %s", start)
		assert.Equal(t, bfsDistance(start, goal), sol.Length(),
			"board %s", start)

		end, err := Replay(start, sol.Moves)
		require.NoError(t, err)
		assert.Equal(t, goal, end)

		require.Len(t, sol.States, sol.Length()+1)
		assert.Equal(t, start, sol.States[0].Board())
		assert.Equal(t, goal, sol.States[sol.Length()].Board())
	}
}

func TestSolveDeterministic(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	for range 10 {
		start := Scramble(Goal(), r)
		first, err := Solve(start, Goal())
		require.NoError(t, err)
		second, err := Solve(start, Goal())
		require.NoError(t, err)
		assert.Equal(t, first.Moves, second.Moves,
			"same input must produce the same move sequence")
	}
}

func TestSolveCustomGoal(t *testing.T) {
	goal := Goal().Swapped(3, 4) // swap tiles 4 and 5
	r := rand.New(rand.NewPCG(13, 14))
	start := Scramble(goal, r)

	sol, err := Solve(start, goal)
	require.NoError(t, err)

	end, err := Replay(start, sol.Moves)
	require.NoError(t, err)
	assert.Equal(t, goal, end)
	assert.Equal(t, bfsDistance(start, goal), sol.Length())
}

func TestSolveUnsolvable(t *testing.T) {
	start := Goal().Swapped(0, 1)
	_, err := Solve(start, Goal())
	assert.ErrorIs(t, err, ErrUnsolvable)
}

func TestSolveMalformedBoards(t *testing.T) {
	bad := Board{1, 2, 3, 3, 5, 6, 0, 8, 7} // two 3s, no 4
	var ibe InvalidBoardError

	_, err := Solve(bad, Goal())
	require.ErrorAs(t, err, &ibe)

	_, err = Solve(Goal(), bad)
	require.ErrorAs(t, err, &ibe)
}

func TestSolveLimited(t *testing.T) {
	// The hardest 8-puzzle instances take 31 moves; one of them.
	start, err := NewBoard([]Tile{8, 6, 7, 2, 5, 4, 3, 0, 1})
	require.NoError(t, err)

	_, err = SolveLimited(start, Goal(), 5)
	require.ErrorIs(t, err, ErrBudgetExceeded)

	// A fresh call is unaffected by the aborted one.
	sol, err := SolveLimited(start, Goal(), 0)
	require.NoError(t, err)
	assert.Equal(t, 31, sol.Length())
}

func TestSolveReentrant(t *testing.T) {
	r := rand.New(rand.NewPCG(15, 16))
	starts := make([]Board, 8)
	for i := range starts {
		starts[i] = Scramble(Goal(), r)
	}

	done := make(chan error, len(starts))
	for _, start := range starts {
		go func() {
			sol, err := Solve(start, Goal())
			if err != nil {
				done <- err
				return
			}
			end, err := Replay(start, sol.Moves)
			if err == nil && end != Goal() {
				err = ErrUnsolvable
			}
			done <- err
		}()
	}
	for range starts {
		assert.NoError(t, <-done)
	}
}
