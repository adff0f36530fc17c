package npuzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustState(t *testing.T, labels ...Tile) State {
	t.Helper()
	b, err := NewBoard(labels)
	require.NoError(t, err)
	s, err := NewState(b)
	require.NoError(t, err)
	return s
}

func TestNeighborsCenter(t *testing.T) {
	s := mustState(t, 1, 2, 3, 4, 0, 6, 7, 5, 8)
	ns := s.Neighbors()
	require.Len(t, ns, 4)

	moves := make([]Move, 0, 4)
	for _, n := range ns {
		moves = append(moves, n.Move)
	}
	assert.Equal(t, []Move{Up, Down, Left, Right}, moves,
		"neighbor order must be fixed")
}

func TestNeighborsCorner(t *testing.T) {
	s := mustState(t, 0, 1, 2, 3, 4, 5, 6, 7, 8)
	ns := s.Neighbors()
	require.Len(t, ns, 2)
	assert.Equal(t, Down, ns[0].Move)
	assert.Equal(t, Right, ns[1].Move)
}

func TestNeighborsEdge(t *testing.T) {
	s := mustState(t, 1, 0, 2, 3, 4, 5, 6, 7, 8)
	require.Len(t, s.Neighbors(), 3)
}

func TestApplyOffGrid(t *testing.T) {
	s := mustState(t, 1, 2, 3, 4, 5, 6, 7, 8, 0)
	_, ok := s.Apply(Down)
	assert.False(t, ok)
	_, ok = s.Apply(Right)
	assert.False(t, ok)
}

func TestApplyDoesNotMutate(t *testing.T) {
	s := mustState(t, 1, 2, 3, 4, 0, 6, 7, 5, 8)
	before := s.Board()
	next, ok := s.Apply(Down)
	require.True(t, ok)
	assert.Equal(t, before, s.Board())
	assert.NotEqual(t, before, next.Board())
}

func TestApplySwapsBlankWithTile(t *testing.T) {
	s := mustState(t, 1, 2, 3, 4, 0, 6, 7, 5, 8)
	next, ok := s.Apply(Down)
	require.True(t, ok)
	want, err := NewBoard([]Tile{1, 2, 3, 4, 5, 6, 7, 0, 8})
	require.NoError(t, err)
	assert.Equal(t, want, next.Board())
}

func TestReplay(t *testing.T) {
	start, err := NewBoard([]Tile{1, 2, 3, 4, 0, 6, 7, 5, 8})
	require.NoError(t, err)
	end, err := Replay(start, []Move{Down, Right})
	require.NoError(t, err)
	assert.Equal(t, Goal(), end)
}

func TestReplayRejectsOffGridMove(t *testing.T) {
	_, err := Replay(Goal(), []Move{Down})
	assert.Error(t, err)
}

func TestParseMoveRoundTrip(t *testing.T) {
	for _, m := range []Move{Up, Down, Left, Right} {
		parsed, err := ParseMove(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	_, err := ParseMove("sideways")
	assert.Error(t, err)
}
