package npuzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	start, err := NewBoard([]Tile{1, 2, 3, 4, 0, 6, 7, 5, 8})
	require.NoError(t, err)

	sol, err := Solve(start, Goal())
	require.NoError(t, err)

	rec := Record{
		Start:    start,
		Goal:     Goal(),
		Moves:    sol.Moves,
		Expanded: sol.Expanded,
	}
	buf, err := rec.Bytes()
	require.NoError(t, err)

	decoded, err := DecodeRecord(buf)
	require.NoError(t, err)
	assert.Equal(t, rec, *decoded)
}

func TestRecordSteps(t *testing.T) {
	start, err := NewBoard([]Tile{1, 2, 3, 4, 0, 6, 7, 5, 8})
	require.NoError(t, err)

	rec := Record{Start: start, Goal: Goal(), Moves: []Move{Down, Right}}
	steps, err := rec.Steps()
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, start, steps[0].Board())
	assert.Equal(t, Goal(), steps[2].Board())
}

func TestRecordStepsRejectsCorruptMoves(t *testing.T) {
	rec := Record{Start: Goal(), Goal: Goal(), Moves: []Move{Down}}
	_, err := rec.Steps()
	assert.Error(t, err)
}

func TestDecodeRecordGarbage(t *testing.T) {
	_, err := DecodeRecord([]byte("not a gob"))
	assert.Error(t, err)
}
