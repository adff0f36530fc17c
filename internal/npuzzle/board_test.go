package npuzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b, err := NewBoard([]Tile{1, 2, 3, 4, 5, 6, 7, 8, 0})
	require.NoError(t, err)
	assert.Equal(t, Goal(), b)
}

func TestNewBoardRejectsMalformed(t *testing.T) {
	cases := []struct {
		name   string
		labels []Tile
	}{
		{"too short", []Tile{1, 2, 3}},
		{"too long", []Tile{1, 2, 3, 4, 5, 6, 7, 8, 0, 0}},
		{"duplicate", []Tile{1, 2, 3, 3, 5, 6, 0, 8, 7}},
		{"out of range", []Tile{1, 2, 3, 4, 5, 6, 7, 9, 0}},
		{"negative", []Tile{1, 2, 3, 4, 5, 6, 7, -1, 0}},
		{"no blank", []Tile{1, 2, 3, 4, 5, 6, 7, 8, 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBoard(tc.labels)
			var ibe InvalidBoardError
			require.ErrorAs(t, err, &ibe)
		})
	}
}

func TestBoardAt(t *testing.T) {
	b := Goal()
	assert.Equal(t, Tile(1), b.At(0, 0))
	assert.Equal(t, Tile(6), b.At(1, 2))
	assert.Equal(t, Blank, b.At(2, 2))
}

func TestBoardSwappedIsACopy(t *testing.T) {
	b := Goal()
	swapped := b.Swapped(0, 8)
	assert.Equal(t, Goal(), b, "receiver must not change")
	assert.Equal(t, Blank, swapped[0])
	assert.Equal(t, Tile(1), swapped[8])
}

func TestBoardString(t *testing.T) {
	assert.Equal(t, "123|456|78_", Goal().String())
}

func TestNewStateCachesBlank(t *testing.T) {
	b, err := NewBoard([]Tile{1, 2, 3, 4, 0, 6, 7, 5, 8})
	require.NoError(t, err)
	s, err := NewState(b)
	require.NoError(t, err)
	row, col := s.Blank()
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
}

func TestStateEquality(t *testing.T) {
	a, err := NewState(Goal())
	require.NoError(t, err)
	b, err := NewState(Goal())
	require.NoError(t, err)
	assert.True(t, a == b, "states with equal boards must compare equal")
}
