package npuzzle

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalIsSolvable(t *testing.T) {
	assert.True(t, Solvable(Goal(), Goal()))
}

func TestSwappedPairIsUnsolvable(t *testing.T) {
	// Exchanging two non-blank tiles flips inversion parity.
	b := Goal().Swapped(0, 1)
	assert.False(t, Solvable(b, Goal()))
}

func TestSolvableMatchesInversionParity(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	goal := Goal()
	for range 500 {
		b := goal
		r.Shuffle(Area, func(i, j int) {
			b[i], b[j] = b[j], b[i]
		})
		want := inversions(b)%2 == 0 // canonical goal has zero inversions
		assert.Equal(t, want, Solvable(b, goal), "board %s", b)
	}
}

func TestSolvableWithCustomGoal(t *testing.T) {
	// A goal with odd parity is reachable exactly from odd-parity boards.
	goal := Goal().Swapped(0, 1)
	assert.True(t, Solvable(goal, goal))
	assert.False(t, Solvable(Goal(), goal))
}

func TestScrambleAlwaysSolvable(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 100 {
		b := Scramble(Goal(), r)
		require.NoError(t, b.Validate())
		assert.True(t, Solvable(b, Goal()))
	}
}
