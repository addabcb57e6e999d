package bandit

import (
	"math/rand"
	"testing"

	"multiarm/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseArm_EmptyAllocation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := ChooseArm(domain.Allocation{}, rng)
	require.ErrorIs(t, err, ErrInvalidAllocation)

	_, err = ChooseArm(nil, rng)
	require.ErrorIs(t, err, ErrInvalidAllocation)
}

func TestChooseArm_SumNotOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, alloc := range []domain.Allocation{
		{"a": 0.4, "b": 0.4},
		{"a": 0.7, "b": 0.7},
		{"a": 0.0},
	} {
		_, err := ChooseArm(alloc, rng)
		assert.ErrorIs(t, err, ErrInvalidAllocation)
	}
}

func TestChooseArm_DegenerateMassAlwaysWins(t *testing.T) {
	alloc := domain.Allocation{"arm1": 1.0, "arm2": 0.0, "arm3": 0.0}

	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		winner, err := ChooseArm(alloc, rng)
		require.NoError(t, err)
		assert.Equal(t, "arm1", winner)
	}
}

func TestChooseArm_ZeroAllocationNeverChosen(t *testing.T) {
	alloc := domain.Allocation{"a": 0.5, "b": 0.0, "c": 0.5}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		winner, err := ChooseArm(alloc, rng)
		require.NoError(t, err)
		assert.NotEqual(t, "b", winner)
	}
}

func TestChooseArm_UniformThirdsAreValid(t *testing.T) {
	// 3 * (1/3) only sums to 1 within float tolerance; the partition must
	// still accept it and cover every arm.
	third := 1.0 / 3.0
	alloc := domain.Allocation{"a": third, "b": third, "c": third}
	rng := rand.New(rand.NewSource(42))

	seen := map[string]int{}
	for i := 0; i < 3000; i++ {
		winner, err := ChooseArm(alloc, rng)
		require.NoError(t, err)
		seen[winner]++
	}

	require.Len(t, seen, 3)
	for name, n := range seen {
		assert.Greater(t, n, 700, "arm %s drawn too rarely", name)
	}
}

func TestChooseArm_RespectsWeights(t *testing.T) {
	alloc := domain.Allocation{"light": 0.2, "heavy": 0.8}
	rng := rand.New(rand.NewSource(99))

	heavy := 0
	const draws = 10000
	for i := 0; i < draws; i++ {
		winner, err := ChooseArm(alloc, rng)
		require.NoError(t, err)
		if winner == "heavy" {
			heavy++
		}
	}

	assert.InDelta(t, 0.8, float64(heavy)/draws, 0.03)
}
