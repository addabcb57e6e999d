package bandit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEpsilonFirstHyperparameters_Defaults(t *testing.T) {
	cfg := DefaultConfig()

	for _, raw := range []map[string]any{nil, {}} {
		hp, err := parseEpsilonFirstHyperparameters(raw, cfg)
		require.NoError(t, err)
		assert.Equal(t, DefaultEpsilon, hp.Epsilon)
		assert.Equal(t, float64(DefaultTotalSamples), hp.TotalSamples)
	}
}

func TestParseEpsilonFirstHyperparameters_Overrides(t *testing.T) {
	hp, err := parseEpsilonFirstHyperparameters(map[string]any{
		"epsilon":       0.2,
		"total_samples": 500,
	}, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0.2, hp.Epsilon)
	assert.Equal(t, 500.0, hp.TotalSamples)
}

func TestParseEpsilonFirstHyperparameters_PartialOverride(t *testing.T) {
	hp, err := parseEpsilonFirstHyperparameters(map[string]any{
		"epsilon": 0.9,
	}, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0.9, hp.Epsilon)
	assert.Equal(t, float64(DefaultTotalSamples), hp.TotalSamples)
}

func TestParseEpsilonFirstHyperparameters_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"epsilon below range", map[string]any{"epsilon": -0.1}},
		{"epsilon above range", map[string]any{"epsilon": 1.5}},
		{"epsilon wrong type", map[string]any{"epsilon": "a lot"}},
		{"total_samples zero", map[string]any{"total_samples": 0}},
		{"total_samples negative", map[string]any{"total_samples": -50}},
		{"total_samples wrong type", map[string]any{"total_samples": []int{1}}},
		{"unknown field", map[string]any{"alpha": 1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseEpsilonFirstHyperparameters(tt.raw, DefaultConfig())
			assert.ErrorIs(t, err, ErrInvalidHyperparameters)
		})
	}
}

func TestParseEpsilonFirstHyperparameters_IntValuesAccepted(t *testing.T) {
	hp, err := parseEpsilonFirstHyperparameters(map[string]any{
		"epsilon":       1,
		"total_samples": int64(25),
	}, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 1.0, hp.Epsilon)
	assert.Equal(t, 25.0, hp.TotalSamples)
}
