package bandit

import "fmt"

// EpsilonFirstHyperparameters are the validated knobs of the epsilon-first
// strategy: the exploration fraction and the total experiment budget T.
type EpsilonFirstHyperparameters struct {
	Epsilon      float64
	TotalSamples float64
}

// parseEpsilonFirstHyperparameters validates the free-form hyperparameter
// mapping of a request, applying cfg defaults for missing fields.
func parseEpsilonFirstHyperparameters(raw map[string]any, cfg Config) (EpsilonFirstHyperparameters, error) {
	hp := EpsilonFirstHyperparameters{
		Epsilon:      cfg.DefaultEpsilon,
		TotalSamples: cfg.DefaultTotalSamples,
	}

	for key, value := range raw {
		switch key {
		case "epsilon":
			f, err := toFloat(value)
			if err != nil {
				return hp, fmt.Errorf("%w: epsilon: %v", ErrInvalidHyperparameters, err)
			}
			hp.Epsilon = f
		case "total_samples":
			f, err := toFloat(value)
			if err != nil {
				return hp, fmt.Errorf("%w: total_samples: %v", ErrInvalidHyperparameters, err)
			}
			hp.TotalSamples = f
		default:
			return hp, fmt.Errorf("%w: unknown field %q", ErrInvalidHyperparameters, key)
		}
	}

	if hp.Epsilon < 0 || hp.Epsilon > 1 {
		return hp, fmt.Errorf("%w: epsilon %v outside [0, 1]", ErrInvalidHyperparameters, hp.Epsilon)
	}
	if hp.TotalSamples <= 0 {
		return hp, fmt.Errorf("%w: total_samples %v must be positive", ErrInvalidHyperparameters, hp.TotalSamples)
	}

	return hp, nil
}

// toFloat accepts the numeric shapes a decoded JSON body or a hand-built
// map can carry.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}
