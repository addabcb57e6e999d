package bandit

import (
	"context"

	"multiarm/domain"
)

// Config carries the service-level fallback hyperparameters applied when a
// request omits them.
type Config struct {
	DefaultSubtype      string
	DefaultEpsilon      float64
	DefaultTotalSamples float64
}

func DefaultConfig() Config {
	return Config{
		DefaultSubtype:      SubtypeEpsilonFirst,
		DefaultEpsilon:      DefaultEpsilon,
		DefaultTotalSamples: DefaultTotalSamples,
	}
}

// DefaultsRepository stores per-subtype hyperparameter defaults. The engine
// never persists historical data; implementations hold runtime settings only.
type DefaultsRepository interface {
	GetDefaults(ctx context.Context, subtype string) (domain.BanditDefaults, bool, error)
	UpsertDefaults(ctx context.Context, d domain.BanditDefaults) error
}
