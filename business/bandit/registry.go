package bandit

import (
	"fmt"
	"sort"

	"multiarm/domain"
)

// Factory builds a concrete strategy from historical info and the raw,
// not-yet-validated hyperparameter mapping of a request.
type Factory func(hist domain.HistoricalInfo, raw map[string]any, cfg Config) (Strategy, error)

// subtypeFactories is the dispatch table keyed by subtype tag. It is built
// once here and never mutated afterwards.
var subtypeFactories = map[string]Factory{
	SubtypeEpsilonFirst: newEpsilonFirstFromRaw,
}

func newEpsilonFirstFromRaw(hist domain.HistoricalInfo, raw map[string]any, cfg Config) (Strategy, error) {
	hp, err := parseEpsilonFirstHyperparameters(raw, cfg)
	if err != nil {
		return nil, err
	}
	return NewEpsilonFirst(hist, hp), nil
}

// New constructs the strategy registered for subtype, validating the raw
// hyperparameters against the subtype's schema.
func New(subtype string, hist domain.HistoricalInfo, raw map[string]any, cfg Config) (Strategy, error) {
	factory, ok := subtypeFactories[subtype]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubtype, subtype)
	}
	return factory(hist, raw, cfg)
}

// KnownSubtype reports whether a strategy is registered for the tag.
func KnownSubtype(subtype string) bool {
	_, ok := subtypeFactories[subtype]
	return ok
}

// Subtypes lists the registered subtype tags in lexicographic order.
func Subtypes() []string {
	out := make([]string, 0, len(subtypeFactories))
	for subtype := range subtypeFactories {
		out = append(out, subtype)
	}
	sort.Strings(out)
	return out
}
