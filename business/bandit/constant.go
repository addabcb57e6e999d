package bandit

const (
	// SubtypeEpsilonFirst tags the explore-then-exploit strategy.
	SubtypeEpsilonFirst = "epsilon_first"

	// DefaultEpsilon is the fraction of the total sample budget reserved
	// for exploration when the caller does not supply one.
	DefaultEpsilon = 0.05

	// DefaultTotalSamples is the fallback total experiment budget T.
	DefaultTotalSamples = 100.0

	// allocationTolerance bounds the float drift accepted when checking
	// that an allocation sums to 1.
	allocationTolerance = 1e-9
)
