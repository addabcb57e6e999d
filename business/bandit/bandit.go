package bandit

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"multiarm/domain"
)

// Strategy is the contract shared by every bandit allocation strategy.
// Implementations are pure functions of their constructor state: they never
// mutate the historical info they were built over.
type Strategy interface {
	// Subtype returns the strategy-family tag, e.g. "epsilon_first".
	Subtype() string

	// AllocateArms computes the probability mass assigned to every sampled
	// arm. The returned allocation covers all arms, including arms with
	// zero mass, and sums to 1.
	AllocateArms() (domain.Allocation, error)
}

// ChooseArm draws one arm from an allocation. Arm names are ordered
// lexicographically to build a cumulative partition of [0, 1); the draw from
// rng selects the arm whose interval contains it. Arms with zero allocation
// stay in the partition but can never be picked.
func ChooseArm(alloc domain.Allocation, rng *rand.Rand) (string, error) {
	if len(alloc) == 0 {
		return "", fmt.Errorf("%w: no arms in allocation", ErrInvalidAllocation)
	}

	names := make([]string, 0, len(alloc))
	sum := 0.0
	for name, p := range alloc {
		names = append(names, name)
		sum += p
	}
	if math.Abs(sum-1.0) > allocationTolerance {
		return "", fmt.Errorf("%w: values sum to %v", ErrInvalidAllocation, sum)
	}
	sort.Strings(names)

	draw := rng.Float64()
	cumulative := 0.0
	for _, name := range names {
		cumulative += alloc[name]
		if draw < cumulative {
			return name, nil
		}
	}

	// The draw landed past the last partition boundary because of float
	// drift; the remainder belongs to the last arm with nonzero mass.
	for i := len(names) - 1; i >= 0; i-- {
		if alloc[names[i]] > 0 {
			return names[i], nil
		}
	}
	return names[len(names)-1], nil
}
