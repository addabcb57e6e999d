package bandit

import (
	"math"

	"multiarm/domain"
)

// EpsilonFirst implements the explore-then-exploit schedule. With a total
// experiment budget of T trials, the first epsilon*T trials are pure
// exploration; every trial after that exploits the best observed arm(s).
// T is the total number of samples: #to sample plus #sampled, where
// #sampled is the sum of Total over every arm.
type EpsilonFirst struct {
	hist         domain.HistoricalInfo
	epsilon      float64
	totalSamples float64
}

// NewEpsilonFirst builds the strategy from validated hyperparameters.
func NewEpsilonFirst(hist domain.HistoricalInfo, hp EpsilonFirstHyperparameters) *EpsilonFirst {
	return &EpsilonFirst{
		hist:         hist,
		epsilon:      hp.Epsilon,
		totalSamples: hp.TotalSamples,
	}
}

func (s *EpsilonFirst) Subtype() string { return SubtypeEpsilonFirst }

// AllocateArms computes the allocation to each arm.
//
// Exploration phase (numSampled < epsilon*T): every arm gets 1/numArms,
// regardless of observed payoffs. The strict < keeps the trial exactly at
// the boundary in the exploitation phase.
//
// Exploitation phase: arms are ranked by average payoff (win-loss)/total
// (0 when total is 0) and probability 1 is split equally among the arms
// tied for the best payoff; every other arm gets 0. Ties are exact float
// equality on the computed payoff.
func (s *EpsilonFirst) AllocateArms() (domain.Allocation, error) {
	arms := s.hist.ArmsSampled
	numArms := s.hist.NumArms()
	if numArms == 0 {
		return nil, ErrEmptyHistory
	}

	numSampled := 0.0
	for _, arm := range arms {
		numSampled += arm.Total
	}

	if numSampled < s.totalSamples*s.epsilon {
		equal := 1.0 / float64(numArms)
		alloc := make(domain.Allocation, numArms)
		for name := range arms {
			alloc[name] = equal
		}
		recordAllocation(SubtypeEpsilonFirst, phaseExplore)
		return alloc, nil
	}

	best := math.Inf(-1)
	payoffs := make(map[string]float64, numArms)
	for name, arm := range arms {
		payoff := 0.0
		if arm.Total > 0 {
			payoff = (arm.Win - arm.Loss) / arm.Total
		}
		payoffs[name] = payoff
		if payoff > best {
			best = payoff
		}
	}

	numWinning := 0
	for _, p := range payoffs {
		if p == best {
			numWinning++
		}
	}

	share := 1.0 / float64(numWinning)
	alloc := make(domain.Allocation, numArms)
	for name, p := range payoffs {
		if p == best {
			alloc[name] = share
		} else {
			alloc[name] = 0.0
		}
	}
	recordAllocation(SubtypeEpsilonFirst, phaseExploit)
	return alloc, nil
}
