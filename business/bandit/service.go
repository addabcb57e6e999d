package bandit

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"multiarm/domain"
	"multiarm/pkg/logger"
)

// AllocationService is the use case behind the bandit endpoints: it resolves
// runtime defaults, dispatches to the registered strategy, computes the
// allocation and selects the winning arm.
type AllocationService struct {
	defaultsRepo DefaultsRepository
	defaultCfg   Config

	// rng feeds ChooseArm; guarded because *rand.Rand is not safe for
	// concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewAllocationService wires the service. rng may be nil, in which case a
// time-seeded source is used; tests pass a fixed seed.
func NewAllocationService(defaultsRepo DefaultsRepository, defaultCfg Config, rng *rand.Rand) *AllocationService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &AllocationService{
		defaultsRepo: defaultsRepo,
		defaultCfg:   defaultCfg,
		rng:          rng,
	}
}

// Allocate runs the full endpoint flow and returns the allocation mapping
// together with the chosen winner.
func (s *AllocationService) Allocate(
	ctx context.Context,
	subtype string,
	hist domain.HistoricalInfo,
	rawHyperparams map[string]any,
) (domain.Allocation, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("context error: %w", err)
	}
	if subtype == "" {
		subtype = s.defaultCfg.DefaultSubtype
	}

	cfg := s.loadConfig(ctx, subtype)

	strategy, err := New(subtype, hist, rawHyperparams, cfg)
	if err != nil {
		return nil, "", err
	}

	alloc, err := strategy.AllocateArms()
	if err != nil {
		return nil, "", err
	}

	winner, err := s.chooseArm(alloc)
	if err != nil {
		return nil, "", err
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("bandit_allocate",
		"trace_id", tid,
		"subtype", subtype,
		"num_arms", hist.NumArms(),
		"winner", winner,
	)

	return alloc, winner, nil
}

func (s *AllocationService) chooseArm(alloc domain.Allocation) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ChooseArm(alloc, s.rng)
}

// loadConfig overlays admin-stored defaults for the subtype on top of the
// service configuration.
func (s *AllocationService) loadConfig(ctx context.Context, subtype string) Config {
	cfg := s.defaultCfg
	if s.defaultsRepo == nil {
		return cfg
	}

	d, ok, err := s.defaultsRepo.GetDefaults(ctx, subtype)
	if err != nil || !ok {
		return cfg
	}

	cfg.DefaultEpsilon = d.Epsilon
	cfg.DefaultTotalSamples = d.TotalSamples
	return cfg
}
