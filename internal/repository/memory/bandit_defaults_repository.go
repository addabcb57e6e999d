package memory

import (
	"context"
	"sync"

	"multiarm/business/bandit"
	"multiarm/domain"
)

// BanditDefaultsRepository keeps per-subtype hyperparameter defaults in
// process memory. Nothing survives a restart; historical experiment data
// never touches this store.
type BanditDefaultsRepository struct {
	mu       sync.RWMutex
	defaults map[string]domain.BanditDefaults
}

var _ bandit.DefaultsRepository = (*BanditDefaultsRepository)(nil)

func NewBanditDefaultsRepository() *BanditDefaultsRepository {
	return &BanditDefaultsRepository{
		defaults: make(map[string]domain.BanditDefaults),
	}
}

func (r *BanditDefaultsRepository) GetDefaults(ctx context.Context, subtype string) (domain.BanditDefaults, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.BanditDefaults{}, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.defaults[subtype]
	return d, ok, nil
}

func (r *BanditDefaultsRepository) UpsertDefaults(ctx context.Context, d domain.BanditDefaults) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.defaults[d.Subtype] = d
	return nil
}
