package runner

import (
	"context"
	"sync"

	"github.com/san-kum/rocketsim/internal/env"
	"github.com/san-kum/rocketsim/internal/metrics"
	"github.com/san-kum/rocketsim/internal/policy"
)

// Batch runs N independently-seeded episodes in parallel. Every episode
// gets its own environment, policy, and metric set, so nothing is shared
// and each trajectory stays deterministic for its seed.
type Batch struct {
	cfg       env.Config
	n         int
	seedStart int64
	newPolicy func() policy.Policy
}

func NewBatch(cfg env.Config, n int, seedStart int64, newPolicy func() policy.Policy) *Batch {
	return &Batch{cfg: cfg, n: n, seedStart: seedStart, newPolicy: newPolicy}
}

func (b *Batch) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, b.n)
	errs := make([]error, b.n)

	var wg sync.WaitGroup
	for i := 0; i < b.n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := b.seedStart + int64(idx)
			cfg := b.cfg
			cfg.Seed = seed

			e, err := env.New(cfg)
			if err != nil {
				errs[idx] = err
				return
			}
			defer e.Close()

			results[idx], errs[idx] = RunEpisode(ctx, e, b.newPolicy(), seed, metrics.Defaults())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
