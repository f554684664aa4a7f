package sim

import (
	"context"
	"sync"

	"github.com/ecolab-sim/ecolab/internal/ecodyn"
)

// Batch runs the same system/integrator pair over many initial states.
// Each run builds its own Simulator so there is no shared mutable state
// between goroutines; results keep submission order.
type Batch struct {
	build   func() *Simulator
	workers int
}

func NewBatch(build func() *Simulator, workers int) *Batch {
	if workers < 1 {
		workers = 1
	}
	return &Batch{build: build, workers: workers}
}

func (b *Batch) Run(ctx context.Context, starts []ecodyn.State, cfg ecodyn.Config) ([]*ecodyn.Result, error) {
	results := make([]*ecodyn.Result, len(starts))
	errs := make([]error, len(starts))

	sem := make(chan struct{}, b.workers)
	var wg sync.WaitGroup

	for i, x0 := range starts {
		wg.Add(1)
		go func(idx int, x0 ecodyn.State) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx], errs[idx] = b.build().Run(ctx, x0, cfg)
		}(i, x0)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
