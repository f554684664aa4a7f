package experiment

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ecolab-sim/ecolab/internal/backend"
)

// RunResult is one evaluated parameter combination. Outputs holds the
// canonical series the design asked for; Err is set when the backend
// rejected or failed the run.
type RunResult struct {
	Index   int
	Backend string
	Params  map[string]float64
	Outputs map[string][]float64
	Err     error
}

// Runner evaluates a sampled design against a backend with bounded
// parallelism. Runs are independent, so order within the result slice is
// the submission order regardless of completion order.
type Runner struct {
	log     *slog.Logger
	workers int
}

func NewRunner(log *slog.Logger, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{log: log, workers: workers}
}

// Evaluate runs every sampled combination through the backend and
// collects the wanted canonical outputs. Individual run failures are
// recorded in their RunResult rather than aborting the batch; a
// deterministic computation gains nothing from retries.
func (r *Runner) Evaluate(ctx context.Context, b backend.Backend, samples []map[string]float64, wanted []string) []RunResult {
	results := make([]RunResult, len(samples))

	var vm backend.VarMap
	if mapped, ok := b.(interface{ VarMap() backend.VarMap }); ok {
		vm = mapped.VarMap()
	}

	sem := make(chan struct{}, r.workers)
	var wg sync.WaitGroup

	for i, params := range samples {
		wg.Add(1)
		go func(idx int, params map[string]float64) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			res := RunResult{Index: idx, Backend: b.Name(), Params: params}

			raw, err := b.Run(ctx, params)
			if err == nil {
				res.Outputs, err = backend.Collect(b, vm, raw, wanted)
			}
			if err != nil {
				res.Err = err
				r.log.Warn("experiment run failed",
					"backend", b.Name(), "run", idx, "error", err)
			}

			results[idx] = res
		}(i, params)
	}

	wg.Wait()
	return results
}

// EvaluateAll replays the same sampled design across several backends so
// their outputs stay comparable run for run.
func (r *Runner) EvaluateAll(ctx context.Context, backends []backend.Backend, samples []map[string]float64, wanted []string) map[string][]RunResult {
	out := make(map[string][]RunResult, len(backends))
	for _, b := range backends {
		r.log.Info("evaluating design", "backend", b.Name(), "runs", len(samples))
		out[b.Name()] = r.Evaluate(ctx, b, samples, wanted)
	}
	return out
}

// Failed counts the runs in a batch that did not produce output.
func Failed(results []RunResult) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
