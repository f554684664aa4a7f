package experiment

import (
	"fmt"
	"math/rand"

	"github.com/ecolab-sim/ecolab/internal/ecodyn"
)

// Uncertainty is one numeric parameter range to explore.
type Uncertainty struct {
	Name string
	Min  float64
	Max  float64
}

// Design is a sampled experimental plan: N parameter combinations drawn
// uniformly from the declared ranges with a fixed seed, so the same
// design can be replayed against every backend.
type Design struct {
	Uncertainties []Uncertainty
	Runs          int
	Seed          int64
}

// DefaultDesign is the course exercise: 50 combinations over the four
// Lotka-Volterra rate ranges.
func DefaultDesign() Design {
	return Design{
		Uncertainties: []Uncertainty{
			{Name: "prey_birth_rate", Min: 0.015, Max: 0.035},
			{Name: "predation_rate", Min: 0.0005, Max: 0.003},
			{Name: "predator_efficiency", Min: 0.001, Max: 0.004},
			{Name: "predator_loss_rate", Min: 0.04, Max: 0.08},
		},
		Runs: 50,
		Seed: 42,
	}
}

// Sample draws the concrete parameter combinations. Identical designs
// produce identical samples.
func (d Design) Sample() ([]map[string]float64, error) {
	if d.Runs < 1 {
		return nil, fmt.Errorf("%w: design needs at least one run", ecodyn.ErrInvalidParameter)
	}
	for _, u := range d.Uncertainties {
		if u.Min > u.Max {
			return nil, fmt.Errorf("%w: %s range [%g, %g] is inverted", ecodyn.ErrInvalidParameter, u.Name, u.Min, u.Max)
		}
	}

	rng := rand.New(rand.NewSource(d.Seed))
	samples := make([]map[string]float64, d.Runs)
	for i := range samples {
		params := make(map[string]float64, len(d.Uncertainties))
		for _, u := range d.Uncertainties {
			params[u.Name] = u.Min + rng.Float64()*(u.Max-u.Min)
		}
		samples[i] = params
	}
	return samples, nil
}
