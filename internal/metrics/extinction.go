package metrics

import "github.com/ecolab-sim/ecolab/internal/ecodyn"

// Extinction reports the fraction of observed samples in which any
// population fell below the threshold. 0 means both species stayed
// above it for the whole run.
type Extinction struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewExtinction(threshold float64) *Extinction {
	return &Extinction{
		name:      "extinction_risk",
		threshold: threshold,
	}
}

func (e *Extinction) Name() string { return e.name }

func (e *Extinction) Observe(x ecodyn.State, t float64) {
	e.samples++
	for _, v := range x {
		if v < e.threshold {
			e.violations++
			break
		}
	}
}

func (e *Extinction) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return float64(e.violations) / float64(e.samples)
}

func (e *Extinction) Reset() {
	e.violations = 0
	e.samples = 0
}
