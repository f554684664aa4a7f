package backend

import (
	"context"
	"fmt"

	"github.com/ecolab-sim/ecolab/internal/ecodyn"
)

// Canonical output-variable names used by the experiment harness.
// Individual backends may expose the same series under different native
// identifiers; a VarMap translates between the two.
const (
	VarTime     = "time"
	VarPrey     = "prey"
	VarPredator = "predator"
)

// Configuration keys every backend accepts in its parameter map.
const (
	KeyInitialPrey     = "initial_prey"
	KeyInitialPredator = "initial_predator"
	KeyFinalTime       = "final_time"
	KeyTimeStep        = "time_step"
)

// Backend is the narrow contract an experiment runner needs: given a flat
// mapping from parameter name to numeric value, produce named time series.
type Backend interface {
	Name() string
	Outputs() []string
	Run(ctx context.Context, params map[string]float64) (map[string][]float64, error)
}

// VarMap maps canonical output names to a backend's native column names.
// Connectors disagree on the literal spelling of the time column, so the
// harness never assumes a universal identifier.
type VarMap map[string]string

// Resolve translates a canonical name into the backend's native one.
// Names absent from the map pass through unchanged.
func (m VarMap) Resolve(canonical string) string {
	if m == nil {
		return canonical
	}
	if native, ok := m[canonical]; ok {
		return native
	}
	return canonical
}

// Collect pulls the canonical outputs out of a backend's raw result,
// resolving names through the backend's VarMap. A missing series is an
// ErrUnknownOutput naming both the backend and the variable.
func Collect(b Backend, m VarMap, raw map[string][]float64, wanted []string) (map[string][]float64, error) {
	out := make(map[string][]float64, len(wanted))
	for _, name := range wanted {
		series, ok := raw[m.Resolve(name)]
		if !ok {
			return nil, fmt.Errorf("%w: backend %s does not expose %q (native %q)",
				ecodyn.ErrUnknownOutput, b.Name(), name, m.Resolve(name))
		}
		out[name] = series
	}
	return out, nil
}
