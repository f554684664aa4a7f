package experiment

import (
	"fmt"
	"sort"

	"github.com/ecolab-sim/ecolab/internal/backend"
	"github.com/ecolab-sim/ecolab/internal/ecodyn"
	"github.com/ecolab-sim/ecolab/internal/ecology"
	"github.com/ecolab-sim/ecolab/internal/integrators"
	"github.com/ecolab-sim/ecolab/internal/metrics"
)

type Registry struct {
	models      map[string]func() ecodyn.System
	integrators map[string]func() ecodyn.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		models:      make(map[string]func() ecodyn.System),
		integrators: make(map[string]func() ecodyn.Integrator),
	}

	r.models["lotka_volterra"] = func() ecodyn.System { return ecology.NewLotkaVolterra() }
	r.models["logistic_prey"] = func() ecodyn.System { return ecology.NewLogisticPrey() }

	r.integrators["euler"] = func() ecodyn.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() ecodyn.Integrator { return integrators.NewRK4() }

	return r
}

func (r *Registry) GetModel(name string) (ecodyn.System, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetIntegrator(name string) (ecodyn.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

// GetBackend wires a registered (model, integrator) pair into the
// flat-map backend contract.
func (r *Registry) GetBackend(model, integrator string) (*backend.Native, error) {
	newModel, ok := r.models[model]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", model)
	}
	newStepper, ok := r.integrators[integrator]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", integrator)
	}
	name := model + "/" + integrator
	return backend.NewNative(name, newModel, newStepper), nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics are observed on every run command invocation.
func (r *Registry) DefaultMetrics() []ecodyn.Metric {
	return []ecodyn.Metric{
		metrics.NewPeak("peak_prey", 0),
		metrics.NewPeak("peak_predator", 1),
		metrics.NewTrough("min_prey", 0),
		metrics.NewTrough("min_predator", 1),
		metrics.NewMean("mean_prey", 0),
		metrics.NewMean("mean_predator", 1),
		metrics.NewExtinction(1.0),
	}
}
