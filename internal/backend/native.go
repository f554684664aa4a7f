package backend

import (
	"context"
	"fmt"

	"github.com/ecolab-sim/ecolab/internal/ecodyn"
	"github.com/ecolab-sim/ecolab/internal/sim"
)

// ModelFactory builds a fresh, configurable system for one run. Each run
// gets its own instance so parallel runs share nothing.
type ModelFactory func() ecodyn.System

// IntegratorFactory builds a fresh integrator for one run.
type IntegratorFactory func() ecodyn.Integrator

// Native adapts an in-process (model, integrator) pair to the flat-map
// backend contract.
type Native struct {
	name       string
	newModel   ModelFactory
	newStepper IntegratorFactory
	varMap     VarMap
}

func NewNative(name string, newModel ModelFactory, newStepper IntegratorFactory) *Native {
	return &Native{
		name:       name,
		newModel:   newModel,
		newStepper: newStepper,
	}
}

// WithVarMap overrides the native column names this backend publishes,
// mimicking connectors whose tools name the time axis differently.
func (n *Native) WithVarMap(m VarMap) *Native {
	n.varMap = m
	return n
}

func (n *Native) Name() string { return n.name }

func (n *Native) VarMap() VarMap { return n.varMap }

func (n *Native) Outputs() []string {
	return []string{
		n.varMap.Resolve(VarTime),
		n.varMap.Resolve(VarPrey),
		n.varMap.Resolve(VarPredator),
	}
}

// Run builds a fresh model, applies the sampled rate parameters and any
// configuration overrides, integrates, and returns the series under this
// backend's native names.
func (n *Native) Run(ctx context.Context, params map[string]float64) (map[string][]float64, error) {
	sys := n.newModel()

	cfg := ecodyn.DefaultConfig()
	x0 := ecodyn.State{50.0, 20.0}
	if d, ok := sys.(interface{ DefaultState() ecodyn.State }); ok {
		x0 = d.DefaultState()
	}

	for name, v := range params {
		switch name {
		case KeyInitialPrey:
			x0[0] = v
		case KeyInitialPredator:
			x0[1] = v
		case KeyFinalTime:
			cfg.Duration = v
		case KeyTimeStep:
			cfg.Dt = v
		default:
			c, ok := sys.(ecodyn.Configurable)
			if !ok {
				return nil, fmt.Errorf("%w: %s is not configurable", ecodyn.ErrInvalidParameter, n.name)
			}
			if err := c.SetParam(name, v); err != nil {
				return nil, err
			}
		}
	}

	result, err := sim.New(sys, n.newStepper()).Run(ctx, x0, cfg)
	if err != nil {
		return nil, err
	}

	return map[string][]float64{
		n.varMap.Resolve(VarTime):     result.Times,
		n.varMap.Resolve(VarPrey):     result.Series(0),
		n.varMap.Resolve(VarPredator): result.Series(1),
	}, nil
}
