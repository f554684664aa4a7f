package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/ecolab-sim/ecolab/internal/ecodyn"
)

type Simulator struct {
	sys        ecodyn.System
	integrator ecodyn.Integrator
	metrics    []ecodyn.Metric
	observers  []ecodyn.Observer
}

func New(sys ecodyn.System, integrator ecodyn.Integrator) *Simulator {
	return &Simulator{
		sys:        sys,
		integrator: integrator,
		metrics:    make([]ecodyn.Metric, 0),
		observers:  make([]ecodyn.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m ecodyn.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o ecodyn.Observer) { s.observers = append(s.observers, o) }

// Run integrates the system from x0 over cfg.Duration in fixed steps of
// cfg.Dt and returns the full trajectory. The first recorded sample is
// (0, x0); the run fails before the first step if the configuration or
// the system's parameters are invalid, and produces no partial output
// on overflow.
func (s *Simulator) Run(ctx context.Context, x0 ecodyn.State, cfg ecodyn.Config) (*ecodyn.Result, error) {
	steps, err := s.validate(x0, cfg)
	if err != nil {
		return nil, err
	}

	result := &ecodyn.Result{
		Times:   make([]float64, 0, steps+1),
		States:  make([]ecodyn.State, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	result.Times = append(result.Times, 0)
	result.States = append(result.States, x.Clone())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		t := float64(i) * cfg.Dt

		for _, m := range s.metrics {
			m.Observe(x, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(x, t)
		}

		x = s.integrator.Step(s.sys, x, t, cfg.Dt)

		if cfg.ValidateState && !x.IsValid() {
			return nil, &ecodyn.RunError{Step: i, Time: t, Wrapped: ecodyn.ErrNumericOverflow}
		}

		result.StepsTaken++
		result.Times = append(result.Times, float64(i+1)*cfg.Dt)
		result.States = append(result.States, x.Clone())
	}

	for _, m := range s.metrics {
		m.Observe(x, cfg.Duration)
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// validate checks the timing configuration and, when the system exposes
// one, its parameterization. Step sizes that do not evenly subdivide the
// duration are rejected rather than rounded, so every trajectory for a
// given configuration has a deterministic fixed length.
func (s *Simulator) validate(x0 ecodyn.State, cfg ecodyn.Config) (int, error) {
	if cfg.Dt <= 0 {
		return 0, fmt.Errorf("%w: dt=%g must be positive", ecodyn.ErrInvalidParameter, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return 0, fmt.Errorf("%w: duration=%g must be positive", ecodyn.ErrInvalidParameter, cfg.Duration)
	}
	steps := int(math.Round(cfg.Duration / cfg.Dt))
	if steps < 1 || math.Abs(float64(steps)*cfg.Dt-cfg.Duration) > 1e-9*cfg.Duration {
		return 0, fmt.Errorf("%w: dt=%g, duration=%g", ecodyn.ErrStepMismatch, cfg.Dt, cfg.Duration)
	}
	if len(x0) != s.sys.StateDim() {
		return 0, fmt.Errorf("%w: state dim %d, system wants %d", ecodyn.ErrInvalidParameter, len(x0), s.sys.StateDim())
	}
	if v, ok := s.sys.(ecodyn.Validator); ok {
		if err := v.Validate(); err != nil {
			return 0, err
		}
	}
	return steps, nil
}
