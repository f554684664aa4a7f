package sim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ecolab-sim/ecolab/internal/ecodyn"
	"github.com/ecolab-sim/ecolab/internal/ecology"
	"github.com/ecolab-sim/ecolab/internal/integrators"
)

func newLV(t *testing.T, params map[string]float64) *ecology.LotkaVolterra {
	t.Helper()
	sys := ecology.NewLotkaVolterra()
	for name, v := range params {
		if err := sys.SetParam(name, v); err != nil {
			t.Fatalf("SetParam(%s, %g): %v", name, v, err)
		}
	}
	return sys
}

func TestRunTrajectoryShape(t *testing.T) {
	sys := ecology.NewLotkaVolterra()
	s := New(sys, integrators.NewEuler())

	result, err := s.Run(context.Background(), sys.DefaultState(), ecodyn.DefaultConfig())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Times) != 1461 {
		t.Fatalf("expected 1461 samples, got %d", len(result.Times))
	}
	if len(result.States) != len(result.Times) {
		t.Fatalf("times/states length mismatch: %d vs %d", len(result.Times), len(result.States))
	}
	if result.Times[0] != 0.0 {
		t.Errorf("expected t=0 first, got %f", result.Times[0])
	}
	if math.Abs(result.Times[1460]-365.0) > 1e-9 {
		t.Errorf("expected t=365 last, got %f", result.Times[1460])
	}
	for i := 1; i < len(result.Times); i++ {
		if math.Abs(result.Times[i]-result.Times[i-1]-0.25) > 1e-9 {
			t.Fatalf("uneven spacing at %d: %f", i, result.Times[i]-result.Times[i-1])
		}
	}
	if result.States[0][0] != 50.0 || result.States[0][1] != 20.0 {
		t.Errorf("first sample should be the initial condition, got %v", result.States[0])
	}
}

func TestRunDecoupledGrowthAndDecay(t *testing.T) {
	sys := newLV(t, map[string]float64{
		"predation_rate":      0,
		"predator_efficiency": 0,
	})
	s := New(sys, integrators.NewEuler())

	result, err := s.Run(context.Background(), ecodyn.State{50, 20}, ecodyn.DefaultConfig())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// prey is pure exponential growth, within Euler step-size error
	birth := sys.Params()["prey_birth_rate"]
	final := result.States[len(result.States)-1]
	expected := 50.0 * math.Exp(birth*365.0)
	if rel := math.Abs(final[0]-expected) / expected; rel > 0.05 {
		t.Errorf("prey growth off by %.1f%%: got %.1f, want ~%.1f", rel*100, final[0], expected)
	}

	// predator is pure decay, non-increasing throughout
	for i := 1; i < len(result.States); i++ {
		if result.States[i][1] > result.States[i-1][1] {
			t.Fatalf("predator count increased at step %d", i)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func() *ecodyn.Result {
		sys := ecology.NewLotkaVolterra()
		s := New(sys, integrators.NewEuler())
		result, err := s.Run(context.Background(), ecodyn.State{50, 20}, ecodyn.DefaultConfig())
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		return result
	}

	a, b := run(), run()
	for i := range a.States {
		if a.States[i][0] != b.States[i][0] || a.States[i][1] != b.States[i][1] {
			t.Fatalf("runs diverge at step %d: %v vs %v", i, a.States[i], b.States[i])
		}
	}
}

func TestRunIdempotent(t *testing.T) {
	sys := ecology.NewLotkaVolterra()
	s := New(sys, integrators.NewEuler())
	x0 := ecodyn.State{50, 20}

	first, err := s.Run(context.Background(), x0, ecodyn.DefaultConfig())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := s.Run(context.Background(), x0, ecodyn.DefaultConfig())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if x0[0] != 50 || x0[1] != 20 {
		t.Errorf("initial state mutated: %v", x0)
	}
	last := len(first.States) - 1
	if first.States[last][0] != second.States[last][0] {
		t.Errorf("second run differs from first")
	}
}

func TestRunSingleStepBoundary(t *testing.T) {
	sys := ecology.NewLotkaVolterra()
	s := New(sys, integrators.NewEuler())

	cfg := ecodyn.Config{Dt: 365, Duration: 365, ValidateState: true}
	result, err := s.Run(context.Background(), sys.DefaultState(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Times) != 2 {
		t.Fatalf("expected exactly 2 samples, got %d", len(result.Times))
	}
	if result.Times[0] != 0 || result.Times[1] != 365 {
		t.Errorf("expected t=0 and t=365, got %v", result.Times)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	sys := ecology.NewLotkaVolterra()
	s := New(sys, integrators.NewEuler())
	x0 := sys.DefaultState()

	tests := []struct {
		name string
		cfg  ecodyn.Config
		want error
	}{
		{"zero dt", ecodyn.Config{Dt: 0, Duration: 365}, ecodyn.ErrInvalidParameter},
		{"negative dt", ecodyn.Config{Dt: -0.25, Duration: 365}, ecodyn.ErrInvalidParameter},
		{"zero duration", ecodyn.Config{Dt: 0.25, Duration: 0}, ecodyn.ErrInvalidParameter},
		{"non-dividing step", ecodyn.Config{Dt: 0.3, Duration: 365}, ecodyn.ErrStepMismatch},
		{"step exceeds duration", ecodyn.Config{Dt: 400, Duration: 365}, ecodyn.ErrStepMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.Run(context.Background(), x0, tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if result != nil {
				t.Error("expected no partial output")
			}
		})
	}
}

type negativeLoss struct{ *ecology.LotkaVolterra }

func (n *negativeLoss) Validate() error {
	return ecodyn.ErrInvalidParameter
}

func TestRunRejectsInvalidModel(t *testing.T) {
	sys := &negativeLoss{ecology.NewLotkaVolterra()}
	s := New(sys, integrators.NewEuler())

	result, err := s.Run(context.Background(), sys.DefaultState(), ecodyn.DefaultConfig())
	if !errors.Is(err, ecodyn.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
	if result != nil {
		t.Error("expected no partial output")
	}
}

type explosive struct{}

func (e *explosive) Derive(x ecodyn.State, t float64) ecodyn.State {
	return ecodyn.State{x[0] * x[0]}
}
func (e *explosive) StateDim() int { return 1 }

func TestRunReportsOverflow(t *testing.T) {
	s := New(&explosive{}, integrators.NewEuler())

	cfg := ecodyn.Config{Dt: 1, Duration: 100, ValidateState: true}
	result, err := s.Run(context.Background(), ecodyn.State{10}, cfg)
	if !errors.Is(err, ecodyn.ErrNumericOverflow) {
		t.Fatalf("expected ErrNumericOverflow, got %v", err)
	}
	if result != nil {
		t.Error("expected no partial output on overflow")
	}
}

func TestRunContextCancel(t *testing.T) {
	sys := ecology.NewLotkaVolterra()
	s := New(sys, integrators.NewEuler())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Run(ctx, sys.DefaultState(), ecodyn.DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
