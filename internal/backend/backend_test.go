package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/ecolab-sim/ecolab/internal/ecodyn"
	"github.com/ecolab-sim/ecolab/internal/ecology"
	"github.com/ecolab-sim/ecolab/internal/integrators"
)

func newEulerBackend() *Native {
	return NewNative("euler",
		func() ecodyn.System { return ecology.NewLotkaVolterra() },
		func() ecodyn.Integrator { return integrators.NewEuler() },
	)
}

func TestNativeRunReturnsCanonicalSeries(t *testing.T) {
	b := newEulerBackend()

	out, err := b.Run(context.Background(), map[string]float64{
		"prey_birth_rate":     0.025,
		"predation_rate":      0.001,
		"predator_efficiency": 0.002,
		"predator_loss_rate":  0.05,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, name := range []string{VarTime, VarPrey, VarPredator} {
		series, ok := out[name]
		if !ok {
			t.Fatalf("missing output %q", name)
		}
		if len(series) != 1461 {
			t.Errorf("output %q: expected 1461 samples, got %d", name, len(series))
		}
	}
}

func TestNativeRunAppliesOverrides(t *testing.T) {
	b := newEulerBackend()

	out, err := b.Run(context.Background(), map[string]float64{
		KeyInitialPrey:     80,
		KeyInitialPredator: 10,
		KeyFinalTime:       10,
		KeyTimeStep:        1,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(out[VarTime]) != 11 {
		t.Errorf("expected 11 samples, got %d", len(out[VarTime]))
	}
	if out[VarPrey][0] != 80 || out[VarPredator][0] != 10 {
		t.Errorf("initial overrides not applied: %f, %f", out[VarPrey][0], out[VarPredator][0])
	}
}

func TestNativeRunRejectsBadParameter(t *testing.T) {
	b := newEulerBackend()

	_, err := b.Run(context.Background(), map[string]float64{
		"predator_loss_rate": -0.05,
	})
	if !errors.Is(err, ecodyn.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}

func TestVarMapResolution(t *testing.T) {
	b := newEulerBackend().WithVarMap(VarMap{VarTime: "TIME"})

	out, err := b.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, ok := out["TIME"]; !ok {
		t.Fatal("expected native TIME column")
	}

	collected, err := Collect(b, b.VarMap(), out, []string{VarTime, VarPrey})
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if len(collected[VarTime]) != len(out["TIME"]) {
		t.Error("canonical time series not resolved through var map")
	}
}

func TestCollectMissingOutput(t *testing.T) {
	b := newEulerBackend()

	raw := map[string][]float64{"prey": {1, 2, 3}}
	_, err := Collect(b, nil, raw, []string{VarTime})
	if !errors.Is(err, ecodyn.ErrUnknownOutput) {
		t.Errorf("expected ErrUnknownOutput, got %v", err)
	}
}
