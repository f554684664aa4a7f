package integrators

import (
	"math"
	"testing"

	"github.com/ecolab-sim/ecolab/internal/ecodyn"
)

// exponential decay dx/dt = -x, exact solution x0·e^{-t}
type decay struct{}

func (d *decay) Derive(x ecodyn.State, t float64) ecodyn.State {
	return ecodyn.State{-x[0]}
}

func (d *decay) StateDim() int { return 1 }

func TestEulerConvergence(t *testing.T) {
	sys := &decay{}
	integ := NewEuler()

	x := ecodyn.State{1.0}
	dt := 0.001
	steps := 1000

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}

	expected := math.Exp(-1.0)
	if math.Abs(x[0]-expected) > 1e-3 {
		t.Errorf("expected %.6f, got %.6f", expected, x[0])
	}
}

func TestRK4Accuracy(t *testing.T) {
	sys := &decay{}
	integ := NewRK4()

	x := ecodyn.State{1.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}

	expected := math.Exp(-1.0)
	if math.Abs(x[0]-expected) > 1e-8 {
		t.Errorf("expected %.10f, got %.10f", expected, x[0])
	}
}

func TestEulerDoesNotMutateInput(t *testing.T) {
	sys := &decay{}
	integ := NewEuler()

	x := ecodyn.State{1.0}
	_ = integ.Step(sys, x, 0, 0.1)

	if x[0] != 1.0 {
		t.Errorf("input state mutated: got %f", x[0])
	}
}
