package integrators

import "github.com/ecolab-sim/ecolab/internal/ecodyn"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys ecodyn.System, x ecodyn.State, t float64, dt float64) ecodyn.State {
	dx := sys.Derive(x, t)
	result := make(ecodyn.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
