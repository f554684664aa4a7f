package ecodyn

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

type Configurable interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}

// Validator is implemented by systems that can reject their current
// parameterization before a run starts.
type Validator interface {
	Validate() error
}

type Integrator interface {
	Step(sys System, x State, t float64, dt float64) State
}

type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(x State, t float64)
}

type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

// DefaultConfig returns the course-standard horizon: one year of model
// time at a quarter-day step, 1461 samples including t=0.
func DefaultConfig() Config {
	return Config{
		Dt:            0.25,
		Duration:      365.0,
		ValidateState: true,
	}
}

// Result holds one trajectory. Times, and the states recorded at them,
// always have equal length; index 0 is the initial condition at t=0.
type Result struct {
	Times      []float64
	States     []State
	Metrics    map[string]float64
	StepsTaken int
}

// Series extracts one state component as a flat slice.
func (r *Result) Series(idx int) []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		if idx < len(s) {
			out[i] = s[idx]
		}
	}
	return out
}

