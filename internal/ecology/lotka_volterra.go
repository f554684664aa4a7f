package ecology

import (
	"fmt"

	"github.com/ecolab-sim/ecolab/internal/ecodyn"
)

// LotkaVolterra implements the classic two-species predator-prey model.
// State: [prey, predator]
// Equations:
//
//	dP/dt = birth·P − predation·P·Q
//	dQ/dt = efficiency·predation·P·Q − loss·Q
type LotkaVolterra struct {
	birth      float64 // prey growth rate absent predators
	predation  float64 // prey removed per predator encounter
	efficiency float64 // consumed prey converted to predator growth
	loss       float64 // natural predator death rate
}

// Course uncertainty ranges for each rate.
var lvBounds = map[string][2]float64{
	"prey_birth_rate":     {0.015, 0.035},
	"predation_rate":      {0.0005, 0.003},
	"predator_efficiency": {0.001, 0.004},
	"predator_loss_rate":  {0.04, 0.08},
}

func NewLotkaVolterra() *LotkaVolterra {
	return &LotkaVolterra{
		birth:      0.025,
		predation:  0.001,
		efficiency: 0.002,
		loss:       0.05,
	}
}

func (l *LotkaVolterra) StateDim() int { return 2 }

func (l *LotkaVolterra) Derive(s ecodyn.State, _ float64) ecodyn.State {
	p, q := s[0], s[1]

	dp := l.birth*p - l.predation*p*q
	dq := l.efficiency*l.predation*p*q - l.loss*q

	return ecodyn.State{dp, dq}
}

func (l *LotkaVolterra) DefaultState() ecodyn.State {
	return ecodyn.State{50.0, 20.0}
}

func (l *LotkaVolterra) Params() map[string]float64 {
	return map[string]float64{
		"prey_birth_rate":     l.birth,
		"predation_rate":      l.predation,
		"predator_efficiency": l.efficiency,
		"predator_loss_rate":  l.loss,
	}
}

// SetParam implements ecodyn.Configurable. Values outside the declared
// uncertainty range are rejected; zero is allowed for the coupling rates
// so the decoupled (pure growth / pure decay) cases stay reachable.
func (l *LotkaVolterra) SetParam(name string, value float64) error {
	b, ok := lvBounds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ecodyn.ErrInvalidParameter, name)
	}
	if value != 0 && (value < b[0] || value > b[1]) {
		return fmt.Errorf("%w: %s=%g (want [%g, %g])", ecodyn.ErrParameterBounds, name, value, b[0], b[1])
	}
	switch name {
	case "prey_birth_rate":
		l.birth = value
	case "predation_rate":
		l.predation = value
	case "predator_efficiency":
		l.efficiency = value
	case "predator_loss_rate":
		l.loss = value
	}
	return nil
}

// Validate rejects negative rates before any integration step executes.
func (l *LotkaVolterra) Validate() error {
	for name, v := range l.Params() {
		if v < 0 {
			return fmt.Errorf("%w: %s=%g must be non-negative", ecodyn.ErrInvalidParameter, name, v)
		}
	}
	return nil
}

// Bounds returns the valid range for a rate parameter.
func Bounds(name string) (min, max float64, ok bool) {
	b, found := lvBounds[name]
	if !found {
		return 0, 0, false
	}
	return b[0], b[1], true
}
