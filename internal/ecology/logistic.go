package ecology

import (
	"fmt"

	"github.com/ecolab-sim/ecolab/internal/ecodyn"
)

// LogisticPrey is the Lotka-Volterra model with density-limited prey
// growth: the birth term is scaled by (1 − P/K) for carrying capacity K.
type LogisticPrey struct {
	LotkaVolterra
	capacity float64
}

func NewLogisticPrey() *LogisticPrey {
	return &LogisticPrey{
		LotkaVolterra: *NewLotkaVolterra(),
		capacity:      2000.0,
	}
}

func (l *LogisticPrey) Derive(s ecodyn.State, _ float64) ecodyn.State {
	p, q := s[0], s[1]

	dp := l.birth*p*(1.0-p/l.capacity) - l.predation*p*q
	dq := l.efficiency*l.predation*p*q - l.loss*q

	return ecodyn.State{dp, dq}
}

func (l *LogisticPrey) Params() map[string]float64 {
	params := l.LotkaVolterra.Params()
	params["carrying_capacity"] = l.capacity
	return params
}

func (l *LogisticPrey) SetParam(name string, value float64) error {
	if name == "carrying_capacity" {
		if value <= 0 {
			return fmt.Errorf("%w: carrying_capacity=%g must be positive", ecodyn.ErrInvalidParameter, value)
		}
		l.capacity = value
		return nil
	}
	return l.LotkaVolterra.SetParam(name, value)
}
