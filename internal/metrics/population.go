package metrics

import (
	"math"

	"github.com/ecolab-sim/ecolab/internal/ecodyn"
)

// Peak tracks the maximum value of one state component over a run.
type Peak struct {
	name string
	idx  int
	max  float64
	seen bool
}

func NewPeak(name string, idx int) *Peak {
	return &Peak{name: name, idx: idx}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(x ecodyn.State, t float64) {
	if p.idx >= len(x) {
		return
	}
	if !p.seen || x[p.idx] > p.max {
		p.max = x[p.idx]
		p.seen = true
	}
}

func (p *Peak) Value() float64 {
	if !p.seen {
		return math.NaN()
	}
	return p.max
}

func (p *Peak) Reset() {
	p.max = 0
	p.seen = false
}

// Trough tracks the minimum value of one state component over a run.
type Trough struct {
	name string
	idx  int
	min  float64
	seen bool
}

func NewTrough(name string, idx int) *Trough {
	return &Trough{name: name, idx: idx}
}

func (m *Trough) Name() string { return m.name }

func (m *Trough) Observe(x ecodyn.State, t float64) {
	if m.idx >= len(x) {
		return
	}
	if !m.seen || x[m.idx] < m.min {
		m.min = x[m.idx]
		m.seen = true
	}
}

func (m *Trough) Value() float64 {
	if !m.seen {
		return math.NaN()
	}
	return m.min
}

func (m *Trough) Reset() {
	m.min = 0
	m.seen = false
}

// Mean accumulates the running mean of one state component.
type Mean struct {
	name    string
	idx     int
	sum     float64
	samples int
}

func NewMean(name string, idx int) *Mean {
	return &Mean{name: name, idx: idx}
}

func (m *Mean) Name() string { return m.name }

func (m *Mean) Observe(x ecodyn.State, t float64) {
	if m.idx >= len(x) {
		return
	}
	m.sum += x[m.idx]
	m.samples++
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return math.NaN()
	}
	return m.sum / float64(m.samples)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.samples = 0
}
