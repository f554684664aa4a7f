package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ecolab-sim/ecolab/internal/ecodyn"
	"github.com/ecolab-sim/ecolab/internal/ecology"
	"github.com/ecolab-sim/ecolab/internal/integrators"
)

func newTestModel() Model {
	sys := ecology.NewLotkaVolterra()
	return NewLive("lotka_volterra", sys, integrators.NewEuler(),
		sys.DefaultState(), ecodyn.DefaultConfig(), 30)
}

func TestLiveTickAdvancesSimulation(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(tickMsg(time.Now()))
	m = updated.(Model)

	if m.t == 0 {
		t.Error("expected simulation time to advance on tick")
	}
	if len(m.prey) < 2 {
		t.Errorf("expected history to grow, got %d samples", len(m.prey))
	}
}

func TestLivePauseStopsAdvance(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	if !m.pause {
		t.Fatal("expected pause after space")
	}

	before := m.t
	updated, _ = m.Update(tickMsg(time.Now()))
	m = updated.(Model)
	if m.t != before {
		t.Error("paused view should not advance")
	}
}

func TestLiveQuitKey(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestLiveViewRenders(t *testing.T) {
	m := newTestModel()
	view := m.View()

	if !strings.Contains(view, "lotka_volterra") {
		t.Error("view missing model name")
	}
	if !strings.Contains(view, "prey") || !strings.Contains(view, "predator") {
		t.Error("view missing population captions")
	}
}
