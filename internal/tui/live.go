package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/ecolab-sim/ecolab/internal/ecodyn"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	preyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	predStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

const (
	graphWidth   = 70
	graphHeight  = 8
	historyLen   = 240
	stepsPerTick = 4
)

type tickMsg time.Time

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the live simulation view: each tick advances the integration
// a few steps and redraws scrolling population graphs.
type Model struct {
	sys        ecodyn.System
	integrator ecodyn.Integrator
	cfg        ecodyn.Config
	modelName  string

	x     ecodyn.State
	t     float64
	fps   int
	prey  []float64
	pred  []float64
	pause bool
	done  bool
}

func NewLive(modelName string, sys ecodyn.System, integrator ecodyn.Integrator, x0 ecodyn.State, cfg ecodyn.Config, fps int) Model {
	if fps < 1 {
		fps = 30
	}
	return Model{
		sys:        sys,
		integrator: integrator,
		cfg:        cfg,
		modelName:  modelName,
		x:          x0.Clone(),
		fps:        fps,
		prey:       []float64{x0[0]},
		pred:       []float64{x0[1]},
	}
}

func (m Model) Init() tea.Cmd {
	return tick(m.fps)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.pause = !m.pause
		}
	case tickMsg:
		if m.pause || m.done {
			return m, tick(m.fps)
		}
		for i := 0; i < stepsPerTick && m.t < m.cfg.Duration; i++ {
			m.x = m.integrator.Step(m.sys, m.x, m.t, m.cfg.Dt)
			m.t += m.cfg.Dt
			m.prey = append(m.prey, m.x[0])
			m.pred = append(m.pred, m.x[1])
		}
		if len(m.prey) > historyLen {
			m.prey = m.prey[len(m.prey)-historyLen:]
			m.pred = m.pred[len(m.pred)-historyLen:]
		}
		if m.t >= m.cfg.Duration {
			m.done = true
		}
		return m, tick(m.fps)
	}
	return m, nil
}

func (m Model) View() string {
	header := titleStyle.Render(fmt.Sprintf("%s  t=%.1f / %.0f", m.modelName, m.t, m.cfg.Duration))
	if m.pause {
		header += "  " + pausedStyle.Render("[paused]")
	} else if m.done {
		header += "  " + pausedStyle.Render("[done]")
	}

	preyGraph := asciigraph.Plot(m.prey,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(fmt.Sprintf("prey %.1f", m.x[0])),
	)
	predGraph := asciigraph.Plot(m.pred,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(fmt.Sprintf("predator %.1f", m.x[1])),
	)

	help := dimStyle.Render("space pause · q quit")

	return header + "\n\n" +
		preyStyle.Render(preyGraph) + "\n\n" +
		predStyle.Render(predGraph) + "\n\n" +
		help + "\n"
}

// RunLive blocks until the user quits the live view.
func RunLive(m Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
