package console

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"execshed/internal/exec"
)

// cycleMsg is sent once per control cycle to drive the next evaluation.
type cycleMsg time.Time

// blinkMsg is sent on the dashboard's own faster clock to toggle the
// suspended-row highlight. Blink state never touches the controller.
type blinkMsg time.Time

func cycleTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return cycleMsg(t)
	})
}

func blinkTick() tea.Cmd {
	return tea.Tick(400*time.Millisecond, func(t time.Time) tea.Msg {
		return blinkMsg(t)
	})
}

// Model is the live dashboard: one EvaluateCycle per refresh tick, rendered
// in place until the configured cycle count runs out or the user quits.
type Model struct {
	ctrl     *exec.Controller
	source   exec.LoadSource
	interval time.Duration
	cycles   int

	last     *exec.CycleResult
	blinkDim bool
	err      error
}

// NewModel creates a dashboard over the given controller and load source.
func NewModel(ctrl *exec.Controller, source exec.LoadSource, cfg exec.Config) Model {
	return Model{
		ctrl:     ctrl,
		source:   source,
		interval: time.Duration(cfg.TickMS) * time.Millisecond,
		cycles:   cfg.Cycles,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(cycleTick(m.interval), blinkTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case cycleMsg:
		res, err := m.ctrl.EvaluateCycle(m.source.Next())
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.last = &res
		if m.cycles > 0 && res.Cycle >= uint64(m.cycles) {
			return m, tea.Quit
		}
		return m, cycleTick(m.interval)

	case blinkMsg:
		m.blinkDim = !m.blinkDim
		return m, blinkTick()
	}

	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("dashboard stopped: %v\n", m.err)
	}
	if m.last == nil {
		return "Cycle: 0\nState: INIT\n\nwaiting for first cycle...\n"
	}
	return Frame(*m.last, m.blinkDim) + "\npress q to quit\n"
}

// Err reports the error that stopped the dashboard, if any.
func (m Model) Err() error { return m.err }
