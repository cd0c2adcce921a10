package console

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"execshed/internal/exec"
	"execshed/internal/load"
)

func newTestModel(t *testing.T, cycles int, samples ...float64) Model {
	t.Helper()
	cfg := exec.Load("")
	cfg.Cycles = cycles
	cfg.TickMS = 10
	ctrl, err := exec.NewController(cfg)
	require.NoError(t, err)
	return NewModel(ctrl, load.NewSequence(samples...), cfg)
}

// isQuit reports whether cmd produces tea.QuitMsg.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_InitialViewBeforeFirstCycle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 5, 0.8)
	assert.Contains(t, m.View(), "INIT")
}

func TestModel_CycleMsgEvaluatesOneCycle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 5, 1.5)

	updated, cmd := m.Update(cycleMsg(time.Now()))
	m = updated.(Model)

	assert.False(t, isQuit(cmd), "should schedule the next cycle")
	view := m.View()
	assert.Contains(t, view, "Cycle: 1")
	assert.Contains(t, view, "OVERLOAD")
	assert.Contains(t, view, "SUSPENDED")
}

func TestModel_QuitsAfterConfiguredCycles(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 2, 0.8, 0.8)

	updated, cmd := m.Update(cycleMsg(time.Now()))
	m = updated.(Model)
	assert.False(t, isQuit(cmd))

	updated, cmd = m.Update(cycleMsg(time.Now()))
	m = updated.(Model)
	assert.True(t, isQuit(cmd))
	require.NoError(t, m.Err())
}

func TestModel_BlinkTogglesWithoutTouchingController(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 5, 1.5)
	updated, _ := m.Update(cycleMsg(time.Now()))
	m = updated.(Model)

	before := m.blinkDim
	updated, _ = m.Update(blinkMsg(time.Now()))
	m = updated.(Model)

	assert.NotEqual(t, before, m.blinkDim)
	assert.Contains(t, m.View(), "Cycle: 1", "blink must not advance the cycle")
}

func TestModel_QKeyQuits(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 5, 0.8)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, isQuit(cmd))
}
