package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"execshed/internal/exec"
)

const gaugeCells = 40

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	stableStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	overloadStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	cooldownStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	activeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	suspendedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle       = lipgloss.NewStyle().Faint(true)
)

// stateBadge renders the system state label in its signal colour.
func stateBadge(s exec.SystemState) string {
	switch s {
	case exec.StateOverload:
		return overloadStyle.Render(s.String())
	case exec.StateCooldown:
		return cooldownStyle.Render(s.String())
	default:
		return stableStyle.Render(s.String())
	}
}

// gauge renders the load bar, clamped at 2.0x nominal capacity.
func gauge(loadSample float64) string {
	clamped := loadSample
	if clamped > 2.0 {
		clamped = 2.0
	}
	filled := int(clamped * gaugeCells / 2.0)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("-", gaugeCells-filled) + "]"
}

// Frame renders one cycle snapshot as a multi-line dashboard frame. When
// blinkDim is set, suspended task rows are dimmed; the presentation clock
// toggles it to draw the eye to degraded work.
func Frame(res exec.CycleResult, blinkDim bool) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("EXECUTIVE OVERLOAD CONTROLLER"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Cycle: %d\n", res.Cycle)
	fmt.Fprintf(&b, "Load:  %s %.2fx\n", gauge(res.Load), res.Load)
	fmt.Fprintf(&b, "State: %s\n\n", stateBadge(res.State))

	fmt.Fprintf(&b, "%-20s | %-8s | %s\n", "Task", "Priority", "Status")
	b.WriteString(strings.Repeat("-", 45))
	b.WriteString("\n")
	for _, t := range res.Tasks {
		status := activeStyle.Render("ACTIVE")
		if !t.Active {
			status = suspendedStyle.Render("SUSPENDED")
			if blinkDim {
				status = dimStyle.Render("SUSPENDED")
			}
		}
		fmt.Fprintf(&b, "%-20s | %-8d | %s\n", t.Name, t.Priority, status)
	}

	return b.String()
}

// Printer is a line-oriented presentation sink for batch runs: one frame per
// cycle, separated by a blank line.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a sink writing frames to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Render writes one frame for the given snapshot.
func (p *Printer) Render(res exec.CycleResult) {
	fmt.Fprintln(p.out, Frame(res, false))
}
