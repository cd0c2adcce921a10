package exec

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidLoad reports a load sample outside the controller's input domain
// (NaN, infinite, or negative). The controller state is untouched when a
// sample is rejected.
var ErrInvalidLoad = errors.New("invalid load sample")

// Controller is the overload executive. It consumes one load sample per
// control cycle, tracks overload pressure with a hysteresis counter, and
// suspends or resumes degradable tasks so the most critical work keeps
// running.
//
// The contract assumes a single caller drives cycles serially; there is no
// internal locking.
type Controller struct {
	tasks             []task // priority order, fixed at construction
	criticalPriority  int
	overloadThreshold float64

	cycle         uint64
	overloadCount uint32
}

// NewController builds a controller from the given configuration. The task
// roster and thresholds are fixed for the controller's lifetime.
func NewController(cfg Config) (*Controller, error) {
	arena, err := buildArena(cfg.Tasks)
	if err != nil {
		return nil, fmt.Errorf("build task arena: %w", err)
	}
	return &Controller{
		tasks:             arena,
		criticalPriority:  cfg.CriticalPriority,
		overloadThreshold: cfg.OverloadThreshold,
	}, nil
}

// Cycle returns how many evaluations the controller has performed.
func (c *Controller) Cycle() uint64 { return c.cycle }

// OverloadCount returns the current hysteresis counter. It moves by at most
// one per cycle and never goes negative.
func (c *Controller) OverloadCount() uint32 { return c.overloadCount }

// EvaluateCycle runs one control cycle with the given load sample, where 1.0
// means 100% of nominal capacity. It returns a priority-ordered snapshot of
// the resulting executive state.
//
// Samples above the overload threshold raise the hysteresis counter and
// suspend every task below the critical priority. Acceptable samples drain
// the counter; suspended tasks are resumed only once it reaches zero, which
// keeps noisy load near the threshold from flapping tasks on and off.
func (c *Controller) EvaluateCycle(load float64) (CycleResult, error) {
	if math.IsNaN(load) || math.IsInf(load, 0) || load < 0 {
		return CycleResult{}, fmt.Errorf("%w: %v", ErrInvalidLoad, load)
	}

	c.cycle++

	overloaded := load > c.overloadThreshold
	if overloaded {
		c.overloadCount++
	} else if c.overloadCount > 0 {
		c.overloadCount--
	}

	var state SystemState
	switch {
	case overloaded:
		state = StateOverload
	case c.overloadCount == 0:
		state = StateStable
	default:
		state = StateCooldown
	}

	// Activation is re-derived from priority, never toggled incrementally,
	// so repeated OVERLOAD cycles are idempotent. COOLDOWN leaves the
	// partition exactly as the last OVERLOAD cycle set it.
	switch state {
	case StateOverload:
		for i := range c.tasks {
			c.tasks[i].active = c.tasks[i].priority <= c.criticalPriority
		}
	case StateStable:
		for i := range c.tasks {
			c.tasks[i].active = true
		}
	}

	return c.snapshot(load, state), nil
}

func (c *Controller) snapshot(load float64, state SystemState) CycleResult {
	tasks := make([]TaskStatus, len(c.tasks))
	for i, t := range c.tasks {
		tasks[i] = TaskStatus{Name: t.name, Priority: t.priority, Active: t.active}
	}
	return CycleResult{
		Cycle:    c.cycle,
		Load:     load,
		State:    state,
		Pressure: c.overloadCount,
		Tasks:    tasks,
	}
}
