package exec

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// LoadSource supplies one load sample per control cycle. Implementations may
// be random, replayed from a recording, or wired to a real sensor.
type LoadSource interface {
	Next() float64
}

// Sink receives the snapshot of each evaluated cycle.
type Sink interface {
	Render(CycleResult)
}

// Runner drives the controller from a tick clock: one load sample and one
// EvaluateCycle per tick, with each snapshot streamed to the sink. It is the
// single caller the controller's contract requires.
type Runner struct {
	ctrl   *Controller
	source LoadSource
	sink   Sink
	clock  *TickClock
	cycles int
	log    *slog.Logger

	results chan CycleResult
	runErr  error

	// trace logging
	csvFile   *os.File
	csvWriter *csv.Writer
}

// NewRunner wires a controller to its load source and presentation sink.
// The run length and tick cadence come from cfg.
func NewRunner(ctrl *Controller, source LoadSource, sink Sink, cfg Config, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		ctrl:    ctrl,
		source:  source,
		sink:    sink,
		clock:   NewTickClock(tickInterval(cfg), 16),
		cycles:  cfg.Cycles,
		log:     log,
		results: make(chan CycleResult, 16),
	}
}

// EnableCSVTrace opens the given file path for CSV logging of cycle records.
// Must be called before Run().
func (r *Runner) EnableCSVTrace(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)

	// write header
	w.Write([]string{"cycle", "load", "state", "pressure", "suspended"})
	w.Flush()
	r.csvFile = f
	r.csvWriter = w
	return nil
}

// Run executes the configured number of cycles and blocks until they finish
// or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	r.clock.Start()
	go r.loop(ctx)

	for res := range r.results {
		r.handle(res)
	}

	if r.csvFile != nil {
		r.csvWriter.Flush()
		r.csvFile.Close()
	}

	return r.runErr
}

// loop evaluates one cycle per clock tick and streams snapshots to Run.
func (r *Runner) loop(ctx context.Context) {
	defer func() {
		r.clock.Stop()
		close(r.results)
	}()

	prev := StateStable
	for i := 0; i < r.cycles; i++ {
		select {
		case <-ctx.Done():
			r.runErr = ctx.Err()
			return
		case <-r.clock.C():
		}

		res, err := r.ctrl.EvaluateCycle(r.source.Next())
		if err != nil {
			r.runErr = fmt.Errorf("cycle %d: %w", i+1, err)
			return
		}

		if res.State != prev {
			r.log.Info("executive state changed",
				"cycle", res.Cycle,
				"from", prev.String(),
				"to", res.State.String(),
				"load", res.Load,
				"pressure", res.Pressure,
			)
		}
		prev = res.State

		select {
		case r.results <- res:
		case <-ctx.Done():
			r.runErr = ctx.Err()
			return
		}
	}
}

func (r *Runner) handle(res CycleResult) {
	if r.sink != nil {
		r.sink.Render(res)
	}

	// CSV output
	if r.csvWriter != nil {
		rec := []string{
			strconv.FormatUint(res.Cycle, 10),
			fmt.Sprintf("%.2f", res.Load),
			res.State.String(),
			strconv.FormatUint(uint64(res.Pressure), 10),
			strconv.Itoa(res.Suspended()),
		}
		r.csvWriter.Write(rec)
		r.csvWriter.Flush()
	}
}

func tickInterval(cfg Config) time.Duration {
	return time.Duration(cfg.TickMS) * time.Millisecond
}
