package load

import (
	"math/rand"
	"time"
)

// Source supplies one load sample per control cycle, as a fraction of
// nominal capacity (1.0 = 100%).
type Source interface {
	Next() float64
}

// Levels picks uniformly from a fixed set of load levels, standing in for a
// real sensor signal. Pass a seeded *rand.Rand for reproducible runs; nil
// seeds from the wall clock.
type Levels struct {
	levels []float64
	rng    *rand.Rand
}

// NewLevels creates a random source over the given levels.
func NewLevels(levels []float64, rng *rand.Rand) *Levels {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Levels{levels: levels, rng: rng}
}

func (l *Levels) Next() float64 {
	return l.levels[l.rng.Intn(len(l.levels))]
}

// Sequence replays a fixed series of samples, for deterministic tests and
// recorded traces. Once exhausted it keeps returning the last sample.
type Sequence struct {
	samples []float64
	pos     int
}

// NewSequence creates a replay source over the given samples.
func NewSequence(samples ...float64) *Sequence {
	return &Sequence{samples: samples}
}

func (s *Sequence) Next() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	if s.pos >= len(s.samples) {
		return s.samples[len(s.samples)-1]
	}
	v := s.samples[s.pos]
	s.pos++
	return v
}

// Remaining returns how many samples are left before the sequence repeats
// its last value.
func (s *Sequence) Remaining() int {
	if s.pos >= len(s.samples) {
		return 0
	}
	return len(s.samples) - s.pos
}

// Func adapts a plain function to a Source.
type Func func() float64

func (f Func) Next() float64 { return f() }
