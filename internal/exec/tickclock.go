package exec

import (
	"sync/atomic"
	"time"
)

// TickClock emits control-cycle ticks and counts them atomically. The clock
// is the external trigger driving the controller; the controller itself never
// waits or sleeps.
type TickClock struct {
	ch       chan struct{}
	interval time.Duration
	count    atomic.Int64
	stop     chan struct{}
}

// NewTickClock creates a clock that will tick at the given interval once
// started.
func NewTickClock(interval time.Duration, buffer int) *TickClock {
	return &TickClock{
		ch:       make(chan struct{}, buffer),
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// C returns the tick channel. It is closed when the clock stops.
func (c *TickClock) C() <-chan struct{} { return c.ch }

// Start begins emitting ticks.
func (c *TickClock) Start() {
	ticker := time.NewTicker(c.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.count.Add(1)
				select {
				case c.ch <- struct{}{}:
				case <-c.stop:
					close(c.ch)
					return
				}
			case <-c.stop:
				close(c.ch)
				return
			}
		}
	}()
}

// Stop signals the clock to stop emitting ticks.
func (c *TickClock) Stop() {
	close(c.stop)
}

// Count returns the current tick count atomically.
func (c *TickClock) Count() int64 {
	return c.count.Load()
}
