package session

import "time"

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// Timer is a handle to a running tick schedule.
type Timer interface {
	// Stop cancels the schedule. After Stop returns the fire callback is
	// never invoked again. Stop is idempotent.
	Stop()
}

// Clock schedules countdown ticks. Implementations must call fire on the
// same execution context that drives the Machine.
type Clock interface {
	Start(interval time.Duration, fire func()) Timer
}

// ManualClock is a Clock advanced explicitly, for tests and headless use.
type ManualClock struct {
	timers []*manualTimer
}

type manualTimer struct {
	fire    func()
	stopped bool
}

func (t *manualTimer) Stop() {
	t.stopped = true
}

// NewManualClock returns a clock that only ticks when Advance is called.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Start implements Clock.
func (c *ManualClock) Start(_ time.Duration, fire func()) Timer {
	t := &manualTimer{fire: fire}
	c.timers = append(c.timers, t)
	return t
}

// Advance delivers n ticks to every timer that is still active.
func (c *ManualClock) Advance(n int) {
	for i := 0; i < n; i++ {
		for _, t := range c.timers {
			if !t.stopped {
				t.fire()
			}
		}
	}
}

// Active returns the number of timers not yet stopped.
func (c *ManualClock) Active() int {
	count := 0
	for _, t := range c.timers {
		if !t.stopped {
			count++
		}
	}
	return count
}
