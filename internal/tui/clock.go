package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/fastcode/internal/session"
)

// tickMsg is delivered once per interval for a live timer.
type tickMsg struct {
	id int
}

// teaClock drives session timers through tea.Tick so every tick is handled
// on the Update goroutine. Ticks for stopped timers are dropped.
type teaClock struct {
	nextID  int
	timers  map[int]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	clock    *teaClock
	id       int
	interval time.Duration
	fire     func()
}

func (t *teaTimer) Stop() {
	delete(t.clock.timers, t.id)
}

func newTeaClock() *teaClock {
	return &teaClock{timers: map[int]*teaTimer{}}
}

// Start implements session.Clock.
func (c *teaClock) Start(interval time.Duration, fire func()) session.Timer {
	c.nextID++
	t := &teaTimer{clock: c, id: c.nextID, interval: interval, fire: fire}
	c.timers[t.id] = t
	c.schedule(t)
	return t
}

func (c *teaClock) schedule(t *teaTimer) {
	id := t.id
	c.pending = append(c.pending, tea.Tick(t.interval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	}))
}

// deliver fires the timer for id and re-arms it while it stays active.
// It reports whether the tick belonged to a live timer.
func (c *teaClock) deliver(id int) bool {
	t, ok := c.timers[id]
	if !ok {
		return false
	}
	t.fire()
	if _, still := c.timers[id]; still {
		c.schedule(t)
	}
	return true
}

// drain returns the commands queued since the last call.
func (c *teaClock) drain() tea.Cmd {
	if len(c.pending) == 0 {
		return nil
	}
	cmds := c.pending
	c.pending = nil
	return tea.Batch(cmds...)
}

func (c *teaClock) active() int {
	return len(c.timers)
}
