// Package session implements the timed typing session state machine.
package session

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/fastcode/internal/metrics"
	"github.com/verte-zerg/fastcode/internal/model"
)

// DefaultDuration is the session length in seconds.
const DefaultDuration = 60

// ErrEmptyCatalog is returned when a machine is built without snippets.
var ErrEmptyCatalog = errors.New("snippet catalog is empty")

// State is the coarse session phase.
type State int

const (
	Idle State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "idle"
	}
}

// Snapshot is a copy of the session state for rendering.
type Snapshot struct {
	ActiveSnippetIndex int
	Snippet            model.CodeSnippet
	TypedText          []rune
	RemainingSeconds   int
	IsRunning          bool
	IsFinished         bool
	TooltipVisible     bool
}

// State derives the phase from the running and finished flags.
func (s Snapshot) State() State {
	switch {
	case s.IsFinished:
		return Finished
	case s.IsRunning:
		return Running
	default:
		return Idle
	}
}

// Machine owns one typing session. It is not safe for concurrent use; keys
// and ticks must be delivered from a single goroutine.
type Machine struct {
	catalog  []model.CodeSnippet
	index    int
	target   []rune
	duration int
	clock    Clock
	timer    Timer

	typed          []rune
	remaining      int
	running        bool
	finished       bool
	tooltipVisible bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithDuration overrides the session length in seconds.
func WithDuration(seconds int) Option {
	return func(m *Machine) {
		if seconds > 0 {
			m.duration = seconds
		}
	}
}

// WithSnippetIndex selects the initial snippet.
func WithSnippetIndex(index int) Option {
	return func(m *Machine) {
		if index >= 0 && index < len(m.catalog) {
			m.index = index
		}
	}
}

// New builds an idle machine over the given catalog.
func New(catalog []model.CodeSnippet, clock Clock, opts ...Option) (*Machine, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	if clock == nil {
		return nil, fmt.Errorf("clock is nil")
	}
	m := &Machine{
		catalog:  catalog,
		clock:    clock,
		duration: DefaultDuration,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.target = []rune(m.catalog[m.index].Code)
	m.Reset()
	return m, nil
}

// HandleKey applies a keystroke and reports whether it was accepted.
func (m *Machine) HandleKey(k Key) bool {
	if m.finished || k.hasModifier() {
		return false
	}
	switch k.Type {
	case KeyRune:
		if !isPrintable(k.Rune) {
			return false
		}
		m.typed = append(m.typed, k.Rune)
	case KeyBackspace:
		if len(m.typed) == 0 {
			return false
		}
		m.typed = m.typed[:len(m.typed)-1]
	case KeyEnter:
		m.typed = append(m.typed, '\n')
	case KeyTab:
		m.typed = append(m.typed, '\t')
	default:
		return false
	}
	m.tooltipVisible = false
	m.Start()
	return true
}

// Start begins the countdown from Idle. It is a no-op otherwise.
func (m *Machine) Start() {
	if m.running || m.finished {
		return
	}
	m.running = true
	m.timer = m.clock.Start(TickInterval, m.Tick)
}

// Tick advances the countdown by one second while running.
func (m *Machine) Tick() {
	if !m.running {
		return
	}
	if m.remaining > 0 {
		m.remaining--
	}
	if m.remaining == 0 {
		m.stopTimer()
		m.running = false
		m.finished = true
	}
}

// Reset returns the machine to Idle on the current snippet.
func (m *Machine) Reset() {
	m.stopTimer()
	m.typed = nil
	m.remaining = m.duration
	m.running = false
	m.finished = false
	m.tooltipVisible = true
}

// SelectSnippet resets the session and switches to the snippet at index.
// Selecting the active snippet leaves the session untouched.
func (m *Machine) SelectSnippet(index int) error {
	if index < 0 || index >= len(m.catalog) {
		return fmt.Errorf("snippet index %d out of range [0,%d)", index, len(m.catalog))
	}
	if index == m.index {
		return nil
	}
	m.Reset()
	m.index = index
	m.target = []rune(m.catalog[index].Code)
	return nil
}

// Cycle resets and moves to the next (dir > 0) or previous snippet, wrapping.
func (m *Machine) Cycle(dir int) {
	step := 1
	if dir < 0 {
		step = -1
	}
	n := len(m.catalog)
	m.Reset()
	m.index = (m.index + step + n) % n
	m.target = []rune(m.catalog[m.index].Code)
}

// ReplaceCatalog swaps in a new catalog, keeping the active snippet by ID when
// it is still present. The session is reset either way.
func (m *Machine) ReplaceCatalog(catalog []model.CodeSnippet) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}
	currentID := m.catalog[m.index].ID
	next := 0
	for i, s := range catalog {
		if s.ID == currentID {
			next = i
			break
		}
	}
	m.Reset()
	m.catalog = catalog
	m.index = next
	m.target = []rune(catalog[next].Code)
	return nil
}

// Close stops any scheduled ticks.
func (m *Machine) Close() {
	m.stopTimer()
	m.running = false
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() Snapshot {
	typed := make([]rune, len(m.typed))
	copy(typed, m.typed)
	return Snapshot{
		ActiveSnippetIndex: m.index,
		Snippet:            m.catalog[m.index],
		TypedText:          typed,
		RemainingSeconds:   m.remaining,
		IsRunning:          m.running,
		IsFinished:         m.finished,
		TooltipVisible:     m.tooltipVisible,
	}
}

// Metrics computes live metrics for the current state.
func (m *Machine) Metrics() metrics.Metrics {
	return metrics.Compute(m.typed, m.target, m.Elapsed(), m.finished)
}

// Elapsed returns seconds consumed from the session duration.
func (m *Machine) Elapsed() int {
	return m.duration - m.remaining
}

// Duration returns the configured session length in seconds.
func (m *Machine) Duration() int {
	return m.duration
}

// Catalog returns the snippets the machine cycles through.
func (m *Machine) Catalog() []model.CodeSnippet {
	return m.catalog
}

// Target returns the reference text of the active snippet.
func (m *Machine) Target() []rune {
	return m.target
}

func (m *Machine) stopTimer() {
	if m.timer == nil {
		return
	}
	m.timer.Stop()
	m.timer = nil
}
