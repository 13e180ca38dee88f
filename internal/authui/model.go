// Package authui provides the Bubble Tea login and signup forms.
package authui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/fastcode/internal/auth"
	"github.com/verte-zerg/fastcode/internal/i18n"
	"github.com/verte-zerg/fastcode/internal/prefs"
	"github.com/verte-zerg/fastcode/internal/theme"
)

// Mode selects which form is shown.
type Mode int

const (
	Login Mode = iota
	Signup
)

type field struct {
	label  string
	secret bool
}

var (
	loginFields = []field{
		{label: "auth.login.email"},
		{label: "auth.login.password", secret: true},
	}
	signupFields = []field{
		{label: "auth.signup.name"},
		{label: "auth.signup.email"},
		{label: "auth.signup.password", secret: true},
		{label: "auth.signup.confirm", secret: true},
	}
)

// phaseMsg advances the submission timeline. seq ties it to one submit.
type phaseMsg struct {
	seq int
}

// Model implements the Bubble Tea auth UI.
type Model struct {
	mode       Mode
	fields     []field
	inputs     []textinput.Model
	focus      int
	remember   bool
	submission *auth.Submission
	seq        int
	notice     string

	prefs *prefs.Preferences
	theme theme.Theme

	width  int
	height int
}

// NewModel constructs a login or signup form.
func NewModel(mode Mode, p *prefs.Preferences, th theme.Theme) *Model {
	m := &Model{
		mode:  mode,
		prefs: p,
		theme: th,
	}
	delay := auth.LoginDelay
	m.fields = loginFields
	if mode == Signup {
		delay = auth.SignupDelay
		m.fields = signupFields
	}
	m.submission = auth.NewSubmission(delay)
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		m.inputs[i] = newInput(f)
	}
	m.inputs[0].Focus()
	return m
}

func newInput(f field) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 128
	input.Cursor.SetMode(cursor.CursorStatic)
	if f.secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '•'
	}
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case phaseMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		return m, m.schedule(m.submission.Advance())
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			return m, m.setFocus(m.focus + 1)
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.setFocus(m.focus - 1)
		case tea.KeyCtrlR:
			if m.mode == Login {
				m.remember = !m.remember
			}
			return m, nil
		case tea.KeyEnter:
			if m.focus < len(m.inputs)-1 {
				return m, m.setFocus(m.focus + 1)
			}
			return m, m.submit()
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(index int) tea.Cmd {
	n := len(m.inputs)
	m.focus = (index%n + n) % n
	cmds := make([]tea.Cmd, 0, n)
	for i := range m.inputs {
		if i == m.focus {
			cmds = append(cmds, m.inputs[i].Focus())
			continue
		}
		m.inputs[i].Blur()
	}
	return tea.Batch(cmds...)
}

func (m *Model) value(i int) string {
	return m.inputs[i].Value()
}

func (m *Model) validate() error {
	if m.mode == Signup {
		return auth.SignupForm{
			Name:     m.value(0),
			Email:    m.value(1),
			Password: m.value(2),
			Confirm:  m.value(3),
		}.Validate()
	}
	return auth.LoginForm{
		Email:    m.value(0),
		Password: m.value(1),
		Remember: m.remember,
	}.Validate()
}

func (m *Model) submit() tea.Cmd {
	delay, err := m.submission.Submit(m.validate)
	if err != nil {
		m.notice = noticeKey(err)
		return nil
	}
	if delay == 0 {
		return nil
	}
	m.notice = ""
	m.seq++
	return m.schedule(delay)
}

func (m *Model) schedule(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return nil
	}
	seq := m.seq
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return phaseMsg{seq: seq}
	})
}

func noticeKey(err error) string {
	switch {
	case errors.Is(err, auth.ErrPasswordMismatch):
		return "auth.error.mismatch"
	case errors.Is(err, auth.ErrPasswordTooShort):
		return "auth.error.short"
	default:
		return "auth.error.required"
	}
}

// Status returns the submission phase.
func (m *Model) Status() auth.Status {
	return m.submission.Status()
}

func (m *Model) tr() i18n.Translator {
	return i18n.Translator{Locale: m.prefs.Locale()}
}

func (m *Model) prefix() string {
	if m.mode == Signup {
		return "auth.signup."
	}
	return "auth.login."
}

// View implements tea.Model.
func (m *Model) View() string {
	tr := m.tr()
	p := m.prefix()
	lines := []string{
		m.theme.Accent.Render(tr.T("app.brandName")) + " " + m.theme.Muted.Render(tr.T("app.brandTagline")),
		m.theme.Title.Render(tr.T(p + "title")),
		"",
	}
	for i, f := range m.fields {
		label := tr.T(f.label)
		if i == m.focus {
			label = m.theme.Accent.Render("› " + label)
		} else {
			label = m.theme.Muted.Render("  " + label)
		}
		lines = append(lines, label, "  "+m.inputs[i].View())
	}
	if m.mode == Login {
		box := "[ ]"
		if m.remember {
			box = "[x]"
		}
		lines = append(lines, m.theme.Muted.Render("  "+box+" "+tr.T("auth.login.remember")+" (ctrl+r)"))
	}

	button := tr.T(p + "button")
	if m.submission.Busy() {
		button += "..."
	}
	lines = append(lines, "", m.theme.Tooltip.Render(button))

	switch {
	case m.notice != "":
		lines = append(lines, m.theme.Error.Render(tr.T(m.notice)))
	case m.submission.Status() == auth.StatusSuccess:
		lines = append(lines, m.theme.Success.Render(tr.T(p+"success")))
	}
	lines = append(lines, "", m.theme.Muted.Render(tr.T("auth.form.hint")))

	body := m.theme.Box.Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
