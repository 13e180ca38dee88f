package authui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/fastcode/internal/auth"
	"github.com/verte-zerg/fastcode/internal/i18n"
	"github.com/verte-zerg/fastcode/internal/prefs"
	"github.com/verte-zerg/fastcode/internal/theme"
)

func newTestModel(t *testing.T, mode Mode) *Model {
	t.Helper()
	th, err := theme.ByName(theme.Default)
	require.NoError(t, err)
	return NewModel(mode, prefs.Load(context.Background(), nil, nil), th)
}

func fill(m *Model, values ...string) {
	for i, v := range values {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(v)})
		if i < len(values)-1 {
			m.Update(tea.KeyMsg{Type: tea.KeyTab})
		}
	}
}

func enter(m *Model) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestSignupMismatchShowsNotice(t *testing.T) {
	m := newTestModel(t, Signup)
	fill(m, "Ada", "ada@example.com", "secret1", "secret2")
	cmd := enter(m)

	assert.Nil(t, cmd)
	assert.Equal(t, auth.StatusIdle, m.Status())
	assert.Contains(t, m.View(), "Passwords need to match.")
}

func TestSignupShortPassword(t *testing.T) {
	m := newTestModel(t, Signup)
	fill(m, "Ada", "ada@example.com", "abc", "abc")
	enter(m)
	assert.Equal(t, auth.StatusIdle, m.Status())
	assert.Contains(t, m.View(), "at least 6")
}

func TestSignupTimeline(t *testing.T) {
	m := newTestModel(t, Signup)
	fill(m, "Ada", "ada@example.com", "secret1", "secret1")
	cmd := enter(m)
	require.NotNil(t, cmd)
	assert.Equal(t, auth.StatusSubmitting, m.Status())
	assert.Contains(t, m.View(), "Sign up...")

	_, cmd = m.Update(phaseMsg{seq: m.seq})
	require.NotNil(t, cmd)
	assert.Equal(t, auth.StatusSuccess, m.Status())
	assert.Contains(t, m.View(), "Account created.")

	_, cmd = m.Update(phaseMsg{seq: m.seq})
	assert.Nil(t, cmd)
	assert.Equal(t, auth.StatusIdle, m.Status())
}

func TestStalePhaseIgnored(t *testing.T) {
	m := newTestModel(t, Login)
	fill(m, "ada@example.com", "secret1")
	require.NotNil(t, enter(m))
	m.Update(phaseMsg{seq: m.seq - 1})
	assert.Equal(t, auth.StatusSubmitting, m.Status())
}

func TestLoginShortPassword(t *testing.T) {
	m := newTestModel(t, Login)
	fill(m, "ada@example.com", "pw")
	assert.Nil(t, enter(m))
	assert.Equal(t, auth.StatusIdle, m.Status())
	assert.Contains(t, m.View(), "at least 6")
}

func TestLoginLabelsFollowLocale(t *testing.T) {
	m := newTestModel(t, Login)
	m.prefs.SetLocale(context.Background(), i18n.RU)
	view := m.View()
	assert.Contains(t, view, "Запомнить меня")
	assert.Contains(t, view, "tab далее")
}

func TestLoginRequiresFields(t *testing.T) {
	m := newTestModel(t, Login)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, enter(m))
	assert.Contains(t, m.View(), "All fields are required.")
}

func TestEnterAdvancesFocus(t *testing.T) {
	m := newTestModel(t, Signup)
	enter(m)
	assert.Equal(t, 1, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 3, m.focus)
}

func TestLoginRememberToggle(t *testing.T) {
	m := newTestModel(t, Login)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, m.remember)
	assert.Contains(t, m.View(), "[x]")
}
