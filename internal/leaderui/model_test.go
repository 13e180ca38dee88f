package leaderui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/fastcode/internal/i18n"
	"github.com/verte-zerg/fastcode/internal/leaderboard"
	"github.com/verte-zerg/fastcode/internal/prefs"
	"github.com/verte-zerg/fastcode/internal/theme"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	th, err := theme.ByName(theme.Default)
	require.NoError(t, err)
	return NewModel(leaderboard.Entries(), prefs.Load(context.Background(), nil, nil), th)
}

func TestViewListsPlayers(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "Top players")
	assert.Contains(t, view, "Moorfo")
	assert.Contains(t, view, "Amelia R.")
	assert.Contains(t, view, "Elite")
}

func TestCursorMovesSelection(t *testing.T) {
	m := newTestModel(t)
	e, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Moorfo", e.Name)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	e, ok = m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Alex D.", e.Name)
	assert.Equal(t, leaderboard.BadgePro, leaderboard.BadgeFor(e.WPM))
}

func TestLocaleSwitchRelabelsHeaders(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, i18n.RU, m.prefs.Locale())
	assert.Contains(t, m.View(), "Лучшие игроки")
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestEmptyLeaderboard(t *testing.T) {
	th, err := theme.ByName(theme.Default)
	require.NoError(t, err)
	m := NewModel(nil, prefs.Load(context.Background(), nil, nil), th)
	assert.Contains(t, m.View(), "No players yet.")
	_, ok := m.Selected()
	assert.False(t, ok)
}
