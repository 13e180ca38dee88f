// Package leaderui provides the Bubble Tea top players screen.
package leaderui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/fastcode/internal/i18n"
	"github.com/verte-zerg/fastcode/internal/leaderboard"
	"github.com/verte-zerg/fastcode/internal/model"
	"github.com/verte-zerg/fastcode/internal/prefs"
	"github.com/verte-zerg/fastcode/internal/theme"
)

var columnWidths = []int{4, 14, 6, 10, 10, 14}

// Model implements the Bubble Tea leaderboard UI.
type Model struct {
	entries []model.LeaderboardEntry
	prefs   *prefs.Preferences
	theme   theme.Theme
	table   table.Model

	width  int
	height int
}

// NewModel constructs a leaderboard UI model.
func NewModel(entries []model.LeaderboardEntry, p *prefs.Preferences, th theme.Theme) *Model {
	m := &Model{
		entries: entries,
		prefs:   p,
		theme:   th,
	}
	m.table = table.New(table.WithFocused(true))
	m.table.SetStyles(tableStyles(th))
	m.refreshTable()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "ctrl+l", "L":
			m.prefs.SetLocale(context.Background(), i18n.Next(m.prefs.Locale()))
			m.refreshTable()
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Selected returns the highlighted entry.
func (m *Model) Selected() (model.LeaderboardEntry, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return model.LeaderboardEntry{}, false
	}
	return m.entries[idx], true
}

func (m *Model) tr() i18n.Translator {
	return i18n.Translator{Locale: m.prefs.Locale()}
}

func (m *Model) refreshTable() {
	tr := m.tr()
	headers := leaderboard.Headers(tr)
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: columnWidths[i]}
	}
	rows := make([]table.Row, 0, len(m.entries))
	for _, r := range leaderboard.Rows(m.entries, tr) {
		rows = append(rows, table.Row(r))
	}
	m.table.SetColumns(columns)
	m.table.SetRows(rows)
	// Header text plus its bottom border.
	m.table.SetHeight(len(rows) + 2)
}

// View implements tea.Model.
func (m *Model) View() string {
	tr := m.tr()
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(tr.T("topPlayers.title")))
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render(tr.T("topPlayers.description")))
	b.WriteString("\n\n")
	if len(m.entries) == 0 {
		b.WriteString(m.theme.Muted.Render("No players yet."))
	} else {
		b.WriteString(m.theme.Card.Render(m.table.View()))
		if e, ok := m.Selected(); ok {
			badge := tr.T(leaderboard.BadgeFor(e.WPM).TranslationKey())
			b.WriteString("\n")
			b.WriteString(m.theme.Accent.Render(e.Name) + " " + m.theme.Muted.Render(badge))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.Muted.Render(tr.T("topPlayers.footer") + "  ↑/↓ move · ctrl+l language · q quit"))
	body := b.String()
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func tableStyles(th theme.Theme) table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(th.Card.GetBorderTopForeground()).
		Foreground(th.Title.GetForeground()).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(th.Accent.GetForeground()).
		Bold(true)
	return styles
}
