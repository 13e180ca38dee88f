// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/verte-zerg/fastcode/internal/catalog"
	"github.com/verte-zerg/fastcode/internal/highlight"
	"github.com/verte-zerg/fastcode/internal/i18n"
	"github.com/verte-zerg/fastcode/internal/leaderboard"
	"github.com/verte-zerg/fastcode/internal/metrics"
	"github.com/verte-zerg/fastcode/internal/model"
	"github.com/verte-zerg/fastcode/internal/prefs"
	"github.com/verte-zerg/fastcode/internal/render"
	"github.com/verte-zerg/fastcode/internal/session"
	"github.com/verte-zerg/fastcode/internal/theme"
)

const (
	defaultWidth = 80
	topPlayers   = 3
)

// Options configures the game screen.
type Options struct {
	Catalog      []model.CodeSnippet
	Duration     int
	SnippetIndex int
	Theme        theme.Theme
	Prefs        *prefs.Preferences
	Logger       *log.Logger
	// Updates delivers reloaded catalogs. It may be nil.
	Updates <-chan []model.CodeSnippet
}

// catalogMsg carries a reloaded catalog from the watcher.
type catalogMsg struct {
	snippets []model.CodeSnippet
	ok       bool
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	session *session.Machine
	clock   *teaClock
	theme   theme.Theme
	prefs   *prefs.Preferences
	logger  *log.Logger
	updates <-chan []model.CodeSnippet

	keys     keyMap
	help     help.Model
	progress progress.Model
	tags     map[string][]highlight.Tag

	width  int
	height int
}

// NewModel constructs the game screen over an idle session.
func NewModel(opts Options) (*Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := opts.Prefs
	if p == nil {
		p = prefs.Load(context.Background(), nil, logger)
	}
	th := opts.Theme
	if th.Syntax == nil {
		var err error
		if th, err = theme.ByName(theme.Default); err != nil {
			return nil, err
		}
	}

	clock := newTeaClock()
	machine, err := session.New(opts.Catalog, clock,
		session.WithDuration(opts.Duration),
		session.WithSnippetIndex(opts.SnippetIndex),
	)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	return &Model{
		session:  machine,
		clock:    clock,
		theme:    th,
		prefs:    p,
		logger:   logger,
		updates:  opts.Updates,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithSolidFill(th.Bar), progress.WithoutPercentage()),
		tags:     map[string][]highlight.Tag{},
		width:    defaultWidth,
	}, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return waitForCatalog(m.updates)
}

func waitForCatalog(updates <-chan []model.CodeSnippet) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		snippets, ok := <-updates
		return catalogMsg{snippets: snippets, ok: ok}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		m.clock.deliver(msg.id)
		return m, m.clock.drain()
	case catalogMsg:
		if !msg.ok {
			return m, nil
		}
		if err := m.session.ReplaceCatalog(msg.snippets); err != nil {
			m.logger.Warn("ignoring reloaded catalog", "err", err)
		} else {
			m.tags = map[string][]highlight.Tag{}
			m.logger.Info("catalog reloaded", "snippets", len(msg.snippets))
		}
		return m, tea.Batch(m.clock.drain(), waitForCatalog(m.updates))
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset):
		m.session.Reset()
	case key.Matches(msg, m.keys.Start):
		m.session.Start()
	case key.Matches(msg, m.keys.Next):
		m.session.Cycle(1)
	case key.Matches(msg, m.keys.Prev):
		m.session.Cycle(-1)
	case key.Matches(msg, m.keys.Select):
		if idx, ok := selectIndex(msg); ok {
			if err := m.session.SelectSnippet(idx); err != nil {
				m.logger.Debug("snippet selection ignored", "err", err)
			}
		}
	case key.Matches(msg, m.keys.Locale):
		m.prefs.SetLocale(ctx, i18n.Next(m.prefs.Locale()))
	case key.Matches(msg, m.keys.Dismiss):
		m.prefs.DismissBanner(ctx)
	default:
		for _, k := range sessionKeys(msg) {
			m.session.HandleKey(k)
		}
	}
	return m, m.clock.drain()
}

func (m *Model) tr() i18n.Translator {
	return i18n.Translator{Locale: m.prefs.Locale()}
}

func (m *Model) tagsFor(code string) []highlight.Tag {
	if tags, ok := m.tags[code]; ok {
		return tags
	}
	tags := highlight.TokenizeString(code)
	m.tags[code] = tags
	return tags
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.session.Snapshot()
	met := m.session.Metrics()
	contentWidth := m.contentWidth()

	sections := make([]string, 0, 10)
	if banner := m.renderBanner(); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections,
		m.renderHeader(),
		m.renderSnippetList(snap),
		m.renderStats(snap, met),
		m.renderSnippet(snap, contentWidth),
		m.renderProgress(met, contentWidth),
	)
	if snap.IsFinished {
		sections = append(sections, m.renderSummary(met))
	}
	sections = append(sections,
		m.renderTopPlayers(),
		m.renderLocaleSwitcher(),
		m.help.View(m.keys),
	)
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, body)
}

func (m *Model) contentWidth() int {
	width := int(float64(m.width) * 0.80)
	if width < 20 {
		width = 20
	}
	return width
}

func (m *Model) renderBanner() string {
	if m.prefs.BannerDismissed() {
		return ""
	}
	return m.theme.Banner.Render(m.tr().T("banner.beta")) + " " + m.theme.Muted.Render("ctrl+b")
}

func (m *Model) renderHeader() string {
	tr := m.tr()
	title := m.theme.Accent.Render(tr.T("app.brandName")) + "  " + m.theme.Title.Render(tr.T("fastcode.title"))
	return title + "\n" + m.theme.Muted.Render(tr.T("fastcode.subtitle"))
}

func (m *Model) renderSnippetList(snap session.Snapshot) string {
	items := make([]string, 0, len(m.session.Catalog()))
	for i, s := range m.session.Catalog() {
		label := fmt.Sprintf("%d %s %s", i+1, catalog.Icon(s.Language), s.Title)
		if i == snap.ActiveSnippetIndex {
			items = append(items, m.theme.Accent.Render("["+label+"]"))
			continue
		}
		items = append(items, m.theme.Muted.Render(" "+label+" "))
	}
	return strings.Join(items, " ")
}

func (m *Model) renderStats(snap session.Snapshot, met metrics.Metrics) string {
	tr := m.tr()
	cards := []string{
		m.card(fmt.Sprintf("%d", snap.RemainingSeconds), tr.T("fastcode.seconds")),
		m.card(fmt.Sprintf("%.0f", met.WPM), tr.T("fastcode.stats.wpm")),
		m.card(fmt.Sprintf("%.0f%%", met.Accuracy), tr.T("fastcode.stats.accuracy")),
		m.card(fmt.Sprintf("%.0f", met.CPM), tr.T("fastcode.stats.cpm")),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m *Model) card(value, label string) string {
	return m.theme.Card.Render(m.theme.Value.Render(value) + "\n" + m.theme.Muted.Render(label))
}

func (m *Model) renderSnippet(snap session.Snapshot, width int) string {
	frame := render.Project(m.session.Target(), snap.TypedText, m.tagsFor(snap.Snippet.Code), snap.IsFinished, snap.TooltipVisible)
	innerWidth := width - m.theme.Box.GetHorizontalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}
	code := wrapStyledRunes(buildStyledRunes(frame, m.theme), innerWidth)

	heading := m.theme.Title.Render(catalog.Icon(snap.Snippet.Language) + " " + snap.Snippet.Title)
	if snap.Snippet.Description != "" {
		heading += "\n" + m.theme.Muted.Render(snap.Snippet.Description)
	}
	content := heading + "\n\n" + code
	if snap.TooltipVisible {
		content = m.theme.Tooltip.Render(m.tr().T("fastcode.tooltip")) + "\n\n" + content
	}
	return m.theme.Box.Width(width).Render(content)
}

func (m *Model) renderProgress(met metrics.Metrics, width int) string {
	label := fmt.Sprintf("%s %.0f%%", m.tr().T("fastcode.progress"), met.Progress)
	m.progress.Width = width - lipgloss.Width(label) - 1
	if m.progress.Width < 1 {
		m.progress.Width = 1
	}
	return m.theme.Muted.Render(label) + " " + m.progress.ViewAs(met.Progress/100)
}

func (m *Model) renderSummary(met metrics.Metrics) string {
	tr := m.tr()
	rows := []string{
		m.theme.Title.Render(tr.T("fastcode.summary.title")),
		fmt.Sprintf("%s: %s", tr.T("fastcode.summary.wpm"), m.theme.Value.Render(fmt.Sprintf("%.0f", met.WPM))),
		fmt.Sprintf("%s: %s", tr.T("fastcode.summary.accuracy"), m.theme.Value.Render(fmt.Sprintf("%.0f%%", met.Accuracy))),
		fmt.Sprintf("%s: %s", tr.T("fastcode.summary.correct"), m.theme.Success.Render(fmt.Sprintf("%d", met.Correct))),
		fmt.Sprintf("%s: %s", tr.T("fastcode.summary.incorrect"), m.theme.Error.Render(fmt.Sprintf("%d", met.Incorrect))),
	}
	return m.theme.Card.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderTopPlayers() string {
	tr := m.tr()
	lines := []string{m.theme.Title.Render(tr.T("fastcode.leaderboard"))}
	for i, e := range leaderboard.Top(topPlayers) {
		lines = append(lines, fmt.Sprintf("#%d %s  %s %s  %s %s",
			i+1,
			e.Name,
			m.theme.Value.Render(fmt.Sprintf("%d", e.WPM)),
			tr.T("topPlayers.wpm"),
			m.theme.Muted.Render(tr.T("fastcode.streak")+":"),
			e.Streak,
		))
	}
	return m.theme.Card.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderLocaleSwitcher() string {
	current := m.prefs.Locale()
	items := make([]string, 0, len(i18n.Options))
	for _, opt := range i18n.Options {
		if opt.Value == current {
			items = append(items, m.theme.Accent.Render("["+opt.Label+"]"))
			continue
		}
		items = append(items, m.theme.Muted.Render(opt.Label))
	}
	return m.theme.Muted.Render(m.tr().T("language.selectLabel")+":") + " " + strings.Join(items, " ")
}
