package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/fastcode/internal/session"
)

type keyMap struct {
	Quit    key.Binding
	Reset   key.Binding
	Start   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Select  key.Binding
	Locale  key.Binding
	Dismiss key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Start: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "start"),
		),
		Next: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next snippet"),
		),
		Prev: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "prev snippet"),
		),
		Select: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
			key.WithHelp("alt+1-9", "pick snippet"),
		),
		Locale: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "language"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "hide banner"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Start, k.Next, k.Prev, k.Locale, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.Start, k.Quit},
		{k.Next, k.Prev, k.Select},
		{k.Locale, k.Dismiss},
	}
}

// selectIndex extracts the zero-based snippet index from an alt+digit key.
func selectIndex(msg tea.KeyMsg) (int, bool) {
	if !msg.Alt || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

// sessionKeys converts a terminal key event into session keystrokes.
// Bracketed paste is dropped.
func sessionKeys(msg tea.KeyMsg) []session.Key {
	if msg.Paste {
		return nil
	}
	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]session.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			k := session.RuneKey(r)
			k.Alt = msg.Alt
			keys = append(keys, k)
		}
		return keys
	case tea.KeySpace:
		k := session.RuneKey(' ')
		k.Alt = msg.Alt
		return []session.Key{k}
	case tea.KeyBackspace:
		return []session.Key{{Type: session.KeyBackspace, Alt: msg.Alt}}
	case tea.KeyEnter:
		return []session.Key{{Type: session.KeyEnter, Alt: msg.Alt}}
	case tea.KeyTab:
		return []session.Key{{Type: session.KeyTab, Alt: msg.Alt}}
	default:
		return []session.Key{{Type: session.KeyOther}}
	}
}
