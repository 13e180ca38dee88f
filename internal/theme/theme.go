// Package theme builds the catppuccin-based styles shared by all screens.
package theme

import (
	"fmt"
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/fastcode/internal/highlight"
)

// Default is the catppuccin flavor used when none is configured.
const Default = "mocha"

// Names lists the accepted theme names.
var Names = []string{"latte", "frappe", "macchiato", "mocha"}

// Theme holds every style the screens draw with.
type Theme struct {
	Name      string
	Syntax    map[highlight.Tag]lipgloss.Style
	Correct   lipgloss.Style
	Incorrect lipgloss.Style
	Caret     lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Title     lipgloss.Style
	Value     lipgloss.Style
	Banner    lipgloss.Style
	Tooltip   lipgloss.Style
	Box       lipgloss.Style
	Card      lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	// Bar is the progress bar fill colour.
	Bar string
}

type flavor interface {
	Text() catppuccin.Color
	Subtext0() catppuccin.Color
	Overlay1() catppuccin.Color
	Surface0() catppuccin.Color
	Surface1() catppuccin.Color
	Base() catppuccin.Color
	Green() catppuccin.Color
	Peach() catppuccin.Color
	Mauve() catppuccin.Color
	Red() catppuccin.Color
	Blue() catppuccin.Color
	Yellow() catppuccin.Color
}

// ByName builds the theme for a catppuccin flavor name.
func ByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "latte":
		return newTheme("latte", catppuccin.Latte), nil
	case "frappe":
		return newTheme("frappe", catppuccin.Frappe), nil
	case "macchiato":
		return newTheme("macchiato", catppuccin.Macchiato), nil
	case "mocha", "":
		return newTheme("mocha", catppuccin.Mocha), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Names, ", "))
	}
}

func newTheme[F flavor](name string, f F) Theme {
	hex := func(c catppuccin.Color) lipgloss.Color {
		return lipgloss.Color(c.Hex)
	}
	plain := lipgloss.NewStyle().Foreground(hex(f.Text()))
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(hex(f.Surface1()))
	return Theme{
		Name: name,
		Syntax: map[highlight.Tag]lipgloss.Style{
			highlight.Default: plain,
			highlight.Comment: lipgloss.NewStyle().Foreground(hex(f.Overlay1())).Italic(true),
			highlight.String:  lipgloss.NewStyle().Foreground(hex(f.Green())),
			highlight.Number:  lipgloss.NewStyle().Foreground(hex(f.Peach())),
			highlight.Keyword: lipgloss.NewStyle().Foreground(hex(f.Mauve())),
		},
		Correct:   lipgloss.NewStyle().Foreground(hex(f.Green())).Background(hex(f.Surface0())),
		Incorrect: lipgloss.NewStyle().Foreground(hex(f.Red())).Background(hex(f.Surface0())).Underline(true),
		Caret:     lipgloss.NewStyle().Foreground(hex(f.Base())).Background(hex(f.Blue())),
		Muted:     lipgloss.NewStyle().Foreground(hex(f.Subtext0())),
		Accent:    lipgloss.NewStyle().Foreground(hex(f.Blue())).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(hex(f.Text())).Bold(true),
		Value:     lipgloss.NewStyle().Foreground(hex(f.Text())).Bold(true),
		Banner:    lipgloss.NewStyle().Foreground(hex(f.Base())).Background(hex(f.Yellow())).Padding(0, 1),
		Tooltip:   lipgloss.NewStyle().Foreground(hex(f.Base())).Background(hex(f.Blue())).Bold(true).Padding(0, 1),
		Box:       border.Padding(1, 2),
		Card:      border.Padding(0, 1),
		Error:     lipgloss.NewStyle().Foreground(hex(f.Red())).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(hex(f.Green())).Bold(true),
		Bar:       f.Blue().Hex,
	}
}

// SyntaxStyle returns the style for a highlight tag.
func (t Theme) SyntaxStyle(tag highlight.Tag) lipgloss.Style {
	if s, ok := t.Syntax[tag]; ok {
		return s
	}
	return t.Syntax[highlight.Default]
}
