package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/fastcode/internal/render"
	"github.com/verte-zerg/fastcode/internal/theme"
)

const tabWidth = 2

const (
	wrongSpaceGlyph   = '•'
	wrongNewlineGlyph = '↵'
	wrongTabGlyph     = '→'
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
	newline bool
}

func buildStyledRunes(frame render.Frame, th theme.Theme) []styledRune {
	out := make([]styledRune, 0, len(frame.Cells)+1)
	for i, cell := range frame.Cells {
		style := cellStyle(cell, th)
		if i == frame.Caret {
			style = th.Caret
		}
		out = append(out, styleCell(cell, style, i == frame.Caret))
	}
	if frame.Caret >= 0 && frame.Caret == len(frame.Cells) {
		out = append(out, styledRune{s: th.Caret.Render(" "), width: 1})
	}
	return out
}

func cellStyle(cell render.Cell, th theme.Theme) lipgloss.Style {
	switch cell.State {
	case render.Correct:
		return th.Correct
	case render.Incorrect:
		return th.Incorrect
	default:
		return th.SyntaxStyle(cell.Tag)
	}
}

func styleCell(cell render.Cell, style lipgloss.Style, caret bool) styledRune {
	wrong := cell.State == render.Incorrect
	switch cell.Char {
	case '\n':
		if wrong || caret {
			return styledRune{s: style.Render(string(wrongNewlineGlyph)), width: 1, newline: true}
		}
		return styledRune{newline: true}
	case '\t':
		text := strings.Repeat(" ", tabWidth)
		if wrong {
			text = string(wrongTabGlyph) + strings.Repeat(" ", tabWidth-1)
		}
		return styledRune{s: style.Render(text), width: tabWidth, isSpace: true}
	case ' ':
		if wrong {
			return styledRune{s: style.Render(string(wrongSpaceGlyph)), width: 1, isSpace: true}
		}
		return styledRune{s: style.Render(" "), width: 1, isSpace: true}
	default:
		return styledRune{s: style.Render(string(cell.Char)), width: runewidth.RuneWidth(cell.Char)}
	}
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks at snippet newlines and soft-wraps long lines at
// the last space that fits.
func wrapStyledRunes(runes []styledRune, width int) string {
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if item.newline {
			line = append(line, item)
			out.WriteString(renderStyledRunes(line))
			out.WriteRune('\n')
			line = line[:0]
			lineWidth = 0
			lastSpaceIdx = -1
			i++
			continue
		}
		if width > 0 && lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx+1]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
