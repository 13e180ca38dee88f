// Package render merges syntax tags with typing state for display.
package render

import "github.com/verte-zerg/fastcode/internal/highlight"

// CellState tells how a snippet character should be drawn.
type CellState uint8

const (
	Untyped CellState = iota
	Correct
	Incorrect
)

// Cell is the display decision for one snippet character.
type Cell struct {
	Char  rune
	Tag   highlight.Tag
	State CellState
}

// Frame is the full projection of a session for one render pass.
type Frame struct {
	Cells []Cell
	// Caret is the cell index the caret sits before, or -1 when hidden.
	// It equals len(Cells) when the caret is past the last character.
	Caret int
}

// Project merges the snippet's syntax tags with the typed text. Typed
// positions override the syntax colour with a correctness state; the caret
// is shown only while the session is not finished and the tooltip is gone.
func Project(snippet, typed []rune, tags []highlight.Tag, finished, tooltipVisible bool) Frame {
	cells := make([]Cell, len(snippet))
	for i, ch := range snippet {
		cell := Cell{Char: ch}
		if i < len(tags) {
			cell.Tag = tags[i]
		}
		if i < len(typed) {
			if typed[i] == ch {
				cell.State = Correct
			} else {
				cell.State = Incorrect
			}
		}
		cells[i] = cell
	}

	caret := -1
	if !finished && !tooltipVisible {
		caret = len(typed)
		if caret > len(snippet) {
			caret = len(snippet)
		}
	}
	return Frame{Cells: cells, Caret: caret}
}
