package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/fastcode/internal/highlight"
	"github.com/verte-zerg/fastcode/internal/render"
	"github.com/verte-zerg/fastcode/internal/theme"
)

func testTheme(t *testing.T) theme.Theme {
	t.Helper()
	th, err := theme.ByName(theme.Default)
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	return th
}

func project(target, input string, finished, tooltip bool) render.Frame {
	snippet := []rune(target)
	return render.Project(snippet, []rune(input), highlight.Tokenize(snippet), finished, tooltip)
}

func TestBuildStyledRunesCursor(t *testing.T) {
	th := testTheme(t)
	runes := buildStyledRunes(project("ab", "a", false, false), th)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != th.Correct.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != th.Caret.Render("b") {
		t.Fatalf("expected caret style for second rune")
	}
}

func TestBuildStyledRunesCaretPastEnd(t *testing.T) {
	th := testTheme(t)
	runes := buildStyledRunes(project("ab", "abz", false, false), th)
	if len(runes) != 3 {
		t.Fatalf("expected trailing caret block, got %d runes", len(runes))
	}
	if runes[2].s != th.Caret.Render(" ") {
		t.Fatalf("expected caret block after last rune")
	}
}

func TestBuildStyledRunesNoCursorWhenFinished(t *testing.T) {
	th := testTheme(t)
	runes := buildStyledRunes(project("ab", "a", true, false), th)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[1].s != th.SyntaxStyle(highlight.Default).Render("b") {
		t.Fatalf("expected syntax style for untyped rune after finish")
	}
}

func TestBuildStyledRunesNoCursorWithTooltip(t *testing.T) {
	th := testTheme(t)
	runes := buildStyledRunes(project("ab", "", false, true), th)
	if runes[0].s != th.SyntaxStyle(highlight.Default).Render("a") {
		t.Fatalf("expected no caret while tooltip is visible")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	th := testTheme(t)
	runes := buildStyledRunes(project("ab", "ax", false, false), th)
	if runes[0].s != th.Correct.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != th.Incorrect.Render("b") {
		t.Fatalf("expected incorrect style for second rune")
	}
}

func TestBuildStyledRunesSyntaxHighlighting(t *testing.T) {
	th := testTheme(t)
	runes := buildStyledRunes(project("return 42", "", true, false), th)
	if runes[0].s != th.SyntaxStyle(highlight.Keyword).Render("r") {
		t.Fatalf("expected keyword style")
	}
	if runes[7].s != th.SyntaxStyle(highlight.Number).Render("4") {
		t.Fatalf("expected number style")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	th := testTheme(t)
	runes := buildStyledRunes(project("a b", "ax", false, false), th)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != th.Incorrect.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
}

func TestBuildStyledRunesWrongNewline(t *testing.T) {
	th := testTheme(t)
	runes := buildStyledRunes(project("a\nb", "ax", false, false), th)
	if !runes[1].newline {
		t.Fatalf("expected newline marker")
	}
	if runes[1].s != th.Incorrect.Render("↵") {
		t.Fatalf("expected return glyph for wrong newline")
	}
}

func TestWrapStyledRunesHardBreak(t *testing.T) {
	th := testTheme(t)
	runes := buildStyledRunes(project("a\nb", "", true, false), th)
	got := wrapStyledRunes(runes, 80)
	want := runes[0].s + "\n" + runes[2].s
	if got != want {
		t.Fatalf("expected hard break, got %q", got)
	}
}

func TestWrapStyledRunesSoftWrap(t *testing.T) {
	th := testTheme(t)
	runes := buildStyledRunes(project("aa bb cc", "", true, false), th)
	got := wrapStyledRunes(runes, 5)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
	if lines[1] != renderStyledRunes(runes[3:]) {
		t.Fatalf("expected trailing words on second line, got %q", lines[1])
	}
}
