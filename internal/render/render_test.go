package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/fastcode/internal/highlight"
)

func TestProjectMergesTypedState(t *testing.T) {
	snippet := []rune("let x")
	tags := highlight.Tokenize(snippet)
	frame := Project(snippet, []rune("lex"), tags, false, false)

	require.Len(t, frame.Cells, 5)
	assert.Equal(t, Correct, frame.Cells[0].State)
	assert.Equal(t, Correct, frame.Cells[1].State)
	assert.Equal(t, Incorrect, frame.Cells[2].State)
	assert.Equal(t, Untyped, frame.Cells[3].State)
	assert.Equal(t, highlight.Keyword, frame.Cells[0].Tag)
	assert.Equal(t, 't', frame.Cells[2].Char)
	assert.Equal(t, 3, frame.Caret)
}

func TestProjectCaretHidden(t *testing.T) {
	snippet := []rune("ab")
	tags := highlight.Tokenize(snippet)
	assert.Equal(t, -1, Project(snippet, nil, tags, false, true).Caret)
	assert.Equal(t, -1, Project(snippet, []rune("a"), tags, true, false).Caret)
}

func TestProjectCaretClampedToSnippet(t *testing.T) {
	snippet := []rune("ab")
	frame := Project(snippet, []rune("abcd"), highlight.Tokenize(snippet), false, false)
	assert.Equal(t, 2, frame.Caret)
	assert.Len(t, frame.Cells, 2)
}

func TestProjectToleratesShortTags(t *testing.T) {
	frame := Project([]rune("ab"), nil, nil, false, false)
	assert.Equal(t, highlight.Default, frame.Cells[1].Tag)
	assert.Equal(t, 0, frame.Caret)
}
