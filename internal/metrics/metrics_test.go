package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 100.0, Accuracy(nil, []rune("abc")))
	assert.InDelta(t, 200.0/3.0, Accuracy([]rune("abc"), []rune("abd")), 1e-9)
}

func TestWordsPerMinuteZeroElapsed(t *testing.T) {
	assert.Equal(t, 0.0, WordsPerMinute(120, 0))
	assert.Equal(t, 0.0, CharsPerMinute(120, 0))
}

func TestRates(t *testing.T) {
	// 50 chars in 30s: 10 words in half a minute.
	assert.InDelta(t, 20.0, WordsPerMinute(50, 30), 1e-9)
	assert.InDelta(t, 100.0, CharsPerMinute(50, 30), 1e-9)
}

func TestOverTypingCountsAsIncorrect(t *testing.T) {
	m := Compute([]rune("abcde"), []rune("abc"), 10, false)
	assert.Equal(t, 3, m.Correct)
	assert.Equal(t, 2, m.Incorrect)
	assert.Equal(t, 100.0, m.Progress)
	assert.InDelta(t, 60.0, m.Accuracy, 1e-9)
}

func TestProgress(t *testing.T) {
	assert.InDelta(t, 50.0, Progress(2, 4, false), 1e-9)
	assert.Equal(t, 100.0, Progress(0, 4, true))
	assert.Equal(t, 0.0, Progress(0, 0, false))
	assert.Equal(t, 100.0, Progress(1, 0, false))
}

func TestComputeEmpty(t *testing.T) {
	m := Compute(nil, []rune("abc"), 0, false)
	assert.Equal(t, Metrics{Accuracy: 100}, m)
}
