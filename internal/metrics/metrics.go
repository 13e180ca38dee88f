// Package metrics derives live typing metrics from the typed text.
package metrics

// Metrics is a snapshot of session performance.
type Metrics struct {
	Correct   int
	Incorrect int
	Accuracy  float64
	WPM       float64
	CPM       float64
	Progress  float64
}

// Compute derives all metrics from the typed text, the reference snippet and
// the elapsed time in whole seconds. Nothing is carried between calls.
func Compute(typed, reference []rune, elapsedSeconds int, finished bool) Metrics {
	correct := CorrectCount(typed, reference)
	return Metrics{
		Correct:   correct,
		Incorrect: len(typed) - correct,
		Accuracy:  Accuracy(typed, reference),
		WPM:       WordsPerMinute(len(typed), elapsedSeconds),
		CPM:       CharsPerMinute(len(typed), elapsedSeconds),
		Progress:  Progress(len(typed), len(reference), finished),
	}
}

// CorrectCount counts typed positions matching the reference. Positions past
// the end of the reference never match.
func CorrectCount(typed, reference []rune) int {
	correct := 0
	for i, r := range typed {
		if i < len(reference) && reference[i] == r {
			correct++
		}
	}
	return correct
}

// Accuracy returns the percentage of correct characters, 100 for no input.
func Accuracy(typed, reference []rune) float64 {
	if len(typed) == 0 {
		return 100
	}
	return 100 * float64(CorrectCount(typed, reference)) / float64(len(typed))
}

// WordsPerMinute uses the standard five characters per word.
func WordsPerMinute(typedLen, elapsedSeconds int) float64 {
	if elapsedSeconds <= 0 {
		return 0
	}
	return (float64(typedLen) / 5.0) / (float64(elapsedSeconds) / 60.0)
}

// CharsPerMinute returns typed characters per minute.
func CharsPerMinute(typedLen, elapsedSeconds int) float64 {
	if elapsedSeconds <= 0 {
		return 0
	}
	return float64(typedLen) / float64(elapsedSeconds) * 60.0
}

// Progress returns the completion percentage, capped at 100.
func Progress(typedLen, referenceLen int, finished bool) float64 {
	if finished {
		return 100
	}
	if referenceLen == 0 {
		if typedLen == 0 {
			return 0
		}
		return 100
	}
	p := 100 * float64(typedLen) / float64(referenceLen)
	if p > 100 {
		return 100
	}
	return p
}
