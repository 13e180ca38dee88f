package session

import "unicode"

// KeyType classifies a keystroke.
type KeyType int

const (
	KeyOther KeyType = iota
	KeyRune
	KeyBackspace
	KeyEnter
	KeyTab
)

// Key is a keystroke already filtered by focus target.
type Key struct {
	Type KeyType
	Rune rune
	Ctrl bool
	Alt  bool
	Meta bool
}

// RuneKey builds a printable keystroke.
func RuneKey(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// hasModifier reports whether a modifier combination is held.
func (k Key) hasModifier() bool {
	return k.Ctrl || k.Alt || k.Meta
}

func isPrintable(r rune) bool {
	return r == ' ' || unicode.IsPrint(r)
}
