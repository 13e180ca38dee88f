// Package highlight assigns syntax-highlight categories to snippet characters.
package highlight

// Tag is the highlight category of a single character.
type Tag uint8

const (
	Default Tag = iota
	Comment
	String
	Number
	Keyword
)

// String returns the lowercase tag name.
func (t Tag) String() string {
	switch t {
	case Comment:
		return "comment"
	case String:
		return "string"
	case Number:
		return "number"
	case Keyword:
		return "keyword"
	default:
		return "default"
	}
}

// Reserved words of every snippet language live in one set.
var keywords = map[string]struct{}{
	"const":    {},
	"let":      {},
	"var":      {},
	"function": {},
	"return":   {},
	"import":   {},
	"from":     {},
	"if":       {},
	"else":     {},
	"for":      {},
	"while":    {},
	"class":    {},
	"export":   {},
	"async":    {},
	"await":    {},
	"switch":   {},
	"case":     {},
	"def":      {},
	"with":     {},
	"yield":    {},
}

// IsKeyword reports whether word is in the reserved-word set.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Tokenize returns one tag per rune of src.
//
// The scan is a single left-to-right pass. At every position the branches are
// tried in order: line comment, shell comment at line start, quoted string,
// number, word. Unterminated comments and strings run to the end of input.
func Tokenize(src []rune) []Tag {
	tags := make([]Tag, len(src))
	n := len(src)
	i := 0
	for i < n {
		ch := src[i]

		if ch == '/' && i+1 < n && src[i+1] == '/' {
			i = markRange(tags, i, lineEnd(src, i), Comment)
			continue
		}

		if ch == '#' && (i == 0 || src[i-1] == '\n') {
			i = markRange(tags, i, lineEnd(src, i), Comment)
			continue
		}

		if isQuote(ch) {
			i = markRange(tags, i, stringEnd(src, i), String)
			continue
		}

		if isDigit(ch) {
			end := i
			for end < n && (isDigit(src[end]) || src[end] == '.' || src[end] == '_') {
				end++
			}
			i = markRange(tags, i, end, Number)
			continue
		}

		if isWordStart(ch) {
			end := i
			for end < n && isWordPart(src[end]) {
				end++
			}
			if IsKeyword(string(src[i:end])) {
				markRange(tags, i, end, Keyword)
			}
			i = end
			continue
		}

		i++
	}
	return tags
}

// TokenizeString is a convenience wrapper over Tokenize.
func TokenizeString(src string) []Tag {
	return Tokenize([]rune(src))
}

func markRange(tags []Tag, start, end int, tag Tag) int {
	for i := start; i < end; i++ {
		tags[i] = tag
	}
	return end
}

// lineEnd returns the index of the next newline at or after start, or len(src).
func lineEnd(src []rune, start int) int {
	end := start
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return end
}

// stringEnd returns the index just past the closing quote of the string
// opened at start, or len(src) when the string is unterminated.
func stringEnd(src []rune, start int) int {
	quote := src[start]
	end := start + 1
	for end < len(src) {
		switch src[end] {
		case '\\':
			end += 2
			continue
		case quote:
			return end + 1
		}
		end++
	}
	// An escape on the final rune steps past the end.
	return len(src)
}

func isQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '`'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isWordStart(r rune) bool {
	return isLetter(r) || r == '_'
}

func isWordPart(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}
