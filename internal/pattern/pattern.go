// Package pattern tokenizes Unicode TR35 date patterns such as "EEE, MMM d, yyyy h:mm a".
package pattern

import (
	"fmt"
	"strings"
)

// Kind distinguishes pattern fields from literal text.
type Kind int

const (
	Literal Kind = iota
	Field
)

// Token is one element of a tokenized pattern. For a Field, Letter is the
// pattern letter and Width the length of its run ("MMMM" is M/4). For a
// Literal, Text holds the unescaped text.
type Token struct {
	Kind   Kind
	Letter rune
	Width  int
	Text   string
}

func (t Token) String() string {
	if t.Kind == Field {
		return strings.Repeat(string(t.Letter), t.Width)
	}
	return fmt.Sprintf("%q", t.Text)
}

// IsPatternLetter reports whether r is reserved as a field letter (ASCII a-z, A-Z).
func IsPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Tokenize splits a pattern into fields and literals. It never fails: an
// unterminated quote runs to the end of the pattern.
func Tokenize(p string) []Token {
	var tokens []Token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, Token{Kind: Literal, Text: lit.String()})
			lit.Reset()
		}
	}

	runes := []rune(p)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			// '' outside a quoted run is a literal apostrophe
			if i+1 < len(runes) && runes[i+1] == '\'' {
				lit.WriteRune('\'')
				i += 2
				continue
			}
			i++
			for i < len(runes) {
				if runes[i] == '\'' {
					if i+1 < len(runes) && runes[i+1] == '\'' {
						lit.WriteRune('\'')
						i += 2
						continue
					}
					i++
					break
				}
				lit.WriteRune(runes[i])
				i++
			}
		case IsPatternLetter(r):
			flush()
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			tokens = append(tokens, Token{Kind: Field, Letter: r, Width: j - i})
			i = j
		default:
			lit.WriteRune(r)
			i++
		}
	}
	flush()

	return tokens
}

// HasField reports whether any field token uses one of the given letters.
func HasField(tokens []Token, letters string) bool {
	for _, t := range tokens {
		if t.Kind == Field && strings.ContainsRune(letters, t.Letter) {
			return true
		}
	}
	return false
}

// Substitute replaces the {0} and {1} placeholders of a date-time glue
// pattern, leaving quoted sections untouched.
func Substitute(glue, timePattern, datePattern string) string {
	var b strings.Builder
	quoted := false
	runes := []rune(glue)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\'' {
			quoted = !quoted
			b.WriteRune(r)
			continue
		}
		if !quoted && r == '{' && i+2 < len(runes) && runes[i+2] == '}' {
			switch runes[i+1] {
			case '0':
				b.WriteString(timePattern)
				i += 2
				continue
			case '1':
				b.WriteString(datePattern)
				i += 2
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
