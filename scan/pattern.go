package scan

import (
	"errors"
	"strings"
)

// Lexing failures for pattern text. The pattern compilers wrap these with
// the offending pattern and position.
var (
	ErrUnterminatedQuote   = errors.New("unterminated quoted literal")
	ErrEscapeAtEnd         = errors.New("escape character at end of text")
	ErrRepeatCountExceeded = errors.New("repeat count exceeded")
	ErrUnbalancedEmbedded  = errors.New("missing close bracket for embedded pattern")
	ErrMissingEmbeddedOpen = errors.New("expected open bracket for embedded pattern")
)

const (
	embeddedOpen  = '<'
	embeddedClose = '>'
)

// Pattern is a cursor over pattern-description text. It adds the lexing
// operations the pattern compilers need: quoted literal extraction with
// backslash escapes, repeat-count counting for runs like "yyyy", and
// balanced extraction of embedded sub-patterns like "<HH:mm>".
type Pattern struct {
	Cursor
}

// NewPattern returns a pattern cursor positioned before the first character.
func NewPattern(text string) *Pattern {
	return &Pattern{Cursor: newCursor(text)}
}

// GetQuotedString consumes characters up to an unescaped closeQuote,
// processing backslash escapes, and returns the literal content. The cursor
// must be positioned on the character after the open quote (the usual state
// after MoveNext from the quote itself); on success it is left on the close
// quote.
func (p *Pattern) GetQuotedString(closeQuote byte) (string, error) {
	var sb strings.Builder
	for p.Current() != closeQuote {
		if p.Current() == '\\' {
			if !p.MoveNext() {
				return "", ErrEscapeAtEnd
			}
		}
		sb.WriteByte(p.Current())
		if !p.MoveNext() {
			return "", ErrUnterminatedQuote
		}
	}
	return sb.String(), nil
}

// GetRepeatCount counts how many times the current character repeats
// consecutively, up to maximum. The cursor is left on the last repeated
// character. A run longer than maximum is an error.
func (p *Pattern) GetRepeatCount(maximum int) (int, error) {
	ch := p.Current()
	count := 1
	for p.PeekNext() == ch {
		p.MoveNext()
		count++
		if count > maximum {
			return 0, ErrRepeatCountExceeded
		}
	}
	return count, nil
}

// GetEmbeddedPattern extracts the balanced "<...>" following the current
// position and returns its contents. Nested brackets one level deep and
// quoted sections containing bracket characters are kept intact. The cursor
// is left on the closing bracket.
func (p *Pattern) GetEmbeddedPattern() (string, error) {
	if !p.MoveNext() || p.Current() != embeddedOpen {
		return "", ErrMissingEmbeddedOpen
	}
	start := p.Index() + 1
	depth := 1
	for p.MoveNext() {
		switch p.Current() {
		case embeddedOpen:
			depth++
		case embeddedClose:
			depth--
			if depth == 0 {
				return p.Text()[start:p.Index()], nil
			}
		case '\\':
			if !p.MoveNext() {
				return "", ErrEscapeAtEnd
			}
		case '\'', '"':
			quote := p.Current()
			if !p.MoveNext() {
				return "", ErrUnterminatedQuote
			}
			if _, err := p.GetQuotedString(quote); err != nil {
				return "", err
			}
		}
	}
	return "", ErrUnbalancedEmbedded
}
