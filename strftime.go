package tempus

import (
	"fmt"
	"strings"

	"github.com/lestrrat-go/strftime"
)

// strftimeDirectives maps C strftime conversion characters to the pattern
// text fragments with the same meaning.
var strftimeDirectives = map[byte]string{
	'a': "ddd",
	'A': "dddd",
	'b': "MMM",
	'h': "MMM",
	'B': "MMMM",
	'Y': "yyyy",
	'y': "yy",
	'm': "MM",
	'd': "dd",
	'H': "HH",
	'I': "hh",
	'M': "mm",
	'S': "ss",
	'p': "tt",
	'F': "yyyy'-'MM'-'dd",
	'D': "MM'/'dd'/'yy",
	'T': "HH':'mm':'ss",
	'R': "HH':'mm",
}

// Strftime translates a C strftime format string into equivalent date-time
// pattern text, so callers coming from strftime-shaped configuration can
// feed it straight into NewLocalDateTimePattern. The format is validated
// through the strftime library first, which keeps the accepted directive
// syntax aligned with what C implementations take; directives with no
// pattern equivalent are reported as errors.
func Strftime(format string) (string, error) {
	if _, err := strftime.New(format); err != nil {
		return "", fmt.Errorf("strftime: %w", err)
	}
	var sb strings.Builder
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			appendPatternLiteral(&sb, ch)
			continue
		}
		i++
		if i >= len(format) {
			return "", fmt.Errorf("strftime: trailing %% in %q", format)
		}
		switch dir := format[i]; dir {
		case '%':
			appendPatternLiteral(&sb, '%')
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		default:
			frag, ok := strftimeDirectives[dir]
			if !ok {
				return "", fmt.Errorf("strftime: directive %%%c has no pattern equivalent", dir)
			}
			sb.WriteString(frag)
		}
	}
	return sb.String(), nil
}

// appendPatternLiteral writes one literal character, escaping anything the
// pattern language would otherwise interpret.
func appendPatternLiteral(sb *strings.Builder, ch byte) {
	special := ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' ||
		strings.IndexByte(`%'"\:.;/`, ch) >= 0
	if special {
		sb.WriteByte('\\')
	}
	sb.WriteByte(ch)
}
