package tempus

import (
	"fmt"

	"github.com/tempus-go/tempus/scan"
)

// Pattern construction and value parsing fail in two deliberately separate
// ways. A PatternError means the pattern text itself is broken, which is a
// programmer or configuration mistake and is returned eagerly from the
// New*Pattern constructors. A ParseError means the value text did not match
// a valid pattern, which is a data problem and travels inside a Result
// rather than being panicked.

// Stable codes carried by PatternError.
const (
	CodeEmptyPattern          = "empty-pattern"
	CodeUnknownStandardFormat = "unknown-standard-format"
	CodeUnknownCharacter      = "unknown-pattern-character"
	CodeUnterminatedQuote     = "unterminated-quote"
	CodeEscapeAtEnd           = "escape-at-end"
	CodePercentAtEnd          = "percent-at-end"
	CodePercentDoubled        = "percent-doubled"
	CodeRepeatCountExceeded   = "repeat-count-exceeded"
	CodeRepeatedField         = "repeated-field"
	CodeIncompatibleFields    = "incompatible-fields"
	CodeEraWithoutYear        = "era-without-year"
	CodeEraWithCalendar       = "era-with-calendar"
	CodeNoAmPmConcept         = "no-am-pm-concept"
	CodeEmbeddedPattern       = "bad-embedded-pattern"
	CodeMissingZoneProvider   = "missing-zone-provider"
	CodeEmptyComposite        = "empty-composite"
	CodeMisplacedUnit         = "misplaced-unit"
)

// Stable codes carried by ParseError.
const (
	CodeValueEmpty          = "value-empty"
	CodeMismatchedCharacter = "mismatched-character"
	CodeMismatchedText      = "mismatched-text"
	CodeMissingDigits       = "missing-digits"
	CodeValueOutOfRange     = "value-out-of-range"
	CodeExtraValueText      = "extra-value-text"
	CodeEndOfText           = "end-of-text"
	CodeInconsistentValues  = "inconsistent-values"
	CodeMissingSign         = "missing-sign"
	CodeUnknownName         = "unknown-name"
	CodeUnknownZone         = "unknown-zone"
	CodeSkippedLocalTime    = "skipped-local-time"
	CodeAmbiguousLocalTime  = "ambiguous-local-time"
	CodeOverflow            = "overflow"
)

// Code carried by FormatError.
const CodeNoMatchingFormat = "no-matching-format"

// PatternError reports invalid pattern text or an incompatible field
// combination, detected while building a pattern.
type PatternError struct {
	Code    string // one of the Code constants above
	Pattern string // the offending pattern text
	msg     string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.msg)
}

func patternErrf(code, format string, args ...any) *PatternError {
	return &PatternError{Code: code, msg: fmt.Sprintf(format, args...)}
}

// wrapLexError converts the scan package's pattern lexing failures into
// pattern errors with stable codes.
func wrapLexError(err error) *PatternError {
	switch err {
	case scan.ErrUnterminatedQuote:
		return patternErrf(CodeUnterminatedQuote, "unterminated quoted literal")
	case scan.ErrEscapeAtEnd:
		return patternErrf(CodeEscapeAtEnd, "escape character at end of pattern")
	case scan.ErrUnbalancedEmbedded, scan.ErrMissingEmbeddedOpen:
		return patternErrf(CodeEmbeddedPattern, "%s", err.Error())
	default:
		return patternErrf(CodeUnknownCharacter, "%s", err.Error())
	}
}

// FormatError reports a formatting failure. Ordinary patterns cannot fail
// to format; only a composite pattern whose predicates all reject the value
// raises one, by panicking, since a predicate set with holes is a
// configuration mistake on par with bad pattern text.
type FormatError struct {
	Code string // one of the Code constants above
	msg  string
}

func (e *FormatError) Error() string {
	return "cannot format value: " + e.msg
}

// ParseError reports value text that could not be parsed. It carries the
// original input and the index the failure was detected at.
type ParseError struct {
	Code  string // one of the Code constants above
	Text  string // the value text being parsed
	Index int    // byte index of the failure, -1 when positionless
	msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q at index %d: %s", e.Text, e.Index, e.msg)
}

func parseErrf(code, format string, args ...any) *ParseError {
	return &ParseError{Code: code, Index: -1, msg: fmt.Sprintf(format, args...)}
}

// parseErrAt records the position the cursor had reached when the failure
// was detected.
func parseErrAt(cur *scan.Value, code, format string, args ...any) *ParseError {
	err := parseErrf(code, format, args...)
	err.Text = cur.Text()
	err.Index = cur.Index()
	return err
}
