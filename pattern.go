package tempus

import (
	"strings"

	"github.com/tempus-go/tempus/scan"
)

// Pattern is the bidirectional contract every compiled pattern satisfies.
// Building a pattern is comparatively expensive; the result is immutable
// and safe for concurrent Format and Parse calls, each of which works on
// its own cursor and bucket.
type Pattern[T any] interface {
	// Format renders the value as text.
	Format(value T) string
	// AppendFormat renders the value into an existing builder.
	AppendFormat(value T, sb *strings.Builder)
	// Parse consumes the whole text, failing on leftover characters.
	Parse(text string) Result[T]
	// ParsePartial consumes a prefix from an already positioned cursor,
	// leaving it just after the last consumed character on success.
	ParsePartial(cur *scan.Value) Result[T]
}

type formatAction[T any] func(sb *strings.Builder, value T)

type parseAction[B any] func(cur *scan.Value, bucket B) *ParseError

// parseBucket accumulates raw field values during one parse pass and is
// reconciled into a value exactly once at the end.
type parseBucket[T any] interface {
	build(used PatternField) (T, *ParseError)
}

// builder assembles the parallel format and parse action sequences while a
// pattern compiles, tracking which fields the pattern has specified so that
// duplicates and conflicts fail at compile time.
type builder[T any, B parseBucket[T]] struct {
	culture *Culture
	pattern string
	used    PatternField
	formats []formatAction[T]
	parses  []parseAction[B]
}

func newBuilder[T any, B parseBucket[T]](culture *Culture, pattern string) *builder[T, B] {
	return &builder[T, B]{culture: culture, pattern: pattern}
}

func (b *builder[T, B]) addFormat(a formatAction[T]) { b.formats = append(b.formats, a) }
func (b *builder[T, B]) addParse(a parseAction[B])   { b.parses = append(b.parses, a) }

// useField records that the pattern specifies a field, rejecting repeats
// and conflicts with embedded sub-patterns covering the same ground.
func (b *builder[T, B]) useField(field PatternField, ch byte) *PatternError {
	if b.used.HasAny(field) {
		return patternErrf(CodeRepeatedField, "field %q appears more than once", ch)
	}
	conflict := field.HasAny(fieldsAllDate) && b.used.HasAny(FieldEmbeddedDate) ||
		field == FieldEmbeddedDate && b.used.HasAny(fieldsAllDate) ||
		field.HasAny(fieldsAllTime) && b.used.HasAny(FieldEmbeddedTime) ||
		field == FieldEmbeddedTime && b.used.HasAny(fieldsAllTime)
	if conflict {
		return patternErrf(CodeIncompatibleFields,
			"field %q conflicts with fields already present in the pattern", ch)
	}
	b.used |= field
	return nil
}

func (b *builder[T, B]) addLiteralByte(ch byte) {
	b.addFormat(func(sb *strings.Builder, _ T) { sb.WriteByte(ch) })
	b.addParse(func(cur *scan.Value, _ B) *ParseError {
		if !cur.Match(ch) {
			return parseErrAt(cur, CodeMismatchedCharacter, "expected %q", ch)
		}
		return nil
	})
}

func (b *builder[T, B]) addLiteralString(lit string) {
	if lit == "" {
		return
	}
	b.addFormat(func(sb *strings.Builder, _ T) { sb.WriteString(lit) })
	b.addParse(func(cur *scan.Value, _ B) *ParseError {
		if !cur.MatchString(lit) {
			return parseErrAt(cur, CodeMismatchedText, "expected %q", lit)
		}
		return nil
	})
}

// addNumber wires a zero-padded numeric field: formatting pads the value to
// count digits, parsing takes between 1 and maxDigits digits within
// [minValue, maxValue]. The repeat count only selects the format width; a
// parse never demands the zero padding the format side writes.
func addNumber[T any, B parseBucket[T]](
	b *builder[T, B], ch byte, field PatternField, count, maxDigits, minValue, maxValue int,
	get func(T) int, set func(B, int),
) *PatternError {
	if err := b.useField(field, ch); err != nil {
		return err
	}
	b.addFormat(func(sb *strings.Builder, v T) { appendPadded(sb, get(v), count) })
	b.addParse(func(cur *scan.Value, bkt B) *ParseError {
		val, ok := cur.ParseDigits(1, maxDigits)
		if !ok {
			return parseErrAt(cur, CodeMissingDigits, "expected digits for %q", ch)
		}
		if val < minValue || val > maxValue {
			return parseErrAt(cur, CodeValueOutOfRange,
				"value %d for %q outside range %d-%d", val, ch, minValue, maxValue)
		}
		set(bkt, val)
		return nil
	})
	return nil
}

// addNames wires a text field: formatting writes the selected name, parsing
// picks the longest case-insensitive match among the candidates. Candidate
// indexes map to field values through the value callbacks.
func addNames[T any, B parseBucket[T]](
	b *builder[T, B], candidates []string, values []int,
	get func(T) string, set func(B, int),
) {
	b.addFormat(func(sb *strings.Builder, v T) { sb.WriteString(get(v)) })
	culture := b.culture
	b.addParse(func(cur *scan.Value, bkt B) *ParseError {
		idx, ok := matchLongest(cur, culture, candidates)
		if !ok {
			return parseErrAt(cur, CodeUnknownName, "no recognized name at this position")
		}
		set(bkt, values[idx])
		return nil
	})
}

// matchLongest finds the longest candidate matching at the cursor and
// consumes it. Empty candidates never match.
func matchLongest(cur *scan.Value, folder scan.CaseFolder, candidates []string) (int, bool) {
	best, bestLen := -1, 0
	for i, cand := range candidates {
		if cand == "" || len(cand) <= bestLen && best >= 0 {
			continue
		}
		if cur.MatchCaseInsensitive(cand, folder, false) {
			best, bestLen = i, len(cand)
		}
	}
	if best < 0 {
		return 0, false
	}
	cur.MatchCaseInsensitive(candidates[best], folder, true)
	return best, true
}

func appendPadded(sb *strings.Builder, value, width int) {
	if value < 0 {
		sb.WriteByte('-')
		value = -value
	}
	var digits [20]byte
	n := 0
	for {
		digits[n] = byte('0' + value%10)
		value /= 10
		n++
		if value == 0 {
			break
		}
	}
	for i := n; i < width; i++ {
		sb.WriteByte('0')
	}
	for i := n - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
}

// compiledPattern is the executable form of one pattern text: two parallel
// action sequences derived from the same source, one writing text fragments
// and one consuming them into a bucket.
type compiledPattern[T any, B parseBucket[T]] struct {
	pattern   string
	used      PatternField
	formats   []formatAction[T]
	parses    []parseAction[B]
	newBucket func() B
}

func (b *builder[T, B]) compile(newBucket func() B) *compiledPattern[T, B] {
	return &compiledPattern[T, B]{
		pattern:   b.pattern,
		used:      b.used,
		formats:   b.formats,
		parses:    b.parses,
		newBucket: newBucket,
	}
}

func (p *compiledPattern[T, B]) Format(value T) string {
	var sb strings.Builder
	p.AppendFormat(value, &sb)
	return sb.String()
}

func (p *compiledPattern[T, B]) AppendFormat(value T, sb *strings.Builder) {
	for _, action := range p.formats {
		action(sb, value)
	}
}

func (p *compiledPattern[T, B]) Parse(text string) Result[T] {
	if text == "" {
		return resultErr[T](&ParseError{Code: CodeValueEmpty, Text: text, Index: 0, msg: "value text is empty"})
	}
	cur := scan.NewValue(text)
	r := p.ParsePartial(cur)
	if r.err != nil {
		return r
	}
	if cur.Current() != scan.Sentinel {
		return resultErr[T](parseErrAt(cur, CodeExtraValueText, "unexpected trailing text %q", cur.Remainder()))
	}
	return r
}

func (p *compiledPattern[T, B]) ParsePartial(cur *scan.Value) Result[T] {
	bkt := p.newBucket()
	for _, action := range p.parses {
		if err := action(cur, bkt); err != nil {
			fillErrPosition(err, cur)
			return resultErr[T](err)
		}
	}
	value, err := bkt.build(p.used)
	if err != nil {
		fillErrPosition(err, cur)
		return resultErr[T](err)
	}
	return resultFor(value)
}

func fillErrPosition(err *ParseError, cur *scan.Value) {
	if err.Text == "" {
		err.Text = cur.Text()
	}
	if err.Index < 0 {
		err.Index = cur.Index()
	}
}

// patternHandler compiles one pattern character (and any repeats or
// embedded text it owns) into builder actions.
type patternHandler[T any, B parseBucket[T]] func(pc *scan.Pattern, b *builder[T, B]) *PatternError

// compilePattern drives tokenization: each recognized character dispatches
// to its handler; unquoted ASCII letters with no handler are an error and
// anything else is a literal.
func compilePattern[T any, B parseBucket[T]](
	text string, culture *Culture, handlers map[byte]patternHandler[T, B], newBucket func() B,
) (*compiledPattern[T, B], error) {
	if text == "" {
		return nil, &PatternError{Code: CodeEmptyPattern, Pattern: text, msg: "pattern text is empty"}
	}
	b := newBuilder[T, B](culture, text)
	pc := scan.NewPattern(text)
	for pc.MoveNext() {
		ch := pc.Current()
		if handler, ok := handlers[ch]; ok {
			if err := handler(pc, b); err != nil {
				err.Pattern = text
				return nil, err
			}
			continue
		}
		if ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' {
			return nil, &PatternError{Code: CodeUnknownCharacter, Pattern: text,
				msg: "unknown pattern character " + string(ch)}
		}
		b.addLiteralByte(ch)
	}
	if b.used.HasAll(FieldEra | FieldCalendar) {
		return nil, &PatternError{Code: CodeEraWithCalendar, Pattern: text,
			msg: "era and calendar specifiers cannot appear together"}
	}
	if b.used.HasAny(FieldEra) && !b.used.HasAny(FieldYear|FieldYearTwoDigits) {
		return nil, &PatternError{Code: CodeEraWithoutYear, Pattern: text,
			msg: "era specifier requires a year of era specifier"}
	}
	return b.compile(newBucket), nil
}

// handleQuote compiles '...' or "..." literals.
func handleQuote[T any, B parseBucket[T]](pc *scan.Pattern, b *builder[T, B]) *PatternError {
	quote := pc.Current()
	if !pc.MoveNext() {
		return wrapLexError(scan.ErrUnterminatedQuote)
	}
	lit, err := pc.GetQuotedString(quote)
	if err != nil {
		return wrapLexError(err)
	}
	b.addLiteralString(lit)
	return nil
}

// handleBackslash compiles a single escaped literal character.
func handleBackslash[T any, B parseBucket[T]](pc *scan.Pattern, b *builder[T, B]) *PatternError {
	if !pc.MoveNext() {
		return patternErrf(CodeEscapeAtEnd, "escape character at end of pattern")
	}
	b.addLiteralByte(pc.Current())
	return nil
}

// handlePercent compiles the % marker, which exists so a single pattern
// character can be used without being read as a standard pattern letter.
// The marker itself produces nothing; the character after it compiles as
// usual. A doubled percent and a trailing percent are both errors.
func handlePercent[T any, B parseBucket[T]](pc *scan.Pattern, b *builder[T, B]) *PatternError {
	switch pc.PeekNext() {
	case scan.Sentinel:
		return patternErrf(CodePercentAtEnd, "percent marker at end of pattern")
	case '%':
		return patternErrf(CodePercentDoubled, "%%%% is not a valid percent marker")
	}
	return nil
}

// handleLiteralSelf compiles the current character as itself.
func handleLiteralSelf[T any, B parseBucket[T]](pc *scan.Pattern, b *builder[T, B]) *PatternError {
	b.addLiteralByte(pc.Current())
	return nil
}
