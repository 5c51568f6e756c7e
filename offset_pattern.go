package tempus

import (
	"strings"

	"github.com/tempus-go/tempus/scan"
)

// offsetBucket accumulates the components of a UTC offset during a parse.
// Components are magnitudes; the sign field applies to the whole offset.
type offsetBucket struct {
	negative bool
	hours    int
	minutes  int
	seconds  int
}

func (bkt *offsetBucket) build(used PatternField) (Offset, *ParseError) {
	total := bkt.hours*3600 + bkt.minutes*60 + bkt.seconds
	if bkt.negative {
		total = -total
	}
	off, err := NewOffset(total)
	if err != nil {
		return Offset{}, parseErrf(CodeValueOutOfRange, "%s", err.Error())
	}
	return off, nil
}

func offsetAbsSeconds(o Offset) int {
	s := o.Seconds()
	if s < 0 {
		return -s
	}
	return s
}

// addSign wires a sign specifier. '+' always formats a sign and requires
// one on parse; '-' formats a sign only for negative offsets and treats a
// missing sign as positive.
func addSign[T any, B parseBucket[T]](
	b *builder[T, B], required bool,
	isNegative func(T) bool, setNegative func(B, bool),
) *PatternError {
	if err := b.useField(FieldSign, '+'); err != nil {
		return err
	}
	b.addFormat(func(sb *strings.Builder, v T) {
		if isNegative(v) {
			sb.WriteByte('-')
		} else if required {
			sb.WriteByte('+')
		}
	})
	b.addParse(func(cur *scan.Value, bkt B) *ParseError {
		switch {
		case cur.Match('-'):
			setNegative(bkt, true)
		case cur.Match('+'):
			setNegative(bkt, false)
		case required:
			return parseErrAt(cur, CodeMissingSign, "expected a '+' or '-' sign")
		}
		return nil
	})
	return nil
}

// rejectHours12 compiles 'h' and 't' into the dedicated failure: the type
// has hour-like components but no AM/PM concept.
func rejectHours12[T any, B parseBucket[T]](pc *scan.Pattern, b *builder[T, B]) *PatternError {
	return patternErrf(CodeNoAmPmConcept,
		"field %q requires an AM/PM concept the value type does not have", pc.Current())
}

func offsetFieldHandlers() map[byte]patternHandler[Offset, *offsetBucket] {
	return map[byte]patternHandler[Offset, *offsetBucket]{
		'+': func(pc *scan.Pattern, b *builder[Offset, *offsetBucket]) *PatternError {
			return addSign(b, true, Offset.IsNegative,
				func(bkt *offsetBucket, neg bool) { bkt.negative = neg })
		},
		'-': func(pc *scan.Pattern, b *builder[Offset, *offsetBucket]) *PatternError {
			return addSign(b, false, Offset.IsNegative,
				func(bkt *offsetBucket, neg bool) { bkt.negative = neg })
		},
		'H': func(pc *scan.Pattern, b *builder[Offset, *offsetBucket]) *PatternError {
			count, err := repeatCount(pc, 'H', 2)
			if err != nil {
				return err
			}
			return addNumber(b, 'H', FieldHours24, count, 2, 0, 18,
				func(o Offset) int { return offsetAbsSeconds(o) / 3600 },
				func(bkt *offsetBucket, val int) { bkt.hours = val })
		},
		'm': func(pc *scan.Pattern, b *builder[Offset, *offsetBucket]) *PatternError {
			count, err := repeatCount(pc, 'm', 2)
			if err != nil {
				return err
			}
			return addNumber(b, 'm', FieldMinutes, count, 2, 0, 59,
				func(o Offset) int { return offsetAbsSeconds(o) / 60 % 60 },
				func(bkt *offsetBucket, val int) { bkt.minutes = val })
		},
		's': func(pc *scan.Pattern, b *builder[Offset, *offsetBucket]) *PatternError {
			count, err := repeatCount(pc, 's', 2)
			if err != nil {
				return err
			}
			return addNumber(b, 's', FieldSeconds, count, 2, 0, 59,
				func(o Offset) int { return offsetAbsSeconds(o) % 60 },
				func(bkt *offsetBucket, val int) { bkt.seconds = val })
		},
		'h': rejectHours12[Offset, *offsetBucket],
		't': rejectHours12[Offset, *offsetBucket],
		'Z': func(pc *scan.Pattern, b *builder[Offset, *offsetBucket]) *PatternError {
			return patternErrf(CodeUnknownCharacter,
				"'Z' may only appear at the start of an offset pattern")
		},
		':': func(pc *scan.Pattern, b *builder[Offset, *offsetBucket]) *PatternError {
			b.addLiteralString(b.culture.TimeSeparator)
			return nil
		},
	}
}

func compileOffsetCustom(text string, o patternOptions) (Pattern[Offset], error) {
	handlers := mergeHandlers(
		commonHandlers[Offset, *offsetBucket](),
		offsetFieldHandlers(),
	)
	return compilePattern(text, o.culture, handlers, func() *offsetBucket {
		return &offsetBucket{}
	})
}

// compileOffsetGeneral builds the 'g' standard: the shortest of the long,
// medium and short forms that loses nothing, always carrying a sign, with
// parsing trying the longest form first.
func compileOffsetGeneral(o patternOptions) (Pattern[Offset], error) {
	long, err := compileOffsetCustom("+HH:mm:ss", o)
	if err != nil {
		return nil, err
	}
	medium, err := compileOffsetCustom("+HH:mm", o)
	if err != nil {
		return nil, err
	}
	short, err := compileOffsetCustom("+HH", o)
	if err != nil {
		return nil, err
	}
	return NewCompositePatternBuilder[Offset]().
		Add(long, func(v Offset) bool { return v.Seconds()%60 != 0 }).
		Add(medium, func(v Offset) bool { return v.Seconds()%3600 != 0 }).
		Add(short, func(Offset) bool { return true }).
		Build()
}

func compileOffsetPattern(text string, o patternOptions) (Pattern[Offset], error) {
	if len(text) > 1 && text[0] == 'Z' {
		inner, err := compileOffsetPattern(text[1:], o)
		if err != nil {
			return nil, err
		}
		return &zPrefixOffsetPattern{inner: inner}, nil
	}
	if len(text) == 1 {
		switch text[0] {
		case 'g':
			return compileOffsetGeneral(o)
		case 'G':
			inner, err := compileOffsetGeneral(o)
			if err != nil {
				return nil, err
			}
			return &zPrefixOffsetPattern{inner: inner}, nil
		case 'l':
			text = "-HH:mm:ss"
		case 'm':
			text = "-HH:mm"
		case 's':
			text = "-HH"
		default:
			return nil, &PatternError{Code: CodeUnknownStandardFormat, Pattern: text,
				msg: "unknown standard pattern " + text}
		}
	}
	return compileOffsetCustom(text, o)
}

// zPrefixOffsetPattern renders the zero offset as the single letter Z and
// defers to the wrapped pattern for everything else. On parse a leading Z
// means zero; any other text goes to the wrapped pattern.
type zPrefixOffsetPattern struct {
	inner Pattern[Offset]
}

func (p *zPrefixOffsetPattern) Format(value Offset) string {
	var sb strings.Builder
	p.AppendFormat(value, &sb)
	return sb.String()
}

func (p *zPrefixOffsetPattern) AppendFormat(value Offset, sb *strings.Builder) {
	if value.Seconds() == 0 {
		sb.WriteByte('Z')
		return
	}
	p.inner.AppendFormat(value, sb)
}

func (p *zPrefixOffsetPattern) Parse(text string) Result[Offset] {
	if text == "" {
		return resultErr[Offset](&ParseError{Code: CodeValueEmpty, Text: text, Index: 0,
			msg: "value text is empty"})
	}
	cur := scan.NewValue(text)
	r := p.ParsePartial(cur)
	if r.err != nil {
		return r
	}
	if cur.Current() != scan.Sentinel {
		return resultErr[Offset](parseErrAt(cur, CodeExtraValueText,
			"unexpected trailing text %q", cur.Remainder()))
	}
	return r
}

func (p *zPrefixOffsetPattern) ParsePartial(cur *scan.Value) Result[Offset] {
	if cur.Match('Z') {
		return resultFor(ZeroOffset)
	}
	return p.inner.ParsePartial(cur)
}

// OffsetPattern formats and parses UTC offsets.
//
// Pattern characters: + (mandatory sign), - (sign only when negative),
// H/HH (hours), m/mm, s/ss, ':' (culture time separator). A pattern
// starting with Z renders the zero offset as "Z" and otherwise behaves as
// the rest of the pattern. Standard patterns: 'g' (general), 'G' (general
// with Z for zero), 'l' (long), 'm' (medium), 's' (short).
type OffsetPattern struct {
	text  string
	inner Pattern[Offset]
}

// NewOffsetPattern compiles pattern text for UTC offsets.
func NewOffsetPattern(text string, opts ...Option) (*OffsetPattern, error) {
	o := resolveOptions(opts)
	inner, err := compileOffsetPattern(text, o)
	if err != nil {
		return nil, err
	}
	return &OffsetPattern{text: text, inner: inner}, nil
}

// MustOffsetPattern is NewOffsetPattern panicking on bad pattern text.
func MustOffsetPattern(text string, opts ...Option) *OffsetPattern {
	p, err := NewOffsetPattern(text, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// PatternText returns the text the pattern was built from.
func (p *OffsetPattern) PatternText() string { return p.text }

func (p *OffsetPattern) Format(value Offset) string { return p.inner.Format(value) }

func (p *OffsetPattern) AppendFormat(value Offset, sb *strings.Builder) {
	p.inner.AppendFormat(value, sb)
}

func (p *OffsetPattern) Parse(text string) Result[Offset] { return p.inner.Parse(text) }

func (p *OffsetPattern) ParsePartial(cur *scan.Value) Result[Offset] {
	return p.inner.ParsePartial(cur)
}
