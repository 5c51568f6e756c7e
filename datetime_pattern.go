package tempus

import (
	"strings"

	"github.com/tempus-go/tempus/scan"
)

// dateTimeBucket accumulates both calendar and time-of-day fields, plus the
// results of embedded sub-patterns, which parse into their own scope and
// surface here only as whole values.
type dateTimeBucket struct {
	dateBucket
	timeBucket
	embeddedDate LocalDate
	embeddedTime LocalTime
}

func (bkt *dateTimeBucket) buildLocal(used PatternField) (LocalDateTime, *ParseError) {
	var date LocalDate
	var err *ParseError
	if used.HasAny(FieldEmbeddedDate) {
		date = bkt.embeddedDate
	} else if date, err = bkt.buildDate(used); err != nil {
		return LocalDateTime{}, err
	}
	var t LocalTime
	roll := 0
	if used.HasAny(FieldEmbeddedTime) {
		t = bkt.embeddedTime
	} else if t, roll, err = bkt.buildTime(used); err != nil {
		return LocalDateTime{}, err
	}
	if roll != 0 {
		date = date.addDays(1)
	}
	return LocalDateTime{date: date, time: t}, nil
}

func (bkt *dateTimeBucket) build(used PatternField) (LocalDateTime, *ParseError) {
	return bkt.buildLocal(used)
}

// embeddedHandler compiles the l<...>, ld<...> and lt<...> forms, splicing
// a recursively compiled sub-pattern in as a single action pair.
func embeddedHandler[T any, B parseBucket[T]](
	o patternOptions,
	dateOf func(T) LocalDate, timeOf func(T) LocalTime,
	setDate func(B, LocalDate), setTime func(B, LocalTime),
) patternHandler[T, B] {
	return func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
		kind := byte('l')
		switch pc.PeekNext() {
		case 'd', 't':
			pc.MoveNext()
			kind = pc.Current()
		}
		embedded, lexErr := pc.GetEmbeddedPattern()
		if lexErr != nil {
			return wrapLexError(lexErr)
		}
		switch kind {
		case 'd':
			sub, err := compileDatePattern(embedded, o)
			if err != nil {
				return embeddedCompileError(err)
			}
			if ferr := b.useField(FieldEmbeddedDate, 'l'); ferr != nil {
				return ferr
			}
			b.addFormat(func(sb *strings.Builder, v T) { sub.AppendFormat(dateOf(v), sb) })
			b.addParse(func(cur *scan.Value, bkt B) *ParseError {
				r := sub.ParsePartial(cur)
				if r.err != nil {
					return r.err
				}
				setDate(bkt, r.value)
				return nil
			})
		case 't':
			sub, err := compileTimePattern(embedded, o)
			if err != nil {
				return embeddedCompileError(err)
			}
			if ferr := b.useField(FieldEmbeddedTime, 'l'); ferr != nil {
				return ferr
			}
			b.addFormat(func(sb *strings.Builder, v T) { sub.AppendFormat(timeOf(v), sb) })
			b.addParse(func(cur *scan.Value, bkt B) *ParseError {
				r := sub.ParsePartial(cur)
				if r.err != nil {
					return r.err
				}
				setTime(bkt, r.value)
				return nil
			})
		default:
			sub, err := compileDateTimePattern(embedded, o)
			if err != nil {
				return embeddedCompileError(err)
			}
			if ferr := b.useField(FieldEmbeddedDate, 'l'); ferr != nil {
				return ferr
			}
			if ferr := b.useField(FieldEmbeddedTime, 'l'); ferr != nil {
				return ferr
			}
			b.addFormat(func(sb *strings.Builder, v T) {
				sub.AppendFormat(NewLocalDateTime(dateOf(v), timeOf(v)), sb)
			})
			b.addParse(func(cur *scan.Value, bkt B) *ParseError {
				r := sub.ParsePartial(cur)
				if r.err != nil {
					return r.err
				}
				setDate(bkt, r.value.Date())
				setTime(bkt, r.value.Time())
				return nil
			})
		}
		return nil
	}
}

func embeddedCompileError(err error) *PatternError {
	if perr, ok := err.(*PatternError); ok {
		return perr
	}
	return patternErrf(CodeEmbeddedPattern, "%s", err.Error())
}

func compileTimePattern(text string, o patternOptions) (Pattern[LocalTime], error) {
	expanded := text
	if len(text) == 1 {
		var ok bool
		if expanded, ok = timeStandardText(text[0], o.culture); !ok {
			return nil, &PatternError{Code: CodeUnknownStandardFormat, Pattern: text,
				msg: "unknown standard pattern " + text}
		}
	}
	handlers := mergeHandlers(
		commonHandlers[LocalTime, *timeOnlyBucket](),
		timeFieldHandlers[LocalTime](
			func(t LocalTime) LocalTime { return t },
			func(bkt *timeOnlyBucket) *timeBucket { return &bkt.timeBucket },
		),
	)
	template := o.templateTime
	return compilePattern(expanded, o.culture, handlers, func() *timeOnlyBucket {
		return &timeOnlyBucket{timeBucket: timeBucket{template: template}}
	})
}

// LocalDateTimePattern formats and parses LocalDateTime values.
//
// It accepts every date and time pattern character plus the embedded
// sub-pattern forms ld<...> (date), lt<...> (time) and l<...> (date and
// time). Standard patterns: 'o' (round trip), 's' (sortable), 'g'
// (culture general short), 'G' (culture general long).
type LocalDateTimePattern struct {
	text  string
	inner Pattern[LocalDateTime]
}

// SortablePatternText is the invariant sortable date-time pattern.
const SortablePatternText = "yyyy'-'MM'-'dd'T'HH':'mm':'ss"

// RoundTripPatternText is the invariant round-trip date-time pattern.
const RoundTripPatternText = "yyyy'-'MM'-'dd'T'HH':'mm':'ss.FFFFFFFFF"

func dateTimeStandardText(ch byte, culture *Culture) (string, bool) {
	switch ch {
	case 'o', 'O':
		return RoundTripPatternText, true
	case 's':
		return SortablePatternText, true
	case 'g':
		return culture.ShortDatePattern + " " + culture.ShortTimePattern, true
	case 'G':
		return culture.ShortDatePattern + " " + culture.LongTimePattern, true
	}
	return "", false
}

// NewLocalDateTimePattern compiles pattern text for date-times.
func NewLocalDateTimePattern(text string, opts ...Option) (*LocalDateTimePattern, error) {
	o := resolveOptions(opts)
	inner, err := compileDateTimePattern(text, o)
	if err != nil {
		return nil, err
	}
	return &LocalDateTimePattern{text: text, inner: inner}, nil
}

func compileDateTimePattern(text string, o patternOptions) (Pattern[LocalDateTime], error) {
	expanded := text
	if len(text) == 1 {
		var ok bool
		if expanded, ok = dateTimeStandardText(text[0], o.culture); !ok {
			return nil, &PatternError{Code: CodeUnknownStandardFormat, Pattern: text,
				msg: "unknown standard pattern " + text}
		}
	}
	handlers := mergeHandlers(
		commonHandlers[LocalDateTime, *dateTimeBucket](),
		dateFieldHandlers[LocalDateTime](
			LocalDateTime.Date,
			func(bkt *dateTimeBucket) *dateBucket { return &bkt.dateBucket },
		),
		timeFieldHandlers[LocalDateTime](
			LocalDateTime.Time,
			func(bkt *dateTimeBucket) *timeBucket { return &bkt.timeBucket },
		),
		map[byte]patternHandler[LocalDateTime, *dateTimeBucket]{
			'l': embeddedHandler(o, LocalDateTime.Date, LocalDateTime.Time,
				func(bkt *dateTimeBucket, d LocalDate) { bkt.embeddedDate = d },
				func(bkt *dateTimeBucket, t LocalTime) { bkt.embeddedTime = t }),
			'T': handleLiteralSelf[LocalDateTime, *dateTimeBucket],
		},
	)
	templateDate, templateTime := o.templateDate, o.templateTime
	return compilePattern(expanded, o.culture, handlers, func() *dateTimeBucket {
		return &dateTimeBucket{
			dateBucket: dateBucket{template: templateDate},
			timeBucket: timeBucket{template: templateTime},
		}
	})
}

// MustLocalDateTimePattern is NewLocalDateTimePattern panicking on bad
// pattern text.
func MustLocalDateTimePattern(text string, opts ...Option) *LocalDateTimePattern {
	p, err := NewLocalDateTimePattern(text, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// PatternText returns the text the pattern was built from.
func (p *LocalDateTimePattern) PatternText() string { return p.text }

func (p *LocalDateTimePattern) Format(value LocalDateTime) string { return p.inner.Format(value) }

func (p *LocalDateTimePattern) AppendFormat(value LocalDateTime, sb *strings.Builder) {
	p.inner.AppendFormat(value, sb)
}

func (p *LocalDateTimePattern) Parse(text string) Result[LocalDateTime] { return p.inner.Parse(text) }

func (p *LocalDateTimePattern) ParsePartial(cur *scan.Value) Result[LocalDateTime] {
	return p.inner.ParsePartial(cur)
}
