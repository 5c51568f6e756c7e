package tempus

import (
	"strings"
	"unicode/utf8"

	"github.com/tempus-go/tempus/scan"
)

// timeBucket accumulates raw time-of-day fields during a parse. The 12 and
// 24 hour clocks, the day period and the template value are reconciled in
// buildTime; an hour of 24 is legal only as the very start of the next day,
// which buildTime reports through the day roll.
type timeBucket struct {
	template LocalTime
	hours12  int
	hours24  int
	minutes  int
	seconds  int
	fraction int64
	amPm     int
}

func (bkt *timeBucket) buildTime(used PatternField) (LocalTime, int, *ParseError) {
	hour := bkt.template.Hour()
	h24 := used.HasAny(FieldHours24)
	h12 := used.HasAny(FieldHours12)
	amPm := used.HasAny(FieldAmPm)
	if h24 && h12 && bkt.hours24%12 != bkt.hours12%12 {
		return LocalTime{}, 0, parseErrf(CodeInconsistentValues,
			"12-hour value %d and 24-hour value %d disagree", bkt.hours12, bkt.hours24)
	}
	switch {
	case h24:
		if amPm && bkt.hours24 != 24 && (bkt.hours24 >= 12) != (bkt.amPm == 1) {
			return LocalTime{}, 0, parseErrf(CodeInconsistentValues,
				"day period disagrees with 24-hour value %d", bkt.hours24)
		}
		hour = bkt.hours24
	case h12 && amPm:
		hour = bkt.hours12%12 + 12*bkt.amPm
	case h12:
		// No day period in the pattern: take the template's half of day.
		hour = bkt.hours12%12 + bkt.template.Hour()/12*12
	case amPm:
		hour = bkt.template.Hour()%12 + 12*bkt.amPm
	}

	minute := bkt.template.Minute()
	if used.HasAny(FieldMinutes) {
		minute = bkt.minutes
	}
	second := bkt.template.Second()
	if used.HasAny(FieldSeconds) {
		second = bkt.seconds
	}
	nanos := bkt.template.Nanosecond()
	if used.HasAny(FieldFractionalSeconds) {
		nanos = int(bkt.fraction)
	}

	roll := 0
	if hour == 24 {
		if minute != 0 || second != 0 || nanos != 0 {
			return LocalTime{}, 0, parseErrf(CodeValueOutOfRange,
				"hour 24 is only valid at exactly 24:00:00.0")
		}
		hour, roll = 0, 1
	}
	t, err := NewLocalTime(hour, minute, second, nanos)
	if err != nil {
		return LocalTime{}, 0, parseErrf(CodeValueOutOfRange, "%s", err.Error())
	}
	return t, roll, nil
}

// timeOnlyBucket is the bucket for LocalTime patterns, where a day roll has
// nowhere to go.
type timeOnlyBucket struct {
	timeBucket
}

func (bkt *timeOnlyBucket) build(used PatternField) (LocalTime, *ParseError) {
	t, roll, err := bkt.buildTime(used)
	if err != nil {
		return LocalTime{}, err
	}
	if roll != 0 {
		return LocalTime{}, parseErrf(CodeValueOutOfRange,
			"24:00 cannot roll over in a time-only value")
	}
	return t, nil
}

// commonHandlers are the literal and escape forms shared by every pattern
// language.
func commonHandlers[T any, B parseBucket[T]]() map[byte]patternHandler[T, B] {
	return map[byte]patternHandler[T, B]{
		'\'': handleQuote[T, B],
		'"':  handleQuote[T, B],
		'\\': handleBackslash[T, B],
		'%':  handlePercent[T, B],
	}
}

func mergeHandlers[T any, B parseBucket[T]](maps ...map[byte]patternHandler[T, B]) map[byte]patternHandler[T, B] {
	merged := map[byte]patternHandler[T, B]{}
	for _, m := range maps {
		for ch, h := range m {
			merged[ch] = h
		}
	}
	return merged
}

func repeatCount(pc *scan.Pattern, ch byte, maximum int) (int, *PatternError) {
	count, err := pc.GetRepeatCount(maximum)
	if err != nil {
		return 0, patternErrf(CodeRepeatCountExceeded,
			"field %q exceeds its maximum repeat count %d", ch, maximum)
	}
	return count, nil
}

// timeFieldHandlers compiles the time-of-day fields for any pattern type
// that carries a time: timeOf projects the value and tb the bucket slice
// the parse actions write into.
func timeFieldHandlers[T any, B parseBucket[T]](
	timeOf func(T) LocalTime, tb func(B) *timeBucket,
) map[byte]patternHandler[T, B] {
	return map[byte]patternHandler[T, B]{
		'H': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			count, err := repeatCount(pc, 'H', 2)
			if err != nil {
				return err
			}
			return addNumber(b, 'H', FieldHours24, count, 2, 0, 24,
				func(v T) int { return timeOf(v).Hour() },
				func(bkt B, val int) { tb(bkt).hours24 = val })
		},
		'h': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			count, err := repeatCount(pc, 'h', 2)
			if err != nil {
				return err
			}
			return addNumber(b, 'h', FieldHours12, count, 2, 1, 12,
				func(v T) int { return timeOf(v).Hour12() },
				func(bkt B, val int) { tb(bkt).hours12 = val })
		},
		'm': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			count, err := repeatCount(pc, 'm', 2)
			if err != nil {
				return err
			}
			return addNumber(b, 'm', FieldMinutes, count, 2, 0, 59,
				func(v T) int { return timeOf(v).Minute() },
				func(bkt B, val int) { tb(bkt).minutes = val })
		},
		's': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			count, err := repeatCount(pc, 's', 2)
			if err != nil {
				return err
			}
			return addNumber(b, 's', FieldSeconds, count, 2, 0, 59,
				func(v T) int { return timeOf(v).Second() },
				func(bkt B, val int) { tb(bkt).seconds = val })
		},
		'f': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			count, err := repeatCount(pc, 'f', 9)
			if err != nil {
				return err
			}
			return addFraction(b, 'f', count, true,
				func(v T) int { return timeOf(v).Nanosecond() },
				func(bkt B, val int64) { tb(bkt).fraction = val })
		},
		'F': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			count, err := repeatCount(pc, 'F', 9)
			if err != nil {
				return err
			}
			return addFraction(b, 'F', count, false,
				func(v T) int { return timeOf(v).Nanosecond() },
				func(bkt B, val int64) { tb(bkt).fraction = val })
		},
		't': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			count, err := repeatCount(pc, 't', 2)
			if err != nil {
				return err
			}
			return addDayPeriod(b, count,
				func(v T) int { return timeOf(v).Hour() },
				func(bkt B, val int) { tb(bkt).amPm = val })
		},
		':': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			b.addLiteralString(b.culture.TimeSeparator)
			return nil
		},
		'.': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			return addDecimalPoint(pc, b, ".",
				func(v T) int { return timeOf(v).Nanosecond() },
				func(bkt B, val int64) { tb(bkt).fraction = val })
		},
		';': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			return addDecimalPoint(pc, b, b.culture.DecimalSeparator,
				func(v T) int { return timeOf(v).Nanosecond() },
				func(bkt B, val int64) { tb(bkt).fraction = val })
		},
	}
}

// fractionDigits truncates a nanosecond-of-second to count digits.
func fractionDigits(nanos, count int) string {
	var sb strings.Builder
	appendPadded(&sb, nanos, 9)
	return sb.String()[:count]
}

func trimTrailingZeros(s string) string {
	return strings.TrimRight(s, "0")
}

// addFraction wires an 'f' (fixed width) or 'F' (trailing zeros elided)
// fractional-second field. Truncation, never rounding.
func addFraction[T any, B parseBucket[T]](
	b *builder[T, B], ch byte, count int, fixed bool,
	get func(T) int, set func(B, int64),
) *PatternError {
	if err := b.useField(FieldFractionalSeconds, ch); err != nil {
		return err
	}
	if fixed {
		b.addFormat(func(sb *strings.Builder, v T) { sb.WriteString(fractionDigits(get(v), count)) })
		b.addParse(func(cur *scan.Value, bkt B) *ParseError {
			val, ok := cur.ParseFraction(count, count, 9)
			if !ok {
				return parseErrAt(cur, CodeMissingDigits, "expected %d fractional digits", count)
			}
			set(bkt, val)
			return nil
		})
		return nil
	}
	b.addFormat(func(sb *strings.Builder, v T) { sb.WriteString(trimTrailingZeros(fractionDigits(get(v), count))) })
	b.addParse(func(cur *scan.Value, bkt B) *ParseError {
		val, _ := cur.ParseFraction(0, count, 9)
		set(bkt, val)
		return nil
	})
	return nil
}

// addDecimalPoint compiles a decimal separator. When an 'F' run follows,
// the separator and the fraction become one unit: both disappear from
// output when the fraction is zero, and an absent separator parses as a
// zero fraction.
func addDecimalPoint[T any, B parseBucket[T]](
	pc *scan.Pattern, b *builder[T, B], sep string,
	get func(T) int, set func(B, int64),
) *PatternError {
	if pc.PeekNext() != 'F' {
		b.addLiteralString(sep)
		return nil
	}
	pc.MoveNext()
	count, err := repeatCount(pc, 'F', 9)
	if err != nil {
		return err
	}
	if err := b.useField(FieldFractionalSeconds, 'F'); err != nil {
		return err
	}
	b.addFormat(func(sb *strings.Builder, v T) {
		digits := trimTrailingZeros(fractionDigits(get(v), count))
		if digits != "" {
			sb.WriteString(sep)
			sb.WriteString(digits)
		}
	})
	b.addParse(func(cur *scan.Value, bkt B) *ParseError {
		if !cur.MatchString(sep) {
			set(bkt, 0)
			return nil
		}
		val, ok := cur.ParseFraction(1, count, 9)
		if !ok {
			return parseErrAt(cur, CodeMissingDigits, "expected fractional digits after %q", sep)
		}
		set(bkt, val)
		return nil
	})
	return nil
}

// addDayPeriod compiles the AM/PM designator field. Cultures where both
// designators are empty contribute nothing; the template's half of day
// disambiguates instead.
func addDayPeriod[T any, B parseBucket[T]](
	b *builder[T, B], count int,
	getHour func(T) int, set func(B, int),
) *PatternError {
	culture := b.culture
	am, pm := culture.AMDesignator, culture.PMDesignator
	if am == "" && pm == "" {
		return nil
	}
	if err := b.useField(FieldAmPm, 't'); err != nil {
		return err
	}
	if count == 1 {
		am, pm = firstRune(am), firstRune(pm)
	}
	b.addFormat(func(sb *strings.Builder, v T) {
		if getHour(v) >= 12 {
			sb.WriteString(pm)
		} else {
			sb.WriteString(am)
		}
	})
	b.addParse(func(cur *scan.Value, bkt B) *ParseError {
		idx, ok := matchLongest(cur, culture, []string{am, pm})
		if ok {
			set(bkt, idx)
			return nil
		}
		// An empty designator matches zero characters.
		switch {
		case am == "":
			set(bkt, 0)
		case pm == "":
			set(bkt, 1)
		default:
			return parseErrAt(cur, CodeUnknownName, "expected %q or %q", am, pm)
		}
		return nil
	})
	return nil
}

func firstRune(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// LocalTimePattern formats and parses LocalTime values.
//
// Pattern characters: H/HH (24-hour), h/hh (12-hour), m/mm, s/ss, f/F
// (fractional seconds), t/tt (day period), ':' (culture time separator),
// '.' (decimal point), ';' (culture decimal separator). Standard patterns:
// 't' (culture short), 'T' (culture long), 'o' (round trip).
type LocalTimePattern struct {
	text  string
	inner Pattern[LocalTime]
}

func timeStandardText(ch byte, culture *Culture) (string, bool) {
	switch ch {
	case 't':
		return culture.ShortTimePattern, true
	case 'T':
		return culture.LongTimePattern, true
	case 'o':
		return "HH':'mm':'ss.FFFFFFFFF", true
	}
	return "", false
}

// NewLocalTimePattern compiles pattern text for times of day.
func NewLocalTimePattern(text string, opts ...Option) (*LocalTimePattern, error) {
	o := resolveOptions(opts)
	inner, err := compileTimePattern(text, o)
	if err != nil {
		return nil, err
	}
	return &LocalTimePattern{text: text, inner: inner}, nil
}

// MustLocalTimePattern is NewLocalTimePattern panicking on bad pattern text.
func MustLocalTimePattern(text string, opts ...Option) *LocalTimePattern {
	p, err := NewLocalTimePattern(text, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// PatternText returns the text the pattern was built from.
func (p *LocalTimePattern) PatternText() string { return p.text }

func (p *LocalTimePattern) Format(value LocalTime) string { return p.inner.Format(value) }

func (p *LocalTimePattern) AppendFormat(value LocalTime, sb *strings.Builder) {
	p.inner.AppendFormat(value, sb)
}

func (p *LocalTimePattern) Parse(text string) Result[LocalTime] { return p.inner.Parse(text) }

func (p *LocalTimePattern) ParsePartial(cur *scan.Value) Result[LocalTime] {
	return p.inner.ParsePartial(cur)
}
