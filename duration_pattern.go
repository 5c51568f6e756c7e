package tempus

import (
	"math"
	"strings"

	"github.com/tempus-go/tempus/scan"
)

// durationBucket accumulates duration components during a parse. The total
// field holds the value of the pattern's leading unit, which is not capped
// the way the partial fields below it are.
type durationBucket struct {
	negative  bool
	totalUnit byte
	total     int64
	hours     int
	minutes   int
	seconds   int
	fraction  int64
}

func durationUnitNanos(unit byte) int64 {
	switch unit {
	case 'D':
		return nanosPerDay
	case 'H':
		return 3600e9
	case 'M':
		return 60e9
	default:
		return 1e9
	}
}

func (bkt *durationBucket) build(used PatternField) (Duration, *ParseError) {
	limit := uint64(math.MaxInt64)
	if bkt.negative {
		limit++
	}
	var mag uint64
	add := func(n uint64) bool {
		if n > limit-mag {
			return false
		}
		mag += n
		return true
	}
	ok := true
	if bkt.totalUnit != 0 {
		unit := uint64(durationUnitNanos(bkt.totalUnit))
		if uint64(bkt.total) > limit/unit {
			ok = false
		} else {
			ok = add(uint64(bkt.total) * unit)
		}
	}
	ok = ok && add(uint64(bkt.hours)*3600e9)
	ok = ok && add(uint64(bkt.minutes)*60e9)
	ok = ok && add(uint64(bkt.seconds)*1e9)
	ok = ok && add(uint64(bkt.fraction))
	if !ok {
		return Duration{}, parseErrf(CodeOverflow, "duration does not fit in 64-bit nanoseconds")
	}
	if bkt.negative {
		if mag == limit {
			return Duration{nanos: math.MinInt64}, nil
		}
		return Duration{nanos: -int64(mag)}, nil
	}
	return Duration{nanos: int64(mag)}, nil
}

// durationMagnitude is the absolute nanosecond count, exact even for the
// most negative duration.
func durationMagnitude(d Duration) uint64 {
	if d.nanos >= 0 {
		return uint64(d.nanos)
	}
	return uint64(-(d.nanos + 1)) + 1
}

func appendPaddedUint64(sb *strings.Builder, value uint64, width int) {
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

// durationCompileState tracks, while a pattern compiles, the smallest unit
// seen so far, so that each unit field can check it sits under a larger
// one. Units shrink left to right; a total is only legal as the first
// unit.
type durationCompileState struct {
	smallest int // 0 none, then 1 day .. 4 second
}

const (
	unitNone = iota
	unitDay
	unitHour
	unitMinute
	unitSecond
)

// addDurationTotal wires one of the uppercase total-unit fields. Totals
// are uncapped, so parsing takes up to 18 digits.
func addDurationTotal(
	b *builder[Duration, *durationBucket], state *durationCompileState,
	ch byte, count, magnitude int,
) *PatternError {
	if state.smallest != unitNone {
		return patternErrf(CodeMisplacedUnit,
			"total unit %q must be the first unit in the pattern", ch)
	}
	if err := b.useField(FieldTotalDuration, ch); err != nil {
		return err
	}
	state.smallest = magnitude
	unit := uint64(durationUnitNanos(ch))
	b.addFormat(func(sb *strings.Builder, v Duration) {
		appendPaddedUint64(sb, durationMagnitude(v)/unit, count)
	})
	b.addParse(func(cur *scan.Value, bkt *durationBucket) *ParseError {
		val, ok := cur.ParseInt64Digits(1, 18)
		if !ok {
			return parseErrAt(cur, CodeMissingDigits, "expected digits for %q", ch)
		}
		bkt.totalUnit = ch
		bkt.total = val
		return nil
	})
	return nil
}

// addDurationPartial wires one of the lowercase capped fields, which are
// only meaningful under a larger unit.
func addDurationPartial(
	b *builder[Duration, *durationBucket], state *durationCompileState,
	ch byte, field PatternField, count, magnitude, maxValue int,
	get func(uint64) int, set func(*durationBucket, int),
) *PatternError {
	if state.smallest == unitNone || state.smallest >= magnitude {
		return patternErrf(CodeMisplacedUnit,
			"field %q needs a larger unit earlier in the pattern", ch)
	}
	state.smallest = magnitude
	return addNumber(b, ch, field, count, 2, 0, maxValue,
		func(v Duration) int { return get(durationMagnitude(v)) },
		set)
}

func durationFieldHandlers(state *durationCompileState) map[byte]patternHandler[Duration, *durationBucket] {
	nanosOf := func(v Duration) int { return int(durationMagnitude(v) % 1e9) }
	setFraction := func(bkt *durationBucket, val int64) { bkt.fraction = val }
	requireSeconds := func(pc *scan.Pattern, ch byte) *PatternError {
		if state.smallest != unitSecond {
			return patternErrf(CodeMisplacedUnit,
				"field %q needs a seconds unit earlier in the pattern", ch)
		}
		return nil
	}
	return map[byte]patternHandler[Duration, *durationBucket]{
		'+': func(pc *scan.Pattern, b *builder[Duration, *durationBucket]) *PatternError {
			return addSign(b, true, Duration.IsNegative,
				func(bkt *durationBucket, neg bool) { bkt.negative = neg })
		},
		'-': func(pc *scan.Pattern, b *builder[Duration, *durationBucket]) *PatternError {
			return addSign(b, false, Duration.IsNegative,
				func(bkt *durationBucket, neg bool) { bkt.negative = neg })
		},
		'D': func(pc *scan.Pattern, b *builder[Duration, *durationBucket]) *PatternError {
			count, err := repeatCount(pc, 'D', 8)
			if err != nil {
				return err
			}
			return addDurationTotal(b, state, 'D', count, unitDay)
		},
		'H': func(pc *scan.Pattern, b *builder[Duration, *durationBucket]) *PatternError {
			count, err := repeatCount(pc, 'H', 10)
			if err != nil {
				return err
			}
			return addDurationTotal(b, state, 'H', count, unitHour)
		},
		'M': func(pc *scan.Pattern, b *builder[Duration, *durationBucket]) *PatternError {
			count, err := repeatCount(pc, 'M', 12)
			if err != nil {
				return err
			}
			return addDurationTotal(b, state, 'M', count, unitMinute)
		},
		'S': func(pc *scan.Pattern, b *builder[Duration, *durationBucket]) *PatternError {
			count, err := repeatCount(pc, 'S', 14)
			if err != nil {
				return err
			}
			return addDurationTotal(b, state, 'S', count, unitSecond)
		},
		'h': func(pc *scan.Pattern, b *builder[Duration, *durationBucket]) *PatternError {
			count, err := repeatCount(pc, 'h', 2)
			if err != nil {
				return err
			}
			return addDurationPartial(b, state, 'h', FieldHours24, count, unitHour, 23,
				func(mag uint64) int { return int(mag / 3600e9 % 24) },
				func(bkt *durationBucket, val int) { bkt.hours = val })
		},
		'm': func(pc *scan.Pattern, b *builder[Duration, *durationBucket]) *PatternError {
			count, err := repeatCount(pc, 'm', 2)
			if err != nil {
				return err
			}
			return addDurationPartial(b, state, 'm', FieldMinutes, count, unitMinute, 59,
				func(mag uint64) int { return int(mag / 60e9 % 60) },
				func(bkt *durationBucket, val int) { bkt.minutes = val })
		},
		's': func(pc *scan.Pattern, b *builder[Duration, *durationBucket]) *PatternError {
			count, err := repeatCount(pc, 's', 2)
			if err != nil {
				return err
			}
			return addDurationPartial(b, state, 's', FieldSeconds, count, unitSecond, 59,
				func(mag uint64) int { return int(mag / 1e9 % 60) },
				func(bkt *durationBucket, val int) { bkt.seconds = val })
		},
		'f': func(pc *scan.Pattern, b *builder[Duration, *durationBucket]) *PatternError {
			if err := requireSeconds(pc, 'f'); err != nil {
				return err
			}
			count, err := repeatCount(pc, 'f', 9)
			if err != nil {
				return err
			}
			return addFraction(b, 'f', count, true, nanosOf, setFraction)
		},
		'F': func(pc *scan.Pattern, b *builder[Duration, *durationBucket]) *PatternError {
			if err := requireSeconds(pc, 'F'); err != nil {
				return err
			}
			count, err := repeatCount(pc, 'F', 9)
			if err != nil {
				return err
			}
			return addFraction(b, 'F', count, false, nanosOf, setFraction)
		},
		':': func(pc *scan.Pattern, b *builder[Duration, *durationBucket]) *PatternError {
			b.addLiteralString(b.culture.TimeSeparator)
			return nil
		},
		'.': func(pc *scan.Pattern, b *builder[Duration, *durationBucket]) *PatternError {
			if pc.PeekNext() == 'F' {
				if err := requireSeconds(pc, 'F'); err != nil {
					return err
				}
			}
			return addDecimalPoint(pc, b, ".", nanosOf, setFraction)
		},
		';': func(pc *scan.Pattern, b *builder[Duration, *durationBucket]) *PatternError {
			if pc.PeekNext() == 'F' {
				if err := requireSeconds(pc, 'F'); err != nil {
					return err
				}
			}
			return addDecimalPoint(pc, b, b.culture.DecimalSeparator, nanosOf, setFraction)
		},
	}
}

// DurationPattern formats and parses nanosecond durations.
//
// The leading unit field is a total and is written uppercase: D (days),
// H (hours), M (minutes) or S (seconds). Units below the total are written
// lowercase and capped: h (0-23), m (0-59), s (0-59), with f/F fractional
// seconds. '+' and '-' are sign specifiers applying to the whole value.
// Standard pattern: 'o' (round trip). A one-character pattern is always
// read as a standard pattern, so a lone total unit needs the % marker:
// "%S" is the seconds-total pattern, "S" is an unknown standard.
type DurationPattern struct {
	text  string
	inner Pattern[Duration]
}

// DurationRoundTripPatternText is the invariant round-trip duration pattern.
const DurationRoundTripPatternText = "-D:hh:mm:ss.FFFFFFFFF"

// NewDurationPattern compiles pattern text for durations.
func NewDurationPattern(text string, opts ...Option) (*DurationPattern, error) {
	o := resolveOptions(opts)
	expanded := text
	if len(text) == 1 {
		if text[0] != 'o' {
			return nil, &PatternError{Code: CodeUnknownStandardFormat, Pattern: text,
				msg: "unknown standard pattern " + text}
		}
		expanded = DurationRoundTripPatternText
	}
	state := &durationCompileState{}
	handlers := mergeHandlers(
		commonHandlers[Duration, *durationBucket](),
		durationFieldHandlers(state),
	)
	inner, err := compilePattern(expanded, o.culture, handlers, func() *durationBucket {
		return &durationBucket{}
	})
	if err != nil {
		return nil, err
	}
	return &DurationPattern{text: text, inner: inner}, nil
}

// MustDurationPattern is NewDurationPattern panicking on bad pattern text.
func MustDurationPattern(text string, opts ...Option) *DurationPattern {
	p, err := NewDurationPattern(text, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// PatternText returns the text the pattern was built from.
func (p *DurationPattern) PatternText() string { return p.text }

func (p *DurationPattern) Format(value Duration) string { return p.inner.Format(value) }

func (p *DurationPattern) AppendFormat(value Duration, sb *strings.Builder) {
	p.inner.AppendFormat(value, sb)
}

func (p *DurationPattern) Parse(text string) Result[Duration] { return p.inner.Parse(text) }

func (p *DurationPattern) ParsePartial(cur *scan.Value) Result[Duration] {
	return p.inner.ParsePartial(cur)
}
