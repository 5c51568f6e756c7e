package tempus

import (
	"strings"

	"github.com/tempus-go/tempus/scan"
)

// The period forms are fixed ISO-8601 shapes rather than a pattern
// language, so they are built directly on the value cursor instead of
// going through the character compiler.

// PeriodRoundTrip preserves every component exactly as stored, writing
// nanoseconds with an 'n' suffix: "P1Y2M3W4DT5H6M7S500n". The zero period
// renders as "P".
var PeriodRoundTrip Pattern[Period] = periodPattern{normalizing: false}

// PeriodNormalizingISO folds weeks into days and normalizes the time
// components before writing, carrying sub-second precision as decimal
// seconds: "P1Y2M25DT5H6M7.0000005S". The zero period renders as "P0D".
var PeriodNormalizingISO Pattern[Period] = periodPattern{normalizing: true}

type periodPattern struct {
	normalizing bool
}

func appendSignedInt(sb *strings.Builder, value int64) {
	if value < 0 {
		sb.WriteByte('-')
		appendPaddedUint64(sb, uint64(-(value+1))+1, 1)
		return
	}
	appendPaddedUint64(sb, uint64(value), 1)
}

func appendComponent(sb *strings.Builder, value int64, unit byte) {
	if value == 0 {
		return
	}
	appendSignedInt(sb, value)
	sb.WriteByte(unit)
}

func (p periodPattern) Format(value Period) string {
	var sb strings.Builder
	p.AppendFormat(value, &sb)
	return sb.String()
}

func (p periodPattern) AppendFormat(value Period, sb *strings.Builder) {
	if p.normalizing {
		p.appendNormalized(value, sb)
		return
	}
	sb.WriteByte('P')
	appendComponent(sb, value.Years, 'Y')
	appendComponent(sb, value.Months, 'M')
	appendComponent(sb, value.Weeks, 'W')
	appendComponent(sb, value.Days, 'D')
	if value.Hours == 0 && value.Minutes == 0 && value.Seconds == 0 && value.Nanoseconds == 0 {
		return
	}
	sb.WriteByte('T')
	appendComponent(sb, value.Hours, 'H')
	appendComponent(sb, value.Minutes, 'M')
	appendComponent(sb, value.Seconds, 'S')
	appendComponent(sb, value.Nanoseconds, 'n')
}

func (p periodPattern) appendNormalized(value Period, sb *strings.Builder) {
	days := value.Days + value.Weeks*7
	totalNanos := ((value.Hours*3600+value.Minutes*60+value.Seconds)*1e9 + value.Nanoseconds)
	if value.Years == 0 && value.Months == 0 && days == 0 && totalNanos == 0 {
		sb.WriteString("P0D")
		return
	}
	sb.WriteByte('P')
	appendComponent(sb, value.Years, 'Y')
	appendComponent(sb, value.Months, 'M')
	appendComponent(sb, days, 'D')
	if totalNanos == 0 {
		return
	}
	sb.WriteByte('T')
	appendComponent(sb, totalNanos/3600e9, 'H')
	appendComponent(sb, totalNanos/60e9%60, 'M')
	secNanos := totalNanos % 60e9
	if secNanos == 0 {
		return
	}
	if secNanos < 0 {
		sb.WriteByte('-')
		secNanos = -secNanos
	}
	appendPaddedUint64(sb, uint64(secNanos/1e9), 1)
	if frac := secNanos % 1e9; frac != 0 {
		sb.WriteByte('.')
		sb.WriteString(trimTrailingZeros(fractionDigits(int(frac), 9)))
	}
	sb.WriteByte('S')
}

// Unit ranks enforce the strictly decreasing component order of the ISO
// shape; the time designator sits between the date and time ranks.
const (
	rankYears = iota + 1
	rankMonths
	rankWeeks
	rankDays
	rankTime
	rankHours
	rankTimeMinutes
	rankSeconds
	rankNanos
)

func (p periodPattern) Parse(text string) Result[Period] {
	if text == "" {
		return resultErr[Period](&ParseError{Code: CodeValueEmpty, Text: text, Index: 0,
			msg: "value text is empty"})
	}
	cur := scan.NewValue(text)
	r := p.ParsePartial(cur)
	if r.err != nil {
		return r
	}
	if cur.Current() != scan.Sentinel {
		return resultErr[Period](parseErrAt(cur, CodeExtraValueText,
			"unexpected trailing text %q", cur.Remainder()))
	}
	return r
}

func (p periodPattern) ParsePartial(cur *scan.Value) Result[Period] {
	start := cur.Index()
	fail := func(err *ParseError) Result[Period] {
		cur.Move(start)
		return resultErr[Period](err)
	}
	if !cur.Match('P') {
		return fail(parseErrAt(cur, CodeMismatchedCharacter, "expected 'P'"))
	}
	var value Period
	rank := 0
	for {
		ch := cur.Current()
		if ch == 'T' {
			if rank >= rankTime {
				return fail(parseErrAt(cur, CodeMisplacedUnit, "repeated time designator"))
			}
			cur.MoveNext()
			rank = rankTime
			continue
		}
		if ch != '+' && ch != '-' && (ch < '0' || ch > '9') {
			break
		}
		negative := ch == '-'
		if ch == '+' {
			cur.MoveNext()
		}
		n, ok := cur.ParseInt64()
		if !ok {
			return fail(parseErrAt(cur, CodeMissingDigits, "expected digits for a period component"))
		}
		var nanos int64
		hasFraction := false
		if p.normalizing && (cur.Current() == '.' || cur.Current() == ',') {
			cur.MoveNext()
			frac, ok := cur.ParseFraction(1, 9, 9)
			if !ok {
				return fail(parseErrAt(cur, CodeMissingDigits, "expected fractional digits"))
			}
			nanos = frac
			if negative {
				nanos = -nanos
			}
			hasFraction = true
		}
		unit := cur.Current()
		if unit == scan.Sentinel {
			return fail(parseErrAt(cur, CodeEndOfText, "expected a period unit letter"))
		}
		unitRank, target := periodUnit(unit, rank >= rankTime, p.normalizing)
		if target == nil {
			return fail(parseErrAt(cur, CodeMismatchedCharacter, "unexpected period unit %q", unit))
		}
		if hasFraction && unitRank != rankSeconds {
			return fail(parseErrAt(cur, CodeMismatchedCharacter,
				"only the seconds component takes a fraction"))
		}
		if unitRank <= rank {
			return fail(parseErrAt(cur, CodeMisplacedUnit,
				"period component %q out of order", unit))
		}
		cur.MoveNext()
		target(&value, n)
		if hasFraction {
			value.Nanoseconds += nanos
		}
		rank = unitRank
	}
	return resultFor(value)
}

// periodUnit maps a unit letter to its rank and component, given which
// side of the time designator the parse is on.
func periodUnit(unit byte, inTime, normalizing bool) (int, func(*Period, int64)) {
	if !inTime {
		switch unit {
		case 'Y':
			return rankYears, func(p *Period, n int64) { p.Years = n }
		case 'M':
			return rankMonths, func(p *Period, n int64) { p.Months = n }
		case 'W':
			return rankWeeks, func(p *Period, n int64) { p.Weeks = n }
		case 'D':
			return rankDays, func(p *Period, n int64) { p.Days = n }
		}
		return 0, nil
	}
	switch unit {
	case 'H':
		return rankHours, func(p *Period, n int64) { p.Hours = n }
	case 'M':
		return rankTimeMinutes, func(p *Period, n int64) { p.Minutes = n }
	case 'S':
		return rankSeconds, func(p *Period, n int64) { p.Seconds = n }
	case 'n':
		if !normalizing {
			return rankNanos, func(p *Period, n int64) { p.Nanoseconds = n }
		}
	}
	return 0, nil
}
