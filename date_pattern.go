package tempus

import (
	"strings"

	"github.com/tempus-go/tempus/scan"
)

// twoDigitYearPivot: two-digit years at or below it land in the 2000s.
const twoDigitYearPivot = 30

// dateBucket accumulates raw calendar fields during a parse.
type dateBucket struct {
	template  LocalDate
	year      int
	yearTwo   int
	monthNum  int
	monthText int
	day       int
	dayOfWeek int
	era       Era
}

func (bkt *dateBucket) buildDate(used PatternField) (LocalDate, *ParseError) {
	year := bkt.template.Year()
	switch {
	case used.HasAny(FieldYear):
		year = bkt.year
		if used.HasAny(FieldEra) && bkt.era == BeforeCommonEra {
			year = 1 - year
		}
	case used.HasAny(FieldYearTwoDigits):
		if bkt.yearTwo <= twoDigitYearPivot {
			year = 2000 + bkt.yearTwo
		} else {
			year = 1900 + bkt.yearTwo
		}
	}

	month := bkt.template.Month()
	numeric := used.HasAny(FieldMonthNumeric)
	text := used.HasAny(FieldMonthText)
	if numeric && text && bkt.monthNum != bkt.monthText {
		return LocalDate{}, parseErrf(CodeInconsistentValues,
			"numeric month %d and month name for month %d disagree", bkt.monthNum, bkt.monthText)
	}
	if numeric {
		month = bkt.monthNum
	} else if text {
		month = bkt.monthText
	}

	day := bkt.template.Day()
	if used.HasAny(FieldDayOfMonth) {
		day = bkt.day
	}

	date, err := NewLocalDate(year, month, day)
	if err != nil {
		return LocalDate{}, parseErrf(CodeValueOutOfRange, "%s", err.Error())
	}
	if used.HasAny(FieldDayOfWeek) && date.DayOfWeek() != bkt.dayOfWeek {
		return LocalDate{}, parseErrf(CodeInconsistentValues,
			"day-of-week name does not match the date %s", date)
	}
	return date, nil
}

// dateOnlyBucket is the bucket for LocalDate patterns.
type dateOnlyBucket struct {
	dateBucket
}

func (bkt *dateOnlyBucket) build(used PatternField) (LocalDate, *ParseError) {
	return bkt.buildDate(used)
}

// dateFieldHandlers compiles the calendar fields for any pattern type that
// carries a date.
func dateFieldHandlers[T any, B parseBucket[T]](
	dateOf func(T) LocalDate, db func(B) *dateBucket,
) map[byte]patternHandler[T, B] {
	return map[byte]patternHandler[T, B]{
		'y': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			count, err := repeatCount(pc, 'y', 4)
			if err != nil {
				return err
			}
			if count == 2 {
				return addNumber(b, 'y', FieldYearTwoDigits, 2, 2, 0, 99,
					func(v T) int { return dateOf(v).YearOfEra() % 100 },
					func(bkt B, val int) { db(bkt).yearTwo = val })
			}
			// Without an era specifier the year is absolute; with one it is
			// the year of era. The pattern is fully known only after the
			// whole text compiles, so the closure consults the builder.
			return addNumber(b, 'y', FieldYear, count, 4, 0, 9999,
				func(v T) int {
					if b.used.HasAny(FieldEra) {
						return dateOf(v).YearOfEra()
					}
					return dateOf(v).Year()
				},
				func(bkt B, val int) { db(bkt).year = val })
		},
		'M': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			count, err := repeatCount(pc, 'M', 4)
			if err != nil {
				return err
			}
			if count <= 2 {
				return addNumber(b, 'M', FieldMonthNumeric, count, 2, 1, 12,
					func(v T) int { return dateOf(v).Month() },
					func(bkt B, val int) { db(bkt).monthNum = val })
			}
			if err := b.useField(FieldMonthText, 'M'); err != nil {
				return err
			}
			culture := b.culture
			if count == 3 {
				candidates, values := monthCandidates(culture.ShortMonthNames, [13]string{})
				addNames(b, candidates, values,
					func(v T) string { return culture.ShortMonthNames[dateOf(v).Month()] },
					func(bkt B, val int) { db(bkt).monthText = val })
				return nil
			}
			candidates, values := monthCandidates(culture.MonthNames, culture.GenitiveMonthNames)
			addNames(b, candidates, values,
				func(v T) string {
					// The genitive form applies when the pattern carries a
					// day of month alongside the name.
					if b.used.HasAny(FieldDayOfMonth) {
						return culture.GenitiveMonthName(dateOf(v).Month())
					}
					return culture.MonthNames[dateOf(v).Month()]
				},
				func(bkt B, val int) { db(bkt).monthText = val })
			return nil
		},
		'd': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			count, err := repeatCount(pc, 'd', 4)
			if err != nil {
				return err
			}
			if count <= 2 {
				return addNumber(b, 'd', FieldDayOfMonth, count, 2, 1, 31,
					func(v T) int { return dateOf(v).Day() },
					func(bkt B, val int) { db(bkt).day = val })
			}
			if err := b.useField(FieldDayOfWeek, 'd'); err != nil {
				return err
			}
			culture := b.culture
			names := &culture.ShortDayNames
			if count == 4 {
				names = &culture.DayNames
			}
			candidates := names[:]
			values := []int{0, 1, 2, 3, 4, 5, 6}
			addNames(b, candidates, values,
				func(v T) string { return names[dateOf(v).DayOfWeek()] },
				func(bkt B, val int) { db(bkt).dayOfWeek = val })
			return nil
		},
		'g': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			if _, err := repeatCount(pc, 'g', 2); err != nil {
				return err
			}
			if err := b.useField(FieldEra, 'g'); err != nil {
				return err
			}
			culture := b.culture
			var candidates []string
			var values []int
			for era, names := range culture.EraNames {
				for _, name := range names {
					candidates = append(candidates, name)
					values = append(values, era)
				}
			}
			addNames(b, candidates, values,
				func(v T) string { return culture.EraNames[dateOf(v).Era()][0] },
				func(bkt B, val int) { db(bkt).era = Era(val) })
			return nil
		},
		'c': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			if err := b.useField(FieldCalendar, 'c'); err != nil {
				return err
			}
			b.addFormat(func(sb *strings.Builder, v T) { sb.WriteString(dateOf(v).Calendar()) })
			culture := b.culture
			b.addParse(func(cur *scan.Value, bkt B) *ParseError {
				if _, ok := matchLongest(cur, culture, []string{"ISO"}); !ok {
					return parseErrAt(cur, CodeUnknownName, "unrecognized calendar system")
				}
				return nil
			})
			return nil
		},
		'/': func(pc *scan.Pattern, b *builder[T, B]) *PatternError {
			b.addLiteralString(b.culture.DateSeparator)
			return nil
		},
	}
}

// monthCandidates flattens month name tables into parallel candidate and
// value slices, folding in genitive forms so either spelling parses.
func monthCandidates(names, genitive [13]string) ([]string, []int) {
	var candidates []string
	var values []int
	for m := 1; m <= 12; m++ {
		candidates = append(candidates, names[m])
		values = append(values, m)
		if genitive[m] != "" && genitive[m] != names[m] {
			candidates = append(candidates, genitive[m])
			values = append(values, m)
		}
	}
	return candidates, values
}

// LocalDatePattern formats and parses LocalDate values.
//
// Pattern characters: y/yyyy (year), yy (two-digit year of era), M/MM
// (numeric month), MMM/MMMM (month names), d/dd (day of month), ddd/dddd
// (day-of-week names), g (era), c (calendar system), '/' (culture date
// separator). Standard patterns: 'd' (culture short), 'D' (culture long),
// 'o' (round trip).
type LocalDatePattern struct {
	text  string
	inner Pattern[LocalDate]
}

func dateStandardText(ch byte, culture *Culture) (string, bool) {
	switch ch {
	case 'd':
		return culture.ShortDatePattern, true
	case 'D':
		return culture.LongDatePattern, true
	case 'o':
		return "yyyy'-'MM'-'dd", true
	}
	return "", false
}

// NewLocalDatePattern compiles pattern text for calendar dates.
func NewLocalDatePattern(text string, opts ...Option) (*LocalDatePattern, error) {
	o := resolveOptions(opts)
	inner, err := compileDatePattern(text, o)
	if err != nil {
		return nil, err
	}
	return &LocalDatePattern{text: text, inner: inner}, nil
}

func compileDatePattern(text string, o patternOptions) (Pattern[LocalDate], error) {
	expanded := text
	if len(text) == 1 {
		var ok bool
		if expanded, ok = dateStandardText(text[0], o.culture); !ok {
			return nil, &PatternError{Code: CodeUnknownStandardFormat, Pattern: text,
				msg: "unknown standard pattern " + text}
		}
	}
	handlers := mergeHandlers(
		commonHandlers[LocalDate, *dateOnlyBucket](),
		dateFieldHandlers[LocalDate](
			func(d LocalDate) LocalDate { return d },
			func(bkt *dateOnlyBucket) *dateBucket { return &bkt.dateBucket },
		),
	)
	template := o.templateDate
	return compilePattern(expanded, o.culture, handlers, func() *dateOnlyBucket {
		return &dateOnlyBucket{dateBucket: dateBucket{template: template}}
	})
}

// MustLocalDatePattern is NewLocalDatePattern panicking on bad pattern text.
func MustLocalDatePattern(text string, opts ...Option) *LocalDatePattern {
	p, err := NewLocalDatePattern(text, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// PatternText returns the text the pattern was built from.
func (p *LocalDatePattern) PatternText() string { return p.text }

func (p *LocalDatePattern) Format(value LocalDate) string { return p.inner.Format(value) }

func (p *LocalDatePattern) AppendFormat(value LocalDate, sb *strings.Builder) {
	p.inner.AppendFormat(value, sb)
}

func (p *LocalDatePattern) Parse(text string) Result[LocalDate] { return p.inner.Parse(text) }

func (p *LocalDatePattern) ParsePartial(cur *scan.Value) Result[LocalDate] {
	return p.inner.ParsePartial(cur)
}
