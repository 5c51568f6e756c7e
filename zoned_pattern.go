package tempus

import (
	"strings"

	"github.com/tempus-go/tempus/scan"
)

// ZoneAbbreviator is optionally implemented by zones that can produce a
// short display name for a resolved value, for the format-only 'x' field.
type ZoneAbbreviator interface {
	Abbreviation(value ZonedDateTime) string
}

// zonedBucket accumulates calendar, time, zone and offset fields. An
// explicit offset takes precedence over the resolver: the parsed text
// already states which side of any transition the value sits on.
type zonedBucket struct {
	dateTimeBucket
	templateZone Zone
	resolver     Resolver
	zone         Zone
	offset       Offset
}

func (bkt *zonedBucket) build(used PatternField) (ZonedDateTime, *ParseError) {
	local, err := bkt.buildLocal(used)
	if err != nil {
		return ZonedDateTime{}, err
	}
	zone := bkt.templateZone
	if used.HasAny(FieldZone) {
		zone = bkt.zone
	}
	if used.HasAny(FieldEmbeddedOffset) {
		return NewZonedDateTime(local, zone, bkt.offset), nil
	}
	return bkt.resolver(zone.MapLocal(local))
}

// zoneIDHandler compiles the 'z' field: the zone identifier, parsed by
// longest match so that identifiers that prefix each other resolve to the
// longer one.
func zoneIDHandler(zones ZoneProvider) patternHandler[ZonedDateTime, *zonedBucket] {
	return func(pc *scan.Pattern, b *builder[ZonedDateTime, *zonedBucket]) *PatternError {
		if zones == nil {
			return patternErrf(CodeMissingZoneProvider,
				"the 'z' field needs a zone provider to parse identifiers")
		}
		if err := b.useField(FieldZone, 'z'); err != nil {
			return err
		}
		b.addFormat(func(sb *strings.Builder, v ZonedDateTime) { sb.WriteString(v.Zone().ID()) })
		b.addParse(func(cur *scan.Value, bkt *zonedBucket) *ParseError {
			best := ""
			for _, id := range zones.IDs() {
				if len(id) > len(best) && cur.CompareOrdinal(id) == 0 {
					best = id
				}
			}
			if best == "" {
				return parseErrAt(cur, CodeUnknownZone, "no known zone identifier at this position")
			}
			z, _ := zones.Zone(best)
			cur.MatchString(best)
			bkt.zone = z
			return nil
		})
		return nil
	}
}

// zoneAbbreviationHandler compiles the 'x' field. Abbreviations are not
// unique across zones, so the field formats but never parses.
func zoneAbbreviationHandler(pc *scan.Pattern, b *builder[ZonedDateTime, *zonedBucket]) *PatternError {
	if err := b.useField(FieldZoneAbbreviation, 'x'); err != nil {
		return err
	}
	b.addFormat(func(sb *strings.Builder, v ZonedDateTime) {
		if ab, ok := v.Zone().(ZoneAbbreviator); ok {
			sb.WriteString(ab.Abbreviation(v))
			return
		}
		sb.WriteString(v.Zone().ID())
	})
	b.addParse(func(cur *scan.Value, _ *zonedBucket) *ParseError {
		return parseErrAt(cur, CodeMismatchedText, "zone abbreviations cannot be parsed")
	})
	return nil
}

// embeddedOffsetHandler compiles o<...>, splicing a full offset pattern in.
func embeddedOffsetHandler(o patternOptions) patternHandler[ZonedDateTime, *zonedBucket] {
	return func(pc *scan.Pattern, b *builder[ZonedDateTime, *zonedBucket]) *PatternError {
		embedded, lexErr := pc.GetEmbeddedPattern()
		if lexErr != nil {
			return wrapLexError(lexErr)
		}
		sub, err := compileOffsetPattern(embedded, o)
		if err != nil {
			return embeddedCompileError(err)
		}
		if ferr := b.useField(FieldEmbeddedOffset, 'o'); ferr != nil {
			return ferr
		}
		b.addFormat(func(sb *strings.Builder, v ZonedDateTime) { sub.AppendFormat(v.Offset(), sb) })
		b.addParse(func(cur *scan.Value, bkt *zonedBucket) *ParseError {
			r := sub.ParsePartial(cur)
			if r.err != nil {
				return r.err
			}
			bkt.offset = r.value
			return nil
		})
		return nil
	}
}

// ZonedDateTimePattern formats and parses zone-anchored date-times.
//
// It accepts every date and time pattern character plus 'z' (zone
// identifier), 'x' (zone abbreviation, format only) and o<...> (embedded
// offset pattern). Standard pattern: 'G' (general, identifier and offset).
// Parsing 'z' needs a zone provider; without an explicit offset the
// pattern's resolver maps the local reading into the zone.
type ZonedDateTimePattern struct {
	text  string
	inner Pattern[ZonedDateTime]
}

// GeneralZonedPatternText is the expansion of the 'G' standard pattern.
const GeneralZonedPatternText = "yyyy'-'MM'-'dd'T'HH':'mm':'ss z o<g>"

// NewZonedDateTimePattern compiles pattern text for zoned date-times.
func NewZonedDateTimePattern(text string, opts ...Option) (*ZonedDateTimePattern, error) {
	o := resolveOptions(opts)
	expanded := text
	if len(text) == 1 {
		if text[0] != 'G' {
			return nil, &PatternError{Code: CodeUnknownStandardFormat, Pattern: text,
				msg: "unknown standard pattern " + text}
		}
		expanded = GeneralZonedPatternText
	}
	localOf := func(v ZonedDateTime) LocalDateTime { return v.Local() }
	handlers := mergeHandlers(
		commonHandlers[ZonedDateTime, *zonedBucket](),
		dateFieldHandlers[ZonedDateTime](
			func(v ZonedDateTime) LocalDate { return v.Local().Date() },
			func(bkt *zonedBucket) *dateBucket { return &bkt.dateBucket },
		),
		timeFieldHandlers[ZonedDateTime](
			func(v ZonedDateTime) LocalTime { return v.Local().Time() },
			func(bkt *zonedBucket) *timeBucket { return &bkt.timeBucket },
		),
		map[byte]patternHandler[ZonedDateTime, *zonedBucket]{
			'l': embeddedHandler(o,
				func(v ZonedDateTime) LocalDate { return localOf(v).Date() },
				func(v ZonedDateTime) LocalTime { return localOf(v).Time() },
				func(bkt *zonedBucket, d LocalDate) { bkt.embeddedDate = d },
				func(bkt *zonedBucket, t LocalTime) { bkt.embeddedTime = t }),
			'z': zoneIDHandler(o.zones),
			'x': zoneAbbreviationHandler,
			'o': embeddedOffsetHandler(o),
			'T': handleLiteralSelf[ZonedDateTime, *zonedBucket],
		},
	)
	templateDate, templateTime := o.templateDate, o.templateTime
	templateZone, resolver := o.templateZone, o.resolver
	inner, err := compilePattern(expanded, o.culture, handlers, func() *zonedBucket {
		return &zonedBucket{
			dateTimeBucket: dateTimeBucket{
				dateBucket: dateBucket{template: templateDate},
				timeBucket: timeBucket{template: templateTime},
			},
			templateZone: templateZone,
			resolver:     resolver,
		}
	})
	if err != nil {
		return nil, err
	}
	return &ZonedDateTimePattern{text: text, inner: inner}, nil
}

// MustZonedDateTimePattern is NewZonedDateTimePattern panicking on bad
// pattern text.
func MustZonedDateTimePattern(text string, opts ...Option) *ZonedDateTimePattern {
	p, err := NewZonedDateTimePattern(text, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// PatternText returns the text the pattern was built from.
func (p *ZonedDateTimePattern) PatternText() string { return p.text }

func (p *ZonedDateTimePattern) Format(value ZonedDateTime) string { return p.inner.Format(value) }

func (p *ZonedDateTimePattern) AppendFormat(value ZonedDateTime, sb *strings.Builder) {
	p.inner.AppendFormat(value, sb)
}

func (p *ZonedDateTimePattern) Parse(text string) Result[ZonedDateTime] { return p.inner.Parse(text) }

func (p *ZonedDateTimePattern) ParsePartial(cur *scan.Value) Result[ZonedDateTime] {
	return p.inner.ParsePartial(cur)
}
