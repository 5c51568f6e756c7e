package tempus

import (
	"strings"

	"github.com/tempus-go/tempus/scan"
)

// InstantPattern formats and parses instants through their UTC wall clock
// reading: any date-time pattern applies, with a trailing literal Z
// conventionally marking the zero offset. The standard pattern 'g' is the
// ISO-8601 second-precision form.
//
// The extreme instants are not meaningful wall clock readings, so they
// format as dedicated labels instead, and the labels parse back to the
// extremes. WithMinMaxLabels overrides the default texts.
type InstantPattern struct {
	text     string
	inner    Pattern[LocalDateTime]
	minLabel string
	maxLabel string
}

// GeneralInstantPatternText is the expansion of the 'g' standard pattern.
const GeneralInstantPatternText = "yyyy'-'MM'-'dd'T'HH':'mm':'ss'Z'"

// NewInstantPattern compiles pattern text for instants.
func NewInstantPattern(text string, opts ...Option) (*InstantPattern, error) {
	o := resolveOptions(opts)
	expanded := text
	if len(text) == 1 {
		if text[0] != 'g' {
			return nil, &PatternError{Code: CodeUnknownStandardFormat, Pattern: text,
				msg: "unknown standard pattern " + text}
		}
		expanded = GeneralInstantPatternText
	}
	inner, err := compileDateTimePattern(expanded, o)
	if err != nil {
		return nil, err
	}
	return &InstantPattern{
		text:     text,
		inner:    inner,
		minLabel: o.minLabel,
		maxLabel: o.maxLabel,
	}, nil
}

// MustInstantPattern is NewInstantPattern panicking on bad pattern text.
func MustInstantPattern(text string, opts ...Option) *InstantPattern {
	p, err := NewInstantPattern(text, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// PatternText returns the text the pattern was built from.
func (p *InstantPattern) PatternText() string { return p.text }

func (p *InstantPattern) Format(value Instant) string {
	var sb strings.Builder
	p.AppendFormat(value, &sb)
	return sb.String()
}

func (p *InstantPattern) AppendFormat(value Instant, sb *strings.Builder) {
	switch value {
	case MinInstant:
		sb.WriteString(p.minLabel)
	case MaxInstant:
		sb.WriteString(p.maxLabel)
	default:
		p.inner.AppendFormat(value.utcDateTime(), sb)
	}
}

func (p *InstantPattern) Parse(text string) Result[Instant] {
	if text == "" {
		return resultErr[Instant](&ParseError{Code: CodeValueEmpty, Text: text, Index: 0,
			msg: "value text is empty"})
	}
	cur := scan.NewValue(text)
	r := p.ParsePartial(cur)
	if r.err != nil {
		return r
	}
	if cur.Current() != scan.Sentinel {
		return resultErr[Instant](parseErrAt(cur, CodeExtraValueText,
			"unexpected trailing text %q", cur.Remainder()))
	}
	return r
}

func (p *InstantPattern) ParsePartial(cur *scan.Value) Result[Instant] {
	if p.minLabel != "" && cur.MatchString(p.minLabel) {
		return resultFor(MinInstant)
	}
	if p.maxLabel != "" && cur.MatchString(p.maxLabel) {
		return resultFor(MaxInstant)
	}
	r := p.inner.ParsePartial(cur)
	if r.err != nil {
		return resultErr[Instant](r.err)
	}
	i, ok := instantOfUTC(r.value)
	if !ok {
		return resultErr[Instant](parseErrAt(cur, CodeOverflow,
			"date-time outside the representable timeline"))
	}
	return resultFor(i)
}
