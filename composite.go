package tempus

import (
	"strings"

	"github.com/tempus-go/tempus/scan"
)

// CompositePatternBuilder assembles a pattern from an ordered list of
// candidate patterns. Formatting uses the first entry whose predicate
// accepts the value, panicking with a FormatError when none does; parsing
// tries the entries in order and keeps the first success.
type CompositePatternBuilder[T any] struct {
	entries []compositeEntry[T]
}

type compositeEntry[T any] struct {
	pattern   Pattern[T]
	predicate func(T) bool
}

// NewCompositePatternBuilder returns an empty builder.
func NewCompositePatternBuilder[T any]() *CompositePatternBuilder[T] {
	return &CompositePatternBuilder[T]{}
}

// Add appends a candidate pattern with its format predicate.
func (b *CompositePatternBuilder[T]) Add(pattern Pattern[T], predicate func(T) bool) *CompositePatternBuilder[T] {
	b.entries = append(b.entries, compositeEntry[T]{pattern: pattern, predicate: predicate})
	return b
}

// Build produces the composite pattern. A builder with no entries cannot
// format or parse anything and fails.
func (b *CompositePatternBuilder[T]) Build() (Pattern[T], error) {
	if len(b.entries) == 0 {
		return nil, &PatternError{Code: CodeEmptyComposite,
			msg: "composite pattern has no component patterns"}
	}
	entries := make([]compositeEntry[T], len(b.entries))
	copy(entries, b.entries)
	return &compositePattern[T]{entries: entries}, nil
}

type compositePattern[T any] struct {
	entries []compositeEntry[T]
}

func (p *compositePattern[T]) Format(value T) string {
	var sb strings.Builder
	p.AppendFormat(value, &sb)
	return sb.String()
}

func (p *compositePattern[T]) AppendFormat(value T, sb *strings.Builder) {
	for _, e := range p.entries {
		if e.predicate(value) {
			e.pattern.AppendFormat(value, sb)
			return
		}
	}
	panic(&FormatError{Code: CodeNoMatchingFormat,
		msg: "no component pattern accepts the value"})
}

// Parse tries each component against the whole text. When every component
// fails, the failure of the last one is surfaced, so that the reported
// error is deterministic regardless of how far the earlier attempts got.
func (p *compositePattern[T]) Parse(text string) Result[T] {
	var last Result[T]
	for _, e := range p.entries {
		last = e.pattern.Parse(text)
		if last.err == nil {
			return last
		}
	}
	return last
}

func (p *compositePattern[T]) ParsePartial(cur *scan.Value) Result[T] {
	start := cur.Index()
	var last Result[T]
	for _, e := range p.entries {
		cur.Move(start)
		last = e.pattern.ParsePartial(cur)
		if last.err == nil {
			return last
		}
	}
	cur.Move(start)
	return last
}
