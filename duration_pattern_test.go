package tempus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dur(nanos int64) Duration { return DurationFromNanos(nanos) }

func TestDurationFormat(t *testing.T) {
	oneDayPlus := int64(26*3600+3*60+4)*1e9 + 123456789
	tests := []struct {
		pattern string
		value   Duration
		want    string
	}{
		{"D:hh:mm:ss", dur(oneDayPlus), "1:02:03:04"},
		{"H:mm:ss", dur(oneDayPlus), "26:03:04"}, // the leading unit is a total
		{"M:ss", dur(oneDayPlus), "1563:04"},
		{"%S", dur(oneDayPlus), "93784"},
		{"-H:mm", dur(-3690e9), "-1:01"},
		{"+H:mm", dur(3690e9), "+1:01"},
		{"SS.fff", dur(1500000000), "01.500"},
		{"o", dur(oneDayPlus), "1:02:03:04.123456789"},
		{"o", dur(-oneDayPlus), "-1:02:03:04.123456789"},
		{"o", dur(0), "0:00:00:00"},
	}
	for _, test := range tests {
		p, err := NewDurationPattern(test.pattern)
		require.NoError(t, err, test.pattern)
		assert.Equal(t, test.want, p.Format(test.value), test.pattern)
	}
}

func TestDurationParse(t *testing.T) {
	oneDayPlus := int64(26*3600+3*60+4)*1e9 + 123456789
	tests := []struct {
		pattern string
		text    string
		want    Duration
	}{
		{"D:hh:mm:ss", "1:02:03:04", dur(int64(26*3600+3*60+4) * 1e9)},
		{"H:mm:ss", "26:02:03", dur(int64(26*3600+2*60+3) * 1e9)},
		{"%S", "93784", dur(93784e9)},
		{"-H:mm", "-1:01", dur(-3690e9)},
		{"-H:mm", "1:01", dur(3690e9)},
		{"o", "1:02:03:04.123456789", dur(oneDayPlus)},
		{"o", "-1:02:03:04.123456789", dur(-oneDayPlus)},
		{"o", "0:00:00:00", dur(0)},
	}
	for _, test := range tests {
		p, err := NewDurationPattern(test.pattern)
		require.NoError(t, err, test.pattern)
		got, err := p.Parse(test.text).Value()
		require.NoError(t, err, "%s / %s", test.pattern, test.text)
		assert.Equal(t, test.want, got, "%s / %s", test.pattern, test.text)
	}
}

func TestDurationExtremes(t *testing.T) {
	p := MustDurationPattern("o")
	for _, v := range []Duration{dur(math.MaxInt64), dur(math.MinInt64)} {
		text := p.Format(v)
		assert.Equal(t, v, p.Parse(text).MustValue(), text)
	}
}

func TestDurationParseFailures(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		code    string
	}{
		{"D:hh", "1:25", CodeValueOutOfRange}, // partial hours cap at 23
		{"H:mm", "1:60", CodeValueOutOfRange},
		{"%S", "999999999999999999", CodeOverflow}, // seconds total overflows nanoseconds
		{"%D", "99999999", CodeOverflow},
		{"H:mm", "x", CodeMissingDigits},
	}
	for _, test := range tests {
		p, err := NewDurationPattern(test.pattern)
		require.NoError(t, err, test.pattern)
		r := p.Parse(test.text)
		require.False(t, r.Success(), "%s / %s", test.pattern, test.text)
		assert.Equal(t, test.code, r.Err().(*ParseError).Code, "%s / %s", test.pattern, test.text)
	}
}

func TestDurationCompileFailures(t *testing.T) {
	tests := []struct {
		pattern string
		code    string
	}{
		{"hh:mm", CodeMisplacedUnit},  // partial with no larger unit
		{"H:hh", CodeMisplacedUnit},   // hours under hours
		{"mm:H", CodeMisplacedUnit},   // total after another unit
		{"D:hh D", CodeMisplacedUnit}, // second total
		{"fff", CodeMisplacedUnit},    // fraction without seconds
		{"t", CodeUnknownStandardFormat},
		{"S", CodeUnknownStandardFormat}, // a lone unit letter needs the % marker
	}
	for _, test := range tests {
		_, err := NewDurationPattern(test.pattern)
		require.Error(t, err, test.pattern)
		assert.Equal(t, test.code, err.(*PatternError).Code, test.pattern)
	}
}
