package tempus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dt(y, mo, d, h, mi, s, ns int) LocalDateTime {
	return NewLocalDateTime(MustLocalDate(y, mo, d), MustLocalTime(h, mi, s, ns))
}

func TestDateTimeFormat(t *testing.T) {
	v := dt(2013, 7, 26, 16, 45, 12, 123000000)
	tests := []struct {
		pattern string
		want    string
	}{
		{"yyyy-MM-dd HH:mm:ss", "2013-07-26 16:45:12"},
		{"yyyy-MM-dd'T'HH:mm:ss", "2013-07-26T16:45:12"},
		{"s", "2013-07-26T16:45:12"},
		{"o", "2013-07-26T16:45:12.123"},
		{"ld<yyyy-MM-dd> lt<HH:mm>", "2013-07-26 16:45"},
		{"l<s>", "2013-07-26T16:45:12"},
	}
	for _, test := range tests {
		p, err := NewLocalDateTimePattern(test.pattern)
		require.NoError(t, err, test.pattern)
		assert.Equal(t, test.want, p.Format(v), test.pattern)
	}
}

func TestDateTimeParse(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    LocalDateTime
	}{
		{"yyyy-MM-dd HH:mm:ss", "2013-07-26 16:45:12", dt(2013, 7, 26, 16, 45, 12, 0)},
		{"s", "2013-07-26T16:45:12", dt(2013, 7, 26, 16, 45, 12, 0)},
		{"o", "2013-07-26T16:45:12.123", dt(2013, 7, 26, 16, 45, 12, 123000000)},
		{"ld<yyyy-MM-dd> lt<HH:mm>", "2013-07-26 16:45", dt(2013, 7, 26, 16, 45, 0, 0)},
		{"ld<d> lt<t>", "2013-07-26 16:45", dt(2013, 7, 26, 16, 45, 0, 0)}, // standards nest
		// 24:00 is the start of the next day, only at exactly 24:00:00.
		{"yyyy-MM-dd HH:mm", "2013-07-26 24:00", dt(2013, 7, 27, 0, 0, 0, 0)},
		{"yyyy-MM-dd HH:mm", "2013-12-31 24:00", dt(2014, 1, 1, 0, 0, 0, 0)},
	}
	for _, test := range tests {
		p, err := NewLocalDateTimePattern(test.pattern)
		require.NoError(t, err, test.pattern)
		got, err := p.Parse(test.text).Value()
		require.NoError(t, err, "%s / %s", test.pattern, test.text)
		assert.Equal(t, test.want, got, "%s / %s", test.pattern, test.text)
	}
}

func TestDateTimeMidnight24Rejections(t *testing.T) {
	p := MustLocalDateTimePattern("yyyy-MM-dd HH:mm:ss")
	r := p.Parse("2013-07-26 24:00:01")
	require.False(t, r.Success())
	assert.Equal(t, CodeValueOutOfRange, r.Err().(*ParseError).Code)
}

func TestDateTimeEmbeddedConflicts(t *testing.T) {
	tests := []struct {
		pattern string
		code    string
	}{
		{"yyyy ld<MM-dd>", CodeIncompatibleFields},
		{"HH lt<mm>", CodeIncompatibleFields},
		{"l<s> yyyy", CodeIncompatibleFields},
		{"ld<yyyy-MM-dd> ld<yyyy>", CodeRepeatedField},
		{"ld<yyyy", CodeEmbeddedPattern},
		{"ld<zz>", CodeUnknownCharacter}, // sub-pattern errors surface directly
	}
	for _, test := range tests {
		_, err := NewLocalDateTimePattern(test.pattern)
		require.Error(t, err, test.pattern)
		assert.Equal(t, test.code, err.(*PatternError).Code, test.pattern)
	}
}

func TestDateTimeEmbeddedCursorPosition(t *testing.T) {
	// An embedded fragment consumes exactly its own text; the outer
	// pattern picks up right after it.
	p := MustLocalDateTimePattern("ld<yyyy-MM-dd>'x'lt<HH:mm>")
	assert.Equal(t, dt(2013, 7, 26, 16, 45, 0, 0), p.Parse("2013-07-26x16:45").MustValue())
}

func TestDateTimeRoundTripProperty(t *testing.T) {
	values := []LocalDateTime{
		dt(1, 1, 1, 0, 0, 0, 0),
		dt(1970, 1, 1, 0, 0, 0, 0),
		dt(2013, 7, 26, 16, 45, 12, 123456789),
		dt(2400, 2, 29, 23, 59, 59, 999999999),
	}
	p := MustLocalDateTimePattern("o")
	for _, v := range values {
		text := p.Format(v)
		assert.Equal(t, v, p.Parse(text).MustValue(), text)
	}
}
