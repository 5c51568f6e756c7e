package tempus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instantAtUTC(y, mo, d, h, mi, s int) Instant {
	i, ok := instantOfUTC(dt(y, mo, d, h, mi, s, 0))
	if !ok {
		panic("out of range")
	}
	return i
}

func TestInstantGeneralPattern(t *testing.T) {
	p := MustInstantPattern("g")
	i := instantAtUTC(2013, 7, 26, 16, 45, 12)
	assert.Equal(t, "2013-07-26T16:45:12Z", p.Format(i))
	assert.Equal(t, i, p.Parse("2013-07-26T16:45:12Z").MustValue())

	assert.Equal(t, "1970-01-01T00:00:00Z", p.Format(InstantFromNanos(0)))
	assert.Equal(t, "1969-12-31T23:59:59Z", p.Format(InstantFromNanos(-1e9)))
}

func TestInstantCustomPattern(t *testing.T) {
	p := MustInstantPattern("yyyy-MM-dd HH:mm:ss.FFF")
	i := InstantFromNanos(int64(16*3600+45*60+12)*1e9 + 500000000)
	assert.Equal(t, "1970-01-01 16:45:12.5", p.Format(i))
	assert.Equal(t, i, p.Parse("1970-01-01 16:45:12.5").MustValue())
}

func TestInstantMinMaxLabels(t *testing.T) {
	p := MustInstantPattern("g")
	assert.Equal(t, "MinInstant", p.Format(MinInstant))
	assert.Equal(t, "MaxInstant", p.Format(MaxInstant))
	assert.Equal(t, MinInstant, p.Parse("MinInstant").MustValue())
	assert.Equal(t, MaxInstant, p.Parse("MaxInstant").MustValue())

	p = MustInstantPattern("g", WithMinMaxLabels("start-of-time", "end-of-time"))
	assert.Equal(t, "start-of-time", p.Format(MinInstant))
	assert.Equal(t, MaxInstant, p.Parse("end-of-time").MustValue())
}

func TestInstantParseFailures(t *testing.T) {
	p := MustInstantPattern("g")
	tests := []struct {
		text string
		code string
	}{
		{"", CodeValueEmpty},
		{"2013-07-26T16:45:12", CodeMismatchedText}, // missing the Z suffix
		{"garbage", CodeMissingDigits},
		{"9999-12-31T23:59:59Z", CodeOverflow}, // a valid date-time can still overflow the timeline
	}
	for _, test := range tests {
		r := p.Parse(test.text)
		require.False(t, r.Success(), test.text)
		assert.Equal(t, test.code, r.Err().(*ParseError).Code, test.text)
	}
}
