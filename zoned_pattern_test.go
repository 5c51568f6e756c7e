package tempus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZonedFormatAndParseFixedZone(t *testing.T) {
	paris := NewFixedZone("Europe/Paris", OffsetFromHours(2))
	zones := NewZoneMap(paris)
	p, err := NewZonedDateTimePattern("yyyy-MM-dd HH:mm z", WithZoneProvider(zones))
	require.NoError(t, err)

	v := NewZonedDateTime(dt(2013, 7, 26, 16, 45, 0, 0), paris, OffsetFromHours(2))
	assert.Equal(t, "2013-07-26 16:45 Europe/Paris", p.Format(v))

	got := p.Parse("2013-07-26 16:45 Europe/Paris").MustValue()
	assert.Equal(t, v.Local(), got.Local())
	assert.Equal(t, "Europe/Paris", got.Zone().ID())
	assert.Equal(t, OffsetFromHours(2), got.Offset())
}

func TestZoneIDLongestMatch(t *testing.T) {
	zones := NewZoneMap(
		NewFixedZone("ABC", OffsetFromHours(1)),
		NewFixedZone("ABCA", OffsetFromHours(2)),
		NewFixedZone("ABCB", OffsetFromHours(3)),
		NewFixedZone("ABCD", OffsetFromHours(4)),
	)
	p, err := NewZonedDateTimePattern("yyyy-MM-dd HH:mm z 'x'", WithZoneProvider(zones))
	require.NoError(t, err)

	tests := []struct {
		text string
		id   string
	}{
		{"2013-07-26 16:45 ABC x", "ABC"},
		{"2013-07-26 16:45 ABCA x", "ABCA"},
		{"2013-07-26 16:45 ABCD x", "ABCD"},
	}
	for _, test := range tests {
		got := p.Parse(test.text).MustValue()
		assert.Equal(t, test.id, got.Zone().ID(), test.text)
	}

	r := p.Parse("2013-07-26 16:45 XYZ x")
	require.False(t, r.Success())
	assert.Equal(t, CodeUnknownZone, r.Err().(*ParseError).Code)
}

func TestZonedResolvers(t *testing.T) {
	// One hour forward at 2020-03-29 01:00 UTC: local 02:30 is skipped.
	gap := NewSingleTransitionZone("Test/Gap",
		instantAtUTC(2020, 3, 29, 1, 0, 0), OffsetFromHours(1), OffsetFromHours(2))
	// One hour back at 2020-10-25 01:00 UTC: local 02:30 happens twice.
	fold := NewSingleTransitionZone("Test/Fold",
		instantAtUTC(2020, 10, 25, 1, 0, 0), OffsetFromHours(2), OffsetFromHours(1))
	zones := NewZoneMap(gap, fold)

	strict, err := NewZonedDateTimePattern("yyyy-MM-dd HH:mm z", WithZoneProvider(zones))
	require.NoError(t, err)
	lenient, err := NewZonedDateTimePattern("yyyy-MM-dd HH:mm z",
		WithZoneProvider(zones), WithResolver(LenientResolver))
	require.NoError(t, err)

	r := strict.Parse("2020-03-29 02:30 Test/Gap")
	require.False(t, r.Success())
	assert.Equal(t, CodeSkippedLocalTime, r.Err().(*ParseError).Code)

	r = strict.Parse("2020-10-25 02:30 Test/Fold")
	require.False(t, r.Success())
	assert.Equal(t, CodeAmbiguousLocalTime, r.Err().(*ParseError).Code)

	// Lenient shifts a skipped reading forward past the gap.
	got := lenient.Parse("2020-03-29 02:30 Test/Gap").MustValue()
	assert.Equal(t, dt(2020, 3, 29, 3, 30, 0, 0), got.Local())
	assert.Equal(t, OffsetFromHours(2), got.Offset())

	// Lenient takes the earlier occurrence of an ambiguous reading.
	got = lenient.Parse("2020-10-25 02:30 Test/Fold").MustValue()
	assert.Equal(t, dt(2020, 10, 25, 2, 30, 0, 0), got.Local())
	assert.Equal(t, OffsetFromHours(2), got.Offset())

	// Unambiguous readings resolve identically under both.
	got = strict.Parse("2020-06-01 12:00 Test/Gap").MustValue()
	assert.Equal(t, OffsetFromHours(2), got.Offset())
}

func TestZonedEmbeddedOffset(t *testing.T) {
	p, err := NewZonedDateTimePattern("yyyy-MM-dd HH:mm o<g>")
	require.NoError(t, err)

	utc := NewFixedZone("UTC", ZeroOffset)
	v := NewZonedDateTime(dt(2013, 7, 26, 16, 45, 0, 0), utc, OffsetFromHours(2))
	assert.Equal(t, "2013-07-26 16:45 +02", p.Format(v))

	// An explicit offset is taken at face value; no resolver runs.
	got := p.Parse("2013-07-26 16:45 +02").MustValue()
	assert.Equal(t, dt(2013, 7, 26, 16, 45, 0, 0), got.Local())
	assert.Equal(t, OffsetFromHours(2), got.Offset())
	assert.Equal(t, "UTC", got.Zone().ID())
}

func TestZonedGeneralPattern(t *testing.T) {
	paris := NewFixedZone("Europe/Paris", OffsetFromHours(2))
	zones := NewZoneMap(paris)
	p, err := NewZonedDateTimePattern("G", WithZoneProvider(zones))
	require.NoError(t, err)

	v := NewZonedDateTime(dt(2013, 7, 26, 16, 45, 12, 0), paris, OffsetFromHours(2))
	text := p.Format(v)
	assert.Equal(t, "2013-07-26T16:45:12 Europe/Paris +02", text)

	got := p.Parse(text).MustValue()
	assert.Equal(t, v.Local(), got.Local())
	assert.Equal(t, "Europe/Paris", got.Zone().ID())
	assert.Equal(t, v.Offset(), got.Offset())
}

type abbreviatedZone struct {
	*FixedZone
	abbr string
}

func (z *abbreviatedZone) Abbreviation(ZonedDateTime) string { return z.abbr }

func TestZoneAbbreviationFormatOnly(t *testing.T) {
	zone := &abbreviatedZone{FixedZone: NewFixedZone("Europe/Paris", OffsetFromHours(2)), abbr: "CEST"}
	p, err := NewZonedDateTimePattern("HH:mm x")
	require.NoError(t, err)

	v := NewZonedDateTime(dt(2013, 7, 26, 16, 45, 0, 0), zone, OffsetFromHours(2))
	assert.Equal(t, "16:45 CEST", p.Format(v))

	r := p.Parse("16:45 CEST")
	require.False(t, r.Success())
	assert.Equal(t, CodeMismatchedText, r.Err().(*ParseError).Code)
}

func TestZonedCompileFailures(t *testing.T) {
	_, err := NewZonedDateTimePattern("yyyy-MM-dd HH:mm z")
	require.Error(t, err)
	assert.Equal(t, CodeMissingZoneProvider, err.(*PatternError).Code)

	_, err = NewZonedDateTimePattern("q")
	require.Error(t, err)
	assert.Equal(t, CodeUnknownStandardFormat, err.(*PatternError).Code)
}
