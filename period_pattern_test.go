package tempus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodRoundTripFormat(t *testing.T) {
	tests := []struct {
		value Period
		want  string
	}{
		{Period{}, "P"},
		{Period{Years: 1}, "P1Y"},
		{Period{Years: 1, Months: 2, Weeks: 3, Days: 4}, "P1Y2M3W4D"},
		{Period{Hours: 5, Minutes: 6, Seconds: 7}, "PT5H6M7S"},
		{Period{Days: 1, Hours: 2}, "P1DT2H"},
		{Period{Nanoseconds: 500}, "PT500n"},
		{Period{Years: -1, Days: 2}, "P-1Y2D"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, PeriodRoundTrip.Format(test.value), test.want)
	}
}

func TestPeriodRoundTripParse(t *testing.T) {
	tests := []struct {
		text string
		want Period
	}{
		{"P", Period{}},
		{"P1Y2M3W4D", Period{Years: 1, Months: 2, Weeks: 3, Days: 4}},
		{"PT5H6M7S", Period{Hours: 5, Minutes: 6, Seconds: 7}},
		{"P1DT2H", Period{Days: 1, Hours: 2}},
		{"PT500n", Period{Nanoseconds: 500}},
		{"P-1Y2D", Period{Years: -1, Days: 2}},
		{"P+3D", Period{Days: 3}},
	}
	for _, test := range tests {
		got, err := PeriodRoundTrip.Parse(test.text).Value()
		require.NoError(t, err, test.text)
		assert.Equal(t, test.want, got, test.text)
	}
}

func TestPeriodNormalizingFormat(t *testing.T) {
	tests := []struct {
		value Period
		want  string
	}{
		{Period{}, "P0D"},
		{Period{Weeks: 2, Days: 1}, "P15D"},
		{Period{Hours: 1, Minutes: 90}, "PT2H30M"},
		{Period{Seconds: 1, Nanoseconds: 500000000}, "PT1.5S"},
		{Period{Years: 1, Months: 14}, "P1Y14M"}, // months do not carry into years
		{Period{Seconds: -90}, "PT-1M-30S"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, PeriodNormalizingISO.Format(test.value), test.want)
	}
}

func TestPeriodNormalizingParse(t *testing.T) {
	tests := []struct {
		text string
		want Period
	}{
		{"P0D", Period{}},
		{"P15D", Period{Days: 15}},
		{"PT1.5S", Period{Seconds: 1, Nanoseconds: 500000000}},
		{"PT1,5S", Period{Seconds: 1, Nanoseconds: 500000000}},
		{"P1Y2M3DT4H5M6S", Period{Years: 1, Months: 2, Days: 3, Hours: 4, Minutes: 5, Seconds: 6}},
	}
	for _, test := range tests {
		got, err := PeriodNormalizingISO.Parse(test.text).Value()
		require.NoError(t, err, test.text)
		assert.Equal(t, test.want, got, test.text)
	}
}

func TestPeriodParseFailures(t *testing.T) {
	tests := []struct {
		pattern Pattern[Period]
		text    string
		code    string
	}{
		{PeriodRoundTrip, "", CodeValueEmpty},
		{PeriodRoundTrip, "1Y", CodeMismatchedCharacter},
		{PeriodRoundTrip, "P1", CodeEndOfText},
		{PeriodRoundTrip, "P1Q", CodeMismatchedCharacter},
		{PeriodRoundTrip, "P2D1Y", CodeMisplacedUnit},
		{PeriodRoundTrip, "P1D1D", CodeMisplacedUnit},
		{PeriodRoundTrip, "PT1S junk", CodeExtraValueText},
		{PeriodRoundTrip, "PT1.5S", CodeMismatchedCharacter}, // decimals are a normalizing-form feature
		{PeriodNormalizingISO, "PT1.5M", CodeMismatchedCharacter},
		{PeriodNormalizingISO, "PT500n", CodeMismatchedCharacter},
	}
	for _, test := range tests {
		r := test.pattern.Parse(test.text)
		require.False(t, r.Success(), test.text)
		assert.Equal(t, test.code, r.Err().(*ParseError).Code, test.text)
	}
}

func TestPeriodRoundTripProperty(t *testing.T) {
	values := []Period{
		{},
		{Years: 3, Months: 11, Weeks: 2, Days: 6, Hours: 23, Minutes: 59, Seconds: 59, Nanoseconds: 999999999},
		{Years: -1, Seconds: -30},
	}
	for _, v := range values {
		text := PeriodRoundTrip.Format(v)
		assert.Equal(t, v, PeriodRoundTrip.Parse(text).MustValue(), text)
	}
}
