package tempus

import (
	"testing"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrftimeTranslation(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"%Y-%m-%d", "yyyy-MM-dd"},
		{"%H:%M:%S", "HH\\:mm\\:ss"},
		{"%d %b %Y", "dd MMM yyyy"},
		{"%A, %B %d", "dddd, MMMM dd"},
		{"%I:%M %p", "hh\\:mm tt"},
		{"%F", "yyyy'-'MM'-'dd"},
		{"%T", "HH':'mm':'ss"},
		{"100%%", "100\\%"},
	}
	for _, test := range tests {
		got, err := Strftime(test.format)
		require.NoError(t, err, test.format)
		assert.Equal(t, test.want, got, test.format)
	}
}

func TestStrftimeErrors(t *testing.T) {
	_, err := Strftime("%j")
	assert.Error(t, err, "day-of-year has no pattern equivalent")
	_, err = Strftime("%")
	assert.Error(t, err)
}

// The translated pattern must agree with what a C-style strftime produces
// for the same wall clock reading.
func TestStrftimeOracle(t *testing.T) {
	formats := []string{
		"%Y-%m-%d %H:%M:%S",
		"%d %b %Y",
		"%A %I:%M %p",
	}
	ref := time.Date(2013, time.July, 26, 16, 45, 12, 0, time.UTC)
	val := dt(2013, 7, 26, 16, 45, 12, 0)
	for _, format := range formats {
		text, err := Strftime(format)
		require.NoError(t, err, format)
		p, err := NewLocalDateTimePattern(text)
		require.NoError(t, err, text)

		oracle, err := strftime.Format(format, ref)
		require.NoError(t, err, format)
		assert.Equal(t, oracle, p.Format(val), format)
	}
}
