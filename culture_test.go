package tempus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCultureFold(t *testing.T) {
	assert.Equal(t, "july", InvariantCulture.Fold("JULY"))
	assert.Equal(t, "heinäkuuta", CultureFiFI.Fold("HEINÄKUUTA"))
	assert.Equal(t, "août", CultureFrFR.Fold("AOÛT"))
}

func TestGenitiveMonthNameFallback(t *testing.T) {
	// Cultures without a genitive table fall back to the plain names.
	assert.Equal(t, "July", InvariantCulture.GenitiveMonthName(7))
	assert.Equal(t, "heinäkuuta", CultureFiFI.GenitiveMonthName(7))
}

func TestCultureSeparators(t *testing.T) {
	// The ':' and ';' pattern characters pick up the culture's separators.
	p, err := NewLocalTimePattern("HH:mm;FF", WithCulture(CultureFiFI))
	require.NoError(t, err)
	assert.Equal(t, "16.05,5", p.Format(MustLocalTime(16, 5, 0, 500000000)))
	assert.Equal(t, MustLocalTime(16, 5, 0, 500000000), p.Parse("16.05,5").MustValue())
}

func TestResultAccessors(t *testing.T) {
	ok := resultFor(MustLocalTime(1, 2, 3, 0))
	assert.True(t, ok.Success())
	assert.NoError(t, ok.Err())
	assert.Equal(t, MustLocalTime(1, 2, 3, 0), ok.MustValue())

	bad := resultErr[LocalTime](parseErrf(CodeMissingDigits, "boom"))
	assert.False(t, bad.Success())
	_, err := bad.Value()
	assert.Error(t, err)
	assert.Panics(t, func() { bad.MustValue() })
}
