package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type lowerFolder struct{}

func (lowerFolder) Fold(s string) string { return strings.ToLower(s) }

func TestMatch(t *testing.T) {
	v := NewValue("abc")
	assert.True(t, v.Match('a'))
	assert.False(t, v.Match('a'))
	assert.True(t, v.Match('b'))
	assert.True(t, v.Match('c'))
	assert.False(t, v.Match('d'))
}

func TestMatchString(t *testing.T) {
	v := NewValue("2014-07")
	assert.True(t, v.MatchString("2014"))
	assert.False(t, v.MatchString("-08"))
	assert.Equal(t, 4, v.Index())
	assert.True(t, v.MatchString("-07"))
	assert.Equal(t, "", v.Remainder())
}

func TestMatchCaseInsensitive(t *testing.T) {
	tests := []struct {
		text      string
		candidate string
		move      bool
		ok        bool
		index     int
	}{
		{"AbCdef", "abcd", true, true, 4},
		{"AbCdef", "abcd", false, true, 0},
		{"AbCdef", "abd", true, false, 0},
		{"ab", "abc", true, false, 0},
		{"März1", "MÄRZ", true, true, 5},
		{"anything", "", true, true, 0},
	}
	for _, test := range tests {
		v := NewValue(test.text)
		assert.Equal(t, test.ok, v.MatchCaseInsensitive(test.candidate, lowerFolder{}, test.move),
			"match %q against %q", test.text, test.candidate)
		assert.Equal(t, test.index, v.Index(), "match %q against %q index", test.text, test.candidate)
	}
}

func TestCompareOrdinal(t *testing.T) {
	v := NewValue("ABCD rest")
	assert.Equal(t, 0, v.CompareOrdinal("ABCD"))
	assert.Equal(t, 0, v.CompareOrdinal("ABC"))
	assert.Equal(t, 1, v.CompareOrdinal("ABCC"))
	assert.Equal(t, -1, v.CompareOrdinal("ABCE"))
	assert.Equal(t, -1, v.CompareOrdinal("ABCD restmore"))
	assert.Equal(t, 0, v.Index(), "CompareOrdinal must not move")
}

func TestParseDigits(t *testing.T) {
	tests := []struct {
		text     string
		min, max int
		want     int
		ok       bool
		index    int
	}{
		{"1234abc", 1, 4, 1234, true, 4},
		{"1234abc", 1, 2, 12, true, 2},
		{"12abc", 3, 4, 0, false, 0},
		{"abc", 1, 2, 0, false, 0},
		{"007", 1, 3, 7, true, 3},
		{"٣5", 1, 2, 0, false, 0}, // non-ASCII digits never match
	}
	for _, test := range tests {
		v := NewValue(test.text)
		got, ok := v.ParseDigits(test.min, test.max)
		assert.Equal(t, test.ok, ok, "ParseDigits(%q, %d, %d)", test.text, test.min, test.max)
		assert.Equal(t, test.want, got, "ParseDigits(%q, %d, %d)", test.text, test.min, test.max)
		assert.Equal(t, test.index, v.Index(), "ParseDigits(%q, %d, %d) index", test.text, test.min, test.max)
	}
}

func TestParseInt64(t *testing.T) {
	tests := []struct {
		text  string
		want  int64
		ok    bool
		index int
	}{
		{"0", 0, true, 1},
		{"1234x", 1234, true, 4},
		{"-1234", -1234, true, 5},
		{"9223372036854775807", 9223372036854775807, true, 19},
		{"-9223372036854775808", -9223372036854775808, true, 20},
		{"9223372036854775808", 0, false, 0},
		{"-9223372036854775809", 0, false, 0},
		{"99999999999999999999", 0, false, 0},
		{"-", 0, false, 0},
		{"x", 0, false, 0},
	}
	for _, test := range tests {
		v := NewValue(test.text)
		got, ok := v.ParseInt64()
		assert.Equal(t, test.ok, ok, "ParseInt64(%q)", test.text)
		assert.Equal(t, test.want, got, "ParseInt64(%q)", test.text)
		assert.Equal(t, test.index, v.Index(), "ParseInt64(%q) index", test.text)
	}
}

func TestParseFraction(t *testing.T) {
	tests := []struct {
		text     string
		min, max int
		scale    int
		want     int64
		ok       bool
	}{
		{"456", 3, 3, 3, 456, true},
		{"456", 1, 3, 9, 456000000, true},
		{"4", 1, 3, 9, 400000000, true},
		{"4567", 1, 3, 3, 456, true}, // fourth digit left for the next token
		{"45", 3, 3, 3, 0, false},
		{"123456789123", 1, 12, 9, 123456789, true}, // truncated, never rounded
	}
	for _, test := range tests {
		v := NewValue(test.text)
		got, ok := v.ParseFraction(test.min, test.max, test.scale)
		assert.Equal(t, test.ok, ok, "ParseFraction(%q)", test.text)
		assert.Equal(t, test.want, got, "ParseFraction(%q)", test.text)
		if !test.ok {
			assert.Equal(t, 0, v.Index(), "ParseFraction(%q) must not move on failure", test.text)
		}
	}
}
