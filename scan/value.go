package scan

import (
	"math"
	"strings"
	"unicode/utf8"
)

// CaseFolder folds text for case-insensitive comparison. Cultures satisfy
// this with a locale-aware caser so that, for example, Turkish dotted and
// dotless i compare the way the culture expects.
type CaseFolder interface {
	Fold(s string) string
}

// Value is a cursor over a value string being parsed. All matching
// operations are atomic: on failure the cursor does not move, so callers
// can try alternatives without saving and restoring positions themselves.
//
// Unlike the base cursor, a value cursor starts positioned ON the first
// character; Current is always the next unconsumed character.
type Value struct {
	Cursor
}

// NewValue returns a value cursor positioned on the first character of text.
func NewValue(text string) *Value {
	v := &Value{Cursor: newCursor(text)}
	v.MoveNext()
	return v
}

// Match consumes ch if it is the current character.
func (v *Value) Match(ch byte) bool {
	if v.Current() != ch {
		return false
	}
	v.MoveNext()
	return true
}

// MatchString consumes s if the remaining text starts with it. Matching the
// empty string succeeds without moving.
func (v *Value) MatchString(s string) bool {
	if !strings.HasPrefix(v.Remainder(), s) {
		return false
	}
	v.Move(v.Index() + len(s))
	return true
}

// MatchCaseInsensitive reports whether the remaining text starts with
// candidate under the folder's case folding. moveOnSuccess controls whether
// a successful match consumes the matched text; callers trying several
// candidates to find the longest match pass false and commit afterwards.
func (v *Value) MatchCaseInsensitive(candidate string, folder CaseFolder, moveOnSuccess bool) bool {
	if candidate == "" {
		return true
	}
	rem := v.Remainder()
	consumed := 0
	for range utf8.RuneCountInString(candidate) {
		if consumed >= len(rem) {
			return false
		}
		_, size := utf8.DecodeRuneInString(rem[consumed:])
		consumed += size
	}
	if folder.Fold(rem[:consumed]) != folder.Fold(candidate) {
		return false
	}
	if moveOnSuccess {
		v.Move(v.Index() + consumed)
	}
	return true
}

// CompareOrdinal three-way compares the remaining text against candidate
// byte-wise, without moving. Only as much of the remainder as the candidate
// is long takes part, so a candidate that is a strict prefix of the
// remainder compares equal.
func (v *Value) CompareOrdinal(candidate string) int {
	rem := v.Remainder()
	if len(rem) > len(candidate) {
		rem = rem[:len(candidate)]
	}
	return strings.Compare(rem, candidate)
}

// ParseDigits consumes between minDigits and maxDigits ASCII decimal digits
// and returns their value. Non-ASCII decimal digits never match. If fewer
// than minDigits are available the cursor does not move and ok is false.
func (v *Value) ParseDigits(minDigits, maxDigits int) (value int, ok bool) {
	start := v.Index()
	count := 0
	for count < maxDigits {
		d := v.Current()
		if d < '0' || d > '9' {
			break
		}
		value = value*10 + int(d-'0')
		count++
		v.MoveNext()
	}
	if count < minDigits {
		v.Move(start)
		return 0, false
	}
	return value, true
}

// ParseInt64Digits is ParseDigits producing a 64-bit magnitude, failing
// cleanly (cursor unmoved) on overflow of the signed 64-bit range.
func (v *Value) ParseInt64Digits(minDigits, maxDigits int) (value int64, ok bool) {
	start := v.Index()
	count := 0
	for count < maxDigits {
		d := v.Current()
		if d < '0' || d > '9' {
			break
		}
		if value > (math.MaxInt64-int64(d-'0'))/10 {
			v.Move(start)
			return 0, false
		}
		value = value*10 + int64(d-'0')
		count++
		v.MoveNext()
	}
	if count < minDigits {
		v.Move(start)
		return 0, false
	}
	return value, true
}

// ParseInt64 consumes an optional leading '-' followed by ASCII digits,
// producing a signed 64-bit value. The whole operation is atomic: on
// overflow or missing digits the cursor is left where it started.
func (v *Value) ParseInt64() (value int64, ok bool) {
	start := v.Index()
	negative := v.Current() == '-'
	if negative {
		v.MoveNext()
	}
	limit := uint64(math.MaxInt64)
	if negative {
		limit++
	}
	var magnitude uint64
	count := 0
	for {
		d := v.Current()
		if d < '0' || d > '9' {
			break
		}
		magnitude = magnitude*10 + uint64(d-'0')
		if magnitude > limit || count >= 19 {
			v.Move(start)
			return 0, false
		}
		count++
		v.MoveNext()
	}
	if count == 0 {
		v.Move(start)
		return 0, false
	}
	if negative {
		if magnitude == limit {
			return math.MinInt64, true
		}
		return -int64(magnitude), true
	}
	return int64(magnitude), true
}

// ParseFraction consumes between minDigits and maxDigits of a fractional
// value and rescales the result to scale decimal places, truncating (never
// rounding) digits beyond the scale. For example three parsed digits with
// scale nine multiply by a million.
func (v *Value) ParseFraction(minDigits, maxDigits, scale int) (value int64, ok bool) {
	start := v.Index()
	count := 0
	for count < maxDigits {
		d := v.Current()
		if d < '0' || d > '9' {
			break
		}
		if count < scale {
			value = value*10 + int64(d-'0')
		}
		count++
		v.MoveNext()
	}
	if count < minDigits {
		v.Move(start)
		return 0, false
	}
	for i := min(count, scale); i < scale; i++ {
		value *= 10
	}
	return value, true
}
