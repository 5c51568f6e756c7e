package tempus

import "fmt"

const maxOffsetSeconds = 18 * 3600

// Offset is an offset from UTC, within plus or minus 18 hours.
type Offset struct {
	seconds int
}

// ZeroOffset is the UTC offset.
var ZeroOffset = Offset{}

// NewOffset validates and builds an offset from a number of seconds.
func NewOffset(seconds int) (Offset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return Offset{}, fmt.Errorf("offset %d seconds outside +/-18 hours", seconds)
	}
	return Offset{seconds: seconds}, nil
}

// MustOffset is NewOffset panicking on invalid input.
func MustOffset(seconds int) Offset {
	o, err := NewOffset(seconds)
	if err != nil {
		panic(err)
	}
	return o
}

// OffsetFromHours builds a whole-hour offset.
func OffsetFromHours(hours int) Offset { return MustOffset(hours * 3600) }

// Seconds is the signed total seconds of the offset.
func (o Offset) Seconds() int { return o.seconds }

// IsNegative reports whether the offset is west of UTC.
func (o Offset) IsNegative() bool { return o.seconds < 0 }

func (o Offset) String() string {
	s := o.seconds
	sign := "+"
	if s < 0 {
		sign = "-"
		s = -s
	}
	return fmt.Sprintf("%s%02d:%02d", sign, s/3600, s/60%60)
}
