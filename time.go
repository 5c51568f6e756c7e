package tempus

import "fmt"

// LocalTime is a time of day in the range 00:00:00.000000000 through
// 23:59:59.999999999.
type LocalTime struct {
	hour   int
	minute int
	second int
	nanos  int
}

// Midnight is the start of the day.
var Midnight = LocalTime{}

// NewLocalTime validates and builds a time of day.
func NewLocalTime(hour, minute, second, nanos int) (LocalTime, error) {
	switch {
	case hour < 0 || hour > 23:
		return LocalTime{}, fmt.Errorf("hour %d out of range 0-23", hour)
	case minute < 0 || minute > 59:
		return LocalTime{}, fmt.Errorf("minute %d out of range 0-59", minute)
	case second < 0 || second > 59:
		return LocalTime{}, fmt.Errorf("second %d out of range 0-59", second)
	case nanos < 0 || nanos > 999999999:
		return LocalTime{}, fmt.Errorf("nanosecond %d out of range", nanos)
	}
	return LocalTime{hour: hour, minute: minute, second: second, nanos: nanos}, nil
}

// MustLocalTime is NewLocalTime panicking on invalid input.
func MustLocalTime(hour, minute, second, nanos int) LocalTime {
	t, err := NewLocalTime(hour, minute, second, nanos)
	if err != nil {
		panic(err)
	}
	return t
}

func (t LocalTime) Hour() int       { return t.hour }
func (t LocalTime) Minute() int     { return t.minute }
func (t LocalTime) Second() int     { return t.second }
func (t LocalTime) Nanosecond() int { return t.nanos }

// Hour12 is the hour on a 12-hour clock, 1 through 12.
func (t LocalTime) Hour12() int {
	h := t.hour % 12
	if h == 0 {
		return 12
	}
	return h
}

// nanoOfDay is the time as nanoseconds since midnight.
func (t LocalTime) nanoOfDay() int64 {
	return ((int64(t.hour)*60+int64(t.minute))*60+int64(t.second))*1e9 + int64(t.nanos)
}

func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}
