package tempus

import "fmt"

// Duration is a signed span of time counted in nanoseconds, independent of
// any calendar.
type Duration struct {
	nanos int64
}

// DurationFromNanos builds a duration from a nanosecond count.
func DurationFromNanos(nanos int64) Duration { return Duration{nanos: nanos} }

// Nanoseconds is the signed total nanosecond count.
func (d Duration) Nanoseconds() int64 { return d.nanos }

// IsNegative reports whether the duration runs backwards.
func (d Duration) IsNegative() bool { return d.nanos < 0 }

func (d Duration) String() string {
	return fmt.Sprintf("%dns", d.nanos)
}

// Period is a calendar-aware bag of date and time components, as carried by
// ISO-8601 period text. Components are independent and may be negative; no
// normalization happens on construction.
type Period struct {
	Years       int64
	Months      int64
	Weeks       int64
	Days        int64
	Hours       int64
	Minutes     int64
	Seconds     int64
	Nanoseconds int64
}

// IsZero reports whether every component is zero.
func (p Period) IsZero() bool { return p == Period{} }
