package tempus

import (
	"fmt"
	"math"
)

// Instant is a point on the global timeline, counted in nanoseconds from
// the Unix epoch.
type Instant struct {
	nanos int64
}

// MinInstant and MaxInstant bound the representable timeline.
var (
	MinInstant = Instant{nanos: math.MinInt64}
	MaxInstant = Instant{nanos: math.MaxInt64}
)

// InstantFromNanos builds an instant from nanoseconds since the epoch.
func InstantFromNanos(nanos int64) Instant { return Instant{nanos: nanos} }

// EpochNanos is the nanosecond count since the Unix epoch.
func (i Instant) EpochNanos() int64 { return i.nanos }

const nanosPerDay = 24 * 3600 * 1_000_000_000

// utcDateTime is the UTC wall clock reading of the instant.
func (i Instant) utcDateTime() LocalDateTime {
	days := i.nanos / nanosPerDay
	nod := i.nanos % nanosPerDay
	if nod < 0 {
		days--
		nod += nanosPerDay
	}
	y, m, d := civilFromDays(days)
	date := LocalDate{year: y, month: m, day: d}
	t := LocalTime{
		hour:   int(nod / 3600e9),
		minute: int(nod / 60e9 % 60),
		second: int(nod / 1e9 % 60),
		nanos:  int(nod % 1e9),
	}
	return LocalDateTime{date: date, time: t}
}

// instantOfUTC converts a UTC wall clock reading back to an instant,
// reporting failure when it falls outside the representable timeline.
func instantOfUTC(dt LocalDateTime) (Instant, bool) {
	days := epochDays(dt.date.year, dt.date.month, dt.date.day)
	nod := dt.time.nanoOfDay()
	if days > math.MaxInt64/nanosPerDay || days < math.MinInt64/nanosPerDay {
		return Instant{}, false
	}
	base := days * nanosPerDay
	if base > 0 && nod > math.MaxInt64-base {
		return Instant{}, false
	}
	return Instant{nanos: base + nod}, true
}

func (i Instant) String() string {
	return fmt.Sprintf("%sZ", i.utcDateTime())
}
