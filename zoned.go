package tempus

import "fmt"

// ZonedDateTime is a local date-time anchored in a zone with a resolved
// offset.
type ZonedDateTime struct {
	local  LocalDateTime
	zone   Zone
	offset Offset
}

// NewZonedDateTime builds a zoned value from already-resolved parts.
func NewZonedDateTime(local LocalDateTime, zone Zone, offset Offset) ZonedDateTime {
	return ZonedDateTime{local: local, zone: zone, offset: offset}
}

func (z ZonedDateTime) Local() LocalDateTime { return z.local }
func (z ZonedDateTime) Zone() Zone           { return z.zone }
func (z ZonedDateTime) Offset() Offset       { return z.offset }

func (z ZonedDateTime) String() string {
	return fmt.Sprintf("%s %s %s", z.local, z.offset, z.zone.ID())
}

// addNanos shifts a local reading by a nanosecond span, rolling the date as
// needed. Used by the lenient resolver to step past a gap.
func (dt LocalDateTime) addNanos(n int64) LocalDateTime {
	total := dt.time.nanoOfDay() + n
	dayShift := total / nanosPerDay
	total %= nanosPerDay
	if total < 0 {
		dayShift--
		total += nanosPerDay
	}
	return LocalDateTime{
		date: dt.date.addDays(dayShift),
		time: LocalTime{
			hour:   int(total / 3600e9),
			minute: int(total / 60e9 % 60),
			second: int(total / 1e9 % 60),
			nanos:  int(total % 1e9),
		},
	}
}
