package tempus

import "fmt"

// LocalDateTime is a date and time of day with no time zone.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// NewLocalDateTime combines a date and a time of day.
func NewLocalDateTime(date LocalDate, time LocalTime) LocalDateTime {
	return LocalDateTime{date: date, time: time}
}

func (dt LocalDateTime) Date() LocalDate { return dt.date }
func (dt LocalDateTime) Time() LocalTime { return dt.time }

func (dt LocalDateTime) String() string {
	return fmt.Sprintf("%sT%s", dt.date, dt.time)
}
