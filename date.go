package tempus

import "fmt"

// Era distinguishes years before and after the common era boundary.
type Era int

const (
	CommonEra Era = iota
	BeforeCommonEra
)

// LocalDate is a calendar date with no time zone or time of day. Years are
// astronomical: year 0 is 1 BCE, year -1 is 2 BCE.
type LocalDate struct {
	year  int
	month int
	day   int
}

// NewLocalDate validates and builds a calendar date.
func NewLocalDate(year, month, day int) (LocalDate, error) {
	if month < 1 || month > 12 {
		return LocalDate{}, fmt.Errorf("month %d out of range 1-12", month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return LocalDate{}, fmt.Errorf("day %d out of range 1-%d for %d-%02d", day, daysInMonth(year, month), year, month)
	}
	return LocalDate{year: year, month: month, day: day}, nil
}

// MustLocalDate is NewLocalDate panicking on invalid input.
func MustLocalDate(year, month, day int) LocalDate {
	d, err := NewLocalDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

func (d LocalDate) Year() int  { return d.year }
func (d LocalDate) Month() int { return d.month }
func (d LocalDate) Day() int   { return d.day }

// Era reports which era the date falls in.
func (d LocalDate) Era() Era {
	if d.year <= 0 {
		return BeforeCommonEra
	}
	return CommonEra
}

// YearOfEra is the one-based year within the date's era.
func (d LocalDate) YearOfEra() int {
	if d.year <= 0 {
		return 1 - d.year
	}
	return d.year
}

// Calendar names the calendar system of the date. Only the ISO calendar is
// carried by this module; other systems live with the calendar collaborator.
func (d LocalDate) Calendar() string { return "ISO" }

// DayOfWeek is the day of the week, 0 = Sunday through 6 = Saturday.
func (d LocalDate) DayOfWeek() int { return weekday(d.year, d.month, d.day) }

func (d LocalDate) addDays(n int64) LocalDate {
	y, m, dd := civilFromDays(epochDays(d.year, d.month, d.day) + n)
	return LocalDate{year: y, month: m, day: dd}
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}
