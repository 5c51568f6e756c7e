package tempus

// Civil calendar helpers: proleptic Gregorian day validation, weekday
// computation and epoch-day conversion. These are the minimal calculations
// the text engine needs for day names, day rolling and instant conversion;
// calendar arithmetic proper lives outside this module.

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysPerMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysInMonth(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysPerMonth[month]
}

// epochDays converts a civil date to days since 1970-01-01, valid across
// the whole proleptic Gregorian range. Days-from-civil per Howard Hinnant.
func epochDays(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := y / 400
	if y%400 < 0 {
		era--
	}
	yoe := y - era*400
	m := int64(month)
	var doy int64
	if m > 2 {
		doy = (153*(m-3)+2)/5 + int64(day) - 1
	} else {
		doy = (153*(m+9)+2)/5 + int64(day) - 1
	}
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of epochDays.
func civilFromDays(days int64) (year, month, day int) {
	z := days + 719468
	era := z / 146097
	if z%146097 < 0 {
		era--
	}
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

// weekday returns the day of the week for a civil date, 0 = Sunday.
func weekday(year, month, day int) int {
	wd := (epochDays(year, month, day) + 4) % 7 // 1970-01-01 was a Thursday
	if wd < 0 {
		wd += 7
	}
	return int(wd)
}
