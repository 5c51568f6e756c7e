package tempus

// PatternField identifies one semantic field a pattern can specify. The
// compilers use the bitset to reject duplicated or conflicting specifiers,
// and the parse buckets use it to know which fields were assigned.
type PatternField uint32

const (
	FieldHours12 PatternField = 1 << iota
	FieldHours24
	FieldMinutes
	FieldSeconds
	FieldFractionalSeconds
	FieldAmPm
	FieldYear
	FieldYearTwoDigits
	FieldMonthNumeric
	FieldMonthText
	FieldDayOfMonth
	FieldDayOfWeek
	FieldEra
	FieldCalendar
	FieldZone
	FieldZoneAbbreviation
	FieldSign
	FieldTotalDuration
	FieldEmbeddedDate
	FieldEmbeddedTime
	FieldEmbeddedOffset

	FieldNone PatternField = 0

	fieldsAllTime = FieldHours12 | FieldHours24 | FieldMinutes | FieldSeconds |
		FieldFractionalSeconds | FieldAmPm
	fieldsAllDate = FieldYear | FieldYearTwoDigits | FieldMonthNumeric |
		FieldMonthText | FieldDayOfMonth | FieldDayOfWeek | FieldEra | FieldCalendar
)

// HasAny reports whether any of the queried fields is set.
func (f PatternField) HasAny(query PatternField) bool { return f&query != 0 }

// HasAll reports whether every queried field is set.
func (f PatternField) HasAll(query PatternField) bool { return f&query == query }
