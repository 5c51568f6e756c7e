package tempus

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Culture carries the locale-sensitive text tables the pattern engine
// consumes: separators, designators, month/day/era names and the standard
// date and time pattern texts. Loading culture data from the host platform
// is the caller's concern; this module only ships the invariant culture and
// a few hand-built ones.
//
// Cultures are treated as read-only once constructed and are safe to share
// between goroutines.
type Culture struct {
	Name string
	Tag  language.Tag

	DecimalSeparator string
	TimeSeparator    string
	DateSeparator    string

	// Either designator may be empty; parsing then relies on the template
	// value's half of day.
	AMDesignator string
	PMDesignator string

	MonthNames      [13]string // 1-based
	ShortMonthNames [13]string
	// GenitiveMonthNames is used for wide month names when the pattern also
	// contains a day of month. Empty entries fall back to MonthNames.
	GenitiveMonthNames [13]string

	DayNames      [7]string // 0 = Sunday
	ShortDayNames [7]string

	// EraNames[CommonEra] and EraNames[BeforeCommonEra]: the first entry is
	// used when formatting, the rest are accepted when parsing.
	EraNames [2][]string

	ShortDatePattern string
	LongDatePattern  string
	ShortTimePattern string
	LongTimePattern  string
}

// Fold lowercases text under the culture's language rules, implementing
// scan.CaseFolder for case-insensitive matching.
func (c *Culture) Fold(s string) string {
	return cases.Lower(c.Tag).String(s)
}

// GenitiveMonthName returns the wide month name appropriate when a day of
// month accompanies it.
func (c *Culture) GenitiveMonthName(month int) string {
	if name := c.GenitiveMonthNames[month]; name != "" {
		return name
	}
	return c.MonthNames[month]
}

var invariantMonths = [13]string{"",
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var invariantShortMonths = [13]string{"",
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var invariantDays = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var invariantShortDays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var invariantEras = [2][]string{
	{"CE", "AD", "A.D."},
	{"BCE", "BC", "B.C."},
}

// InvariantCulture is the culture-independent default: English names,
// ISO-friendly separators and patterns.
var InvariantCulture = &Culture{
	Name:             "invariant",
	Tag:              language.Und,
	DecimalSeparator: ".",
	TimeSeparator:    ":",
	DateSeparator:    "-",
	AMDesignator:     "AM",
	PMDesignator:     "PM",
	MonthNames:       invariantMonths,
	ShortMonthNames:  invariantShortMonths,
	DayNames:         invariantDays,
	ShortDayNames:    invariantShortDays,
	EraNames:         invariantEras,
	ShortDatePattern: "yyyy-MM-dd",
	LongDatePattern:  "dddd, dd MMMM yyyy",
	ShortTimePattern: "HH:mm",
	LongTimePattern:  "HH:mm:ss",
}

// CultureEnUS is United States English.
var CultureEnUS = &Culture{
	Name:             "en-US",
	Tag:              language.AmericanEnglish,
	DecimalSeparator: ".",
	TimeSeparator:    ":",
	DateSeparator:    "/",
	AMDesignator:     "AM",
	PMDesignator:     "PM",
	MonthNames:       invariantMonths,
	ShortMonthNames:  invariantShortMonths,
	DayNames:         invariantDays,
	ShortDayNames:    invariantShortDays,
	EraNames:         invariantEras,
	ShortDatePattern: "M/d/yyyy",
	LongDatePattern:  "dddd, MMMM d, yyyy",
	ShortTimePattern: "h:mm tt",
	LongTimePattern:  "h:mm:ss tt",
}

// CultureFrFR is French. Both day-period designators are empty, which
// exercises the engine's tolerance for cultures without AM/PM text.
var CultureFrFR = &Culture{
	Name:             "fr-FR",
	Tag:              language.French,
	DecimalSeparator: ",",
	TimeSeparator:    ":",
	DateSeparator:    "/",
	MonthNames: [13]string{"",
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	ShortMonthNames: [13]string{"",
		"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc.",
	},
	DayNames: [7]string{
		"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
	},
	ShortDayNames:    [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	EraNames:         [2][]string{{"ap. J.-C."}, {"av. J.-C."}},
	ShortDatePattern: "dd/MM/yyyy",
	LongDatePattern:  "dddd d MMMM yyyy",
	ShortTimePattern: "HH:mm",
	LongTimePattern:  "HH:mm:ss",
}

// CultureFiFI is Finnish, whose wide month names change form next to a day
// of month; it exercises the genitive name path.
var CultureFiFI = &Culture{
	Name:             "fi-FI",
	Tag:              language.Finnish,
	DecimalSeparator: ",",
	TimeSeparator:    ".",
	DateSeparator:    ".",
	AMDesignator:     "ap.",
	PMDesignator:     "ip.",
	MonthNames: [13]string{"",
		"tammikuu", "helmikuu", "maaliskuu", "huhtikuu", "toukokuu", "kesäkuu",
		"heinäkuu", "elokuu", "syyskuu", "lokakuu", "marraskuu", "joulukuu",
	},
	ShortMonthNames: [13]string{"",
		"tammi", "helmi", "maalis", "huhti", "touko", "kesä",
		"heinä", "elo", "syys", "loka", "marras", "joulu",
	},
	GenitiveMonthNames: [13]string{"",
		"tammikuuta", "helmikuuta", "maaliskuuta", "huhtikuuta", "toukokuuta", "kesäkuuta",
		"heinäkuuta", "elokuuta", "syyskuuta", "lokakuuta", "marraskuuta", "joulukuuta",
	},
	DayNames: [7]string{
		"sunnuntai", "maanantai", "tiistai", "keskiviikko", "torstai", "perjantai", "lauantai",
	},
	ShortDayNames:    [7]string{"su", "ma", "ti", "ke", "to", "pe", "la"},
	EraNames:         [2][]string{{"jKr.", "jKr"}, {"eKr.", "eKr"}},
	ShortDatePattern: "d.M.yyyy",
	LongDatePattern:  "dddd d. MMMM yyyy",
	ShortTimePattern: "H.mm",
	LongTimePattern:  "H.mm.ss",
}
