package internal

import "time"

// Unit is a calendar unit used both in generated labels and for
// extrapolating additional dates.
type Unit int

const (
	UnitHour Unit = iota
	UnitDay
	UnitWeek
	UnitMonth
	UnitQuarter
	UnitYear
)

var unitNames = map[Unit]string{
	UnitHour:    "hour",
	UnitDay:     "day",
	UnitWeek:    "week",
	UnitMonth:   "month",
	UnitQuarter: "quarter",
	UnitYear:    "year",
}

// Singular returns the unit name, e.g. "day".
func (u Unit) Singular() string {
	return unitNames[u]
}

// Plural returns the unit name with a trailing "s".
func (u Unit) Plural() string {
	return unitNames[u] + "s"
}

// Article is the indefinite article used in "in a day" / "in an hour".
func (u Unit) Article() string {
	if u == UnitHour {
		return "an"
	}
	return "a"
}

// Add moves t forward by n units.
func (u Unit) Add(t time.Time, n int) time.Time {
	switch u {
	case UnitHour:
		return t.Add(time.Duration(n) * time.Hour)
	case UnitDay:
		return t.AddDate(0, 0, n)
	case UnitWeek:
		return t.AddDate(0, 0, 7*n)
	case UnitMonth:
		return t.AddDate(0, n, 0)
	case UnitQuarter:
		return t.AddDate(0, 3*n, 0)
	case UnitYear:
		return t.AddDate(n, 0, 0)
	}
	return t
}

var (
	fixedDates = []string{"tomorrow", "today"}
	weekdays   = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	nextUnits  = []Unit{UnitWeek, UnitMonth, UnitQuarter, UnitYear}
	inUnits    = []Unit{UnitDay, UnitWeek, UnitMonth, UnitYear}
)

// wordNumbers maps the first two letters of a spelled number to its value.
var wordNumbers = map[string]int{
	"a":  1,
	"an": 1,
	"on": 1,
	"tw": 2,
	"th": 3,
	"fo": 4,
	"fi": 5,
	"si": 6,
	"se": 7,
	"ei": 8,
	"ni": 9,
	"te": 10,
}

// monthHints expands one- and two-letter queries into the month
// abbreviations they could start, so the parser has something to match.
var monthHints = map[string]string{
	"a":  "aug",
	"au": "aug",
	"d":  "dec",
	"de": "dec",
	"f":  "feb",
	"fe": "feb",
	"j":  "jan jun jul",
	"ja": "jan",
	"ju": "jun jul",
	"m":  "mar may",
	"ma": "mar may",
	"n":  "nov",
	"no": "nov",
	"o":  "oct",
	"oc": "oct",
	"s":  "sep",
	"se": "sep",
}

// expandMonthHint returns the text handed to the parser for query.
func expandMonthHint(query string) string {
	if len(query) < 3 {
		if hint, ok := monthHints[query]; ok {
			return hint
		}
	}
	return query
}

// lookupWordNumber resolves a spelled number by its first two letters.
func lookupWordNumber(word string) (int, bool) {
	if len(word) > 2 {
		word = word[:2]
	}
	n, ok := wordNumbers[word]
	return n, ok
}
