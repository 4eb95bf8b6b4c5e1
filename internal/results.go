package internal

import (
	"strings"
	"time"
)

// coveredByShortcut reports whether a parse result is already produced by
// the "this"/"on" weekday suggestions, which carry a better label.
func coveredByShortcut(r ParsedResult) bool {
	switch firstWord(r.Text) {
	case "this", "on":
		return true
	}
	weekday, ok := r.Known[FieldWeekday]
	return ok && weekday == int(time.Monday) && strings.Contains(r.Text, "mon")
}

// buildResultDates converts parse results into concrete dates at tod.
// Fields the parser left out are taken from now.
func buildResultDates(results []ParsedResult, tod TimeOfDay, now time.Time) []time.Time {
	var dates []time.Time
	for _, r := range results {
		if coveredByShortcut(r) {
			continue
		}

		year, ok := r.Value(FieldYear)
		if !ok {
			year = now.Year()
		}
		month, ok := r.Value(FieldMonth)
		if !ok {
			month = int(now.Month())
		}
		day, ok := r.Value(FieldDay)
		if !ok {
			day = now.Day()
		}

		dates = append(dates, time.Date(year, time.Month(month), day, tod.Hour, tod.Minute, 0, 0, now.Location()))
	}
	return dates
}
