package internal

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is the clock time applied to suggestions that do not state one.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// timeOfDay returns the default clock time, overridden by a time the parser
// knows from the first result.
func timeOfDay(hour, minute int, results []ParsedResult) TimeOfDay {
	tod := TimeOfDay{Hour: hour, Minute: minute}
	if len(results) == 0 {
		return tod
	}
	known := results[0].Known
	if h, ok := known[FieldHour]; ok && h != 0 {
		tod = TimeOfDay{Hour: h, Minute: known[FieldMinute]}
	}
	return tod
}

// resolveLabel turns a generated label into a concrete suggestion.
func (e *Engine) resolveLabel(label string, tod TimeOfDay, now time.Time) (Suggestion, bool) {
	hour, minute := tod.Hour, tod.Minute
	if hints := e.parser.Parse(label, now, ParseOptions{}); len(hints) > 0 {
		if h, ok := hints[0].Known[FieldHour]; ok && h != 0 {
			hour = h
		}
		if m, ok := hints[0].Known[FieldMinute]; ok && m != 0 {
			minute = m
		}
	}

	date, ok := e.parser.ParseDate(fmt.Sprintf("%s %02d:%02d", label, hour, minute), now)
	if !ok || date.IsZero() {
		return Suggestion{}, false
	}

	return Suggestion{Label: label, Date: correctWeek(label, date, now)}, true
}

// correctWeek shifts weekday labels the parser anchored to the wrong week.
// "this"/"on" must not lie in the past; "next" must be at least a week out.
func correctWeek(label string, date, now time.Time) time.Time {
	switch firstWord(label) {
	case "this", "on":
		if date.Before(now) {
			return UnitWeek.Add(date, 1)
		}
	case "next":
		if date.Before(UnitWeek.Add(now, 1)) {
			return UnitWeek.Add(date, 1)
		}
	}
	return date
}

func firstWord(s string) string {
	word, _, _ := strings.Cut(s, " ")
	return word
}
