package internal

import (
	"strconv"
	"strings"
	"time"
)

// Fixed reference time: Wednesday, 2026-02-18 12:00:00 UTC
var testNow = time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

// fakeParser resolves the labels the engine generates with calendar-week
// semantics: "this <weekday>" stays in the reference week (Monday first) and
// "next <weekday>" lands in the week after. Parse answers from a table.
type fakeParser struct {
	results map[string][]ParsedResult
	parsed  []string
}

func newFakeParser() *fakeParser {
	return &fakeParser{results: map[string][]ParsedResult{}}
}

func (p *fakeParser) Parse(text string, ref time.Time, opts ParseOptions) []ParsedResult {
	p.parsed = append(p.parsed, text)
	return p.results[text]
}

func (p *fakeParser) ParseDate(text string, ref time.Time) (time.Time, bool) {
	rest, clock, hasClock, ok := splitClock(text)
	if !ok {
		return time.Time{}, false
	}

	t, ok := fakeResolve(rest, ref)
	if !ok {
		return time.Time{}, false
	}
	if hasClock {
		t = time.Date(t.Year(), t.Month(), t.Day(), clock.Hour, clock.Minute, 0, 0, t.Location())
	}
	return t, true
}

var fakeUnits = map[string]Unit{
	"hour": UnitHour, "day": UnitDay, "week": UnitWeek,
	"month": UnitMonth, "quarter": UnitQuarter, "year": UnitYear,
}

func fakeResolve(text string, ref time.Time) (time.Time, bool) {
	words := strings.Fields(text)
	switch {
	case len(words) == 1 && words[0] == "today":
		return ref, true
	case len(words) == 1 && words[0] == "tomorrow":
		return UnitDay.Add(ref, 1), true
	case len(words) == 2 && (words[0] == "this" || words[0] == "on"):
		if wd, ok := fakeWeekday(words[1]); ok {
			return weekStart(ref).AddDate(0, 0, wd), true
		}
	case len(words) == 2 && words[0] == "next":
		if wd, ok := fakeWeekday(words[1]); ok {
			return weekStart(ref).AddDate(0, 0, 7+wd), true
		}
		if u, ok := fakeUnits[words[1]]; ok {
			return u.Add(ref, 1), true
		}
	case len(words) == 3 && words[0] == "in":
		n := 1
		if v, err := strconv.Atoi(words[1]); err == nil {
			n = v
		}
		if u, ok := fakeUnits[strings.TrimSuffix(words[2], "s")]; ok {
			return u.Add(ref, n), true
		}
	}
	return time.Time{}, false
}

// fakeWeekday returns the offset of a weekday name from Monday.
func fakeWeekday(name string) (int, bool) {
	for i, day := range weekdays {
		if day == name {
			return i, true
		}
	}
	return 0, false
}

func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-offset, t.Hour(), t.Minute(), 0, 0, t.Location())
}

// at returns testNow's year at the given date and clock time.
func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2026, month, day, hour, minute, 0, 0, time.UTC)
}
