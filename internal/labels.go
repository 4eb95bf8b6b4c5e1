package internal

import (
	"strconv"
	"strings"
)

// WeekdayFilter is the policy narrowing bare weekday suggestions.
type WeekdayFilter int

const (
	// FilterNone keeps every weekday that passed the fragment filter.
	FilterNone WeekdayFilter = iota
	// FilterStrict keeps weekdays equal to the query or containing its first token.
	FilterStrict
	// FilterLoose keeps weekdays equal to the query or containing any of its tokens.
	FilterLoose
)

// WeekdayFilter picks the filter for the bare/"on" branch. hasResults
// reports whether the parser already understood the query.
func (c Classification) WeekdayFilter(hasResults bool) WeekdayFilter {
	if c.On {
		return FilterNone
	}
	if c.StrictWeekdayFilter(hasResults) {
		return FilterStrict
	}
	return FilterLoose
}

// StrictWeekdayFilter reports whether only the first token may select
// weekdays.
func (c Classification) StrictWeekdayFilter(hasResults bool) bool {
	words := len(c.nonEmptyTokens())
	return (words <= 1 && !c.On) || (words > 1 && c.On) || hasResults
}

// Count resolves the number typed for the IN/NUMBER branch.
func (c Classification) Count() (int, bool) {
	first := c.Token(0)
	if n, err := strconv.Atoi(first); err == nil && n != 0 {
		return n, true
	}
	if n, ok := lookupWordNumber(first); ok {
		return n, true
	}
	if c.In {
		what := c.Fragment()
		if n, err := strconv.Atoi(what); err == nil && n != 0 {
			return n, true
		}
		if what != "" {
			if n, ok := lookupWordNumber(what); ok {
				return n, true
			}
		}
	}
	return 0, false
}

// Labels generates the shortcut suggestions for a non-empty query.
// withHours adds hour units to the IN/NUMBER branch.
func (c Classification) Labels(hasResults, withHours bool) []string {
	labels := filterContains(fixedDates, c.Token(0))

	switch c.Shortcut() {
	case ShortcutThis:
		labels = append(labels, prefixAll("this ", filterFragment(weekdays, c.Fragment()))...)

	case ShortcutNext:
		stage := append([]string{}, weekdays...)
		for _, u := range nextUnits {
			stage = append(stage, u.Singular())
		}
		labels = append(labels, prefixAll("next ", filterFragment(stage, c.Fragment()))...)

	case ShortcutOn:
		stage := filterFragment(weekdays, c.Fragment())
		labels = append(labels, prefixAll("on ", c.filterWeekdays(stage, c.WeekdayFilter(hasResults)))...)

	case ShortcutIn, ShortcutNumber:
		labels = append(labels, c.countLabels(withHours)...)
	}

	return labels
}

func (c Classification) filterWeekdays(stage []string, policy WeekdayFilter) []string {
	var out []string
	for _, day := range stage {
		switch policy {
		case FilterStrict:
			if day == c.Query || strings.Contains(day, c.Token(0)) {
				out = append(out, day)
			}
		case FilterLoose:
			if day == c.Query || containsAnyToken(day, c.Tokens) {
				out = append(out, day)
			}
		default:
			out = append(out, day)
		}
	}
	return out
}

// maxCount bounds "in N units" so the resolved dates stay within the
// calendar range the parser can step through.
const maxCount = 9999

func (c Classification) countLabels(withHours bool) []string {
	count, ok := c.Count()
	if ok && count > maxCount {
		return nil
	}

	units := inUnits
	if withHours {
		units = append([]Unit{UnitHour}, inUnits...)
	}

	what := c.Fragment()
	if c.In {
		what = c.Token(2)
	}

	var labels []string
	for _, u := range units {
		if what != "" && !strings.Contains(u.Plural(), what) {
			continue
		}
		if !ok || count == 1 {
			labels = append(labels, "in "+u.Article()+" "+u.Singular())
		} else {
			labels = append(labels, "in "+strconv.Itoa(count)+" "+u.Plural())
		}
	}
	return labels
}

func containsAnyToken(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func filterContains(values []string, sub string) []string {
	var out []string
	for _, v := range values {
		if strings.Contains(v, sub) {
			out = append(out, v)
		}
	}
	return out
}

// filterFragment narrows values by the fragment when one was typed.
func filterFragment(values []string, fragment string) []string {
	if fragment == "" {
		return values
	}
	return filterContains(values, fragment)
}

func prefixAll(prefix string, values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, prefix+v)
	}
	return out
}
