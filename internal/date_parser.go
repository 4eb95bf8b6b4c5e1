package internal

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/tj/go-naturaldate"
)

// NaturalDateParser understands English date phrases like "next tuesday",
// "june 5th" or "in 3 days". Spans are found with when; phrases when does
// not know are resolved with naturaldate.
type NaturalDateParser struct {
	w *when.Parser
}

// NewNaturalDateParser returns a parser with the English and common rule sets.
func NewNaturalDateParser() *NaturalDateParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	w.Add(quarterRule())
	return &NaturalDateParser{w: w}
}

// quarterRule handles "this/next/last quarter" as a three month step.
func quarterRule() rules.Rule {
	return &rules.F{
		RegExp: regexp.MustCompile(`(?i)(?:\W|^)(this|next|last)\s+quarter(?:\W|$)`),
		Applier: func(m *rules.Match, c *rules.Context, o *rules.Options, ref time.Time) (bool, error) {
			months := 0
			switch strings.ToLower(strings.TrimSpace(m.Captures[0])) {
			case "next":
				months = 3
			case "last":
				months = -3
			}
			t := UnitMonth.Add(ref, months)
			year, month, day := t.Year(), int(t.Month()), t.Day()
			c.Year, c.Month, c.Day = &year, &month, &day
			return true, nil
		},
	}
}

// Parse returns the span of text understood as a date. Only fields named in
// the text are reported as known; the rest of the resolved date is implied.
// A match whose resolved date contradicts the numbers or month named in the
// span is dropped.
func (p *NaturalDateParser) Parse(text string, ref time.Time, opts ParseOptions) []ParsedResult {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var (
		index   int
		matched string
		t       time.Time
	)
	if loc := isoDatePattern.FindStringIndex(lower); loc != nil {
		iso, ok := isoDate(lower[loc[0]:loc[1]], ref)
		if !ok {
			return nil
		}
		index, matched, t = loc[0], lower[loc[0]:loc[1]], iso
	} else {
		r, err := p.w.Parse(text, ref)
		if err != nil || r == nil {
			return nil
		}
		index = r.Index
		matched, t = withTrailingYear(lower, strings.ToLower(strings.TrimSpace(r.Text)), r.Time)
	}

	if !matchesResolved(matched, t) {
		return nil
	}
	fields := knownFields(matched)

	if opts.ForwardDate {
		t = forwardDate(t, ref, fields)
	}

	known, implied := Values{}, Values{}
	for f, v := range fieldValues(t) {
		if fields[f] {
			known[f] = v
		} else {
			implied[f] = v
		}
	}

	return []ParsedResult{{Index: index, Text: matched, Known: known, Implied: implied}}
}

var (
	isoDatePattern  = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	trailingYear    = regexp.MustCompile(`^,?\s+(\d{4})\b`)
	digitRunPattern = regexp.MustCompile(`\d+`)
)

// isoDate reads "YYYY-MM-DD" at ref's clock time. when splits such dates
// into a clock time, so they are handled before it.
func isoDate(text string, ref time.Time) (time.Time, bool) {
	m := isoDatePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	t := time.Date(year, time.Month(month), day, ref.Hour(), ref.Minute(), 0, 0, ref.Location())
	if int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// withTrailingYear grows a month-day match by a four digit year typed right
// after it ("june 5 2027"), which when leaves out of the span.
func withTrailingYear(text, matched string, t time.Time) (string, time.Time) {
	fields := knownFields(matched)
	if !fields[FieldMonth] || !fields[FieldDay] || fields[FieldYear] {
		return matched, t
	}

	pos := strings.Index(text, matched)
	if pos < 0 {
		return matched, t
	}
	end := pos + len(matched)
	m := trailingYear.FindStringSubmatch(text[end:])
	if m == nil {
		return matched, t
	}

	year, _ := strconv.Atoi(m[1])
	withYear := time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	if withYear.Day() != t.Day() {
		return matched, t
	}
	return text[pos : end+len(m[0])], withYear
}

var monthNumbers = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// matchesResolved reports whether t agrees with the date the span states:
// the named month, the day after it, a four digit year and the month/day
// pair of a numeric date.
func matchesResolved(text string, t time.Time) bool {
	dateText := clockPattern.ReplaceAllString(text, " ")

	if numeric := numericDatePattern.FindString(dateText); numeric != "" {
		nums := digitRunPattern.FindAllString(numeric, -1)
		if len(nums[0]) == 4 {
			nums = nums[1:]
		}
		if len(nums) >= 2 {
			a, _ := strconv.Atoi(nums[0])
			b, _ := strconv.Atoi(nums[1])
			month, day := int(t.Month()), t.Day()
			if !(a == month && b == day) && !(a == day && b == month) {
				return false
			}
		}
		dateText = numericDatePattern.ReplaceAllString(dateText, " ")
	}

	if year := yearPattern.FindString(dateText); year != "" {
		if y, _ := strconv.Atoi(year); y != t.Year() {
			return false
		}
		dateText = yearPattern.ReplaceAllString(dateText, " ")
	}

	if name := monthPattern.FindString(dateText); name != "" {
		if monthNumbers[name[:3]] != t.Month() {
			return false
		}
		if day := dayNumberPattern.FindString(dateText); day != "" {
			if d, _ := strconv.Atoi(strings.TrimRight(day, "stndrh")); d != t.Day() {
				return false
			}
		}
	}
	return true
}

// ParseDate resolves text to a single instant. A trailing "HH:MM" sets the
// clock time of the resolved day.
func (p *NaturalDateParser) ParseDate(text string, ref time.Time) (time.Time, bool) {
	datePart, clock, hasClock, ok := splitClock(strings.TrimSpace(text))
	if !ok {
		return time.Time{}, false
	}

	t, ok := p.resolve(datePart, ref)
	if !ok {
		return time.Time{}, false
	}

	if hasClock {
		t = time.Date(t.Year(), t.Month(), t.Day(), clock.Hour, clock.Minute, 0, 0, t.Location())
	}
	return t, true
}

func (p *NaturalDateParser) resolve(text string, ref time.Time) (time.Time, bool) {
	if text == "" {
		return time.Time{}, false
	}

	if t, ok := isoDate(text, ref); ok {
		return t, true
	}
	if r, err := p.w.Parse(text, ref); err == nil && r != nil {
		return r.Time, true
	}

	// naturaldate is lenient and resolves random words to ref, so only hand
	// it phrases that look relative.
	if !looksRelative(text) {
		return time.Time{}, false
	}

	t, err := naturaldate.Parse(text, ref, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

var naturalPhrases = []string{
	"next ", "last ", "in ", "ago", "from now", "this ", "coming ", "following ",
}

func looksRelative(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range naturalPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

var trailingClock = regexp.MustCompile(`^(.*?)\s*\b(\d{1,2}):(\d{2})$`)

// splitClock separates a trailing "HH:MM". ok is false for an impossible
// clock time.
func splitClock(text string) (rest string, clock TimeOfDay, hasClock, ok bool) {
	m := trailingClock.FindStringSubmatch(text)
	if m == nil {
		return text, TimeOfDay{}, false, true
	}

	hour, _ := strconv.Atoi(m[2])
	minute, _ := strconv.Atoi(m[3])
	if hour > 23 || minute > 59 {
		return "", TimeOfDay{}, false, false
	}
	return strings.TrimSpace(m[1]), TimeOfDay{Hour: hour, Minute: minute}, true, true
}

var (
	weekdayPattern      = regexp.MustCompile(`\b(sunday|monday|tuesday|wednesday|thursday|friday|saturday|sun|mon|tue|tues|wed|thu|thur|thurs|fri|sat)\b`)
	monthPattern        = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)\b`)
	numericDatePattern  = regexp.MustCompile(`\b\d{1,4}[/.-]\d{1,2}(?:[/.-]\d{2,4})?\b`)
	yearPattern         = regexp.MustCompile(`\b\d{4}\b`)
	dayNumberPattern    = regexp.MustCompile(`\b\d{1,2}(?:st|nd|rd|th)?\b`)
	clockPattern        = regexp.MustCompile(`\b\d{1,2}(?::\d{2})?\s*(?:am|pm|a\.m\.|p\.m\.)|\b\d{1,2}:\d{2}\b|\b(?:noon|midnight)\b`)
	relativeDayPattern  = regexp.MustCompile(`\b(?:today|tonight|tomorrow|yesterday)\b`)
	relativeTimePattern = regexp.MustCompile(`\b(?:hours?|minutes?|mins?)\b`)
)

// knownFields reports which fields are stated explicitly in a lower-cased
// matched span.
func knownFields(text string) map[Field]bool {
	known := map[Field]bool{}

	if clockPattern.MatchString(text) || relativeTimePattern.MatchString(text) {
		known[FieldHour] = true
		known[FieldMinute] = true
	}
	dateText := clockPattern.ReplaceAllString(text, " ")

	if weekdayPattern.MatchString(dateText) {
		known[FieldWeekday] = true
	}
	if relativeDayPattern.MatchString(dateText) {
		known[FieldYear] = true
		known[FieldMonth] = true
		known[FieldDay] = true
	}
	if numericDatePattern.MatchString(dateText) {
		known[FieldMonth] = true
		known[FieldDay] = true
		dateText = numericDatePattern.ReplaceAllStringFunc(dateText, func(s string) string {
			if yearPattern.MatchString(s) {
				known[FieldYear] = true
			}
			return " "
		})
	}
	if yearPattern.MatchString(dateText) {
		known[FieldYear] = true
		dateText = yearPattern.ReplaceAllString(dateText, " ")
	}
	if monthPattern.MatchString(dateText) {
		known[FieldMonth] = true
		if dayNumberPattern.MatchString(dateText) {
			known[FieldDay] = true
		}
	}

	return known
}

func fieldValues(t time.Time) Values {
	return Values{
		FieldYear:    t.Year(),
		FieldMonth:   int(t.Month()),
		FieldDay:     t.Day(),
		FieldWeekday: int(t.Weekday()),
		FieldHour:    t.Hour(),
		FieldMinute:  t.Minute(),
	}
}

// forwardDate moves a match that resolved into the past to its next
// occurrence, based on what the text pinned down.
func forwardDate(t, ref time.Time, known map[Field]bool) time.Time {
	if !t.Before(ref) {
		return t
	}
	switch {
	case known[FieldYear]:
		return t
	case known[FieldMonth]:
		return UnitYear.Add(t, 1)
	case known[FieldWeekday]:
		return UnitWeek.Add(t, 1)
	case known[FieldHour] && !known[FieldDay]:
		return UnitDay.Add(t, 1)
	}
	return t
}
