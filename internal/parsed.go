package internal

import "time"

// Field is a date/time component reported by a DateParser.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldWeekday
	FieldHour
	FieldMinute
)

func (f Field) String() string {
	switch f {
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	case FieldWeekday:
		return "weekday"
	case FieldHour:
		return "hour"
	case FieldMinute:
		return "minute"
	}
	return "unknown"
}

// Values maps fields to their numeric value. Months are 1-12, weekdays
// 0-6 starting on Sunday.
type Values map[Field]int

// Has reports whether f is present.
func (v Values) Has(f Field) bool {
	_, ok := v[f]
	return ok
}

// ParsedResult is one span of text the parser understood. Known values were
// stated in the text; implied values were filled in by the parser.
type ParsedResult struct {
	Index   int
	Text    string
	Known   Values
	Implied Values
}

// Value returns the known value of f, falling back to the implied one.
func (r ParsedResult) Value(f Field) (int, bool) {
	if v, ok := r.Known[f]; ok {
		return v, true
	}
	v, ok := r.Implied[f]
	return v, ok
}

// ParseOptions is passed through to the parser untouched.
type ParseOptions struct {
	// ForwardDate moves matches that resolve into the past forward.
	ForwardDate bool
}

// DateParser interprets free text as dates.
type DateParser interface {
	// Parse returns every span of text understood as a date, relative to ref.
	Parse(text string, ref time.Time, opts ParseOptions) []ParsedResult
	// ParseDate resolves text to a single instant. ok is false when text
	// could not be understood.
	ParseDate(text string, ref time.Time) (t time.Time, ok bool)
}
