package internal

import (
	"strings"
	"time"
)

// Request describes one keystroke's worth of input.
type Request struct {
	// Query is the text typed so far.
	Query string
	// ParseTime enables hour-level suggestions and extrapolation.
	ParseTime bool
	// Hour and Minute are the clock time applied to dates without one.
	Hour   int
	Minute int
	// Fallback is returned when Query is empty. Entries without a date are
	// resolved from their label.
	Fallback []Suggestion
	// Ref is the reference date handed to the parser. Zero means now.
	Ref time.Time
	// Options is passed to the parser as is.
	Options ParseOptions
}

// Engine produces date suggestions for one editing session. It remembers
// the last successful parse between calls, so each session needs its own
// Engine. An Engine is not safe for concurrent use.
type Engine struct {
	parser DateParser
	now    func() time.Time
	cache  SessionCache
}

// NewEngine creates an engine backed by parser. A nil now uses time.Now.
func NewEngine(parser DateParser, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{parser: parser, now: now}
}

// Reset forgets the session state, e.g. when the input field is cleared
// or loses focus.
func (e *Engine) Reset() {
	e.cache.Clear()
}

// Suggest returns the suggestions for req sorted by date, without two
// entries on the same instant.
func (e *Engine) Suggest(req Request) []Suggestion {
	now := e.now()
	ref := req.Ref
	if ref.IsZero() {
		ref = now
	}

	var fresh []ParsedResult
	if req.Query != "" {
		fresh = e.parser.Parse(expandMonthHint(req.Query), ref, req.Options)
	}
	results := e.cache.Update(req.Query, fresh)

	class := Classify(req.Query)
	tod := timeOfDay(req.Hour, req.Minute, results)

	var shortcuts []Suggestion
	if req.Query == "" {
		shortcuts = e.resolveFallback(req.Fallback, tod, now)
	} else {
		for _, label := range class.Labels(len(results) > 0, req.ParseTime) {
			if s, ok := e.resolveLabel(label, tod, now); ok {
				shortcuts = append(shortcuts, s)
			}
		}
	}

	dates := buildResultDates(results, tod, now)
	dates = append(dates, extrapolate(dates, results, class, req.ParseTime)...)

	return mergeSuggestions(shortcuts, labelResults(dates, now))
}

func (e *Engine) resolveFallback(fallback []Suggestion, tod TimeOfDay, now time.Time) []Suggestion {
	var out []Suggestion
	for _, f := range fallback {
		if !f.Date.IsZero() {
			out = append(out, f)
			continue
		}
		if strings.TrimSpace(f.Label) == "" {
			continue
		}
		if s, ok := e.resolveLabel(f.Label, tod, now); ok {
			out = append(out, s)
		}
	}
	return out
}

// FallbackLabels builds a fallback list resolved from labels alone.
func FallbackLabels(labels ...string) []Suggestion {
	out := make([]Suggestion, 0, len(labels))
	for _, l := range labels {
		out = append(out, Suggestion{Label: l})
	}
	return out
}
