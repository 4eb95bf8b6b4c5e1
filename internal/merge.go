package internal

import (
	"sort"
	"time"

	"github.com/dustin/go-humanize"
)

// Suggestion is a labelled date offered to the user.
type Suggestion struct {
	Label string    `json:"label"`
	Date  time.Time `json:"date"`
}

// resultLabel renders a parsed date as "on June 5th", adding the year
// unless the date is later this year.
func resultLabel(date, now time.Time) string {
	label := "on " + date.Format("January") + " " + humanize.Ordinal(date.Day())
	if date.Year() != now.Year() || !now.Before(date) {
		label += ", " + date.Format("2006")
	}
	return label
}

// labelResults wraps parsed dates as suggestions.
func labelResults(dates []time.Time, now time.Time) []Suggestion {
	out := make([]Suggestion, 0, len(dates))
	for _, d := range dates {
		out = append(out, Suggestion{Label: resultLabel(d, now), Date: d})
	}
	return out
}

// mergeSuggestions unions both streams, keeps one entry per instant and
// sorts by date. Shortcut suggestions are considered first so their label
// wins over a parsed result landing on the same instant.
func mergeSuggestions(shortcuts, results []Suggestion) []Suggestion {
	merged := []Suggestion{}
	for _, stream := range [][]Suggestion{shortcuts, results} {
		for _, s := range stream {
			if s.Label == "" || containsDate(merged, s.Date) {
				continue
			}
			merged = append(merged, s)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})
	return merged
}

func containsDate(list []Suggestion, date time.Time) bool {
	for _, s := range list {
		if s.Date.Equal(date) {
			return true
		}
	}
	return false
}
