package internal

import "strings"

// SessionCache remembers the last non-empty parse of an editing session.
// Parsers tend to lose a match while a word is half typed ("nov" matches,
// "nove" does not); the cache bridges those gaps. It is not safe for
// concurrent use.
type SessionCache struct {
	results []ParsedResult
}

// Update folds a fresh parse of query into the cache and returns the
// results the engine should work with.
func (c *SessionCache) Update(query string, fresh []ParsedResult) []ParsedResult {
	switch {
	case query == "":
		c.Clear()
		return nil
	case len(fresh) == 0 && len(c.results) > 0 && !c.covers(query):
		c.Clear()
		return nil
	case len(fresh) > 0:
		c.results = fresh
		return fresh
	default:
		return c.results
	}
}

// Clear drops the cached results.
func (c *SessionCache) Clear() {
	c.results = nil
}

// Results returns the cached results.
func (c *SessionCache) Results() []ParsedResult {
	return c.results
}

// covers reports whether query still belongs to the cached match: either the
// user backspaced inside it or kept typing past it.
func (c *SessionCache) covers(query string) bool {
	text := c.results[0].Text
	return strings.Contains(text, query) || (text != "" && strings.HasPrefix(query, text))
}
