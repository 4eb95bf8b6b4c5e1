package internal

import (
	"strconv"
	"strings"
)

// Shortcut is the candidate-generation branch selected for a query.
type Shortcut int

const (
	ShortcutNone Shortcut = iota
	ShortcutThis
	ShortcutNext
	ShortcutOn
	ShortcutIn
	ShortcutNumber
)

func (s Shortcut) String() string {
	switch s {
	case ShortcutThis:
		return "this"
	case ShortcutNext:
		return "next"
	case ShortcutOn:
		return "on"
	case ShortcutIn:
		return "in"
	case ShortcutNumber:
		return "number"
	default:
		return "none"
	}
}

// Classification holds the lexical view of a query: its tokens and which
// shortcut keywords the first token could still become.
type Classification struct {
	Query  string
	Tokens []string

	This   bool
	Next   bool
	In     bool
	On     bool
	Number bool
}

// Classify inspects the leading token of query. Tokens are split on single
// spaces so a trailing space yields an empty fragment.
func Classify(query string) Classification {
	tokens := strings.Split(query, " ")
	first := tokens[0]

	_, err := strconv.Atoi(strings.TrimSpace(first))

	return Classification{
		Query:  query,
		Tokens: tokens,
		This:   isKeywordPrefix(first, "this"),
		Next:   isKeywordPrefix(first, "next"),
		In:     isKeywordPrefix(first, "in"),
		On:     isKeywordPrefix(first, "on"),
		Number: err == nil,
	}
}

// isKeywordPrefix reports whether typed is the beginning of keyword.
// An empty token matches every keyword.
func isKeywordPrefix(typed, keyword string) bool {
	return strings.HasPrefix(keyword, typed)
}

// Shortcut returns the single branch whose guard is satisfied.
func (c Classification) Shortcut() Shortcut {
	switch {
	case c.This && !c.Next && !c.In && !c.On && !c.Number:
		return ShortcutThis
	case c.Next && !c.In && !c.On && !c.This && !c.Number:
		return ShortcutNext
	case !c.Next && !c.In && !c.This && !c.Number:
		return ShortcutOn
	case !c.Next && !c.This && !c.On:
		if c.In {
			return ShortcutIn
		}
		return ShortcutNumber
	default:
		return ShortcutNone
	}
}

// AnyKeyword reports whether any shortcut predicate is true.
func (c Classification) AnyKeyword() bool {
	return c.This || c.Next || c.In || c.On || c.Number
}

// Token returns the i-th token or "" when the query is shorter.
func (c Classification) Token(i int) string {
	if i < len(c.Tokens) {
		return c.Tokens[i]
	}
	return ""
}

// Fragment is the word typed after the shortcut keyword.
func (c Classification) Fragment() string {
	return c.Token(1)
}

// nonEmptyTokens counts tokens that carry text.
func (c Classification) nonEmptyTokens() []string {
	var out []string
	for _, t := range c.Tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
