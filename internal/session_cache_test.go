package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionCacheUpdate(t *testing.T) {
	nov := []ParsedResult{{Text: "nov", Known: Values{FieldMonth: 11}}}
	november := []ParsedResult{{Text: "november", Known: Values{FieldMonth: 11}}}

	var cache SessionCache

	require.Equal(t, nov, cache.Update("nov", nov))
	require.Equal(t, nov, cache.Results())

	// A fresh parse replaces the cache.
	require.Equal(t, november, cache.Update("november", november))

	// The parser lost the match, but the query is still part of it.
	require.Equal(t, november, cache.Update("novemb", nil))
	require.Equal(t, november, cache.Update("nov", nil))

	// The query left the cached text.
	require.Nil(t, cache.Update("novx", nil))
	require.Nil(t, cache.Results())

	// Nothing to fall back on.
	require.Nil(t, cache.Update("nov", nil))
}

func TestSessionCacheEmptyQueryClears(t *testing.T) {
	var cache SessionCache
	cache.Update("jun", []ParsedResult{{Text: "jun"}})

	require.Nil(t, cache.Update("", nil))
	require.Nil(t, cache.Results())
}

func TestSessionCacheClear(t *testing.T) {
	var cache SessionCache
	cache.Update("jun", []ParsedResult{{Text: "jun"}})

	cache.Clear()

	require.Nil(t, cache.Update("ju", nil))
}

func TestSessionCacheKeepsWhileTypingPastMatch(t *testing.T) {
	nov := []ParsedResult{{Text: "nov", Known: Values{FieldMonth: 11}}}

	var cache SessionCache
	cache.Update("no", nov)

	require.Equal(t, nov, cache.Update("nov", nil))
	require.Equal(t, nov, cache.Update("nove", nil))
	require.Equal(t, nov, cache.Update("novemb", nil))
	require.Nil(t, cache.Update("dec", nil))
}
