package internal

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func newTestPicker(fallback ...string) SuggestionPicker {
	defaults := SuggestConfig{Hour: 9, Fallback: fallback}
	return NewSuggestionPicker(newTestEngine(newFakeParser()), defaults)
}

func press(m SuggestionPicker, msgs ...tea.KeyMsg) SuggestionPicker {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(SuggestionPicker)
	}
	return m
}

func typeText(m SuggestionPicker, text string) SuggestionPicker {
	for _, r := range text {
		if r == ' ' {
			m = press(m, tea.KeyMsg{Type: tea.KeySpace})
			continue
		}
		m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestPickerShowsFallbackInitially(t *testing.T) {
	m := newTestPicker("today", "tomorrow")

	require.Equal(t, []string{"today", "tomorrow"}, labelsOf(m.Suggestions()))
}

func TestPickerRefreshesOnEveryKeystroke(t *testing.T) {
	m := newTestPicker("tomorrow")

	m = typeText(m, "Fri")
	require.Equal(t, "fri", m.Input())
	require.Equal(t, []Suggestion{{Label: "on friday", Date: at(time.February, 20, 9, 0)}}, m.Suggestions())

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	require.Equal(t, "", m.Input())
	require.Equal(t, []string{"tomorrow"}, labelsOf(m.Suggestions()))
}

func TestPickerChoosesSelectedSuggestion(t *testing.T) {
	m := newTestPicker("today", "tomorrow")

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SuggestionPicker)

	require.NotNil(t, cmd)
	require.NotNil(t, m.Chosen())
	require.Equal(t, "tomorrow", m.Chosen().Label)
	require.Equal(t, "", m.View())
}

func TestPickerCursorStaysInRange(t *testing.T) {
	m := newTestPicker("today", "tomorrow")

	m = press(m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	require.Equal(t, 1, m.cursor)

	m = press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.cursor)

	// Editing resets the selection.
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = typeText(m, "t")
	require.Equal(t, 0, m.cursor)
}

func TestPickerLineEditing(t *testing.T) {
	m := newTestPicker()

	m = typeText(m, "next fri")
	require.Equal(t, "next fri", m.Input())

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "next fr", m.Input())

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlA}, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.Equal(t, "ext fr", m.Input())

	m = typeText(m, "n")
	require.Equal(t, "next fr", m.Input())

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlK})
	require.Equal(t, "n", m.Input())

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlE}, tea.KeyMsg{Type: tea.KeyLeft})
	m = typeText(m, "e")
	require.Equal(t, "en", m.Input())
}

func TestPickerQuit(t *testing.T) {
	m := newTestPicker("today")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(SuggestionPicker)

	require.NotNil(t, cmd)
	require.Nil(t, m.Chosen())
	require.Equal(t, "", m.View())
}

func TestPickerView(t *testing.T) {
	m := newTestPicker("tomorrow")
	m = typeText(m, "to")
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})

	view := m.View()
	if !strings.Contains(view, "Date: t_o") {
		t.Errorf("View should show the input cursor, got %q", view)
	}
	if !strings.Contains(view, "tomorrow") {
		t.Errorf("View should list suggestions, got %q", view)
	}
}

func TestRenderSuggestionsEmpty(t *testing.T) {
	require.Contains(t, RenderSuggestions(nil, 0), "No suggestions.")
}

func TestRenderSuggestionsFormatsDates(t *testing.T) {
	out := RenderSuggestions([]Suggestion{
		{Label: "tomorrow", Date: at(time.February, 19, 9, 0)},
		{Label: "on friday", Date: at(time.February, 20, 9, 0)},
	}, -1)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "Thu 2026-02-19 09:00")
	require.Contains(t, lines[1], "on friday")
}
