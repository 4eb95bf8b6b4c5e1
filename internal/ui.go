package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Width(22)
	selectedStyle = lipgloss.NewStyle().Width(22).Foreground(lipgloss.Color("36")).Bold(true)
	dateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// DateLayout is how suggestion dates are displayed.
const DateLayout = "Mon 2006-01-02 15:04"

// RenderSuggestions renders one line per suggestion. cursor < 0 renders the
// list without a selection marker.
func RenderSuggestions(suggestions []Suggestion, cursor int) string {
	if len(suggestions) == 0 {
		return hintStyle.Render("No suggestions.") + "\n"
	}

	var s strings.Builder
	for i, sug := range suggestions {
		marker := "  "
		label := labelStyle.Render(sug.Label)
		if i == cursor {
			marker = cursorStyle.Render("> ")
			label = selectedStyle.Render(sug.Label)
		}
		fmt.Fprintf(&s, "%s%s %s\n", marker, label, dateStyle.Render(sug.Date.Format(DateLayout)))
	}
	return s.String()
}
