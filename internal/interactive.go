package internal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SuggestionPicker is a terminal input field that asks the engine for
// suggestions on every keystroke.
type SuggestionPicker struct {
	engine      *Engine
	defaults    SuggestConfig
	inputBuffer string
	inputCursor int // Cursor position in input buffer
	suggestions []Suggestion
	cursor      int
	chosen      *Suggestion
	quit        bool
}

// NewSuggestionPicker creates a picker showing the fallback list.
func NewSuggestionPicker(engine *Engine, defaults SuggestConfig) SuggestionPicker {
	m := SuggestionPicker{engine: engine, defaults: defaults}
	m.refresh()
	return m
}

func (m *SuggestionPicker) refresh() {
	m.suggestions = m.engine.Suggest(m.defaults.Request(m.inputBuffer))
	if m.cursor >= len(m.suggestions) {
		m.cursor = len(m.suggestions) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m SuggestionPicker) Init() tea.Cmd {
	return nil
}

func (m SuggestionPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	runes := []rune(m.inputBuffer)
	edited := false

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quit = true
		return m, tea.Quit
	case tea.KeyEnter:
		if m.cursor < len(m.suggestions) {
			chosen := m.suggestions[m.cursor]
			m.chosen = &chosen
			return m, tea.Quit
		}
	case tea.KeyUp, tea.KeyCtrlP:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
		if m.cursor < len(m.suggestions)-1 {
			m.cursor++
		}
	case tea.KeyCtrlA:
		// Move to beginning of line
		m.inputCursor = 0
	case tea.KeyCtrlE:
		// Move to end of line
		m.inputCursor = len(runes)
	case tea.KeyCtrlF, tea.KeyRight:
		if m.inputCursor < len(runes) {
			m.inputCursor++
		}
	case tea.KeyCtrlB, tea.KeyLeft:
		if m.inputCursor > 0 {
			m.inputCursor--
		}
	case tea.KeyCtrlD, tea.KeyDelete:
		// Delete character at cursor
		if m.inputCursor < len(runes) {
			m.inputBuffer = string(append(runes[:m.inputCursor], runes[m.inputCursor+1:]...))
			edited = true
		}
	case tea.KeyCtrlK:
		// Kill to end of line
		if m.inputCursor < len(runes) {
			m.inputBuffer = string(runes[:m.inputCursor])
			edited = true
		}
	case tea.KeyCtrlU:
		m.inputBuffer = ""
		m.inputCursor = 0
		edited = true
	case tea.KeyCtrlH, tea.KeyBackspace:
		if m.inputCursor > 0 && len(runes) > 0 {
			m.inputBuffer = string(append(runes[:m.inputCursor-1], runes[m.inputCursor:]...))
			m.inputCursor--
			edited = true
		}
	case tea.KeyRunes:
		m.insert(runes, keyMsg.Runes)
		edited = true
	case tea.KeySpace:
		m.insert(runes, []rune{' '})
		edited = true
	}

	if edited {
		m.cursor = 0
		m.refresh()
	}
	return m, nil
}

func (m *SuggestionPicker) insert(runes, typed []rune) {
	newRunes := append(append(append([]rune{}, runes[:m.inputCursor]...), typed...), runes[m.inputCursor:]...)
	m.inputBuffer = strings.ToLower(string(newRunes))
	m.inputCursor += len(typed)
}

func (m SuggestionPicker) View() string {
	if m.quit || m.chosen != nil {
		return ""
	}

	runes := []rune(m.inputBuffer)
	display := string(runes[:m.inputCursor]) + "_" + string(runes[m.inputCursor:])

	var s strings.Builder
	s.WriteString("Date: " + display + "\n\n")
	s.WriteString(RenderSuggestions(m.suggestions, m.cursor))
	s.WriteString("\n" + hintStyle.Render("type to search • ↑/↓: select • enter: choose • ctrl+u: clear • esc: quit"))
	return s.String()
}

// Chosen returns the suggestion picked with Enter, or nil.
func (m SuggestionPicker) Chosen() *Suggestion {
	return m.chosen
}

// Input returns the text typed so far.
func (m SuggestionPicker) Input() string {
	return m.inputBuffer
}

// Suggestions returns the list currently shown.
func (m SuggestionPicker) Suggestions() []Suggestion {
	return m.suggestions
}

// PickDate runs the picker until the user chooses a suggestion or quits.
func PickDate(engine *Engine, defaults SuggestConfig) (*Suggestion, error) {
	p := tea.NewProgram(NewSuggestionPicker(engine, defaults))

	result, err := p.Run()
	if err != nil {
		return nil, err
	}

	return result.(SuggestionPicker).Chosen(), nil
}
