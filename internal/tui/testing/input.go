package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyPress returns the message for typing key as runes, e.g. "n" or "/".
func KeyPress(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// Key returns the message for a special key.
func Key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// KeyDown, KeyLeft, KeyRight, KeyEnter, KeyEsc and KeyTab are shorthands
// for the keys the deal browser binds.
func KeyDown() tea.KeyMsg  { return Key(tea.KeyDown) }
func KeyLeft() tea.KeyMsg  { return Key(tea.KeyLeft) }
func KeyRight() tea.KeyMsg { return Key(tea.KeyRight) }
func KeyEnter() tea.KeyMsg { return Key(tea.KeyEnter) }
func KeyEsc() tea.KeyMsg   { return Key(tea.KeyEsc) }
func KeyTab() tea.KeyMsg   { return Key(tea.KeyTab) }

// WindowSize creates a window size message for testing responsive layouts.
func WindowSize(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: width, Height: height}
}

// InputSequence is a scripted series of messages.
type InputSequence struct {
	inputs []tea.Msg
}

// NewInputSequence starts a sequence with inputs.
func NewInputSequence(inputs ...tea.Msg) *InputSequence {
	return &InputSequence{inputs: inputs}
}

// Add appends one message.
func (s *InputSequence) Add(input tea.Msg) *InputSequence {
	s.inputs = append(s.inputs, input)
	return s
}

// Type appends one key press per rune of text.
func (s *InputSequence) Type(text string) *InputSequence {
	for _, r := range text {
		s.inputs = append(s.inputs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return s
}

// Search opens the search box with "/" and types term.
func (s *InputSequence) Search(term string) *InputSequence {
	return s.Add(KeyPress("/")).Type(term)
}

// Apply feeds every message to model through renderer. Returned commands
// are recorded but not run.
func (s *InputSequence) Apply(model tea.Model, renderer *TestRenderer) tea.Model {
	result := model
	for _, input := range s.inputs {
		result, _ = renderer.Update(result, input)
	}
	return result
}
