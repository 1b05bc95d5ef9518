// Package testing drives bubbletea models without a terminal.
package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TestRenderer records what a model did across a series of updates.
type TestRenderer struct {
	// Output is the view after the last update.
	Output   string
	Commands []tea.Cmd
	Messages []tea.Msg
}

// NewTestRenderer creates an empty recorder.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{}
}

// Update sends msg to model and re-renders.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.Messages = append(r.Messages, msg)

	next, cmd := model.Update(msg)
	if cmd != nil {
		r.Commands = append(r.Commands, cmd)
	}
	r.Output = next.View()
	return next, cmd
}

// Plain returns the last view without styling.
func (r *TestRenderer) Plain() string {
	return StripANSI(r.Output)
}

// Exec runs a command to completion and returns the messages it produced,
// expanding batches. Messages rejected by keep are dropped, which lets
// tests skip animation ticks.
func Exec(cmd tea.Cmd, keep func(tea.Msg) bool) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, Exec(c, keep)...)
		}
		return out
	}
	if msg == nil || (keep != nil && !keep(msg)) {
		return nil
	}
	return []tea.Msg{msg}
}
