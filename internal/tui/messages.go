package tui

import (
	"github.com/Veraticus/dealscope/internal/app"
	"github.com/Veraticus/dealscope/internal/model"
)

// loadResultMsg carries the outcome of one load attempt back to the loop.
type loadResultMsg struct {
	err    error
	deals  []model.Deal
	ticket app.Ticket
}

// deferredEventMsg is a paced user event whose delay has elapsed.
type deferredEventMsg struct {
	build eventBuilder
	seq   int
}
