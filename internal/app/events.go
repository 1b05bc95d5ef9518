package app

import "github.com/Veraticus/dealscope/internal/model"

// Event is a user gesture the controller reacts to.
type Event interface {
	event()
}

// SortEvent activates a column header.
type SortEvent struct {
	Key model.SortKey
}

// SearchEvent replaces the search term.
type SearchEvent struct {
	Term string
}

// PageEvent jumps the main table to a page.
type PageEvent struct {
	Page int
}

// PopularPageEvent jumps the popular games table to a page.
type PopularPageEvent struct {
	Page int
}

func (SortEvent) event()        {}
func (SearchEvent) event()      {}
func (PageEvent) event()        {}
func (PopularPageEvent) event() {}
