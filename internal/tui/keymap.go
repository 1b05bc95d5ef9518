package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Table cursor
	Up    key.Binding
	Down  key.Binding
	Focus key.Binding

	// Featured carousel
	CarouselPrev key.Binding
	CarouselNext key.Binding

	// Main table paging
	NextPage  key.Binding
	PrevPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding

	// Popular table paging
	PopularNext key.Binding
	PopularPrev key.Binding

	// Sorting, one binding per column
	SortTitle    key.Binding
	SortPlatform key.Binding
	SortPrice    key.Binding
	SortDiscount key.Binding
	SortStore    key.Binding

	// Search
	Search      key.Binding
	ClearSearch key.Binding
	Submit      key.Binding

	// Application
	Retry       key.Binding
	Help        key.Binding
	Quit        key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "switch table"),
		),

		CarouselPrev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "prev featured"),
		),
		CarouselNext: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next featured"),
		),

		NextPage: key.NewBinding(
			key.WithKeys("n", "pgdown"),
			key.WithHelp("n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "pgup"),
			key.WithHelp("p", "prev page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last page"),
		),

		PopularNext: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "popular next"),
		),
		PopularPrev: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "popular prev"),
		),

		SortTitle: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort title"),
		),
		SortPlatform: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort platform"),
		),
		SortPrice: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort price"),
		),
		SortDiscount: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "sort discount"),
		),
		SortStore: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "sort store"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "clear search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "done"),
		),

		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear screen"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextPage, k.PrevPage, k.SortPrice, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus, k.CarouselPrev, k.CarouselNext},
		{k.NextPage, k.PrevPage, k.FirstPage, k.LastPage, k.PopularPrev, k.PopularNext},
		{k.SortTitle, k.SortPlatform, k.SortPrice, k.SortDiscount, k.SortStore},
		{k.Search, k.ClearSearch, k.Retry, k.Help, k.Quit},
	}
}
