// Package tui is the terminal front end of the deal browser: a bubbletea
// program that drives an app.Controller and draws what it renders.
package tui

import (
	"context"
	"time"

	"github.com/Veraticus/dealscope/internal/app"
	"github.com/Veraticus/dealscope/internal/catalog"
	"github.com/Veraticus/dealscope/internal/model"
	"github.com/Veraticus/dealscope/internal/source"
	"github.com/Veraticus/dealscope/internal/tui/components"
	"github.com/Veraticus/dealscope/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the main TUI state.
type Model struct {
	ctx          context.Context
	theme        themes.Theme
	ctrl         *app.Controller
	frame        *frame
	synced       map[region]int
	search       textinput.Model
	help         help.Model
	spinner      spinner.Model
	carousel     components.CarouselModel
	mainTable    components.DealTableModel
	popularTable components.DealTableModel
	keymap       KeyMap
	config       Config
	layout       layout
	width        int
	height       int
	pendingSeq   int
	working      bool
	searching    bool
	focusPopular bool
	quitting     bool
}

// New creates the TUI model for a source. The catalog is not loaded until
// the program starts.
func New(ctx context.Context, src source.Source, appCfg app.Config, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := newFrame()
	ctrl := app.NewController(src, f, appCfg, app.WithLogger(cfg.Logger))
	return newModel(ctx, ctrl, f, cfg)
}

func newModel(ctx context.Context, ctrl *app.Controller, f *frame, cfg Config) Model {
	search := textinput.New()
	search.Placeholder = "Search by title..."
	search.CharLimit = 80
	search.Prompt = "/ "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sp.Style.Foreground(cfg.Theme.Primary)

	h := help.New()
	h.Width = cfg.Width

	m := Model{
		ctx:          ctx,
		theme:        cfg.Theme,
		ctrl:         ctrl,
		frame:        f,
		synced:       make(map[region]int),
		search:       search,
		help:         h,
		spinner:      sp,
		carousel:     components.NewCarousel(cfg.Theme),
		mainTable:    components.NewDealTable(cfg.Theme, true),
		popularTable: components.NewDealTable(cfg.Theme, false),
		keymap:       DefaultKeyMap(),
		config:       cfg,
		width:        cfg.Width,
		height:       cfg.Height,
	}
	m.mainTable.Focus()
	m.relayout()
	return m
}

// Controller exposes the session controller.
func (m Model) Controller() *app.Controller {
	return m.ctrl
}

// Init starts the catalog load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startLoad(), m.spinner.Tick)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case loadResultMsg:
		m.ctrl.Finish(msg.ticket, msg.deals, msg.err)
		m.sync()
		return m, nil

	case deferredEventMsg:
		if ev, ok := msg.build(m.ctrl.State()); ok {
			m.ctrl.Dispatch(ev)
		}
		if msg.seq == m.pendingSeq {
			m.working = false
		}
		m.sync()
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// busy reports whether the spinner should be animating.
func (m Model) busy() bool {
	return m.frame.loading || m.working
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.ctrl.Phase() {
	case app.PhaseFailed:
		if key.Matches(msg, m.keymap.Retry) {
			return m, tea.Batch(m.startLoad(), m.spinner.Tick)
		}
		return m, nil
	case app.PhaseLoading:
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keymap.ClearSearch):
		if m.ctrl.State().FilterTerm != "" || m.search.Value() != "" {
			m.search.SetValue("")
			m.ctrl.Dispatch(app.SearchEvent{Term: ""})
			m.sync()
		}
		return m, nil

	case key.Matches(msg, m.keymap.SortTitle):
		return m.pace(sortTo(model.SortByTitle))
	case key.Matches(msg, m.keymap.SortPlatform):
		return m.pace(sortTo(model.SortByPlatform))
	case key.Matches(msg, m.keymap.SortPrice):
		return m.pace(sortTo(model.SortByPrice))
	case key.Matches(msg, m.keymap.SortDiscount):
		return m.pace(sortTo(model.SortByDiscount))
	case key.Matches(msg, m.keymap.SortStore):
		return m.pace(sortTo(model.SortByStore))

	case key.Matches(msg, m.keymap.NextPage):
		return m.pace(pageBy(1))
	case key.Matches(msg, m.keymap.PrevPage):
		return m.pace(pageBy(-1))
	case key.Matches(msg, m.keymap.FirstPage):
		return m.pace(pageTo(func(catalog.ViewState) int { return 1 }))
	case key.Matches(msg, m.keymap.LastPage):
		return m.pace(pageTo(func(vs catalog.ViewState) int { return vs.PageCount() }))

	case key.Matches(msg, m.keymap.PopularNext):
		if !m.layout.popular {
			return m, nil
		}
		return m.pace(popularBy(1))
	case key.Matches(msg, m.keymap.PopularPrev):
		if !m.layout.popular {
			return m, nil
		}
		return m.pace(popularBy(-1))

	case key.Matches(msg, m.keymap.CarouselNext):
		m.carousel.Next()
		return m, nil
	case key.Matches(msg, m.keymap.CarouselPrev):
		m.carousel.Prev()
		return m, nil

	case key.Matches(msg, m.keymap.Focus):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down):
		var cmd tea.Cmd
		if m.focusPopular {
			m.popularTable, cmd = m.popularTable.Update(msg)
		} else {
			m.mainTable, cmd = m.mainTable.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

// updateSearch handles keys while the search box has focus. Every edit
// re-filters the table.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ClearSearch):
		m.search.SetValue("")
		m.search.Blur()
		m.searching = false
		m.ctrl.Dispatch(app.SearchEvent{Term: ""})
		m.sync()
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		m.search.Blur()
		m.searching = false
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.ctrl.Dispatch(app.SearchEvent{Term: m.search.Value()})
		m.sync()
	}
	return m, cmd
}

// pace shows the working indicator and applies the event once the
// interaction delay has passed.
func (m Model) pace(build eventBuilder) (tea.Model, tea.Cmd) {
	if m.config.InteractionDelay <= 0 {
		if ev, ok := build(m.ctrl.State()); ok {
			m.ctrl.Dispatch(ev)
			m.sync()
		}
		return m, nil
	}

	m.pendingSeq++
	m.working = true
	seq := m.pendingSeq
	tick := tea.Tick(m.config.InteractionDelay, func(time.Time) tea.Msg {
		return deferredEventMsg{build: build, seq: seq}
	})
	return m, tea.Batch(m.spinner.Tick, tick)
}

func (m Model) startLoad() tea.Cmd {
	ticket := m.ctrl.Begin()
	ctx, ctrl := m.ctx, m.ctrl
	if ctx == nil {
		ctx = context.Background()
	}
	return func() tea.Msg {
		deals, err := ctrl.Fetch(ctx)
		return loadResultMsg{ticket: ticket, deals: deals, err: err}
	}
}

func (m *Model) toggleFocus() {
	if !m.layout.popular {
		return
	}
	m.focusPopular = !m.focusPopular
	if m.focusPopular {
		m.mainTable.Blur()
		m.popularTable.Focus()
	} else {
		m.popularTable.Blur()
		m.mainTable.Focus()
	}
}

// relayout recomputes which regions fit and redraws any region that just
// became visible from the controller's current state.
func (m *Model) relayout() {
	cfg := m.ctrl.Config()
	m.layout = computeLayout(m.width, m.height, cfg.Sections, cfg.Catalog.PageSize)

	appeared := m.frame.mount(m.layout.mounts())
	if m.ctrl.Phase() == app.PhaseReady {
		for _, r := range appeared {
			var err error
			switch r {
			case regionFeatured:
				err = m.frame.RenderFeatured(m.ctrl.State().Featured())
			case regionMain:
				err = m.frame.RenderMain(m.ctrl.MainView())
			case regionPopular:
				err = m.frame.RenderPopular(m.ctrl.PopularView())
			}
			if err != nil {
				m.config.Logger.Debug("remount failed", "region", r.String(), "error", err)
			}
		}
	}

	if !m.layout.popular && m.focusPopular {
		m.focusPopular = false
		m.popularTable.Blur()
		m.mainTable.Focus()
	}

	width := max(m.width-2, minWidth)
	m.mainTable.Resize(width, m.layout.mainRows+2)
	m.popularTable.Resize(width, popularRows+2)
	m.carousel.Resize(width)
	m.help.Width = m.width
	m.sync()
}

// sync copies any region the controller re-rendered into its widget.
func (m *Model) sync() {
	f := m.frame
	if rev := f.rev[regionMain]; rev != m.synced[regionMain] {
		m.mainTable.SetDeals(f.main.Page.Items)
		m.mainTable.SetSort(f.main.Sort)
		m.synced[regionMain] = rev
	}
	if rev := f.rev[regionPopular]; rev != m.synced[regionPopular] {
		m.popularTable.SetDeals(f.popular.Page.Items)
		m.synced[regionPopular] = rev
	}
	if rev := f.rev[regionFeatured]; rev != m.synced[regionFeatured] {
		m.carousel.SetDeals(f.featured)
		m.synced[regionFeatured] = rev
	}
}

// selected returns the deal under the cursor of the focused table.
func (m Model) selected() (model.Deal, bool) {
	if m.ctrl.Phase() != app.PhaseReady {
		return model.Deal{}, false
	}
	if m.focusPopular {
		return m.popularTable.Selected()
	}
	return m.mainTable.Selected()
}
