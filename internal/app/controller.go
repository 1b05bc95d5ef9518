// Package app drives a browsing session: it loads the catalog once within
// bounded time, owns the view state, and pushes each derived view to a
// Renderer.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/dealscope/internal/catalog"
	"github.com/Veraticus/dealscope/internal/model"
	"github.com/Veraticus/dealscope/internal/source"
)

// Phase is the lifecycle stage of a session.
type Phase int

// Session phases. Ready and Failed are terminal for a given load.
const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Ticket identifies one load attempt. Results carrying a stale ticket are
// discarded.
type Ticket uint64

// Controller is not safe for concurrent use. Fetch is the one method that
// may run off the owning goroutine.
type Controller struct {
	source   source.Source
	renderer Renderer
	logger   *slog.Logger
	loadErr  *source.LoadError
	state    catalog.ViewState
	setupErr []error
	// setupIdx maps a step name to its entry in setupErr.
	setupIdx map[string]int
	cfg      Config
	phase    Phase
	ticket   Ticket
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for setup failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController creates a controller in the loading phase. Nothing is
// rendered until Begin or Load is called.
func NewController(src source.Source, renderer Renderer, cfg Config, opts ...Option) *Controller {
	c := &Controller{
		source:   src,
		renderer: renderer,
		cfg:      cfg.withDefaults(),
		logger:   slog.Default(),
		phase:    PhaseLoading,
		state:    catalog.NewViewState(nil, cfg.Catalog),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load runs a complete load synchronously: Begin, Fetch, Finish.
func (c *Controller) Load(ctx context.Context) Phase {
	ticket := c.Begin()
	deals, err := c.Fetch(ctx)
	return c.Finish(ticket, deals, err)
}

// Begin enters the loading phase, clears any previous catalog and shows the
// loading indicator. The returned ticket must be handed to Finish.
func (c *Controller) Begin() Ticket {
	c.ticket++
	c.phase = PhaseLoading
	c.loadErr = nil
	c.setupErr = nil
	c.setupIdx = nil
	c.state = catalog.NewViewState(nil, c.cfg.Catalog)

	c.step("loading", func() error { return c.renderer.RenderLoading(true) })
	return c.ticket
}

type loadResult struct {
	err   error
	deals []model.Deal
}

// Fetch asks the source for the catalog. The request is cancelled after
// RequestTimeout, and Fetch itself gives up after LoadCeiling even if the
// source ignores cancellation. Fetch touches no controller state.
func (c *Controller) Fetch(ctx context.Context) ([]model.Deal, error) {
	name := c.source.Name()

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	ceilingCtx, stop := context.WithTimeout(ctx, c.cfg.LoadCeiling)
	defer stop()

	// Buffered so a load finishing after the ceiling does not block.
	results := make(chan loadResult, 1)
	go func() {
		deals, err := c.source.Load(reqCtx)
		results <- loadResult{deals: deals, err: err}
	}()

	select {
	case res := <-results:
		if res.err != nil {
			return nil, source.Normalize(name, res.err)
		}
		return res.deals, nil
	case <-ceilingCtx.Done():
		if errors.Is(ceilingCtx.Err(), context.DeadlineExceeded) {
			return nil, source.Timeout(name)
		}
		return nil, source.Normalize(name, ceilingCtx.Err())
	}
}

// Finish applies the outcome of the load identified by ticket. Only the
// first outcome for the current ticket takes effect; anything later returns
// the current phase untouched.
func (c *Controller) Finish(ticket Ticket, deals []model.Deal, err error) Phase {
	if ticket != c.ticket || c.phase != PhaseLoading {
		c.logger.Debug("discarding stale load result",
			"ticket", ticket,
			"current", c.ticket,
			"phase", c.phase.String())
		return c.phase
	}

	c.step("loading", func() error { return c.renderer.RenderLoading(false) })

	if err != nil {
		c.phase = PhaseFailed
		c.loadErr = source.Normalize(c.source.Name(), err)
		c.logger.Warn("catalog load failed",
			"source", c.source.Name(),
			"kind", string(c.loadErr.Kind),
			"error", c.loadErr.Err)
		c.step("failure", func() error { return c.renderer.RenderFailure(c.loadErr) })
		return c.phase
	}

	c.phase = PhaseReady
	c.state = catalog.NewViewState(deals, c.cfg.Catalog)
	c.logger.Info("catalog loaded",
		"source", c.source.Name(),
		"deals", len(c.state.AllDeals),
		"popular", len(c.state.PopularDeals))

	if c.cfg.Sections.Featured {
		c.step("featured", func() error { return c.renderer.RenderFeatured(c.state.Featured()) })
	}
	c.step("main", c.renderMain)
	if c.cfg.Sections.Popular {
		c.step("popular", c.renderPopular)
	}
	return c.phase
}

// Reload discards the current catalog and loads again.
func (c *Controller) Reload(ctx context.Context) Phase {
	return c.Load(ctx)
}

// Dispatch applies a user event. Events are ignored unless the session is
// ready; the return value reports whether the event changed anything.
func (c *Controller) Dispatch(ev Event) bool {
	if c.phase != PhaseReady {
		return false
	}

	switch e := ev.(type) {
	case SortEvent:
		c.state = c.state.WithSort(e.Key)
		c.step("main", c.renderMain)
		return true
	case SearchEvent:
		c.state = c.state.WithSearch(e.Term)
		c.step("main", c.renderMain)
		return true
	case PageEvent:
		next, ok := c.state.WithPage(e.Page)
		if !ok {
			return false
		}
		c.state = next
		c.step("main", c.renderMain)
		return true
	case PopularPageEvent:
		if !c.cfg.Sections.Popular {
			return false
		}
		next, ok := c.state.WithPopularPage(e.Page)
		if !ok {
			return false
		}
		c.state = next
		c.step("popular", c.renderPopular)
		return true
	default:
		c.logger.Debug("ignoring unknown event", "event", fmt.Sprintf("%T", ev))
		return false
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// State returns the current view state.
func (c *Controller) State() catalog.ViewState {
	return c.state
}

// Config returns the controller configuration with defaults applied.
func (c *Controller) Config() Config {
	return c.cfg
}

// LoadError returns the failure of the last load, or nil.
func (c *Controller) LoadError() *source.LoadError {
	return c.loadErr
}

// SetupErrors returns the render steps that failed since the last Begin,
// one entry per step holding its most recent failure.
func (c *Controller) SetupErrors() []error {
	return c.setupErr
}

// MainView returns the current main table view.
func (c *Controller) MainView() MainView {
	return MainView{
		SearchTerm: c.state.FilterTerm,
		Page:       c.state.MainPage(),
		Pagination: c.state.Pagination(),
		Sort:       c.state.Sort,
		NoResults:  c.state.NoResults(),
	}
}

// PopularView returns the current popular table view.
func (c *Controller) PopularView() PopularView {
	return PopularView{Page: c.state.PopularPageView()}
}

func (c *Controller) renderMain() error {
	return c.renderer.RenderMain(c.MainView())
}

func (c *Controller) renderPopular() error {
	return c.renderer.RenderPopular(c.PopularView())
}

// step runs one render step so that neither an error nor a panic in it can
// keep the remaining steps from running.
func (c *Controller) step(name string, fn func() error) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return fn()
	}()
	if err == nil {
		return
	}

	err = fmt.Errorf("render %s: %w", name, err)
	if i, seen := c.setupIdx[name]; seen {
		c.setupErr[i] = err
	} else {
		if c.setupIdx == nil {
			c.setupIdx = make(map[string]int)
		}
		c.setupIdx[name] = len(c.setupErr)
		c.setupErr = append(c.setupErr, err)
	}
	if errors.Is(err, ErrRenderTargetMissing) {
		c.logger.Debug("render target missing", "step", name)
		return
	}
	c.logger.Warn("render step failed", "step", name, "error", err)
}
