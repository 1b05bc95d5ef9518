package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/dealscope/internal/model"
	"github.com/Veraticus/dealscope/internal/source"
)

type stubSource struct {
	load func(ctx context.Context) ([]model.Deal, error)
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Load(ctx context.Context) ([]model.Deal, error) {
	return s.load(ctx)
}

func staticSource(deals []model.Deal) *stubSource {
	return &stubSource{load: func(context.Context) ([]model.Deal, error) { return deals, nil }}
}

type recordingRenderer struct {
	failure  *source.LoadError
	errs     map[string]error
	main     []MainView
	popular  []PopularView
	featured [][]model.Deal
	loading  []bool
	panicOn  string
}

func (r *recordingRenderer) fail(region string) error {
	if r.panicOn == region {
		panic("boom")
	}
	return r.errs[region]
}

func (r *recordingRenderer) RenderLoading(loading bool) error {
	r.loading = append(r.loading, loading)
	return r.fail("loading")
}

func (r *recordingRenderer) RenderFailure(err *source.LoadError) error {
	r.failure = err
	return r.fail("failure")
}

func (r *recordingRenderer) RenderFeatured(deals []model.Deal) error {
	if err := r.fail("featured"); err != nil {
		return err
	}
	r.featured = append(r.featured, deals)
	return nil
}

func (r *recordingRenderer) RenderMain(view MainView) error {
	if err := r.fail("main"); err != nil {
		return err
	}
	r.main = append(r.main, view)
	return nil
}

func (r *recordingRenderer) RenderPopular(view PopularView) error {
	if err := r.fail("popular"); err != nil {
		return err
	}
	r.popular = append(r.popular, view)
	return nil
}

func (r *recordingRenderer) lastMain(t *testing.T) MainView {
	t.Helper()
	require.NotEmpty(t, r.main, "main table never rendered")
	return r.main[len(r.main)-1]
}

func deals(n int) []model.Deal {
	out := make([]model.Deal, n)
	for i := range out {
		out[i] = model.Deal{
			Title:    fmt.Sprintf("Game %03d", i+1),
			Platform: "PC",
			Store:    "Steam",
			Price:    float64(i + 1),
			OldPrice: float64(i+1) * 2,
			Featured: i < 3,
		}
	}
	return out
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestController(src source.Source, r *recordingRenderer, cfg Config) *Controller {
	return NewController(src, r, cfg, WithLogger(quietLogger()))
}

func TestController_LoadSuccess(t *testing.T) {
	r := &recordingRenderer{}
	c := newTestController(staticSource(deals(45)), r, DefaultConfig())

	phase := c.Load(context.Background())

	require.Equal(t, PhaseReady, phase)
	assert.Nil(t, c.LoadError())
	assert.Empty(t, c.SetupErrors())
	assert.Equal(t, []bool{true, false}, r.loading)
	require.Len(t, r.featured, 1)
	assert.Len(t, r.featured[0], 3)
	require.Len(t, r.popular, 1)

	view := r.lastMain(t)
	assert.Equal(t, 1, view.Page.Page)
	assert.Equal(t, 3, view.Pagination.PageCount)
	assert.Len(t, view.Page.Items, 20)
	assert.Equal(t, model.DefaultSortSpec(), view.Sort)
	assert.False(t, view.NoResults)
}

func TestController_SectionsDisabled(t *testing.T) {
	r := &recordingRenderer{}
	cfg := DefaultConfig()
	cfg.Sections = Sections{}
	c := newTestController(staticSource(deals(5)), r, cfg)

	require.Equal(t, PhaseReady, c.Load(context.Background()))
	assert.Empty(t, r.featured)
	assert.Empty(t, r.popular)
	assert.Len(t, r.main, 1)
	assert.False(t, c.Dispatch(PopularPageEvent{Page: 1}))
}

func TestController_LoadFailureKinds(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want source.FailureKind
	}{
		{name: "network", err: errors.New("connection refused"), want: source.FailureNetwork},
		{name: "http", err: &source.HTTPStatusError{StatusCode: 404, Status: "404 Not Found"}, want: source.FailureHTTP},
		{name: "parse", err: &source.ParseError{Err: errors.New("unexpected EOF")}, want: source.FailureParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recordingRenderer{}
			src := &stubSource{load: func(context.Context) ([]model.Deal, error) { return nil, tt.err }}
			c := newTestController(src, r, DefaultConfig())

			require.Equal(t, PhaseFailed, c.Load(context.Background()))
			require.NotNil(t, c.LoadError())
			assert.Equal(t, tt.want, c.LoadError().Kind)
			assert.Same(t, c.LoadError(), r.failure)
			assert.Equal(t, []bool{true, false}, r.loading)
			assert.Empty(t, r.main)
			assert.Empty(t, c.State().AllDeals)
		})
	}
}

func TestController_RequestTimeout(t *testing.T) {
	r := &recordingRenderer{}
	src := &stubSource{load: func(ctx context.Context) ([]model.Deal, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	cfg := DefaultConfig()
	cfg.RequestTimeout = 10 * time.Millisecond
	cfg.LoadCeiling = time.Second
	c := newTestController(src, r, cfg)

	require.Equal(t, PhaseFailed, c.Load(context.Background()))
	assert.Equal(t, source.FailureTimeout, c.LoadError().Kind)
	assert.Empty(t, c.State().AllDeals)
	assert.Empty(t, r.main)
	assert.Empty(t, r.featured)
}

func TestController_CeilingWithUnresponsiveSource(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	r := &recordingRenderer{}
	src := &stubSource{load: func(context.Context) ([]model.Deal, error) {
		<-release
		return deals(3), nil
	}}
	cfg := DefaultConfig()
	cfg.RequestTimeout = time.Second
	cfg.LoadCeiling = 20 * time.Millisecond
	c := newTestController(src, r, cfg)

	start := time.Now()
	phase := c.Load(context.Background())

	require.Equal(t, PhaseFailed, phase)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, source.FailureTimeout, c.LoadError().Kind)
	assert.Equal(t, []bool{true, false}, r.loading)
	assert.Empty(t, r.main)
}

func TestController_LateResultIsIgnored(t *testing.T) {
	r := &recordingRenderer{}
	c := newTestController(staticSource(deals(3)), r, DefaultConfig())

	ticket := c.Begin()
	require.Equal(t, PhaseFailed, c.Finish(ticket, nil, source.Timeout("stub")))

	// The real result shows up after the ceiling already fired.
	assert.Equal(t, PhaseFailed, c.Finish(ticket, deals(3), nil))
	assert.Empty(t, c.State().AllDeals)
	assert.Empty(t, r.main)
	assert.Equal(t, []bool{true, false}, r.loading)
}

func TestController_StaleTicketAfterReload(t *testing.T) {
	r := &recordingRenderer{}
	c := newTestController(staticSource(deals(3)), r, DefaultConfig())

	first := c.Begin()
	second := c.Begin()

	assert.Equal(t, PhaseLoading, c.Finish(first, deals(1), nil))
	assert.Equal(t, PhaseReady, c.Finish(second, deals(3), nil))
	assert.Len(t, c.State().AllDeals, 3)
}

func TestController_DispatchIgnoredUnlessReady(t *testing.T) {
	r := &recordingRenderer{}
	src := &stubSource{load: func(context.Context) ([]model.Deal, error) {
		return nil, errors.New("offline")
	}}
	c := newTestController(src, r, DefaultConfig())

	assert.False(t, c.Dispatch(SortEvent{Key: model.SortByPrice}), "loading")

	c.Load(context.Background())
	require.Equal(t, PhaseFailed, c.Phase())
	assert.False(t, c.Dispatch(SearchEvent{Term: "game"}), "failed")
	assert.Empty(t, r.main)
}

func TestController_SortEvents(t *testing.T) {
	r := &recordingRenderer{}
	c := newTestController(staticSource(deals(30)), r, DefaultConfig())
	require.Equal(t, PhaseReady, c.Load(context.Background()))
	require.True(t, c.Dispatch(PageEvent{Page: 2}))

	require.True(t, c.Dispatch(SortEvent{Key: model.SortByPrice}))
	view := r.lastMain(t)
	assert.Equal(t, model.SortSpec{Key: model.SortByPrice, Direction: model.Ascending}, view.Sort)
	assert.Equal(t, 1, view.Page.Page, "sorting resets the page")
	assert.Equal(t, "Game 001", view.Page.Items[0].Title)

	require.True(t, c.Dispatch(SortEvent{Key: model.SortByPrice}))
	view = r.lastMain(t)
	assert.Equal(t, model.Descending, view.Sort.Direction)
	assert.Equal(t, "Game 030", view.Page.Items[0].Title)
}

func TestController_SearchNoResultsAndClear(t *testing.T) {
	r := &recordingRenderer{}
	c := newTestController(staticSource(deals(25)), r, DefaultConfig())
	require.Equal(t, PhaseReady, c.Load(context.Background()))

	require.True(t, c.Dispatch(SearchEvent{Term: "zelda"}))
	view := r.lastMain(t)
	assert.True(t, view.NoResults)
	assert.Empty(t, view.Page.Items)
	assert.Empty(t, view.Pagination.Window)

	require.True(t, c.Dispatch(SearchEvent{Term: "  "}))
	view = r.lastMain(t)
	assert.False(t, view.NoResults)
	assert.Len(t, view.Page.Items, 20)
	assert.Equal(t, 2, view.Pagination.PageCount)
}

func TestController_PageEvents(t *testing.T) {
	r := &recordingRenderer{}
	c := newTestController(staticSource(deals(45)), r, DefaultConfig())
	require.Equal(t, PhaseReady, c.Load(context.Background()))
	rendered := len(r.main)

	assert.True(t, c.Dispatch(PageEvent{Page: 3}))
	assert.Equal(t, 3, r.lastMain(t).Page.Page)
	assert.Len(t, r.lastMain(t).Page.Items, 5)

	assert.False(t, c.Dispatch(PageEvent{Page: 0}))
	assert.False(t, c.Dispatch(PageEvent{Page: 4}))
	assert.Len(t, r.main, rendered+1, "out of range pages do not re-render")
	assert.Equal(t, 3, c.State().CurrentPage)
}

func TestController_PopularPageEvents(t *testing.T) {
	r := &recordingRenderer{}
	c := newTestController(staticSource(deals(15)), r, DefaultConfig())
	require.Equal(t, PhaseReady, c.Load(context.Background()))

	// None of the generated titles are curated, so the fallback keeps 10.
	assert.Len(t, c.State().PopularDeals, 10)
	assert.False(t, c.Dispatch(PopularPageEvent{Page: 2}))
	assert.True(t, c.Dispatch(PopularPageEvent{Page: 1}))
	assert.Len(t, r.popular, 2)
}

func TestController_RenderStepsAreIsolated(t *testing.T) {
	r := &recordingRenderer{
		errs:    map[string]error{"featured": ErrRenderTargetMissing},
		panicOn: "popular",
	}
	c := newTestController(staticSource(deals(5)), r, DefaultConfig())

	require.Equal(t, PhaseReady, c.Load(context.Background()))
	assert.Len(t, r.main, 1, "main table still rendered")
	require.Len(t, c.SetupErrors(), 2)
	assert.ErrorIs(t, c.SetupErrors()[0], ErrRenderTargetMissing)
	assert.Contains(t, c.SetupErrors()[1].Error(), "panic")

	assert.True(t, c.Dispatch(SortEvent{Key: model.SortByStore}))
}

func TestController_SetupErrorsKeepOneEntryPerStep(t *testing.T) {
	r := &recordingRenderer{errs: map[string]error{"main": ErrRenderTargetMissing}}
	c := newTestController(staticSource(deals(45)), r, DefaultConfig())
	require.Equal(t, PhaseReady, c.Load(context.Background()))
	require.Len(t, c.SetupErrors(), 1)

	for range 10 {
		c.Dispatch(SortEvent{Key: model.SortByPrice})
		c.Dispatch(SearchEvent{Term: "game"})
		c.Dispatch(PageEvent{Page: 2})
	}
	require.Len(t, c.SetupErrors(), 1)
	assert.ErrorIs(t, c.SetupErrors()[0], ErrRenderTargetMissing)

	r.errs["main"] = errors.New("layout overflow")
	c.Dispatch(SortEvent{Key: model.SortByStore})
	require.Len(t, c.SetupErrors(), 1)
	assert.Contains(t, c.SetupErrors()[0].Error(), "layout overflow", "latest failure wins")

	c.Reload(context.Background())
	require.Len(t, c.SetupErrors(), 1, "reload starts a fresh record")
}

func TestController_ReloadReplacesCatalog(t *testing.T) {
	calls := 0
	src := &stubSource{load: func(context.Context) ([]model.Deal, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("offline")
		}
		return deals(4), nil
	}}
	r := &recordingRenderer{}
	c := newTestController(src, r, DefaultConfig())

	require.Equal(t, PhaseFailed, c.Load(context.Background()))
	require.Equal(t, PhaseReady, c.Reload(context.Background()))
	assert.Nil(t, c.LoadError())
	assert.Len(t, c.State().AllDeals, 4)
	assert.Equal(t, []bool{true, false, true, false}, r.loading)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "ready", PhaseReady.String())
	assert.Equal(t, "failed", PhaseFailed.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}
