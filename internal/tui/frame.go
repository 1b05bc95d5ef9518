package tui

import (
	"github.com/Veraticus/dealscope/internal/app"
	"github.com/Veraticus/dealscope/internal/model"
	"github.com/Veraticus/dealscope/internal/source"
)

// region is a part of the screen the controller can draw into.
type region int

const (
	regionFeatured region = iota
	regionMain
	regionPopular
)

func (r region) String() string {
	switch r {
	case regionFeatured:
		return "featured"
	case regionMain:
		return "main"
	case regionPopular:
		return "popular"
	default:
		return "unknown"
	}
}

// frame is the app.Renderer behind the TUI. The controller pushes views
// into it; the model copies them into widgets and draws them. A region that
// does not fit the terminal is unmounted and refuses renders.
type frame struct {
	failure  *source.LoadError
	mounted  map[region]bool
	featured []model.Deal
	popular  app.PopularView
	main     app.MainView
	// rev counts renders per region so the model only resyncs what changed.
	rev     map[region]int
	loading bool
}

var _ app.Renderer = (*frame)(nil)

func newFrame() *frame {
	return &frame{
		mounted: map[region]bool{
			regionFeatured: true,
			regionMain:     true,
			regionPopular:  true,
		},
		rev: make(map[region]int),
	}
}

func (f *frame) RenderLoading(loading bool) error {
	f.loading = loading
	if loading {
		f.failure = nil
	}
	return nil
}

func (f *frame) RenderFailure(err *source.LoadError) error {
	f.failure = err
	return nil
}

func (f *frame) RenderFeatured(deals []model.Deal) error {
	if !f.mounted[regionFeatured] {
		return app.ErrRenderTargetMissing
	}
	f.featured = deals
	f.rev[regionFeatured]++
	return nil
}

func (f *frame) RenderMain(view app.MainView) error {
	if !f.mounted[regionMain] {
		return app.ErrRenderTargetMissing
	}
	f.main = view
	f.rev[regionMain]++
	return nil
}

func (f *frame) RenderPopular(view app.PopularView) error {
	if !f.mounted[regionPopular] {
		return app.ErrRenderTargetMissing
	}
	f.popular = view
	f.rev[regionPopular]++
	return nil
}

// mount updates which regions exist and reports the ones that just appeared.
func (f *frame) mount(want map[region]bool) []region {
	var appeared []region
	for _, r := range []region{regionFeatured, regionMain, regionPopular} {
		if want[r] && !f.mounted[r] {
			appeared = append(appeared, r)
		}
		f.mounted[r] = want[r]
	}
	return appeared
}
