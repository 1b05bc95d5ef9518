package app

import (
	"errors"

	"github.com/Veraticus/dealscope/internal/catalog"
	"github.com/Veraticus/dealscope/internal/model"
	"github.com/Veraticus/dealscope/internal/source"
)

// ErrRenderTargetMissing is returned by a Renderer for a region it has no
// place to draw.
var ErrRenderTargetMissing = errors.New("render target missing")

// MainView is everything the deals table needs to draw itself.
type MainView struct {
	SearchTerm string
	Page       catalog.Page
	Pagination catalog.Pagination
	Sort       model.SortSpec
	NoResults  bool
}

// PopularView is the visible page of the popular games table.
type PopularView struct {
	Page catalog.Page
}

// Renderer draws the regions of the browser. Each method is independent; a
// failure in one must not stop the others from being drawn.
type Renderer interface {
	RenderLoading(loading bool) error
	RenderFailure(err *source.LoadError) error
	RenderFeatured(deals []model.Deal) error
	RenderMain(view MainView) error
	RenderPopular(view PopularView) error
}
