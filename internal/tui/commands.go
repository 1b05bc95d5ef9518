package tui

import (
	"github.com/Veraticus/dealscope/internal/app"
	"github.com/Veraticus/dealscope/internal/catalog"
	"github.com/Veraticus/dealscope/internal/model"
)

// eventBuilder resolves a paced gesture against the state at the moment it
// applies, so repeated page keys inside one delay each move a page.
type eventBuilder func(vs catalog.ViewState) (app.Event, bool)

func sortTo(key model.SortKey) eventBuilder {
	return func(catalog.ViewState) (app.Event, bool) {
		return app.SortEvent{Key: key}, true
	}
}

func pageBy(delta int) eventBuilder {
	return func(vs catalog.ViewState) (app.Event, bool) {
		target := vs.CurrentPage + delta
		if target < 1 || target > vs.PageCount() {
			return nil, false
		}
		return app.PageEvent{Page: target}, true
	}
}

func pageTo(target func(vs catalog.ViewState) int) eventBuilder {
	return func(vs catalog.ViewState) (app.Event, bool) {
		page := target(vs)
		if page < 1 || page == vs.CurrentPage {
			return nil, false
		}
		return app.PageEvent{Page: page}, true
	}
}

func popularBy(delta int) eventBuilder {
	return func(vs catalog.ViewState) (app.Event, bool) {
		target := vs.PopularPage + delta
		if target < 1 || target > vs.PopularPageView().PageCount {
			return nil, false
		}
		return app.PopularPageEvent{Page: target}, true
	}
}
