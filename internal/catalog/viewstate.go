package catalog

import (
	"strings"

	"github.com/Veraticus/dealscope/internal/model"
)

// Options sizes the views derived by a ViewState.
type Options struct {
	Curation        Curation
	PageSize        int
	PopularPageSize int
	FeaturedLimit   int
}

// DefaultOptions returns the stock page sizes and curation.
func DefaultOptions() Options {
	return Options{
		PageSize:        MainPageSize,
		PopularPageSize: PopularPageSize,
		FeaturedLimit:   FeaturedLimit,
		Curation:        DefaultCuration(),
	}
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = MainPageSize
	}
	if o.PopularPageSize <= 0 {
		o.PopularPageSize = PopularPageSize
	}
	if o.FeaturedLimit <= 0 {
		o.FeaturedLimit = FeaturedLimit
	}
	return o
}

// ViewState is the whole browsing state of one session. Transitions return a
// new value; AllDeals is never modified after construction.
type ViewState struct {
	FilterTerm   string
	AllDeals     []model.Deal
	Filtered     []model.Deal
	PopularDeals []model.Deal
	Sort         model.SortSpec
	opts         Options
	CurrentPage  int
	PopularPage  int
}

// NewViewState builds the initial state for a freshly loaded catalog:
// no search term, title ascending, first page of both tables.
func NewViewState(deals []model.Deal, opts Options) ViewState {
	all := make([]model.Deal, len(deals))
	copy(all, deals)

	opts = opts.withDefaults()
	vs := ViewState{
		AllDeals:     all,
		Sort:         model.DefaultSortSpec(),
		CurrentPage:  1,
		PopularPage:  1,
		PopularDeals: SelectPopular(all, opts.Curation),
		opts:         opts,
	}
	vs.Filtered = vs.derive()
	return vs
}

// derive filters then sorts the full catalog.
func (vs ViewState) derive() []model.Deal {
	return Sort(Filter(vs.AllDeals, vs.FilterTerm), vs.Sort)
}

// WithSort applies a column activation: the active column toggles direction,
// any other column becomes active ascending. The page resets to 1.
func (vs ViewState) WithSort(key model.SortKey) ViewState {
	vs.Sort = vs.Sort.Next(key)
	vs.Filtered = vs.derive()
	vs.CurrentPage = 1
	return vs
}

// WithSearch replaces the search term, re-derives the table and resets the
// page to 1.
func (vs ViewState) WithSearch(term string) ViewState {
	vs.FilterTerm = strings.TrimSpace(term)
	vs.Filtered = vs.derive()
	vs.CurrentPage = 1
	return vs
}

// WithPage moves the main table to page n. Pages outside 1..PageCount are
// rejected and the state is returned unchanged with ok=false.
func (vs ViewState) WithPage(n int) (ViewState, bool) {
	if n < 1 || n > vs.PageCount() {
		return vs, false
	}
	vs.CurrentPage = n
	return vs, true
}

// WithPopularPage moves the popular table to page n, bounds checked the same
// way as WithPage.
func (vs ViewState) WithPopularPage(n int) (ViewState, bool) {
	if n < 1 || n > PageCount(len(vs.PopularDeals), vs.opts.PopularPageSize) {
		return vs, false
	}
	vs.PopularPage = n
	return vs, true
}

// PageCount returns the number of pages in the main table.
func (vs ViewState) PageCount() int {
	return PageCount(len(vs.Filtered), vs.opts.PageSize)
}

// MainPage returns the visible slice of the main table.
func (vs ViewState) MainPage() Page {
	return Paginate(vs.Filtered, vs.CurrentPage, vs.opts.PageSize)
}

// PopularPageView returns the visible slice of the popular table.
func (vs ViewState) PopularPageView() Page {
	return Paginate(vs.PopularDeals, vs.PopularPage, vs.opts.PopularPageSize)
}

// Featured returns the featured strip.
func (vs ViewState) Featured() []model.Deal {
	return Featured(vs.AllDeals, vs.opts.FeaturedLimit)
}

// Pagination describes the page links of the main table.
type Pagination struct {
	Window      []PageLink
	CurrentPage int
	PageCount   int
}

// Pagination returns the link window for the current page.
func (vs ViewState) Pagination() Pagination {
	count := vs.PageCount()
	return Pagination{
		CurrentPage: vs.CurrentPage,
		PageCount:   count,
		Window:      Window(vs.CurrentPage, count),
	}
}

// NoResults reports an active search that matched nothing.
func (vs ViewState) NoResults() bool {
	return len(vs.Filtered) == 0 && NormalizeTerm(vs.FilterTerm) != ""
}
