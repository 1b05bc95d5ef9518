package catalog

import (
	"testing"

	"github.com/Veraticus/dealscope/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewState(t *testing.T) {
	vs := NewViewState(numberedDeals(45), DefaultOptions())

	assert.Equal(t, model.DefaultSortSpec(), vs.Sort)
	assert.Equal(t, 1, vs.CurrentPage)
	assert.Equal(t, 1, vs.PopularPage)
	assert.Empty(t, vs.FilterTerm)
	assert.Len(t, vs.Filtered, 45)
	assert.Equal(t, 3, vs.PageCount())
	assert.Len(t, vs.MainPage().Items, 20)
	assert.False(t, vs.NoResults())
}

func TestViewState_DoesNotShareInput(t *testing.T) {
	deals := testDeals()
	vs := NewViewState(deals, DefaultOptions())
	deals[0].Title = "mutated"
	assert.NotEqual(t, "mutated", vs.AllDeals[0].Title)
}

func TestViewState_SortResetsPage(t *testing.T) {
	vs := NewViewState(numberedDeals(45), DefaultOptions())
	vs, ok := vs.WithPage(3)
	require.True(t, ok)

	vs = vs.WithSort(model.SortByTitle)
	assert.Equal(t, model.SortSpec{Key: model.SortByTitle, Direction: model.Descending}, vs.Sort)
	assert.Equal(t, 1, vs.CurrentPage)
	assert.Equal(t, "Game 045", vs.MainPage().Items[0].Title)

	vs = vs.WithSort(model.SortByPrice)
	assert.Equal(t, model.Ascending, vs.Sort.Direction)
	assert.Equal(t, model.SortByPrice, vs.Sort.Key)
}

func TestViewState_SortTogglesBackToOriginal(t *testing.T) {
	vs := NewViewState(testDeals(), DefaultOptions())
	original := titles(vs.Filtered)

	vs = vs.WithSort(model.SortByTitle)
	vs = vs.WithSort(model.SortByTitle)
	assert.Equal(t, original, titles(vs.Filtered))
}

func TestViewState_SearchNoResultsAndClear(t *testing.T) {
	vs := NewViewState(testDeals(), DefaultOptions())
	all := titles(vs.Filtered)

	vs, _ = vs.WithPage(1)
	vs = vs.WithSearch("zelda")
	assert.Empty(t, vs.Filtered)
	assert.True(t, vs.NoResults())
	assert.Equal(t, 0, vs.PageCount())
	assert.Empty(t, vs.MainPage().Items)
	assert.Empty(t, vs.Pagination().Window)

	vs = vs.WithSearch("")
	assert.False(t, vs.NoResults())
	assert.Equal(t, all, titles(vs.Filtered))
}

func TestViewState_SearchKeepsSort(t *testing.T) {
	vs := NewViewState(testDeals(), DefaultOptions())
	vs = vs.WithSort(model.SortByDiscount)
	vs = vs.WithSort(model.SortByDiscount)

	vs = vs.WithSearch("resident")
	assert.Equal(t, []string{"Resident Evil Village Gold Edition", "Resident Evil 4"}, titles(vs.Filtered))
	assert.Equal(t, 1, vs.CurrentPage)
}

func TestViewState_PageBounds(t *testing.T) {
	vs := NewViewState(numberedDeals(45), DefaultOptions())

	_, ok := vs.WithPage(0)
	assert.False(t, ok)
	_, ok = vs.WithPage(4)
	assert.False(t, ok)

	next, ok := vs.WithPage(3)
	require.True(t, ok)
	assert.Equal(t, 3, next.CurrentPage)
	assert.Len(t, next.MainPage().Items, 5)
	assert.Equal(t, 1, vs.CurrentPage, "original value is not modified")
}

func TestViewState_PopularPagingIsIndependent(t *testing.T) {
	opts := DefaultOptions()
	opts.Curation = Curation{FallbackSize: 25}
	vs := NewViewState(numberedDeals(45), opts)
	require.Len(t, vs.PopularDeals, 25)

	vs, ok := vs.WithPopularPage(3)
	require.True(t, ok)
	assert.Equal(t, 1, vs.CurrentPage)
	assert.Len(t, vs.PopularPageView().Items, 5)
	assert.Equal(t, "Page 3 of 3", vs.PopularPageView().Label())

	_, ok = vs.WithPopularPage(4)
	assert.False(t, ok)

	vs = vs.WithSearch("game 01")
	assert.Equal(t, 3, vs.PopularPage, "search does not touch the popular table")
}

func TestViewState_Pagination(t *testing.T) {
	vs := NewViewState(numberedDeals(200), DefaultOptions())
	vs, _ = vs.WithPage(10)

	p := vs.Pagination()
	assert.Equal(t, 10, p.CurrentPage)
	assert.Equal(t, 10, p.PageCount)
	assert.Equal(t, []int{1, 0, 6, 7, 8, 9, 10}, render(p.Window))
}

func TestViewState_FeaturedIgnoresSearch(t *testing.T) {
	vs := NewViewState(testDeals(), DefaultOptions())
	vs = vs.WithSearch("celeste")
	assert.Equal(t, []string{"Hollow Knight", "Resident Evil 4", "Bastion"}, titles(vs.Featured()))
}
