package catalog

import (
	"testing"

	"github.com/Veraticus/dealscope/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSelectPopular(t *testing.T) {
	curation := Curation{
		Names:           []string{"Resident Evil 4", "Resident Evil Village", "Elden Ring", "Celeste", "Hollow Knight"},
		VariantKeywords: DefaultVariantKeywords(),
	}

	got := SelectPopular(testDeals(), curation)

	// Ranked by discount, Gold Edition excluded even though it names a curated game.
	assert.Equal(t, []string{"Celeste", "Hollow Knight", "Resident Evil 4", "Elden Ring"}, titles(got))
}

func TestSelectPopular_Separators(t *testing.T) {
	deals := []model.Deal{
		{Title: "Resident Evil 4", Price: 10, OldPrice: 40},
		{Title: "Resident Evil 4: Separate Ways", Price: 5, OldPrice: 10},
		{Title: "Resident Evil 4 - Remake", Price: 30, OldPrice: 40},
		{Title: "Resident Evil 4 Remake", Price: 20, OldPrice: 40},
		{Title: "Resident Evil 45", Price: 1, OldPrice: 40},
		{Title: "Resident Evil Village", Price: 1, OldPrice: 40},
	}
	curation := Curation{Names: []string{"resident evil 4"}}

	got := SelectPopular(deals, curation)
	assert.Equal(t, []string{
		"Resident Evil 4",
		"Resident Evil 4: Separate Ways",
		"Resident Evil 4 Remake",
		"Resident Evil 4 - Remake",
	}, titles(got))
}

func TestSelectPopular_VariantKeywordsWin(t *testing.T) {
	deals := []model.Deal{
		{Title: "Elden Ring Deluxe Edition", Price: 10, OldPrice: 60},
		{Title: "Elden Ring: Shadow of the Erdtree DLC", Price: 10, OldPrice: 40},
		{Title: "Elden Ring", Price: 40, OldPrice: 60},
	}
	got := SelectPopular(deals, DefaultCuration())
	assert.Equal(t, []string{"Elden Ring"}, titles(got))
}

func TestSelectPopular_FallsBackToTopDiscounts(t *testing.T) {
	deals := numberedDeals(30)
	got := SelectPopular(deals, Curation{Names: []string{"nothing matches this"}})

	assert.Len(t, got, DefaultFallbackSize)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Discount(), got[i].Discount())
	}
	assert.Equal(t, TopByDiscount(deals, 10), got)
}

func TestSelectPopular_FallbackSizeIsConfigurable(t *testing.T) {
	got := SelectPopular(numberedDeals(30), Curation{FallbackSize: 3})
	assert.Len(t, got, 3)
}

func TestSelectPopular_EmptyCatalog(t *testing.T) {
	assert.Empty(t, SelectPopular(nil, DefaultCuration()))
}

func TestTopByDiscount_FewerThanN(t *testing.T) {
	got := TopByDiscount(testDeals(), 50)
	assert.Len(t, got, len(testDeals()))
	assert.Equal(t, "Bastion", got[0].Title)
}

func TestFeatured(t *testing.T) {
	got := Featured(testDeals(), FeaturedLimit)
	assert.Equal(t, []string{"Hollow Knight", "Resident Evil 4", "Bastion"}, titles(got))

	limited := Featured(testDeals(), 2)
	assert.Equal(t, []string{"Hollow Knight", "Resident Evil 4"}, titles(limited))
}

func TestFeatured_CapsAtTwelve(t *testing.T) {
	deals := numberedDeals(20)
	for i := range deals {
		deals[i].Featured = true
	}
	got := Featured(deals, 0)
	assert.Len(t, got, FeaturedLimit)
	assert.Equal(t, "Game 001", got[0].Title)
}

func TestFeatured_LimitAboveCapIsClamped(t *testing.T) {
	deals := numberedDeals(20)
	for i := range deals {
		deals[i].Featured = true
	}
	assert.Len(t, Featured(deals, 50), FeaturedLimit)
}
