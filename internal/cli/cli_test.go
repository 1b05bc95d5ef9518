package cli

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/Veraticus/dealscope/internal/model"
	"github.com/stretchr/testify/assert"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func strip(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func TestRenderDealList(t *testing.T) {
	deals := []model.Deal{
		{Title: "Hades", Store: "Steam", Price: 12.49, OldPrice: 24.99},
		{Title: "Celeste", Store: "GOG", Price: 4.99, OldPrice: 19.99},
	}

	out := strip(RenderDealList("Popular games", deals))
	assert.Contains(t, out, "Popular games")
	assert.Contains(t, out, " 1. ")
	assert.Contains(t, out, "Hades")
	assert.Contains(t, out, "$4.99")
	assert.Contains(t, out, "-75%")
	assert.Less(t, strings.Index(out, "Hades"), strings.Index(out, "Celeste"))

	assert.Contains(t, strip(RenderDealList("Popular games", nil)), "No deals")
}

func TestRenderFetchSummary(t *testing.T) {
	best := model.Deal{Title: "Celeste", Price: 4.99, OldPrice: 19.99}
	out := strip(RenderFetchSummary(FetchSummary{
		Best:            &best,
		Output:          "deals.json",
		Fetched:         120,
		Rejected:        20,
		Kept:            90,
		AverageDiscount: 61.25,
	}))

	assert.Contains(t, out, "Listings fetched: 120")
	assert.Contains(t, out, "Deals kept: 90")
	assert.Contains(t, out, "Average discount: 61.2%")
	assert.Contains(t, out, "Best deal: Celeste, $4.99 (was $19.99, -75%)")
	assert.Contains(t, out, "Written to: deals.json")
	assert.NotContains(t, out, "Catalog:")
}

func TestPageProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewPageProgress(&buf, 5)
	p.Update(1, 5)
	p.Update(3, 5)
	p.Update(2, 5)
	assert.Equal(t, 3, p.last)
	p.Finish()
	assert.NotEmpty(t, buf.String())
}
