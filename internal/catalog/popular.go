package catalog

import (
	"sort"
	"strings"

	"github.com/Veraticus/dealscope/internal/model"
	"github.com/samber/lo"
)

// DefaultFallbackSize is how many top discounts stand in for the popular
// list when no curated title matches.
const DefaultFallbackSize = 10

// Curation is the data the popular games ranking matches against.
type Curation struct {
	// Names are base-game titles, matched case-insensitively.
	Names []string
	// VariantKeywords mark non-base-game listings (DLC, bundles, editions).
	VariantKeywords []string
	FallbackSize    int
}

// titleSeparators may follow a curated name in a longer title.
var titleSeparators = []string{" ", ":", " -"}

// SelectPopular ranks the deals whose titles name a curated base game,
// highest discount first. When nothing matches, the best discounts of the
// whole catalog are returned instead so the list is never empty while deals
// exist.
func SelectPopular(deals []model.Deal, c Curation) []model.Deal {
	names := lo.Map(c.Names, func(n string, _ int) string { return NormalizeTerm(n) })
	names = lo.Compact(names)
	keywords := lo.Compact(lo.Map(c.VariantKeywords, func(k string, _ int) string {
		return NormalizeTerm(k)
	}))

	popular := lo.Filter(deals, func(d model.Deal, _ int) bool {
		title := strings.ToLower(d.Title)
		if isVariant(title, keywords) {
			return false
		}
		return matchesCurated(title, names)
	})

	if len(popular) == 0 {
		return TopByDiscount(deals, fallbackSize(c.FallbackSize))
	}

	sortByDiscountDesc(popular)
	return popular
}

// TopByDiscount returns at most n deals with the highest discount.
func TopByDiscount(deals []model.Deal, n int) []model.Deal {
	ranked := make([]model.Deal, len(deals))
	copy(ranked, deals)
	sortByDiscountDesc(ranked)
	if n < 0 {
		n = 0
	}
	return lo.Subset(ranked, 0, uint(n))
}

func isVariant(title string, keywords []string) bool {
	return lo.SomeBy(keywords, func(k string) bool {
		return strings.Contains(title, k)
	})
}

func matchesCurated(title string, names []string) bool {
	return lo.SomeBy(names, func(name string) bool {
		if title == name {
			return true
		}
		return lo.SomeBy(titleSeparators, func(sep string) bool {
			return strings.HasPrefix(title, name+sep)
		})
	})
}

func sortByDiscountDesc(deals []model.Deal) {
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].Discount() > deals[j].Discount()
	})
}

func fallbackSize(n int) int {
	if n <= 0 {
		return DefaultFallbackSize
	}
	return n
}
