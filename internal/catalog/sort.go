package catalog

import (
	"cmp"
	"sort"

	"github.com/Veraticus/dealscope/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort returns a new slice ordered by spec. The input is left untouched.
//
// The sort is stable and has no secondary key: deals that compare equal keep
// their relative input order. Descending order swaps the comparator's
// operands rather than reversing an ascending result.
func Sort(deals []model.Deal, spec model.SortSpec) []model.Deal {
	sorted := make([]model.Deal, len(deals))
	copy(sorted, deals)

	compare := comparator(spec.Key)
	desc := spec.Direction == model.Descending

	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return compare(sorted[j], sorted[i]) < 0
		}
		return compare(sorted[i], sorted[j]) < 0
	})

	return sorted
}

// compareFunc returns <0, 0 or >0 as a orders before, with or after b.
type compareFunc func(a, b model.Deal) int

func comparator(key model.SortKey) compareFunc {
	switch key {
	case model.SortByDiscount:
		return func(a, b model.Deal) int {
			return cmp.Compare(a.Discount(), b.Discount())
		}
	case model.SortByPrice:
		return func(a, b model.Deal) int {
			return cmp.Compare(a.Price, b.Price)
		}
	case model.SortByPlatform:
		return stringComparator(func(d model.Deal) string { return d.Platform })
	case model.SortByStore:
		return stringComparator(func(d model.Deal) string { return d.Store })
	default:
		return stringComparator(func(d model.Deal) string { return d.Title })
	}
}

// stringComparator compares a text field with locale-aware collation.
// Collators are not safe for concurrent use, so each sort gets its own.
func stringComparator(field func(model.Deal) string) compareFunc {
	c := collate.New(language.English)
	return func(a, b model.Deal) int {
		return c.CompareString(field(a), field(b))
	}
}
