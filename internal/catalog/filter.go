package catalog

import (
	"strings"

	"github.com/Veraticus/dealscope/internal/model"
)

// NormalizeTerm trims and lower-cases a search term.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Filter returns the deals whose title contains term, ignoring case.
// An empty term returns a copy of every deal in the original order.
func Filter(deals []model.Deal, term string) []model.Deal {
	term = NormalizeTerm(term)
	if term == "" {
		all := make([]model.Deal, len(deals))
		copy(all, deals)
		return all
	}

	matched := make([]model.Deal, 0, len(deals))
	for _, d := range deals {
		if strings.Contains(strings.ToLower(d.Title), term) {
			matched = append(matched, d)
		}
	}
	return matched
}
