package catalog

import (
	"github.com/Veraticus/dealscope/internal/model"
	"github.com/samber/lo"
)

// FeaturedLimit caps the featured strip.
const FeaturedLimit = 12

// Featured returns the flagged deals in catalog order, at most limit of them
// and never more than FeaturedLimit. The featured strip ignores search, sort
// and paging.
func Featured(deals []model.Deal, limit int) []model.Deal {
	if limit <= 0 || limit > FeaturedLimit {
		limit = FeaturedLimit
	}
	flagged := lo.Filter(deals, func(d model.Deal, _ int) bool {
		return d.Featured
	})
	return lo.Subset(flagged, 0, uint(limit))
}
