package cheapshark

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Veraticus/dealscope/internal/model"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Criteria decides which listings make it into the catalog.
type Criteria struct {
	MinDiscountAmount decimal.Decimal
	MaxPrice          decimal.Decimal
	SortBy            string
	Pages             int
	PageSize          int
	FeaturedCount     int
}

// DefaultCriteria mirrors the catalog the site has always shipped.
func DefaultCriteria() Criteria {
	return Criteria{
		MinDiscountAmount: decimal.NewFromInt(1),
		MaxPrice:          decimal.NewFromInt(100),
		SortBy:            "Metacritic",
		Pages:             25,
		PageSize:          60,
		FeaturedCount:     12,
	}
}

// Summary reports what a pipeline run produced.
type Summary struct {
	Best            *model.Deal
	Fetched         int
	Rejected        int
	Kept            int
	AverageDiscount float64
}

// ProgressFunc is told about each fetched page.
type ProgressFunc func(page, pages int)

type dealFetcher interface {
	Stores(ctx context.Context) (map[string]string, error)
	DealsPage(ctx context.Context, page, pageSize int, sortBy string) ([]RawDeal, error)
}

// Pipeline fetches, filters, deduplicates and formats deals.
type Pipeline struct {
	fetcher  dealFetcher
	progress ProgressFunc
	criteria Criteria
}

// NewPipeline creates a pipeline over the given client.
func NewPipeline(client dealFetcher, criteria Criteria, progress ProgressFunc) *Pipeline {
	if progress == nil {
		progress = func(int, int) {}
	}
	return &Pipeline{fetcher: client, criteria: criteria, progress: progress}
}

// Run produces the catalog, best savings first.
func (p *Pipeline) Run(ctx context.Context) ([]model.Deal, Summary, error) {
	stores, err := p.fetcher.Stores(ctx)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("could not fetch store map: %w", err)
	}
	if len(stores) == 0 {
		return nil, Summary{}, fmt.Errorf("could not fetch store map: no stores returned")
	}

	raw, err := p.fetchAll(ctx)
	if err != nil {
		return nil, Summary{}, err
	}

	unique, rejected := p.filterAndDeduplicate(raw)

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].savings.GreaterThan(unique[j].savings)
	})

	deals := lo.Map(unique, func(d pricedDeal, i int) model.Deal {
		return formatDeal(d, stores, i < p.criteria.FeaturedCount)
	})

	return deals, summarize(deals, len(raw), rejected), nil
}

// fetchAll pages through the listing until an empty page or the page limit.
// A failing page ends the walk; it is only fatal when nothing was fetched.
func (p *Pipeline) fetchAll(ctx context.Context) ([]RawDeal, error) {
	var all []RawDeal
	for page := 0; page < p.criteria.Pages; page++ {
		deals, err := p.fetcher.DealsPage(ctx, page, p.criteria.PageSize, p.criteria.SortBy)
		if err != nil {
			if len(all) == 0 || ctx.Err() != nil {
				return nil, err
			}
			slog.Warn("Stopping fetch after page failure", "page", page+1, "error", err)
			break
		}
		p.progress(page+1, p.criteria.Pages)
		if len(deals) == 0 {
			slog.Debug("No more deals found", "page", page+1)
			break
		}
		all = append(all, deals...)
	}
	return all, nil
}

// filterAndDeduplicate keeps discounted, affordable listings and the
// cheapest listing per title, in first-seen order. Listings with prices that
// do not parse count as rejected.
func (p *Pipeline) filterAndDeduplicate(deals []RawDeal) ([]pricedDeal, int) {
	cheapest := make(map[string]int)
	var unique []pricedDeal
	rejected := 0

	for _, r := range deals {
		d, err := parsePrices(r)
		if err != nil {
			slog.Debug("Rejecting deal with unparseable price", "title", r.Title, "error", err)
			rejected++
			continue
		}
		if !p.accept(d) {
			rejected++
			continue
		}
		if idx, seen := cheapest[d.Title]; seen {
			if d.sale.LessThan(unique[idx].sale) {
				unique[idx] = d
			}
			continue
		}
		cheapest[d.Title] = len(unique)
		unique = append(unique, d)
	}

	slog.Debug("Filtered deals", "kept", len(unique), "rejected", rejected)
	return unique, rejected
}

func (p *Pipeline) accept(d pricedDeal) bool {
	if d.Title == "" {
		return false
	}
	onSale := d.sale.IsPositive() && d.sale.LessThan(d.normal)
	bigEnough := d.normal.Sub(d.sale).GreaterThanOrEqual(p.criteria.MinDiscountAmount)
	inRange := d.normal.LessThanOrEqual(p.criteria.MaxPrice)
	return onSale && bigEnough && inRange
}

func formatDeal(d pricedDeal, stores map[string]string, featured bool) model.Deal {
	store, ok := stores[d.StoreID]
	if !ok {
		store = "Store ID: " + d.StoreID
	}
	return model.Deal{
		Title:    d.Title,
		Platform: "PC",
		Price:    d.sale.InexactFloat64(),
		OldPrice: d.normal.InexactFloat64(),
		Store:    store,
		URL:      "https://www.cheapshark.com/redirect?dealID=" + d.DealID,
		ImageURL: upgradeThumb(d.Thumb),
		Featured: featured,
	}
}

// upgradeThumb swaps small store thumbnails for larger renditions.
func upgradeThumb(url string) string {
	switch {
	case strings.Contains(url, "steamstatic"):
		return strings.Replace(url, "capsule_184x69.jpg", "header.jpg", 1)
	case strings.Contains(url, "gog-statics.com"):
		return strings.Replace(url, "_product_tile_117h.webp", "_product_tile_256.webp", 1)
	default:
		return url
	}
}

func summarize(deals []model.Deal, fetched, rejected int) Summary {
	s := Summary{Fetched: fetched, Rejected: rejected, Kept: len(deals)}
	if len(deals) == 0 {
		return s
	}
	total := lo.SumBy(deals, func(d model.Deal) int { return d.Discount() })
	s.AverageDiscount = float64(total) / float64(len(deals))
	best := deals[0]
	s.Best = &best
	return s
}
