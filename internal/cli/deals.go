package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/dealscope/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// RenderDealList renders a numbered list of deals with prices and discount.
func RenderDealList(title string, deals []model.Deal) string {
	if len(deals) == 0 {
		return RenderBox(title, SubtleStyle.Render("No deals"))
	}

	titleWidth := 0
	for _, d := range deals {
		titleWidth = max(titleWidth, lipgloss.Width(d.Title))
	}
	titleWidth = min(titleWidth, 48)

	rows := make([]string, 0, len(deals))
	for i, d := range deals {
		name := d.Title
		if lipgloss.Width(name) > titleWidth {
			name = string([]rune(name)[:titleWidth-1]) + "…"
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			SubtleStyle.Render(fmt.Sprintf("%2d. ", i+1)),
			TableCellStyle.Width(titleWidth+2).Render(name),
			TableCellStyle.Render(PriceStyle.Render(fmt.Sprintf("$%.2f", d.Price))),
			TableCellStyle.Render(StruckStyle.Render(fmt.Sprintf("$%.2f", d.OldPrice))),
			TableCellStyle.Render(WarningStyle.Render(fmt.Sprintf("-%d%%", d.Discount()))),
			SubtleStyle.Render(d.Store),
		)
		rows = append(rows, row)
	}
	return RenderBox(title, strings.Join(rows, "\n"))
}

// FetchSummary is what the fetch command reports when it finishes.
type FetchSummary struct {
	Best            *model.Deal
	Output          string
	Catalog         string
	Fetched         int
	Rejected        int
	Kept            int
	AverageDiscount float64
}

// RenderFetchSummary renders the statistics of a fetch run.
func RenderFetchSummary(s FetchSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  • Listings fetched: %d\n", s.Fetched)
	fmt.Fprintf(&b, "  • Rejected by criteria: %d\n", s.Rejected)
	fmt.Fprintf(&b, "  • Deals kept: %d\n", s.Kept)
	fmt.Fprintf(&b, "  • Average discount: %.1f%%\n", s.AverageDiscount)
	if s.Best != nil {
		fmt.Fprintf(&b, "  • Best deal: %s, $%.2f (was $%.2f, -%d%%)\n",
			s.Best.Title, s.Best.Price, s.Best.OldPrice, s.Best.Discount())
	}
	if s.Output != "" {
		fmt.Fprintf(&b, "  • Written to: %s\n", s.Output)
	}
	if s.Catalog != "" {
		fmt.Fprintf(&b, "  • Catalog: %s\n", s.Catalog)
	}
	return RenderBox(ChartIcon+" Fetch complete", strings.TrimRight(b.String(), "\n"))
}
