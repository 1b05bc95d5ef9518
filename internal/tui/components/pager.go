package components

import (
	"strconv"
	"strings"

	"github.com/Veraticus/dealscope/internal/catalog"
	"github.com/Veraticus/dealscope/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// RenderPageWindow draws the numbered page links with the current page
// highlighted and prev/next arrows disabled at the ends.
func RenderPageWindow(p catalog.Pagination, theme themes.Theme) string {
	if p.PageCount == 0 {
		return ""
	}

	muted := lipgloss.NewStyle().Foreground(theme.Muted)
	active := lipgloss.NewStyle().Foreground(theme.Primary)

	parts := make([]string, 0, len(p.Window)+2)
	if p.CurrentPage > 1 {
		parts = append(parts, active.Render("‹ prev"))
	} else {
		parts = append(parts, muted.Render("‹ prev"))
	}

	for _, link := range p.Window {
		switch {
		case link.Ellipsis:
			parts = append(parts, muted.Render(link.String()))
		case link.Current:
			parts = append(parts, theme.Selected.Render(" "+strconv.Itoa(link.Page)+" "))
		default:
			parts = append(parts, theme.Normal.Render(strconv.Itoa(link.Page)))
		}
	}

	if p.CurrentPage < p.PageCount {
		parts = append(parts, active.Render("next ›"))
	} else {
		parts = append(parts, muted.Render("next ›"))
	}
	return strings.Join(parts, " ")
}
