package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/dealscope/internal/app"
	"github.com/Veraticus/dealscope/internal/tui/components"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}

	switch m.ctrl.Phase() {
	case app.PhaseLoading:
		sections = append(sections, m.renderLoading())
	case app.PhaseFailed:
		sections = append(sections, m.renderFailure())
	default:
		sections = append(sections, m.renderBody()...)
	}

	sections = append(sections, m.renderStatusBar())
	if m.config.ShowHelp {
		sections = append(sections, m.help.View(m.keymap))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.theme.Bold.Foreground(m.theme.Primary).Render("DealScope")
	if m.searching || m.search.Value() != "" {
		return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", m.search.View())
	}
	return title
}

func (m Model) renderLoading() string {
	return lipgloss.Place(
		max(m.width, minWidth),
		5,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Center,
			m.spinner.View(),
			" ",
			m.theme.Normal.Render("Loading deals..."),
		),
	)
}

func (m Model) renderFailure() string {
	loadErr := m.ctrl.LoadError()
	msg := "Failed to load deals"
	if loadErr != nil {
		msg = loadErr.Error()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.StatusError.Render("Couldn't load the deal catalog"),
		"",
		m.theme.Normal.Render(msg),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press r to retry or q to quit"),
	)
	return m.theme.RoundedBox.
		BorderForeground(m.theme.Error).
		Width(max(min(m.width-2, 72), 20)).
		Render(content)
}

func (m Model) renderBody() []string {
	if !m.layout.main {
		return []string{
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Terminal too small, resize to browse deals"),
		}
	}

	var body []string
	if m.layout.featured && len(m.frame.featured) > 0 {
		body = append(body,
			m.theme.Subtitle.MarginBottom(0).Render("Featured"),
			m.carousel.View(),
		)
	}
	body = append(body, m.renderMain())
	if m.layout.popular {
		body = append(body, m.renderPopular())
	}
	return body
}

func (m Model) renderMain() string {
	view := m.frame.main
	title := m.sectionTitle(fmt.Sprintf("All deals (%d)", view.Page.Total), !m.focusPopular)

	if view.NoResults {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			m.theme.StatusWarning.Render(fmt.Sprintf("No results for %q", view.SearchTerm)),
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press Esc to clear the search"),
		)
	}

	pager := ""
	if view.Pagination.PageCount > 0 {
		pager = lipgloss.JoinHorizontal(lipgloss.Center,
			m.theme.Normal.Render(view.Page.Label()),
			"   ",
			components.RenderPageWindow(view.Pagination, m.theme),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.mainTable.View(), pager)
}

func (m Model) renderPopular() string {
	page := m.frame.popular.Page
	title := m.sectionTitle("Popular games", m.focusPopular)

	if page.Total == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No popular games on sale"),
		)
	}

	nav := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[ prev  ] next")
	pager := lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.Normal.Render(page.Label()),
		"   ",
		nav,
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, m.popularTable.View(), pager)
}

func (m Model) sectionTitle(text string, focused bool) string {
	if focused {
		return m.theme.Bold.Render("▸ " + text)
	}
	return m.theme.Subtitle.MarginBottom(0).Render("  " + text)
}

// renderStatusBar renders the bottom status line.
func (m Model) renderStatusBar() string {
	var left, right string

	switch {
	case m.frame.loading:
		left = m.spinner.View() + " Loading deals..."
	case m.working:
		left = m.spinner.View() + " Working..."
	case m.ctrl.Phase() == app.PhaseFailed:
		left = m.theme.StatusError.Render("Load failed")
	case m.frame.main.NoResults:
		left = m.theme.StatusWarning.Render(fmt.Sprintf("No results for %q", m.frame.main.SearchTerm))
	case m.ctrl.Phase() == app.PhaseReady:
		view := m.frame.main
		left = m.theme.StatusInfo.Render(fmt.Sprintf("%d deals", view.Page.Total)) +
			m.theme.Normal.Render(fmt.Sprintf(" · sorted by %s", view.Sort))
		if view.SearchTerm != "" {
			left += m.theme.Normal.Render(fmt.Sprintf(" · matching %q", view.SearchTerm))
		}
	}

	if d, ok := m.selected(); ok {
		right = m.theme.Normal.Render(d.Title) + " " + m.theme.DiscountBadge(d.Discount())
	}

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
