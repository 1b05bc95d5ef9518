package components

import (
	"fmt"

	"github.com/Veraticus/dealscope/internal/model"
	"github.com/Veraticus/dealscope/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// CarouselModel shows one featured deal at a time and cycles through them.
type CarouselModel struct {
	theme themes.Theme
	deals []model.Deal
	index int
	width int
}

// NewCarousel creates an empty carousel.
func NewCarousel(theme themes.Theme) CarouselModel {
	return CarouselModel{theme: theme, width: 60}
}

// SetDeals replaces the cards and rewinds to the first one.
func (m *CarouselModel) SetDeals(deals []model.Deal) {
	m.deals = deals
	m.index = 0
}

// Next advances one card, wrapping at the end.
func (m *CarouselModel) Next() {
	if len(m.deals) == 0 {
		return
	}
	m.index = (m.index + 1) % len(m.deals)
}

// Prev goes back one card, wrapping at the start.
func (m *CarouselModel) Prev() {
	if len(m.deals) == 0 {
		return
	}
	m.index = (m.index - 1 + len(m.deals)) % len(m.deals)
}

// Current returns the card on display.
func (m CarouselModel) Current() (model.Deal, bool) {
	if len(m.deals) == 0 {
		return model.Deal{}, false
	}
	return m.deals[m.index], true
}

// Index returns the zero-based position of the current card.
func (m CarouselModel) Index() int {
	return m.index
}

// Len returns the number of cards.
func (m CarouselModel) Len() int {
	return len(m.deals)
}

// Resize sets the card width.
func (m *CarouselModel) Resize(width int) {
	m.width = width
}

// View renders the current card with its position.
func (m CarouselModel) View() string {
	d, ok := m.Current()
	if !ok {
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No featured deals")
	}

	title := m.theme.Bold.Render(d.Title)
	price := lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.StatusSuccess.Render(FormatPrice(d.Price)),
		" ",
		m.theme.StrikePrice(FormatPrice(d.OldPrice)),
		" ",
		m.theme.DiscountBadge(d.Discount()),
	)
	meta := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(fmt.Sprintf("%s · %s", d.Platform, d.Store))
	position := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(fmt.Sprintf("◀ %d/%d ▶", m.index+1, len(m.deals)))

	card := lipgloss.JoinVertical(lipgloss.Left, title, meta, price)
	if d.URL != "" {
		card = lipgloss.JoinVertical(lipgloss.Left, card,
			lipgloss.NewStyle().Foreground(m.theme.Info).Render(d.URL))
	}

	return m.theme.RoundedBox.
		Width(max(m.width-2, 20)).
		Render(lipgloss.JoinVertical(lipgloss.Left, card, position))
}
