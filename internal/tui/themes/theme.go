// Package themes holds the color palettes of the deal browser.
package themes

import (
	"fmt"
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors a theme is derived from.
type Palette struct {
	Primary    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Info       lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Border     lipgloss.Color
	Muted      lipgloss.Color
}

// Theme defines the visual style for the TUI.
type Theme struct {
	Palette

	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Subtitle      lipgloss.Style
	Selected      lipgloss.Style
	RoundedBox    lipgloss.Style
	Badge         lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
}

// New derives every style of a theme from p.
func New(p Palette) Theme {
	status := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}

	return Theme{
		Palette: p,

		Normal:   lipgloss.NewStyle().Foreground(p.Foreground),
		Bold:     lipgloss.NewStyle().Foreground(p.Foreground).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(p.Subtle),
		Selected: lipgloss.NewStyle().
			Background(p.Primary).
			Foreground(p.Background).
			Bold(true),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),
		Badge: lipgloss.NewStyle().Bold(true).Padding(0, 1),

		StatusInfo:    status(p.Info),
		StatusError:   status(p.Error),
		StatusWarning: status(p.Warning),
		StatusSuccess: status(p.Success),
	}
}

// Default is the default theme.
var Default = New(Palette{
	Primary:    lipgloss.Color("#7c3aed"),
	Success:    lipgloss.Color("#10b981"),
	Warning:    lipgloss.Color("#f59e0b"),
	Error:      lipgloss.Color("#ef4444"),
	Info:       lipgloss.Color("#3b82f6"),
	Background: lipgloss.Color("#1a1a1a"),
	Foreground: lipgloss.Color("#fafafa"),
	Subtle:     lipgloss.Color("#a3a3a3"),
	Border:     lipgloss.Color("#404040"),
	Muted:      lipgloss.Color("#737373"),
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = New(Palette{
	Primary:    lipgloss.Color("#cba6f7"),
	Success:    lipgloss.Color("#a6e3a1"),
	Warning:    lipgloss.Color("#f9e2af"),
	Error:      lipgloss.Color("#f38ba8"),
	Info:       lipgloss.Color("#89dceb"),
	Background: lipgloss.Color("#1e1e2e"),
	Foreground: lipgloss.Color("#cdd6f4"),
	Subtle:     lipgloss.Color("#a6adc8"),
	Border:     lipgloss.Color("#45475a"),
	Muted:      lipgloss.Color("#6c7086"),
})

var registry = map[string]Theme{
	"default":          Default,
	"catppuccin-mocha": CatppuccinMocha,
}

// GetTheme returns a theme by name, falling back to Default.
func GetTheme(name string) Theme {
	if t, ok := registry[name]; ok {
		return t
	}
	return Default
}

// Names lists the selectable themes in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// DiscountColor grades a discount percentage: deep cuts in the success
// color, modest ones in the warning color, the rest muted.
func (t Theme) DiscountColor(percent int) lipgloss.Color {
	switch {
	case percent >= 75:
		return t.Success
	case percent >= 40:
		return t.Warning
	default:
		return t.Muted
	}
}

// DiscountBadge renders "-NN%" in the graded color.
func (t Theme) DiscountBadge(percent int) string {
	return t.Badge.
		Foreground(t.Background).
		Background(t.DiscountColor(percent)).
		Render(fmt.Sprintf("-%d%%", percent))
}

// StrikePrice renders an original price struck through.
func (t Theme) StrikePrice(price string) string {
	return lipgloss.NewStyle().
		Foreground(t.Muted).
		Strikethrough(true).
		Render(price)
}
