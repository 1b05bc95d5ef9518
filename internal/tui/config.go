package tui

import (
	"log/slog"
	"time"

	"github.com/Veraticus/dealscope/internal/tui/themes"
)

// DefaultInteractionDelay is how long sort and page keys show the working
// indicator before they take effect.
const DefaultInteractionDelay = 100 * time.Millisecond

// Config holds TUI configuration.
type Config struct {
	Theme            themes.Theme
	Logger           *slog.Logger
	InteractionDelay time.Duration
	Width            int
	Height           int
	ShowHelp         bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:            themes.Default,
		Logger:           slog.Default(),
		InteractionDelay: DefaultInteractionDelay,
		Width:            100,
		Height:           48,
		ShowHelp:         true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithInteractionDelay sets the pause before sort and page keys apply.
// Zero applies them immediately.
func WithInteractionDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.InteractionDelay = d
		}
	}
}

// WithLogger sets the logger handed to the controller.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithHelp toggles the key help footer.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
