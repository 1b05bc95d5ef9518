package app

import (
	"time"

	"github.com/Veraticus/dealscope/internal/catalog"
)

// Default load bounds.
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultLoadCeiling    = 15 * time.Second
)

// Sections toggles the optional regions of the browser.
type Sections struct {
	Featured bool
	Popular  bool
}

// Config parameterizes a Controller.
type Config struct {
	Catalog  catalog.Options
	Sections Sections
	// RequestTimeout cancels the in-flight load.
	RequestTimeout time.Duration
	// LoadCeiling ends the loading phase no matter what the source does.
	LoadCeiling time.Duration
}

// DefaultConfig enables every section with the stock page sizes and bounds.
func DefaultConfig() Config {
	return Config{
		Catalog:        catalog.DefaultOptions(),
		Sections:       Sections{Featured: true, Popular: true},
		RequestTimeout: DefaultRequestTimeout,
		LoadCeiling:    DefaultLoadCeiling,
	}
}

func (c Config) withDefaults() Config {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.LoadCeiling <= 0 {
		c.LoadCeiling = DefaultLoadCeiling
	}
	return c
}
