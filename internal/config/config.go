package config

import (
	"fmt"
	"maps"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Veraticus/dealscope/internal/app"
	"github.com/Veraticus/dealscope/internal/catalog"
	"github.com/Veraticus/dealscope/internal/cheapshark"
	"github.com/Veraticus/dealscope/internal/common"
	"github.com/Veraticus/dealscope/internal/source"
	"github.com/Veraticus/dealscope/internal/tui/themes"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// AppName names the config directory and env prefix.
const AppName = "dealscope"

// Config is the full application configuration.
type Config struct {
	Source  SourceConfig
	Logging LoggingConfig
	Catalog CatalogConfig
	Fetch   FetchConfig
	Popular PopularConfig
	Browse  BrowseConfig
}

// SourceConfig says where the browser reads deals from.
type SourceConfig struct {
	Location string
	Kind     source.Kind
}

// BrowseConfig shapes the interactive browser.
type BrowseConfig struct {
	Theme            string
	PageSize         int
	PopularPageSize  int
	FeaturedLimit    int
	RequestTimeout   time.Duration
	LoadCeiling      time.Duration
	InteractionDelay time.Duration
	ShowFeatured     bool
	ShowPopular      bool
}

// PopularConfig overrides the curated popular games list.
type PopularConfig struct {
	Names           []string
	VariantKeywords []string
	FallbackSize    int
}

// FetchConfig drives the CheapShark pipeline.
type FetchConfig struct {
	BaseURL           string
	SortBy            string
	Output            string
	MinDiscountAmount decimal.Decimal
	MaxPrice          decimal.Decimal
	Pages             int
	PageSize          int
	FeaturedCount     int
	Interval          time.Duration
	Timeout           time.Duration
	MaxAttempts       int
}

// CatalogConfig locates the SQLite catalog.
type CatalogConfig struct {
	DB string
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	criteria := cheapshark.DefaultCriteria()
	appCfg := app.DefaultConfig()

	v.SetDefault("source.location", "deals.json")
	v.SetDefault("source.kind", "auto")

	v.SetDefault("browse.theme", "default")
	v.SetDefault("browse.page_size", catalog.MainPageSize)
	v.SetDefault("browse.popular_page_size", catalog.PopularPageSize)
	v.SetDefault("browse.featured_limit", catalog.FeaturedLimit)
	v.SetDefault("browse.sections.featured", true)
	v.SetDefault("browse.sections.popular", true)
	v.SetDefault("browse.request_timeout", appCfg.RequestTimeout)
	v.SetDefault("browse.load_ceiling", appCfg.LoadCeiling)
	v.SetDefault("browse.interaction_delay", 100*time.Millisecond)

	v.SetDefault("popular.names", []string{})
	v.SetDefault("popular.variant_keywords", []string{})
	v.SetDefault("popular.fallback_size", catalog.DefaultFallbackSize)

	v.SetDefault("fetch.base_url", "")
	v.SetDefault("fetch.sort_by", criteria.SortBy)
	v.SetDefault("fetch.output", "deals.json")
	v.SetDefault("fetch.min_discount_amount", criteria.MinDiscountAmount.String())
	v.SetDefault("fetch.max_price", criteria.MaxPrice.String())
	v.SetDefault("fetch.pages", criteria.Pages)
	v.SetDefault("fetch.page_size", criteria.PageSize)
	v.SetDefault("fetch.featured_count", criteria.FeaturedCount)
	v.SetDefault("fetch.interval", time.Second)
	v.SetDefault("fetch.timeout", 30*time.Second)
	v.SetDefault("fetch.max_attempts", 3)

	v.SetDefault("catalog.db", filepath.Join(Dir(), "catalog.db"))

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", filepath.Join(Dir(), AppName+".log"))
}

// FromViper reads and validates the configuration.
func FromViper(v *viper.Viper) (*Config, error) {
	minDiscount, err := decimalKey(v, "fetch.min_discount_amount")
	if err != nil {
		return nil, err
	}
	maxPrice, err := decimalKey(v, "fetch.max_price")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Source: SourceConfig{
			Location: v.GetString("source.location"),
			Kind:     parseKind(v.GetString("source.kind")),
		},
		Browse: BrowseConfig{
			Theme:            v.GetString("browse.theme"),
			PageSize:         v.GetInt("browse.page_size"),
			PopularPageSize:  v.GetInt("browse.popular_page_size"),
			FeaturedLimit:    v.GetInt("browse.featured_limit"),
			ShowFeatured:     v.GetBool("browse.sections.featured"),
			ShowPopular:      v.GetBool("browse.sections.popular"),
			RequestTimeout:   v.GetDuration("browse.request_timeout"),
			LoadCeiling:      v.GetDuration("browse.load_ceiling"),
			InteractionDelay: v.GetDuration("browse.interaction_delay"),
		},
		Popular: PopularConfig{
			Names:           v.GetStringSlice("popular.names"),
			VariantKeywords: v.GetStringSlice("popular.variant_keywords"),
			FallbackSize:    v.GetInt("popular.fallback_size"),
		},
		Fetch: FetchConfig{
			BaseURL:           v.GetString("fetch.base_url"),
			SortBy:            v.GetString("fetch.sort_by"),
			Output:            v.GetString("fetch.output"),
			MinDiscountAmount: minDiscount,
			MaxPrice:          maxPrice,
			Pages:             v.GetInt("fetch.pages"),
			PageSize:          v.GetInt("fetch.page_size"),
			FeaturedCount:     v.GetInt("fetch.featured_count"),
			Interval:          v.GetDuration("fetch.interval"),
			Timeout:           v.GetDuration("fetch.timeout"),
			MaxAttempts:       v.GetInt("fetch.max_attempts"),
		},
		Catalog: CatalogConfig{
			DB: v.GetString("catalog.db"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   v.GetString("logging.file"),
		},
	}

	cfg.expandPaths()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseKind maps the configured source kind; "auto" and "" both detect the
// kind from the location.
func parseKind(raw string) source.Kind {
	kind := strings.ToLower(strings.TrimSpace(raw))
	if kind == "auto" {
		return source.KindAuto
	}
	return source.Kind(kind)
}

func decimalKey(v *viper.Viper, key string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a number, got %q", common.ErrInvalidConfig, key, raw)
	}
	return d, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	var problems []string

	switch c.Source.Kind {
	case source.KindAuto, source.KindFile, source.KindHTTP, source.KindSQLite:
	default:
		problems = append(problems, fmt.Sprintf("source.kind %q is not one of auto, file, http, sqlite", c.Source.Kind))
	}

	if !slices.Contains(themes.Names(), c.Browse.Theme) {
		problems = append(problems, fmt.Sprintf("browse.theme %q is not one of %s",
			c.Browse.Theme, strings.Join(themes.Names(), ", ")))
	}

	positive := map[string]int{
		"browse.page_size":         c.Browse.PageSize,
		"browse.popular_page_size": c.Browse.PopularPageSize,
		"browse.featured_limit":    c.Browse.FeaturedLimit,
		"popular.fallback_size":    c.Popular.FallbackSize,
		"fetch.pages":              c.Fetch.Pages,
		"fetch.page_size":          c.Fetch.PageSize,
		"fetch.max_attempts":       c.Fetch.MaxAttempts,
	}
	for _, key := range slices.Sorted(maps.Keys(positive)) {
		if positive[key] <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got %d", key, positive[key]))
		}
	}

	if c.Browse.FeaturedLimit > catalog.FeaturedLimit {
		problems = append(problems, fmt.Sprintf("browse.featured_limit must be at most %d, got %d",
			catalog.FeaturedLimit, c.Browse.FeaturedLimit))
	}
		if c.Browse.RequestTimeout <= 0 || c.Browse.LoadCeiling <= 0 {
		problems = append(problems, "browse.request_timeout and browse.load_ceiling must be positive")
	}
	if c.Fetch.Timeout <= 0 {
		problems = append(problems, "fetch.timeout must be positive")
	}
	if c.Browse.InteractionDelay < 0 {
		problems = append(problems, "browse.interaction_delay must not be negative")
	}
	if c.Fetch.MinDiscountAmount.IsNegative() {
		problems = append(problems, "fetch.min_discount_amount must not be negative")
	}
	if !c.Fetch.MaxPrice.IsPositive() {
		problems = append(problems, "fetch.max_price must be positive")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q is not console or json", c.Logging.Format))
	}
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		problems = append(problems, fmt.Sprintf("logging.level %q is not debug, info, warn or error", c.Logging.Level))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", common.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Curation returns the popular list, falling back to the built-in names and
// keywords for whichever half is not configured.
func (c *Config) Curation() catalog.Curation {
	curation := catalog.DefaultCuration()
	if len(c.Popular.Names) > 0 {
		curation.Names = c.Popular.Names
	}
	if len(c.Popular.VariantKeywords) > 0 {
		curation.VariantKeywords = c.Popular.VariantKeywords
	}
	curation.FallbackSize = c.Popular.FallbackSize
	return curation
}

// AppConfig returns the controller configuration.
func (c *Config) AppConfig() app.Config {
	return app.Config{
		Catalog: catalog.Options{
			Curation:        c.Curation(),
			PageSize:        c.Browse.PageSize,
			PopularPageSize: c.Browse.PopularPageSize,
			FeaturedLimit:   c.Browse.FeaturedLimit,
		},
		Sections: app.Sections{
			Featured: c.Browse.ShowFeatured,
			Popular:  c.Browse.ShowPopular,
		},
		RequestTimeout: c.Browse.RequestTimeout,
		LoadCeiling:    c.Browse.LoadCeiling,
	}
}

// Criteria returns the pipeline criteria.
func (c *Config) Criteria() cheapshark.Criteria {
	return cheapshark.Criteria{
		MinDiscountAmount: c.Fetch.MinDiscountAmount,
		MaxPrice:          c.Fetch.MaxPrice,
		SortBy:            c.Fetch.SortBy,
		Pages:             c.Fetch.Pages,
		PageSize:          c.Fetch.PageSize,
		FeaturedCount:     c.Fetch.FeaturedCount,
	}
}

// ClientConfig returns the CheapShark client settings.
func (c *Config) ClientConfig() cheapshark.Config {
	return cheapshark.Config{
		HTTPClient: &http.Client{Timeout: c.Fetch.Timeout},
		BaseURL:    c.Fetch.BaseURL,
		Interval:   c.Fetch.Interval,
		Retry: common.RetryOptions{
			MaxAttempts:  c.Fetch.MaxAttempts,
			InitialDelay: 2 * time.Second,
			MaxDelay:     30 * time.Second,
			Multiplier:   2,
		},
	}
}
