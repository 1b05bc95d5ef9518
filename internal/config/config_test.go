package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/dealscope/internal/catalog"
	"github.com/Veraticus/dealscope/internal/common"
	"github.com/Veraticus/dealscope/internal/source"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, "deals.json", cfg.Source.Location)
	assert.Equal(t, source.KindAuto, cfg.Source.Kind)
	assert.Equal(t, catalog.MainPageSize, cfg.Browse.PageSize)
	assert.Equal(t, catalog.PopularPageSize, cfg.Browse.PopularPageSize)
	assert.Equal(t, 10*time.Second, cfg.Browse.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Browse.LoadCeiling)
	assert.Equal(t, 100*time.Millisecond, cfg.Browse.InteractionDelay)
	assert.True(t, cfg.Browse.ShowFeatured)
	assert.True(t, cfg.Browse.ShowPopular)

	criteria := cfg.Criteria()
	assert.Equal(t, "1", criteria.MinDiscountAmount.String())
	assert.Equal(t, "100", criteria.MaxPrice.String())
	assert.Equal(t, 25, criteria.Pages)
	assert.Equal(t, 60, criteria.PageSize)
	assert.Equal(t, "Metacritic", criteria.SortBy)

	appCfg := cfg.AppConfig()
	assert.Equal(t, catalog.DefaultPopularNames(), appCfg.Catalog.Curation.Names)
	assert.Equal(t, catalog.DefaultVariantKeywords(), appCfg.Catalog.Curation.VariantKeywords)
	assert.True(t, appCfg.Sections.Featured)
}

func TestFromViper_Overrides(t *testing.T) {
	v := newViper()
	v.Set("source.location", "https://example.com/deals.json")
	v.Set("source.kind", "HTTP")
	v.Set("browse.page_size", 50)
	v.Set("browse.sections.popular", false)
	v.Set("browse.load_ceiling", "30s")
	v.Set("popular.names", []string{"Hades"})
	v.Set("fetch.max_price", "19.99")

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, source.KindHTTP, cfg.Source.Kind)
	assert.Equal(t, 30*time.Second, cfg.Browse.LoadCeiling)
	assert.Equal(t, "19.99", cfg.Fetch.MaxPrice.String())

	appCfg := cfg.AppConfig()
	assert.Equal(t, 50, appCfg.Catalog.PageSize)
	assert.False(t, appCfg.Sections.Popular)
	assert.Equal(t, []string{"Hades"}, appCfg.Catalog.Curation.Names)
	assert.Equal(t, catalog.DefaultVariantKeywords(), appCfg.Catalog.Curation.VariantKeywords)
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "zero page size", key: "browse.page_size", value: 0},
		{name: "unknown source kind", key: "source.kind", value: "ftp"},
		{name: "bad price", key: "fetch.max_price", value: "cheap"},
		{name: "negative discount", key: "fetch.min_discount_amount", value: "-1"},
		{name: "bad log format", key: "logging.format", value: "xml"},
		{name: "bad log level", key: "logging.level", value: "loud"},
		{name: "zero ceiling", key: "browse.load_ceiling", value: "0s"},
		{name: "unknown theme", key: "browse.theme", value: "neon"},
		{name: "featured limit above cap", key: "browse.featured_limit", value: catalog.FeaturedLimit + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)

			_, err := FromViper(v)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("DEALSCOPE_TEST_DIR", "/tmp/deals")

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "~", want: home},
		{in: "~/deals.json", want: filepath.Join(home, "deals.json")},
		{in: "$DEALSCOPE_TEST_DIR/deals.json", want: "/tmp/deals/deals.json"},
		{in: "relative/deals.json", want: "relative/deals.json"},
		{in: "https://example.com/$PATH/deals.json", want: "https://example.com/$PATH/deals.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandPath(tt.in), tt.in)
	}
}

func TestFromViperExpandsPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	v := newViper()
	v.Set("source.location", "~/deals.json")
	v.Set("catalog.db", "~/catalog.db")

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "deals.json"), cfg.Source.Location)
	assert.Equal(t, filepath.Join(home, "catalog.db"), cfg.Catalog.DB)
}

func TestFromViper_FeaturedLimitAtCap(t *testing.T) {
	v := newViper()
	v.Set("browse.featured_limit", catalog.FeaturedLimit)

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, catalog.FeaturedLimit, cfg.AppConfig().Catalog.FeaturedLimit)
}
