package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Veraticus/dealscope/internal/config"
	"github.com/Veraticus/dealscope/internal/source"
	"github.com/spf13/viper"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// loadConfig reads the typed configuration from the global viper.
func loadConfig() (*config.Config, error) {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// openSource builds the deal source, preferring a location argument over
// the configured one. The returned closer is never nil.
func openSource(ctx context.Context, cfg *config.Config, args []string) (source.Source, func(), error) {
	location := cfg.Source.Location
	if len(args) > 0 {
		location = config.ExpandPath(args[0])
	}

	src, err := source.New(ctx, source.Config{
		Location:   location,
		Kind:       cfg.Source.Kind,
		HTTPClient: &http.Client{},
	})
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to open deal source %q: %w", location, err)
	}

	closer := func() {}
	if c, ok := src.(io.Closer); ok {
		closer = func() { _ = c.Close() }
	}
	return src, closer, nil
}
