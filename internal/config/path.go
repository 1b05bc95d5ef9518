// Package config turns viper settings into the typed configuration the
// browser, the fetch pipeline and the catalog share.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the configuration directory, $HOME/.config/dealscope.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ExpandPath expands a leading ~ and $VAR references in a file path.
// URLs pass through untouched.
func ExpandPath(path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}

// expandPaths resolves every path-valued setting in place.
func (c *Config) expandPaths() {
	for _, p := range []*string{
		&c.Source.Location,
		&c.Fetch.Output,
		&c.Catalog.DB,
		&c.Logging.File,
	} {
		*p = ExpandPath(*p)
	}
}
