package source

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Veraticus/dealscope/internal/common"
)

// Kind names a Source implementation.
type Kind string

// Source kinds.
const (
	KindAuto   Kind = ""
	KindFile   Kind = "file"
	KindHTTP   Kind = "http"
	KindSQLite Kind = "sqlite"
)

// Config selects and configures a Source.
type Config struct {
	HTTPClient *http.Client
	Location   string
	Kind       Kind
}

// New builds the Source named by cfg. With no explicit kind the location
// decides: URLs are fetched, .db/.sqlite files are opened as catalogs and
// anything else is read as JSON.
func New(ctx context.Context, cfg Config) (Source, error) {
	if strings.TrimSpace(cfg.Location) == "" {
		return nil, fmt.Errorf("%w: source location", common.ErrMissingConfig)
	}

	kind := cfg.Kind
	if kind == KindAuto {
		kind = detectKind(cfg.Location)
	}

	switch kind {
	case KindFile:
		return NewFileSource(cfg.Location), nil
	case KindHTTP:
		return NewHTTPSource(cfg.Location, cfg.HTTPClient), nil
	case KindSQLite:
		return NewCatalogSource(ctx, cfg.Location)
	default:
		return nil, fmt.Errorf("%w: unknown source kind %q", common.ErrInvalidConfig, kind)
	}
}

func detectKind(location string) Kind {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return KindHTTP
	}
	switch filepath.Ext(lower) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	}
	return KindFile
}
