// Package source loads the deal catalog from a file, a URL or the local
// SQLite catalog, normalizing every failure into a LoadError.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/dealscope/internal/model"
)

// Source loads the full deal list once.
type Source interface {
	Load(ctx context.Context) ([]model.Deal, error)
	Name() string
}

// Decode reads a JSON array of deals. Records that fail validation are
// skipped with a warning; a non-empty array with no valid record is a parse
// failure.
func Decode(r io.Reader) ([]model.Deal, error) {
	var raw []model.Deal
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &ParseError{Err: err}
	}

	deals := make([]model.Deal, 0, len(raw))
	var firstErr error
	for i, d := range raw {
		if err := d.Validate(); err != nil {
			slog.Warn("Skipping invalid deal record", "index", i, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("record %d: %w", i, err)
			}
			continue
		}
		deals = append(deals, d)
	}

	if len(deals) == 0 && firstErr != nil {
		return nil, &ParseError{Err: fmt.Errorf("no valid records: %w", firstErr)}
	}
	return deals, nil
}
