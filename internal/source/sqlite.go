package source

import (
	"context"
	"fmt"

	"github.com/Veraticus/dealscope/internal/model"
	"github.com/Veraticus/dealscope/internal/storage"
)

// CatalogSource serves deals from the local SQLite catalog.
type CatalogSource struct {
	store *storage.SQLiteStorage
}

// NewCatalogSource opens and migrates the catalog at path.
func NewCatalogSource(ctx context.Context, path string) (*CatalogSource, error) {
	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}
	return &CatalogSource{store: store}, nil
}

// Name returns the database path.
func (s *CatalogSource) Name() string {
	return s.store.Path()
}

// Load reads the stored catalog.
func (s *CatalogSource) Load(ctx context.Context) ([]model.Deal, error) {
	deals, err := s.store.Load(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, Normalize(s.Name(), ctx.Err())
		}
		return nil, Normalize(s.Name(), err)
	}
	return deals, nil
}

// Close releases the database.
func (s *CatalogSource) Close() error {
	return s.store.Close()
}
