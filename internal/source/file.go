package source

import (
	"context"
	"fmt"
	"os"

	"github.com/Veraticus/dealscope/internal/model"
)

// FileSource reads the catalog from a JSON file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.path
}

// Load reads and decodes the file.
func (s *FileSource) Load(ctx context.Context) ([]model.Deal, error) {
	if err := ctx.Err(); err != nil {
		return nil, Normalize(s.path, err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, Normalize(s.path, fmt.Errorf("failed to open deals file: %w", err))
	}
	defer f.Close()

	deals, err := Decode(f)
	if err != nil {
		return nil, Normalize(s.path, err)
	}
	return deals, nil
}
