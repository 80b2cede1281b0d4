package sqlite

import (
	"context"

	"github.com/wisata-ranking/destination-ranking/internal/adapter/repository/dataset"
)

// SeedFromFile loads a YAML dataset into the store when the store is empty.
// It returns the number of destinations inserted.
func (s *Store) SeedFromFile(ctx context.Context, path string) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	items, err := dataset.Load(path)
	if err != nil {
		return 0, err
	}
	if err := s.UpsertMany(ctx, items); err != nil {
		return 0, err
	}
	return len(items), nil
}
