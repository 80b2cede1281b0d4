package domain

import "context"

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=domain

// DestinationRepository reads destination attribute data from a store.
// Implementations must return destinations ordered by ID so that decision
// matrix rows are stable between calls.
type DestinationRepository interface {
	// ListDestinations returns every stored destination.
	ListDestinations(ctx context.Context) ([]Destination, error)

	// GetDestinations returns the destinations with the given ids.
	// A missing id yields an error wrapping ErrDestinationNotFound.
	GetDestinations(ctx context.Context, ids []string) ([]Destination, error)

	// Close releases the store's resources.
	Close() error
}
