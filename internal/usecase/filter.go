package usecase

import "github.com/wisata-ranking/destination-ranking/internal/domain"

// ApplyFilters returns the destinations that match every set filter.
// The input slice is never mutated; a nil or empty filter returns it as is.
func ApplyFilters(destinations []domain.Destination, opts *domain.FilterOptions) []domain.Destination {
	if opts.IsEmpty() {
		return destinations
	}

	result := make([]domain.Destination, 0, len(destinations))
	for _, d := range destinations {
		if opts.Matches(d) {
			result = append(result, d)
		}
	}
	return result
}
