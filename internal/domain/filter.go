package domain

import "math"

// FilterOptions narrows the stored destinations before they are ranked.
// Nil fields are not applied.
type FilterOptions struct {
	// MaxPrice is the highest acceptable entrance price in IDR (inclusive)
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MinRating is the lowest acceptable average rating (inclusive)
	MinRating *float64 `json:"minRating,omitempty"`

	// MinReviews is the lowest acceptable number of reviews (inclusive)
	MinReviews *int `json:"minReviews,omitempty"`

	// MinFacilities is the lowest acceptable total facility count (inclusive)
	MinFacilities *int `json:"minFacilities,omitempty"`
}

// IsEmpty reports whether no filter is set.
func (f *FilterOptions) IsEmpty() bool {
	return f == nil || (f.MaxPrice == nil && f.MinRating == nil && f.MinReviews == nil && f.MinFacilities == nil)
}

// Validate rejects negative bounds and ratings outside the 0-5 scale.
func (f *FilterOptions) Validate() error {
	if f == nil {
		return nil
	}
	if f.MaxPrice != nil && (*f.MaxPrice < 0 || math.IsNaN(*f.MaxPrice)) {
		return NewValidationError("max_price", "must be a non-negative number")
	}
	if f.MinRating != nil && !inScale(*f.MinRating) {
		return NewValidationError("min_rating", "must be between 0 and 5")
	}
	if f.MinReviews != nil && *f.MinReviews < 0 {
		return NewValidationError("min_reviews", "cannot be negative")
	}
	if f.MinFacilities != nil && *f.MinFacilities < 0 {
		return NewValidationError("min_facilities", "cannot be negative")
	}
	return nil
}

// Matches checks if a destination satisfies every set filter.
func (f *FilterOptions) Matches(d Destination) bool {
	if f == nil {
		return true
	}
	if f.MaxPrice != nil && d.Price > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && d.AverageRating < *f.MinRating {
		return false
	}
	if f.MinReviews != nil && d.TotalReviews < *f.MinReviews {
		return false
	}
	if f.MinFacilities != nil && d.FacilityCount() < *f.MinFacilities {
		return false
	}
	return true
}
