// Package domain contains the core business entities for the destination ranking service.
// Entities are store-agnostic; stores translate their rows into these types.
package domain

import (
	"fmt"
	"math"
)

// Destination is a tourist destination evaluated by the ranking engine.
type Destination struct {
	// ID is the store identifier of the destination
	ID string `json:"id" yaml:"id"`

	// Name is the display name (e.g., "Pantai Tanjung Bira")
	Name string `json:"name" yaml:"name"`

	// Address is a free-form location description
	Address string `json:"address,omitempty" yaml:"address"`

	// Price is the entrance ticket price in IDR
	Price float64 `json:"price" yaml:"price"`

	// Facility counts
	Toilet     int `json:"toilet" yaml:"toilet"`
	Parking    int `json:"parking" yaml:"parking"`
	RestArea   int `json:"restArea" yaml:"rest_area"`
	Restaurant int `json:"restaurant" yaml:"restaurant"`

	// AverageRating is the mean visitor rating on a 0-5 scale
	AverageRating float64 `json:"averageRating" yaml:"average_rating"`

	// TotalReviews is the number of visitor reviews
	TotalReviews int `json:"totalReviews" yaml:"total_reviews"`

	// Accessibility is a curated 0-5 access score (roads, transport, signage)
	Accessibility float64 `json:"accessibility" yaml:"accessibility"`

	// ReviewScores holds the per-aspect review averages
	ReviewScores ReviewScores `json:"reviewScores" yaml:"review_scores"`
}

// ReviewScores are average visitor ratings for individual aspects, each on a 0-5 scale.
type ReviewScores struct {
	Cleanliness float64 `json:"cleanliness" yaml:"c1"`
	Facilities  float64 `json:"facilities" yaml:"c2"`
	Access      float64 `json:"access" yaml:"c3"`
	Safety      float64 `json:"safety" yaml:"c4"`
	Scenery     float64 `json:"scenery" yaml:"c5"`
	Service     float64 `json:"service" yaml:"c6"`
	Value       float64 `json:"value" yaml:"c7"`
}

// FacilityCount returns the total number of on-site facilities.
func (d *Destination) FacilityCount() int {
	return d.Toilet + d.Parking + d.RestArea + d.Restaurant
}

// Validate checks that a destination can be stored and ranked.
func (d *Destination) Validate() error {
	if d.ID == "" {
		return NewValidationError("id", "is required")
	}
	if d.Name == "" {
		return NewValidationError("name", "is required")
	}
	if d.Price < 0 || math.IsNaN(d.Price) || math.IsInf(d.Price, 0) {
		return NewValidationError("price", "must be a non-negative number")
	}
	if d.Toilet < 0 || d.Parking < 0 || d.RestArea < 0 || d.Restaurant < 0 {
		return NewValidationError("facilities", "counts cannot be negative")
	}
	if d.TotalReviews < 0 {
		return NewValidationError("totalReviews", "cannot be negative")
	}
	if !inScale(d.AverageRating) {
		return NewValidationError("averageRating", fmt.Sprintf("must be between 0 and %g", MaxScore))
	}
	if !inScale(d.Accessibility) {
		return NewValidationError("accessibility", fmt.Sprintf("must be between 0 and %g", MaxScore))
	}
	return nil
}

// MaxScore is the upper bound of every rating scale.
const MaxScore = 5.0

func inScale(v float64) bool {
	return v >= 0 && v <= MaxScore
}
