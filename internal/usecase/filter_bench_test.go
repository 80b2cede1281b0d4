package usecase

import (
	"fmt"
	"testing"

	"github.com/wisata-ranking/destination-ranking/internal/criteria"
	"github.com/wisata-ranking/destination-ranking/internal/domain"
	"github.com/wisata-ranking/destination-ranking/internal/mabac"
)

func benchDestinations(n int) []domain.Destination {
	out := make([]domain.Destination, n)
	for i := range out {
		out[i] = domain.Destination{
			ID:            fmt.Sprintf("d-%d", i),
			Name:          fmt.Sprintf("Destination %d", i),
			Price:         float64(5000 + (i%20)*2500),
			Toilet:        i % 4,
			Parking:       i % 3,
			RestArea:      i % 2,
			AverageRating: 3 + float64(i%20)/10,
			TotalReviews:  50 + i*7,
			Accessibility: float64(i%5) + 0.5,
		}
	}
	return out
}

func BenchmarkApplyFilters(b *testing.B) {
	destinations := benchDestinations(500)

	b.Run("no_filters", func(b *testing.B) {
		filters := &domain.FilterOptions{}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyFilters(destinations, filters)
		}
	})

	b.Run("price_and_rating", func(b *testing.B) {
		maxPrice, minRating := 30000.0, 4.0
		filters := &domain.FilterOptions{MaxPrice: &maxPrice, MinRating: &minRating}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyFilters(destinations, filters)
		}
	})
}

func BenchmarkCalculate(b *testing.B) {
	catalog := criteria.Default()
	for _, n := range []int{10, 100, 1000} {
		alternatives := catalog.Alternatives(benchDestinations(n))
		crit := catalog.Criteria()
		b.Run(fmt.Sprintf("alternatives_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := mabac.Calculate(crit, alternatives); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
