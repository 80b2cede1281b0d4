package http

import "time"

// RankingResponseDTO is the data block of a ranking response. Keys follow the
// published API: each stage matrix is exposed under its own name.
type RankingResponseDTO struct {
	RunID            string           `json:"run_id"`
	Source           string           `json:"source"`
	CalculatedAt     time.Time        `json:"calculated_at"`
	Criteria         []CriterionDTO   `json:"criteria"`
	InitialMatrix    []MatrixRowDTO   `json:"initial_matrix"`
	NormalizedMatrix []MatrixRowDTO   `json:"normalized_matrix"`
	WeightedMatrix   []MatrixRowDTO   `json:"weighted_matrix"`
	BorderAreaMatrix []BorderValueDTO `json:"border_area_matrix"`
	DistanceMatrix   []MatrixRowDTO   `json:"distance_matrix"`
	FinalRanking     []RankingRowDTO  `json:"final_ranking"`
}

// MatrixRowDTO is one alternative's row of a stage matrix.
type MatrixRowDTO struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// BorderValueDTO is the border approximation value of one criterion.
type BorderValueDTO struct {
	Code  string  `json:"code"`
	Value float64 `json:"value"`
}

// RankingRowDTO is one entry of the final ranking.
type RankingRowDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Rank        int     `json:"rank"`
	Recommended bool    `json:"recommended"`
}

// CriteriaResponseDTO lists the active criteria catalog.
type CriteriaResponseDTO struct {
	Criteria  []CatalogCriterionDTO `json:"criteria"`
	WeightSum float64               `json:"weight_sum"`
	Balanced  bool                  `json:"balanced"`
}

// CatalogCriterionDTO is a catalog criterion with the destination attribute it reads.
type CatalogCriterionDTO struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	Type      string  `json:"type"`
	Attribute string  `json:"attribute"`
}
