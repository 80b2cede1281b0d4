package domain

import (
	"time"

	"github.com/wisata-ranking/destination-ranking/internal/mabac"
)

// RankingSource identifies where the ranked alternatives came from.
type RankingSource string

const (
	// SourceStored ranks destinations read from the destination store.
	SourceStored RankingSource = "stored"
	// SourceCustom ranks caller-supplied criteria and alternatives.
	SourceCustom RankingSource = "custom"
)

// DefaultRecommendedTop is how many leading destinations are flagged as recommended.
const DefaultRecommendedTop = 3

// RankingRun is one completed MABAC calculation with its metadata.
type RankingRun struct {
	// ID uniquely identifies the run (UUID)
	ID string

	Source       RankingSource
	CalculatedAt time.Time

	// Result is the full staged calculation trail
	Result *mabac.Result

	// RecommendedTop is the number of leading ranks flagged as recommended
	RecommendedTop int
}

// IsRecommended reports whether the given rank is within the recommended band.
func (r *RankingRun) IsRecommended(rank int) bool {
	return rank >= 1 && rank <= r.RecommendedTop
}

// Winner returns the first ranked alternative, if any.
func (r *RankingRun) Winner() (mabac.RankedResult, bool) {
	if r.Result == nil || len(r.Result.Ranking) == 0 {
		return mabac.RankedResult{}, false
	}
	return r.Result.Ranking[0], true
}
