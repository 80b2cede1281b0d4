package mabac

import (
	"sort"
)

// Rank orders alternatives by score, highest first. Alternatives with exactly
// equal scores keep their input order. Ranks run 1..N with no gaps or shared
// positions.
func Rank(alternatives []Alternative, scores []float64) ([]RankedResult, error) {
	if len(alternatives) == 0 {
		return nil, newShapeError(StageRank, -1, "no alternatives")
	}
	if len(scores) != len(alternatives) {
		return nil, newShapeError(StageRank, -1,
			"%d scores for %d alternatives", len(scores), len(alternatives))
	}

	order := make([]int, len(alternatives))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	ranking := make([]RankedResult, len(order))
	for pos, idx := range order {
		ranking[pos] = RankedResult{
			AlternativeID: alternatives[idx].ID,
			Name:          alternatives[idx].Name,
			Score:         scores[idx],
			Rank:          pos + 1,
		}
	}
	return ranking, nil
}
