package mabac

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// degenerateValue is assigned to every cell of a column whose values are all equal.
const degenerateValue = 1.0

// Normalize applies direction-aware min-max normalization column by column:
//
//	benefit: (x - min) / (max - min)
//	cost:    (max - x) / (max - min)
//
// A column with max == min normalizes to 1 for every row. Every output value
// lies in [0, 1]. The decision matrix is not modified.
func Normalize(decision Matrix, criteria []Criterion) (Matrix, error) {
	if err := checkShape(StageNormalize, decision, len(criteria)); err != nil {
		return nil, err
	}

	out := make(Matrix, decision.Rows())
	for i := range out {
		out[i] = make([]float64, len(criteria))
	}

	for j, c := range criteria {
		col := decision.Column(j)
		lo, hi := floats.Min(col), floats.Max(col)
		span := hi - lo
		if math.IsInf(span, 0) {
			// Range overflows float64; rescale the column before taking it.
			s := math.Max(math.Abs(lo), math.Abs(hi))
			for i := range col {
				col[i] /= s
			}
			lo, hi = lo/s, hi/s
			span = hi - lo
		}

		for i, x := range col {
			out[i][j] = normalizeValue(x, lo, hi, span, c.Type)
		}
	}

	return out, nil
}

func normalizeValue(x, lo, hi, span float64, t CriterionType) float64 {
	if span == 0 {
		return degenerateValue
	}
	var v float64
	if t == Cost {
		v = (hi - x) / span
	} else {
		v = (x - lo) / span
	}
	// Clamp rounding drift at the edges.
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
