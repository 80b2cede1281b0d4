package mabac

import (
	"gonum.org/v1/gonum/mat"
)

// Weight scales every normalized column by its criterion weight:
// w[i][j] = n[i][j] * criteria[j].Weight.
func Weight(normalized Matrix, criteria []Criterion) (Matrix, error) {
	if err := checkShape(StageWeight, normalized, len(criteria)); err != nil {
		return nil, err
	}

	weights := make([]float64, len(criteria))
	for j, c := range criteria {
		weights[j] = c.Weight
	}

	var w mat.Dense
	w.Mul(toDense(normalized), mat.NewDiagDense(len(weights), weights))
	return fromDense(&w), nil
}
