package mabac

import (
	"gonum.org/v1/gonum/stat"
)

// BorderApproximation computes the border approximation area for every column as
// the geometric mean of the weighted values:
//
//	g[j] = (Π_i w[i][j]) ^ (1/N)
//
// evaluated as exp(mean(log w)) so large N does not underflow the product.
// A column containing an exact zero has a border of 0.
func BorderApproximation(weighted Matrix) (Vector, error) {
	if err := checkShape(StageBorder, weighted, weighted.Cols()); err != nil {
		return nil, err
	}
	if err := checkFinite(StageBorder, weighted); err != nil {
		return nil, err
	}

	border := make(Vector, weighted.Cols())
	for j := range border {
		col := weighted.Column(j)

		hasZero := false
		for i, v := range col {
			if v < 0 {
				return nil, newShapeError(StageBorder, i, "negative weighted value in column %d", j)
			}
			if v == 0 {
				hasZero = true
			}
		}
		if hasZero {
			border[j] = 0
			continue
		}

		border[j] = stat.GeometricMean(col, nil)
	}

	return border, nil
}
