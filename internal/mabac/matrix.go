package mabac

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// checkShape verifies m is a non-empty N×k grid.
func checkShape(stage Stage, m Matrix, k int) error {
	if len(m) == 0 {
		return newShapeError(stage, -1, "no rows")
	}
	if k == 0 {
		return newShapeError(stage, -1, "no columns")
	}
	for i, row := range m {
		if len(row) != k {
			return newShapeError(stage, i, "expected %d columns, got %d", k, len(row))
		}
	}
	return nil
}

// checkFinite rejects NaN and infinite cells.
func checkFinite(stage Stage, m Matrix) error {
	for i, row := range m {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return newShapeError(stage, i, "non-finite value")
			}
		}
	}
	return nil
}

func toDense(m Matrix) *mat.Dense {
	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	for _, row := range m {
		data = append(data, row...)
	}
	return mat.NewDense(r, c, data)
}

func fromDense(d mat.Matrix) Matrix {
	r, _ := d.Dims()
	out := make(Matrix, r)
	for i := range out {
		out[i] = mat.Row(nil, i, d)
	}
	return out
}
