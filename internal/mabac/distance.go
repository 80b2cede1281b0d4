package mabac

import (
	"gonum.org/v1/gonum/floats"
)

// Distance computes each alternative's signed distance from the border area:
// d[i][j] = w[i][j] - border[j]. Positive cells sit in the upper approximation
// area, negative cells in the lower one.
func Distance(weighted Matrix, border Vector) (Matrix, error) {
	if err := checkShape(StageDistance, weighted, len(border)); err != nil {
		return nil, err
	}

	out := make(Matrix, weighted.Rows())
	for i, row := range weighted {
		out[i] = make([]float64, len(row))
		floats.SubTo(out[i], row, border)
	}
	return out, nil
}

// Scores sums every distance row into the alternative's final score.
func Scores(distance Matrix) []float64 {
	scores := make([]float64, distance.Rows())
	for i, row := range distance {
		scores[i] = floats.Sum(row)
	}
	return scores
}
