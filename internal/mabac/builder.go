package mabac

// BuildDecisionMatrix assembles the N×K decision matrix where m[i][j] is the raw
// value of alternative i on criterion j.
//
// Returns a *ShapeError when there are no alternatives, no criteria, an
// alternative whose value count differs from the criteria count, or a
// non-finite raw value. Inputs are copied, never aliased.
func BuildDecisionMatrix(criteria []Criterion, alternatives []Alternative) (Matrix, error) {
	if len(alternatives) == 0 {
		return nil, newShapeError(StageBuild, -1, "no alternatives")
	}
	if len(criteria) == 0 {
		return nil, newShapeError(StageBuild, -1, "no criteria")
	}

	k := len(criteria)
	m := make(Matrix, len(alternatives))
	for i, alt := range alternatives {
		if len(alt.Values) != k {
			return nil, newShapeError(StageBuild, i,
				"alternative %q has %d values, expected %d", alt.ID, len(alt.Values), k)
		}
		m[i] = append([]float64(nil), alt.Values...)
	}

	if err := checkFinite(StageBuild, m); err != nil {
		return nil, err
	}
	return m, nil
}
