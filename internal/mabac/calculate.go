package mabac

import (
	"math"
)

// ValidateCriteria checks that every criterion has a non-empty unique code,
// a weight in (0, 1] and a known direction.
func ValidateCriteria(criteria []Criterion) error {
	seen := make(map[string]struct{}, len(criteria))
	for _, c := range criteria {
		if c.Code == "" {
			return &CriterionError{Reason: "code is required"}
		}
		if _, dup := seen[c.Code]; dup {
			return &CriterionError{Code: c.Code, Reason: "duplicate code"}
		}
		seen[c.Code] = struct{}{}

		if math.IsNaN(c.Weight) || c.Weight <= 0 || c.Weight > 1 {
			return &CriterionError{Code: c.Code, Reason: "weight must be in (0, 1]"}
		}
		if !c.Type.IsValid() {
			return &CriterionError{Code: c.Code, Reason: "type must be benefit or cost"}
		}
	}
	return nil
}

// Calculate runs the full pipeline and returns the staged trail.
//
// Behavior:
//   - Criteria are validated before anything is built
//   - Any stage failure aborts the run; no partial Result is returned
//   - Inputs are copied into the Result, so later caller mutation has no effect
//   - Deterministic and safe for concurrent use
func Calculate(criteria []Criterion, alternatives []Alternative) (*Result, error) {
	if err := ValidateCriteria(criteria); err != nil {
		return nil, err
	}

	decision, err := BuildDecisionMatrix(criteria, alternatives)
	if err != nil {
		return nil, err
	}

	normalized, err := Normalize(decision, criteria)
	if err != nil {
		return nil, err
	}

	weighted, err := Weight(normalized, criteria)
	if err != nil {
		return nil, err
	}

	border, err := BorderApproximation(weighted)
	if err != nil {
		return nil, err
	}

	distance, err := Distance(weighted, border)
	if err != nil {
		return nil, err
	}

	scores := Scores(distance)

	ranking, err := Rank(alternatives, scores)
	if err != nil {
		return nil, err
	}

	return &Result{
		Criteria:     append([]Criterion(nil), criteria...),
		Alternatives: cloneAlternatives(alternatives),
		Decision:     decision,
		Normalized:   normalized,
		Weighted:     weighted,
		Border:       border,
		Distance:     distance,
		Scores:       scores,
		Ranking:      ranking,
	}, nil
}

func cloneAlternatives(alts []Alternative) []Alternative {
	out := make([]Alternative, len(alts))
	for i, a := range alts {
		out[i] = a
		out[i].Values = append([]float64(nil), a.Values...)
	}
	return out
}
