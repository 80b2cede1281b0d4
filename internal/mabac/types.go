// Package mabac implements the Multi-Attributive Border Approximation Area Comparison
// method as a pure, stateless batch transform.
//
// A calculation runs five ordered stages over an N×K decision matrix
// (N alternatives, K criteria):
//
//	Built -> Normalized -> Weighted -> BorderComputed -> Ranked
//
// Every stage consumes only the previous stage's output. Any failure aborts the
// run and no partial result is returned.
package mabac

import "fmt"

// CriterionType is the optimization direction of a criterion.
type CriterionType string

const (
	// Benefit criteria prefer higher raw values.
	Benefit CriterionType = "benefit"
	// Cost criteria prefer lower raw values.
	Cost CriterionType = "cost"
)

// IsValid reports whether t is a known direction.
func (t CriterionType) IsValid() bool {
	return t == Benefit || t == Cost
}

// ParseCriterionType converts a string into a CriterionType.
func ParseCriterionType(s string) (CriterionType, error) {
	t := CriterionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: unknown criterion type %q", ErrInvalidCriterion, s)
	}
	return t, nil
}

// Criterion is one evaluation dimension.
type Criterion struct {
	Code   string        `json:"code" yaml:"code"`
	Name   string        `json:"name" yaml:"name"`
	Weight float64       `json:"weight" yaml:"weight"`
	Type   CriterionType `json:"type" yaml:"type"`
}

// Alternative is one candidate being ranked.
// Values are aligned with the criteria order passed to the calculation.
type Alternative struct {
	ID     string    `json:"id" yaml:"id"`
	Name   string    `json:"name" yaml:"name"`
	Values []float64 `json:"values" yaml:"values"`
}

// Matrix is a rectangular N×K grid. Rows follow alternative input order,
// columns follow criteria order.
type Matrix [][]float64

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Column returns a copy of column j.
func (m Matrix) Column(j int) []float64 {
	col := make([]float64, len(m))
	for i := range m {
		col[i] = m[i][j]
	}
	return col
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Vector holds one value per criterion.
type Vector []float64

// RankedResult is an alternative's final position.
type RankedResult struct {
	AlternativeID string  `json:"id"`
	Name          string  `json:"name"`
	Score         float64 `json:"score"`
	Rank          int     `json:"rank"`
}

// Stage identifies a pipeline step.
type Stage int

const (
	StageBuild Stage = iota
	StageNormalize
	StageWeight
	StageBorder
	StageDistance
	StageRank
)

var stageNames = map[Stage]string{
	StageBuild:     "build",
	StageNormalize: "normalize",
	StageWeight:    "weight",
	StageBorder:    "border",
	StageDistance:  "distance",
	StageRank:      "rank",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Result is the immutable trail of a completed calculation.
type Result struct {
	Criteria     []Criterion
	Alternatives []Alternative
	Decision     Matrix
	Normalized   Matrix
	Weighted     Matrix
	Border       Vector
	Distance     Matrix
	// Scores is indexed by alternative input order.
	Scores  []float64
	Ranking []RankedResult
}

// Top returns a copy of the first n entries of the ranking.
func (r *Result) Top(n int) []RankedResult {
	if n > len(r.Ranking) {
		n = len(r.Ranking)
	}
	if n < 0 {
		n = 0
	}
	return append([]RankedResult(nil), r.Ranking[:n]...)
}
