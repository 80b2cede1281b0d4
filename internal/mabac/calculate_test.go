package mabac

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func sampleCriteria() []Criterion {
	return []Criterion{
		{Code: "C1", Name: "Rating", Weight: 0.6, Type: Benefit},
		{Code: "C2", Name: "Price", Weight: 0.4, Type: Cost},
	}
}

func sampleAlternatives() []Alternative {
	return []Alternative{
		{ID: "alt1", Name: "Pantai Indah", Values: []float64{10, 5}},
		{ID: "alt2", Name: "Air Terjun", Values: []float64{20, 5}},
		{ID: "alt3", Name: "Bukit Hijau", Values: []float64{30, 15}},
	}
}

func assertMatrixInDelta(t *testing.T, want, got Matrix) {
	t.Helper()
	require.Equal(t, len(want), len(got), "row count")
	for i := range want {
		require.Equal(t, len(want[i]), len(got[i]), "column count of row %d", i)
		for j := range want[i] {
			assert.InDelta(t, want[i][j], got[i][j], tolerance, "cell [%d][%d]", i, j)
		}
	}
}

func TestCalculate_ConcreteScenario(t *testing.T) {
	result, err := Calculate(sampleCriteria(), sampleAlternatives())
	require.NoError(t, err)

	assertMatrixInDelta(t, Matrix{{10, 5}, {20, 5}, {30, 15}}, result.Decision)
	assertMatrixInDelta(t, Matrix{{0, 1}, {0.5, 1}, {1, 0}}, result.Normalized)
	assertMatrixInDelta(t, Matrix{{0, 0.4}, {0.3, 0.4}, {0.6, 0}}, result.Weighted)

	require.Len(t, result.Border, 2)
	assert.Equal(t, 0.0, result.Border[0])
	assert.Equal(t, 0.0, result.Border[1])

	assertMatrixInDelta(t, result.Weighted, result.Distance)

	require.Len(t, result.Scores, 3)
	assert.InDelta(t, 0.4, result.Scores[0], tolerance)
	assert.InDelta(t, 0.7, result.Scores[1], tolerance)
	assert.InDelta(t, 0.6, result.Scores[2], tolerance)

	require.Len(t, result.Ranking, 3)
	assert.Equal(t, "alt2", result.Ranking[0].AlternativeID)
	assert.Equal(t, "alt3", result.Ranking[1].AlternativeID)
	assert.Equal(t, "alt1", result.Ranking[2].AlternativeID)
	for i, r := range result.Ranking {
		assert.Equal(t, i+1, r.Rank)
	}
}

func TestCalculate_SingleAlternative(t *testing.T) {
	criteria := sampleCriteria()
	alts := []Alternative{{ID: "only", Name: "Only", Values: []float64{42, 7}}}

	result, err := Calculate(criteria, alts)
	require.NoError(t, err)

	// Every column is degenerate.
	assertMatrixInDelta(t, Matrix{{1, 1}}, result.Normalized)
	assertMatrixInDelta(t, Matrix{{0.6, 0.4}}, result.Weighted)
	assert.InDelta(t, 0.6, result.Border[0], tolerance)
	assert.InDelta(t, 0.4, result.Border[1], tolerance)
	assert.InDelta(t, 0.0, result.Scores[0], tolerance)

	require.Len(t, result.Ranking, 1)
	assert.Equal(t, 1, result.Ranking[0].Rank)
	assert.Equal(t, "only", result.Ranking[0].AlternativeID)
}

func TestCalculate_ShapeErrors(t *testing.T) {
	tests := []struct {
		name     string
		criteria []Criterion
		alts     []Alternative
		wantRow  int
	}{
		{
			name:     "no alternatives",
			criteria: sampleCriteria(),
			alts:     nil,
			wantRow:  -1,
		},
		{
			name:     "no criteria",
			criteria: []Criterion{},
			alts:     []Alternative{{ID: "a", Values: nil}},
			wantRow:  -1,
		},
		{
			name:     "short row",
			criteria: sampleCriteria(),
			alts: []Alternative{
				{ID: "a", Values: []float64{1, 2}},
				{ID: "b", Values: []float64{1}},
			},
			wantRow: 1,
		},
		{
			name:     "long row",
			criteria: sampleCriteria(),
			alts:     []Alternative{{ID: "a", Values: []float64{1, 2, 3}}},
			wantRow:  0,
		},
		{
			name:     "NaN value",
			criteria: sampleCriteria(),
			alts:     []Alternative{{ID: "a", Values: []float64{1, math.NaN()}}},
			wantRow:  0,
		},
		{
			name:     "infinite value",
			criteria: sampleCriteria(),
			alts: []Alternative{
				{ID: "a", Values: []float64{1, 2}},
				{ID: "b", Values: []float64{math.Inf(1), 2}},
			},
			wantRow: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Calculate(tt.criteria, tt.alts)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, ErrShape))
			assert.True(t, IsShapeError(err))

			var shapeErr *ShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, StageBuild, shapeErr.Stage)
			assert.Equal(t, tt.wantRow, shapeErr.Row)
		})
	}
}

func TestValidateCriteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria []Criterion
		wantCode string
		wantErr  bool
	}{
		{
			name:     "valid criteria",
			criteria: sampleCriteria(),
		},
		{
			name:     "empty code",
			criteria: []Criterion{{Code: "", Weight: 0.5, Type: Benefit}},
			wantErr:  true,
		},
		{
			name: "duplicate code",
			criteria: []Criterion{
				{Code: "C1", Weight: 0.5, Type: Benefit},
				{Code: "C1", Weight: 0.5, Type: Cost},
			},
			wantCode: "C1",
			wantErr:  true,
		},
		{
			name:     "zero weight",
			criteria: []Criterion{{Code: "C1", Weight: 0, Type: Benefit}},
			wantCode: "C1",
			wantErr:  true,
		},
		{
			name:     "negative weight",
			criteria: []Criterion{{Code: "C1", Weight: -0.2, Type: Benefit}},
			wantCode: "C1",
			wantErr:  true,
		},
		{
			name:     "weight above one",
			criteria: []Criterion{{Code: "C1", Weight: 1.5, Type: Benefit}},
			wantCode: "C1",
			wantErr:  true,
		},
		{
			name:     "unknown type",
			criteria: []Criterion{{Code: "C1", Weight: 0.5, Type: "neutral"}},
			wantCode: "C1",
			wantErr:  true,
		},
		{
			name:     "weight of exactly one",
			criteria: []Criterion{{Code: "C1", Weight: 1, Type: Cost}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCriteria(tt.criteria)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, IsCriterionError(err))

			var critErr *CriterionError
			require.True(t, errors.As(err, &critErr))
			assert.Equal(t, tt.wantCode, critErr.Code)
		})
	}
}

func TestCalculate_InvalidCriteriaFailsBeforeBuild(t *testing.T) {
	criteria := []Criterion{{Code: "C1", Weight: 2, Type: Benefit}}

	result, err := Calculate(criteria, nil)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, IsCriterionError(err))
	assert.False(t, IsShapeError(err))
}

func TestCalculate_TiesKeepInputOrder(t *testing.T) {
	alts := []Alternative{
		{ID: "first", Values: []float64{10, 10}},
		{ID: "second", Values: []float64{10, 10}},
		{ID: "third", Values: []float64{10, 10}},
	}

	result, err := Calculate(sampleCriteria(), alts)
	require.NoError(t, err)

	ids := []string{result.Ranking[0].AlternativeID, result.Ranking[1].AlternativeID, result.Ranking[2].AlternativeID}
	assert.Equal(t, []string{"first", "second", "third"}, ids)
	assert.Equal(t, []int{1, 2, 3}, []int{result.Ranking[0].Rank, result.Ranking[1].Rank, result.Ranking[2].Rank})
}

func TestCalculate_PermutationInvariance(t *testing.T) {
	alts := []Alternative{
		{ID: "a", Values: []float64{4.5, 120, 3}},
		{ID: "b", Values: []float64{3.9, 80, 5}},
		{ID: "c", Values: []float64{4.8, 200, 2}},
		{ID: "d", Values: []float64{4.1, 60, 4}},
	}
	criteria := []Criterion{
		{Code: "R", Weight: 0.5, Type: Benefit},
		{Code: "P", Weight: 0.3, Type: Cost},
		{Code: "F", Weight: 0.2, Type: Benefit},
	}
	permuted := []Alternative{alts[2], alts[0], alts[3], alts[1]}

	original, err := Calculate(criteria, alts)
	require.NoError(t, err)
	shuffled, err := Calculate(criteria, permuted)
	require.NoError(t, err)

	scoreByID := func(r *Result) map[string]float64 {
		m := make(map[string]float64)
		for i, a := range r.Alternatives {
			m[a.ID] = r.Scores[i]
		}
		return m
	}

	want := scoreByID(original)
	got := scoreByID(shuffled)
	for id, score := range want {
		assert.InDelta(t, score, got[id], tolerance, "score of %s", id)
	}

	for i := range original.Ranking {
		assert.Equal(t, original.Ranking[i].AlternativeID, shuffled.Ranking[i].AlternativeID)
	}
}

func TestCalculate_ScoreIsDistanceRowSum(t *testing.T) {
	alts := []Alternative{
		{ID: "a", Values: []float64{4.5, 120}},
		{ID: "b", Values: []float64{3.9, 80}},
		{ID: "c", Values: []float64{4.2, 95}},
	}

	result, err := Calculate(sampleCriteria(), alts)
	require.NoError(t, err)

	for i, row := range result.Distance {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		assert.InDelta(t, sum, result.Scores[i], tolerance)
	}
	for j := range result.Border {
		assert.GreaterOrEqual(t, result.Border[j], 0.0)
	}
}

func TestCalculate_DoesNotAliasInput(t *testing.T) {
	criteria := sampleCriteria()
	alts := sampleAlternatives()

	result, err := Calculate(criteria, alts)
	require.NoError(t, err)

	alts[0].Values[0] = 999
	alts[0].ID = "mutated"
	criteria[0].Weight = 0.01

	assert.Equal(t, 10.0, result.Decision[0][0])
	assert.Equal(t, 10.0, result.Alternatives[0].Values[0])
	assert.Equal(t, "alt1", result.Alternatives[0].ID)
	assert.Equal(t, 0.6, result.Criteria[0].Weight)
}

func TestCalculate_Deterministic(t *testing.T) {
	first, err := Calculate(sampleCriteria(), sampleAlternatives())
	require.NoError(t, err)

	const workers = 16
	results := make([]*Result, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			r, err := Calculate(sampleCriteria(), sampleAlternatives())
			if err == nil {
				results[idx] = r
			}
		}(w)
	}
	wg.Wait()

	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, first.Scores, r.Scores)
		assert.Equal(t, first.Ranking, r.Ranking)
	}
}

func TestResult_Top(t *testing.T) {
	result, err := Calculate(sampleCriteria(), sampleAlternatives())
	require.NoError(t, err)

	assert.Len(t, result.Top(2), 2)
	assert.Len(t, result.Top(10), 3)
	assert.Empty(t, result.Top(-1))
	assert.Equal(t, "alt2", result.Top(1)[0].AlternativeID)
}

func TestResult_TopReturnsCopy(t *testing.T) {
	result, err := Calculate(sampleCriteria(), sampleAlternatives())
	require.NoError(t, err)

	top := result.Top(2)
	top[0].AlternativeID = "changed"
	top[0].Score = -1

	assert.Equal(t, "alt2", result.Ranking[0].AlternativeID)
	assert.NotEqual(t, -1.0, result.Ranking[0].Score)
}

func TestCalculate_ConstantCriterionKeepsOrder(t *testing.T) {
	rankedIDs := func(r *Result) []string {
		ids := make([]string, len(r.Ranking))
		for i, e := range r.Ranking {
			ids[i] = e.AlternativeID
		}
		return ids
	}

	base, err := Calculate(sampleCriteria(), sampleAlternatives())
	require.NoError(t, err)

	for _, typ := range []CriterionType{Benefit, Cost} {
		t.Run(string(typ), func(t *testing.T) {
			crit := append(sampleCriteria(), Criterion{Code: "C3", Name: "Parking", Weight: 0.2, Type: typ})
			alts := sampleAlternatives()
			for i := range alts {
				alts[i].Values = append(append([]float64(nil), alts[i].Values...), 4)
			}

			extended, err := Calculate(crit, alts)
			require.NoError(t, err)

			assert.Equal(t, rankedIDs(base), rankedIDs(extended))
			for i := range base.Scores {
				assert.InDelta(t, base.Scores[i], extended.Scores[i], tolerance)
			}
		})
	}
}
