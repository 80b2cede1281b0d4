package criteria

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisata-ranking/destination-ranking/internal/domain"
	"github.com/wisata-ranking/destination-ranking/internal/mabac"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.NoError(t, c.Validate())
	require.Len(t, c.Definitions, 5)
	assert.True(t, c.Balanced())
	assert.InDelta(t, 1.0, c.WeightSum(), 1e-9)

	codes := make([]string, 0, len(c.Definitions))
	for _, d := range c.Definitions {
		codes = append(codes, d.Code)
	}
	assert.Equal(t, []string{"C1", "C2", "C3", "C4", "C5"}, codes)

	// Price is the only cost criterion.
	assert.Equal(t, mabac.Cost, c.Definitions[2].Type)
	assert.Equal(t, domain.AttrPrice, c.Definitions[2].Attribute)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		wantLen int
	}{
		{
			name: "valid catalog",
			yaml: `
criteria:
  - code: R
    name: Rating
    weight: 0.7
    type: benefit
    attribute: rating
  - code: P
    name: Harga
    weight: 0.3
    type: cost
    attribute: price
`,
			wantLen: 2,
		},
		{
			name:    "empty catalog",
			yaml:    "criteria: []",
			wantErr: true,
		},
		{
			name: "unknown attribute",
			yaml: `
criteria:
  - code: A
    name: Altitude
    weight: 0.5
    type: benefit
    attribute: altitude
`,
			wantErr: true,
		},
		{
			name: "unknown type",
			yaml: `
criteria:
  - code: R
    name: Rating
    weight: 0.5
    type: maximize
    attribute: rating
`,
			wantErr: true,
		},
		{
			name: "duplicate code",
			yaml: `
criteria:
  - {code: R, name: Rating, weight: 0.5, type: benefit, attribute: rating}
  - {code: R, name: Reviews, weight: 0.5, type: benefit, attribute: reviews}
`,
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			yaml:    "criteria: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Len(t, c.Definitions, tt.wantLen)
		})
	}
}

func TestParse_InvalidCriterionIsTyped(t *testing.T) {
	_, err := Parse([]byte(`criteria: [{code: A, name: A, weight: 0.5, type: benefit, attribute: altitude}]`))

	assert.True(t, mabac.IsCriterionError(err))
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path returns default", func(t *testing.T) {
		c, err := LoadFile("")
		require.NoError(t, err)
		assert.Equal(t, Default(), c)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "criteria.yaml")
		content := "criteria:\n  - {code: R, name: Rating, weight: 1, type: benefit, attribute: rating}\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		c, err := LoadFile(path)
		require.NoError(t, err)
		require.Len(t, c.Definitions, 1)
		assert.Equal(t, domain.AttrRating, c.Definitions[0].Attribute)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "read criteria")
	})
}

func TestCatalog_Balanced(t *testing.T) {
	c := &Catalog{Definitions: []Definition{
		{Code: "A", Weight: 0.5, Type: mabac.Benefit, Attribute: domain.AttrRating},
		{Code: "B", Weight: 0.3, Type: mabac.Benefit, Attribute: domain.AttrReviews},
	}}

	assert.NoError(t, c.Validate())
	assert.False(t, c.Balanced())
}

func TestCatalog_Alternatives(t *testing.T) {
	destinations := []domain.Destination{
		{ID: "1", Name: "Pantai Losari", Price: 0, Toilet: 2, Parking: 1, AverageRating: 4.4, TotalReviews: 900, Accessibility: 4.8},
		{ID: "2", Name: "Malino", Price: 25000, RestArea: 3, Restaurant: 2, AverageRating: 4.7, TotalReviews: 310, Accessibility: 3.0},
	}

	alts := Default().Alternatives(destinations)

	require.Len(t, alts, 2)
	assert.Equal(t, "1", alts[0].ID)
	assert.Equal(t, "Pantai Losari", alts[0].Name)
	assert.Equal(t, []float64{4.4, 900, 0, 3, 4.8}, alts[0].Values)
	assert.Equal(t, []float64{4.7, 310, 25000, 5, 3.0}, alts[1].Values)
}

func TestCatalog_AlternativesFeedCalculation(t *testing.T) {
	c := Default()
	destinations := []domain.Destination{
		{ID: "1", Name: "A", Price: 10000, Toilet: 1, AverageRating: 4.0, TotalReviews: 100, Accessibility: 3},
		{ID: "2", Name: "B", Price: 5000, Toilet: 3, AverageRating: 4.5, TotalReviews: 200, Accessibility: 4},
	}

	result, err := mabac.Calculate(c.Criteria(), c.Alternatives(destinations))
	require.NoError(t, err)

	// B dominates A on every criterion.
	assert.Equal(t, "2", result.Ranking[0].AlternativeID)
}
