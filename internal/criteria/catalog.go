// Package criteria manages the catalog of ranking criteria and binds each
// criterion to a destination attribute.
package criteria

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wisata-ranking/destination-ranking/internal/domain"
	"github.com/wisata-ranking/destination-ranking/internal/mabac"
)

// weightSumTolerance is how far the weight total may drift from 1.0 before
// Balanced reports false.
const weightSumTolerance = 0.001

// Definition is a criterion plus the destination attribute it measures.
type Definition struct {
	Code      string              `json:"code" yaml:"code"`
	Name      string              `json:"name" yaml:"name"`
	Weight    float64             `json:"weight" yaml:"weight"`
	Type      mabac.CriterionType `json:"type" yaml:"type"`
	Attribute domain.Attribute    `json:"attribute" yaml:"attribute"`
}

// Criterion returns the engine view of the definition.
func (d Definition) Criterion() mabac.Criterion {
	return mabac.Criterion{Code: d.Code, Name: d.Name, Weight: d.Weight, Type: d.Type}
}

// Catalog is an ordered set of criteria definitions. Order determines matrix
// column order.
type Catalog struct {
	Definitions []Definition `yaml:"criteria"`
}

// Default returns the built-in tourism catalog.
func Default() *Catalog {
	return &Catalog{
		Definitions: []Definition{
			{Code: "C1", Name: "Rating", Weight: 0.25, Type: mabac.Benefit, Attribute: domain.AttrRating},
			{Code: "C2", Name: "Reviews", Weight: 0.20, Type: mabac.Benefit, Attribute: domain.AttrReviews},
			{Code: "C3", Name: "Harga", Weight: 0.15, Type: mabac.Cost, Attribute: domain.AttrPrice},
			{Code: "C4", Name: "Fasilitas", Weight: 0.20, Type: mabac.Benefit, Attribute: domain.AttrFacilities},
			{Code: "C5", Name: "Aksesibilitas", Weight: 0.20, Type: mabac.Benefit, Attribute: domain.AttrAccessibility},
		},
	}
}

// LoadFile reads a YAML catalog from path. An empty path returns Default.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read criteria: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse criteria: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every definition and that the catalog is non-empty.
func (c *Catalog) Validate() error {
	if len(c.Definitions) == 0 {
		return fmt.Errorf("%w: catalog has no criteria", mabac.ErrInvalidCriterion)
	}
	if err := mabac.ValidateCriteria(c.Criteria()); err != nil {
		return err
	}
	for _, d := range c.Definitions {
		if _, err := domain.ParseAttribute(string(d.Attribute)); err != nil {
			return &mabac.CriterionError{Code: d.Code, Reason: fmt.Sprintf("unknown attribute %q", d.Attribute)}
		}
	}
	return nil
}

// WeightSum returns the total of all weights.
func (c *Catalog) WeightSum() float64 {
	var sum float64
	for _, d := range c.Definitions {
		sum += d.Weight
	}
	return sum
}

// Balanced reports whether the weights sum to 1.0 within tolerance.
// Unbalanced catalogs are still usable.
func (c *Catalog) Balanced() bool {
	return math.Abs(c.WeightSum()-1.0) <= weightSumTolerance
}

// Criteria returns the engine criteria in catalog order.
func (c *Catalog) Criteria() []mabac.Criterion {
	out := make([]mabac.Criterion, len(c.Definitions))
	for i, d := range c.Definitions {
		out[i] = d.Criterion()
	}
	return out
}

// Alternatives builds one alternative per destination, reading each criterion's
// bound attribute in catalog order. Destination order is preserved.
func (c *Catalog) Alternatives(destinations []domain.Destination) []mabac.Alternative {
	alts := make([]mabac.Alternative, len(destinations))
	for i := range destinations {
		d := &destinations[i]
		values := make([]float64, len(c.Definitions))
		for j, def := range c.Definitions {
			values[j] = d.MustValue(def.Attribute)
		}
		alts[i] = mabac.Alternative{ID: d.ID, Name: d.Name, Values: values}
	}
	return alts
}
