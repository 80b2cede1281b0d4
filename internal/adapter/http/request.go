// Package http provides the HTTP handler layer for the ranking API.
// It handles request parsing, validation, response formatting and error mapping.
package http

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/wisata-ranking/destination-ranking/internal/domain"
	"github.com/wisata-ranking/destination-ranking/internal/mabac"
)

// Request limits.
const (
	maxCriteria     = 32
	maxAlternatives = 1000
	maxIDs          = 1000
)

// CalculateRequest represents the request body for a custom MABAC calculation.
type CalculateRequest struct {
	// Criteria are the evaluation dimensions, in column order
	Criteria []CriterionDTO `json:"criteria"`

	// Alternatives are the candidates; each has one value per criterion
	Alternatives []AlternativeDTO `json:"alternatives"`
}

// CriterionDTO describes one criterion in a calculation request.
// Example: {"code": "C1", "name": "Rating", "weight": 0.25, "type": "benefit"}
type CriterionDTO struct {
	Code   string  `json:"code" example:"C1"`
	Name   string  `json:"name" example:"Rating"`
	Weight float64 `json:"weight" example:"0.25"`
	// Type is benefit or cost
	Type string `json:"type" example:"benefit"`
}

// AlternativeDTO describes one candidate in a calculation request.
type AlternativeDTO struct {
	ID     string    `json:"id" example:"1"`
	Name   string    `json:"name" example:"Pantai Losari"`
	Values []float64 `json:"values"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request and normalizes criterion types to lower case.
func (r *CalculateRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateCriteria(errs)
	r.validateAlternatives(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *CalculateRequest) validateCriteria(errs *ValidationErrors) {
	if len(r.Criteria) == 0 {
		errs.Add("criteria", "at least one criterion is required")
		return
	}
	if len(r.Criteria) > maxCriteria {
		errs.Add("criteria", fmt.Sprintf("at most %d criteria are allowed", maxCriteria))
		return
	}

	seen := make(map[string]bool, len(r.Criteria))
	for i := range r.Criteria {
		c := &r.Criteria[i]
		field := fmt.Sprintf("criteria[%d]", i)

		c.Code = strings.TrimSpace(c.Code)
		if c.Code == "" {
			errs.Add(field+".code", "code is required")
		} else if seen[c.Code] {
			errs.Add(field+".code", fmt.Sprintf("duplicate criterion code %q", c.Code))
		}
		seen[c.Code] = true

		if math.IsNaN(c.Weight) || c.Weight <= 0 || c.Weight > 1 {
			errs.Add(field+".weight", "weight must be greater than 0 and at most 1")
		}

		c.Type = strings.ToLower(strings.TrimSpace(c.Type))
		if !mabac.CriterionType(c.Type).IsValid() {
			errs.Add(field+".type", "type must be one of: benefit, cost")
		}
	}
}

func (r *CalculateRequest) validateAlternatives(errs *ValidationErrors) {
	if len(r.Alternatives) == 0 {
		errs.Add("alternatives", "at least one alternative is required")
		return
	}
	if len(r.Alternatives) > maxAlternatives {
		errs.Add("alternatives", fmt.Sprintf("at most %d alternatives are allowed", maxAlternatives))
		return
	}

	seen := make(map[string]bool, len(r.Alternatives))
	for i, a := range r.Alternatives {
		field := fmt.Sprintf("alternatives[%d]", i)

		id := strings.TrimSpace(a.ID)
		if id == "" {
			errs.Add(field+".id", "id is required")
		} else if seen[id] {
			errs.Add(field+".id", fmt.Sprintf("duplicate alternative id %q", id))
		}
		seen[id] = true

		// Row length mismatches are left to the engine so they surface as a
		// shape error naming the offending row.
		for j, v := range a.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				errs.Add(fmt.Sprintf("%s.values[%d]", field, j), "value must be a finite number")
			}
		}
	}
}

// ParseIDs splits a comma separated id list, dropping blanks and duplicates.
func ParseIDs(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	seen := make(map[string]bool, len(parts))
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		id := strings.TrimSpace(p)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	if len(ids) > maxIDs {
		return nil, fmt.Errorf("at most %d ids are allowed", maxIDs)
	}
	return ids, nil
}

// ParseFilter reads the optional destination filters from query parameters.
// It returns nil when none is present.
func ParseFilter(q url.Values) (*domain.FilterOptions, error) {
	errs := &ValidationErrors{}
	f := &domain.FilterOptions{
		MaxPrice:      parseFloatParam(q, "max_price", errs),
		MinRating:     parseFloatParam(q, "min_rating", errs),
		MinReviews:    parseIntParam(q, "min_reviews", errs),
		MinFacilities: parseIntParam(q, "min_facilities", errs),
	}
	if errs.HasErrors() {
		return nil, errs
	}
	if f.IsEmpty() {
		return nil, nil
	}
	return f, nil
}

func parseFloatParam(q url.Values, key string, errs *ValidationErrors) *float64 {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		errs.Add(key, "must be a number")
		return nil
	}
	return &v
}

func parseIntParam(q url.Values, key string, errs *ValidationErrors) *int {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(key, "must be an integer")
		return nil
	}
	return &v
}
