// Package dataset reads destination datasets from YAML files.
package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wisata-ranking/destination-ranking/internal/domain"
)

type file struct {
	Destinations []domain.Destination `yaml:"destinations"`
}

// Load reads and validates a dataset file.
func Load(path string) ([]domain.Destination, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes a dataset document of the form:
//
//	destinations:
//	  - id: "1"
//	    name: Pantai Losari
//	    price: 0
//	    ...
//
// Every destination is validated and ids must be unique.
func Parse(data []byte) ([]domain.Destination, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Destinations))
	for i := range f.Destinations {
		d := &f.Destinations[i]
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("destination %d: %w", i, err)
		}
		if _, dup := seen[d.ID]; dup {
			return nil, domain.WrapInvalidRequest("duplicate destination id %q", d.ID)
		}
		seen[d.ID] = struct{}{}
	}
	return f.Destinations, nil
}
