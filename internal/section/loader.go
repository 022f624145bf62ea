package section

import (
	"encoding/json"
	"os"
)

// BeamCase bundles the inputs for one beam of a structural line.
type BeamCase struct {
	Name     string   `json:"name,omitempty"`
	Geometry Geometry `json:"geometry"`
	Material Material `json:"material"`
	Demand   Demand   `json:"demand"`
}

// Validate checks every component of the case.
func (b BeamCase) Validate() error {
	if err := b.Geometry.Validate(); err != nil {
		return err
	}
	if err := b.Material.Validate(); err != nil {
		return err
	}
	return b.Demand.Validate()
}

// LoadBeamsFromFile loads an ordered beam line from a JSON file.
func LoadBeamsFromFile(filepath string) ([]BeamCase, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var beams []BeamCase
	if err := json.Unmarshal(data, &beams); err != nil {
		return nil, err
	}
	if len(beams) == 0 {
		return nil, Errorf("beam file %s contains no beams", filepath)
	}

	for i, b := range beams {
		if err := b.Validate(); err != nil {
			return nil, Errorf("beam %d: %v", i+1, err)
		}
	}

	return beams, nil
}
