// Package pricing holds the unit-price and embodied-carbon tables the
// optimizers and the takeoff use. The engine treats the table as an
// opaque lookup; callers normally load it from an external source.
package pricing

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gorcopt/internal/section"
)

// Table holds unit prices (currency-neutral) and carbon factors.
type Table struct {
	// SteelPerKg is the installed price of reinforcement per kilogram.
	SteelPerKg float64 `yaml:"steel_per_kg"`
	// ConcretePerCuM is the placed price per cubic meter, keyed by grade.
	ConcretePerCuM map[string]float64 `yaml:"concrete_per_cum"`

	// CarbonSteelPerKg is embodied carbon per kilogram of rebar (kgCO₂e).
	CarbonSteelPerKg float64 `yaml:"carbon_steel_per_kg"`
	// CarbonConcretePerCuM is embodied carbon per cubic meter, by grade.
	CarbonConcretePerCuM map[string]float64 `yaml:"carbon_concrete_per_cum"`

	// SteelDensity in kg/m³.
	SteelDensity float64 `yaml:"steel_density"`
}

// Default returns a table of representative market rates.
func Default() Table {
	return Table{
		SteelPerKg: 65,
		ConcretePerCuM: map[string]float64{
			"M15": 4300, "M20": 4800, "M25": 5200,
			"M30": 5700, "M35": 6100, "M40": 6600,
		},
		CarbonSteelPerKg: 1.85,
		CarbonConcretePerCuM: map[string]float64{
			"M15": 230, "M20": 265, "M25": 310,
			"M30": 350, "M35": 385, "M40": 420,
		},
		SteelDensity: 7850,
	}
}

// LoadFromFile loads a price table from a YAML file. Fields missing from
// the file fall back to the defaults.
func LoadFromFile(filepath string) (Table, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return Table{}, err
	}

	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, err
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// Validate rejects non-positive rates.
func (t Table) Validate() error {
	if t.SteelPerKg <= 0 {
		return section.Errorf("steel price must be positive, got %.2f", t.SteelPerKg)
	}
	if t.SteelDensity <= 0 {
		return section.Errorf("steel density must be positive, got %.2f", t.SteelDensity)
	}
	for g, p := range t.ConcretePerCuM {
		if p <= 0 {
			return section.Errorf("concrete price for %s must be positive, got %.2f", g, p)
		}
	}
	return nil
}

// ConcretePrice returns the per-m³ price for a grade, falling back to the
// default table when the grade is not listed.
func (t Table) ConcretePrice(g section.ConcreteGrade) float64 {
	if p, ok := t.ConcretePerCuM[string(g)]; ok {
		return p
	}
	return Default().ConcretePerCuM[string(g)]
}

// ConcreteCarbon returns the per-m³ embodied carbon for a grade.
func (t Table) ConcreteCarbon(g section.ConcreteGrade) float64 {
	if c, ok := t.CarbonConcretePerCuM[string(g)]; ok {
		return c
	}
	return Default().CarbonConcretePerCuM[string(g)]
}

// SteelMass converts a bar area (mm²) running over a length (mm) to
// kilograms.
func (t Table) SteelMass(area, length float64) float64 {
	return area * length * 1e-9 * t.SteelDensity
}
