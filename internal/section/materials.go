package section

// ConcreteGrade identifies a code-recognized concrete grade. Only the
// enumerated grades are valid; arbitrary strengths are rejected.
type ConcreteGrade string

const (
	M15 ConcreteGrade = "M15"
	M20 ConcreteGrade = "M20"
	M25 ConcreteGrade = "M25"
	M30 ConcreteGrade = "M30"
	M35 ConcreteGrade = "M35"
	M40 ConcreteGrade = "M40"
)

// ConcreteGrades lists the recognized grades in ascending strength.
var ConcreteGrades = []ConcreteGrade{M15, M20, M25, M30, M35, M40}

var concreteStrengths = map[ConcreteGrade]float64{
	M15: 15, M20: 20, M25: 25, M30: 30, M35: 35, M40: 40,
}

// Fck returns the characteristic compressive strength in MPa, or 0 for an
// unrecognized grade.
func (g ConcreteGrade) Fck() float64 {
	return concreteStrengths[g]
}

// Valid reports whether the grade is one of the enumerated set.
func (g ConcreteGrade) Valid() bool {
	_, ok := concreteStrengths[g]
	return ok
}

// SteelGrade identifies a code-recognized reinforcement steel grade.
type SteelGrade string

const (
	Fe250 SteelGrade = "Fe250"
	Fe415 SteelGrade = "Fe415"
	Fe500 SteelGrade = "Fe500"
)

// SteelGrades lists the recognized grades in ascending strength.
var SteelGrades = []SteelGrade{Fe250, Fe415, Fe500}

var steelStrengths = map[SteelGrade]float64{
	Fe250: 250, Fe415: 415, Fe500: 500,
}

// Fy returns the characteristic yield strength in MPa, or 0 for an
// unrecognized grade.
func (g SteelGrade) Fy() float64 {
	return steelStrengths[g]
}

// Valid reports whether the grade is one of the enumerated set.
func (g SteelGrade) Valid() bool {
	_, ok := steelStrengths[g]
	return ok
}

// Deformed reports whether bars of this grade are high-yield deformed
// bars. Fe250 is plain mild steel; the higher grades are ribbed.
func (g SteelGrade) Deformed() bool {
	return g != Fe250
}

// Material pairs a concrete grade with a steel grade.
type Material struct {
	Concrete ConcreteGrade `json:"concrete"`
	Steel    SteelGrade    `json:"steel"`
}

// NewMaterial builds a validated Material.
func NewMaterial(concrete ConcreteGrade, steel SteelGrade) (Material, error) {
	m := Material{Concrete: concrete, Steel: steel}
	if err := m.Validate(); err != nil {
		return Material{}, err
	}
	return m, nil
}

// Validate checks both grades against the enumerated sets.
func (m Material) Validate() error {
	if !m.Concrete.Valid() {
		return Errorf("unknown concrete grade %q (recognized: M15..M40)", m.Concrete)
	}
	if !m.Steel.Valid() {
		return Errorf("unknown steel grade %q (recognized: Fe250, Fe415, Fe500)", m.Steel)
	}
	return nil
}
