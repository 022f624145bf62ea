package section

import (
	"math"
	"sort"

	"github.com/alexiusacademia/gorcopt/internal/is456"
)

// BarDia is a reinforcement bar diameter in millimeters. Only the
// commercially rolled sizes are valid, which makes an illegal diameter a
// construction-time error instead of a scattered runtime check.
type BarDia int

// Commercially available bar diameters (mm).
var StandardBars = []BarDia{8, 10, 12, 16, 20, 25, 28, 32}

// Valid reports whether the diameter is a standard rolled size.
func (d BarDia) Valid() bool {
	for _, v := range StandardBars {
		if d == v {
			return true
		}
	}
	return false
}

// Area returns the cross-sectional area of a single bar in mm².
func (d BarDia) Area() float64 {
	return math.Pi / 4 * float64(d) * float64(d)
}

// BarGroup is a row of equal-diameter bars in one horizontal layer.
type BarGroup struct {
	Dia   BarDia `json:"dia"`
	Count int    `json:"count"`
}

// Area returns the total steel area of the group in mm².
func (g BarGroup) Area() float64 {
	return float64(g.Count) * g.Dia.Area()
}

// Stirrup describes vertical shear reinforcement.
type Stirrup struct {
	Dia     BarDia  `json:"dia"`
	Spacing float64 `json:"spacing"` // center-to-center, mm
	Legs    int     `json:"legs"`    // usually 2
}

// Area returns the total stirrup steel area crossing a section in mm².
func (s Stirrup) Area() float64 {
	return float64(s.Legs) * s.Dia.Area()
}

// Layout describes the reinforcement arrangement of a beam: bottom
// (tension) steel by layer, optional top steel, and stirrups.
type Layout struct {
	// Bottom holds one group per layer, index 0 being the lowest layer.
	Bottom []BarGroup `json:"bottom"`
	// Top holds compression-face steel, empty when none is provided.
	Top []BarGroup `json:"top,omitempty"`

	Stirrup Stirrup `json:"stirrup"`

	// AnchorageLength is the straight embedment available beyond the
	// critical section, in mm. Zero means the bar runs continuous and
	// anchorage is not a limiting condition.
	AnchorageLength float64 `json:"anchorage_length,omitempty"`
}

// BottomArea returns the total tension steel area in mm². The area is
// always recomputed from the bar groups; it is never cached.
func (l Layout) BottomArea() float64 {
	var a float64
	for _, g := range l.Bottom {
		a += g.Area()
	}
	return a
}

// TopArea returns the total compression-face steel area in mm².
func (l Layout) TopArea() float64 {
	var a float64
	for _, g := range l.Top {
		a += g.Area()
	}
	return a
}

// MaxBottomDia returns the largest bottom bar diameter.
func (l Layout) MaxBottomDia() BarDia {
	var d BarDia
	for _, g := range l.Bottom {
		if g.Dia > d {
			d = g.Dia
		}
	}
	return d
}

// Diameters returns the distinct bar diameters used anywhere in the
// layout (stirrups included), sorted ascending.
func (l Layout) Diameters() []BarDia {
	seen := map[BarDia]bool{}
	add := func(groups []BarGroup) {
		for _, g := range groups {
			seen[g.Dia] = true
		}
	}
	add(l.Bottom)
	add(l.Top)
	if l.Stirrup.Dia > 0 {
		seen[l.Stirrup.Dia] = true
	}
	out := make([]BarDia, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Validate checks the layout invariants.
func (l Layout) Validate() error {
	if len(l.Bottom) == 0 {
		return Errorf("layout must have at least one bottom bar layer")
	}
	if err := validateGroups("bottom", l.Bottom); err != nil {
		return err
	}
	if err := validateGroups("top", l.Top); err != nil {
		return err
	}
	if !l.Stirrup.Dia.Valid() {
		return Errorf("stirrup diameter %dmm is not a standard bar size", l.Stirrup.Dia)
	}
	if l.Stirrup.Spacing <= 0 {
		return Errorf("stirrup spacing must be positive, got %.2f", l.Stirrup.Spacing)
	}
	if l.Stirrup.Legs < 2 {
		return Errorf("stirrups need at least 2 legs, got %d", l.Stirrup.Legs)
	}
	if l.AnchorageLength < 0 {
		return Errorf("anchorage length must not be negative, got %.2f", l.AnchorageLength)
	}
	return nil
}

func validateGroups(face string, groups []BarGroup) error {
	for i, g := range groups {
		if !g.Dia.Valid() {
			return Errorf("%s layer %d: diameter %dmm is not a standard bar size", face, i+1, g.Dia)
		}
		if g.Count < is456.MinBarsPerFace {
			return Errorf("%s layer %d: at least %d bars required per layer, got %d", face, i+1, is456.MinBarsPerFace, g.Count)
		}
	}
	return nil
}
