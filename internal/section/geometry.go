package section

import "github.com/alexiusacademia/gorcopt/internal/is456"

// Dimension sanity bounds (mm). Values outside these are almost always a
// unit mix-up (a caller passing meters) and are rejected as caller bugs
// rather than silently clamped.
const (
	minPlausibleDim = 50.0
	maxPlausibleDim = 5000.0
	maxPlausibleSpan = 30000.0
)

// Geometry describes a rectangular beam cross-section. All dimensions are
// in millimeters. Values are immutable once constructed.
type Geometry struct {
	Width          float64 `json:"width"`           // b
	Depth          float64 `json:"depth"`           // overall depth D
	EffectiveDepth float64 `json:"effective_depth"` // d, to centroid of tension steel
	Cover          float64 `json:"cover"`           // clear cover to stirrup
	Span           float64 `json:"span"`            // member length, for quantities and cost
}

// NewGeometry builds a validated Geometry.
func NewGeometry(width, depth, effectiveDepth, cover, span float64) (Geometry, error) {
	g := Geometry{
		Width:          width,
		Depth:          depth,
		EffectiveDepth: effectiveDepth,
		Cover:          cover,
		Span:           span,
	}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

// Validate checks dimensional invariants. Inputs that look like meters
// (e.g. width 0.23) are rejected explicitly.
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Depth <= 0 || g.EffectiveDepth <= 0 {
		return Errorf("section dimensions must be positive: b=%.2f, D=%.2f, d=%.2f", g.Width, g.Depth, g.EffectiveDepth)
	}
	if g.Width < minPlausibleDim || g.Width > maxPlausibleDim {
		return Errorf("width %.3f mm is outside the plausible range [%g, %g] mm; check units (all inputs are millimeters)", g.Width, minPlausibleDim, maxPlausibleDim)
	}
	if g.Depth < minPlausibleDim || g.Depth > maxPlausibleDim {
		return Errorf("depth %.3f mm is outside the plausible range [%g, %g] mm; check units (all inputs are millimeters)", g.Depth, minPlausibleDim, maxPlausibleDim)
	}
	if g.EffectiveDepth >= g.Depth {
		return Errorf("effective depth d=%.2f must be less than overall depth D=%.2f", g.EffectiveDepth, g.Depth)
	}
	if g.Cover < is456.MinClearCover {
		return Errorf("clear cover %.2f mm is below the code minimum %.0f mm", g.Cover, is456.MinClearCover)
	}
	if g.Span < 0 || g.Span > maxPlausibleSpan {
		return Errorf("span %.2f mm is outside the plausible range [0, %g] mm", g.Span, maxPlausibleSpan)
	}
	return nil
}

// InnerWidth returns the clear width available for bars inside the
// stirrup legs.
func (g Geometry) InnerWidth(stirrupDia float64) float64 {
	return g.Width - 2*g.Cover - 2*stirrupDia
}

// ConcreteVolume returns the gross member volume in cubic meters.
func (g Geometry) ConcreteVolume() float64 {
	return g.Width * g.Depth * g.Span * 1e-9
}
