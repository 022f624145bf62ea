// Package check verifies a beam section and reinforcement layout against
// the design-code rules and reports the result as data. A structurally
// unsafe beam is an expected outcome, never an error; errors are reserved
// for malformed input.
package check

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcopt/internal/is456"
	"github.com/alexiusacademia/gorcopt/internal/section"
)

// Sub-check names, in evaluation order.
const (
	MinReinforcement = "min-reinforcement"
	MaxReinforcement = "max-reinforcement"
	Flexure          = "flexure"
	Shear            = "shear"
	Spacing          = "spacing"
	Anchorage        = "anchorage"
)

// SubResult is the outcome of one named sub-check. Utilization is the
// demand/capacity ratio for that rule; values at or below 1.0 comply.
type SubResult struct {
	Name        string  `json:"name"`
	OK          bool    `json:"ok"`
	Utilization float64 `json:"utilization"`
	Detail      string  `json:"detail,omitempty"`
}

// Violation records one specific rule breach.
type Violation struct {
	Kind    string  `json:"kind"`
	Message string  `json:"message"`
	Value   float64 `json:"value"`
}

// ComplianceResult is the canonical output of Check. It is constructed
// fresh per call and never mutated afterwards.
type ComplianceResult struct {
	AllOK      bool        `json:"all_ok"`
	Checks     []SubResult `json:"checks"`
	Violations []Violation `json:"violations,omitempty"`

	// Derived quantities, for reporting and optimizer objectives.
	MomentCapacity   float64 `json:"moment_capacity"`    // kN·m
	ShearCapacity    float64 `json:"shear_capacity"`     // kN
	NeutralAxisDepth float64 `json:"neutral_axis_depth"` // mm
	OverReinforced   bool    `json:"over_reinforced"`
}

// Sub returns the named sub-check result.
func (r *ComplianceResult) Sub(name string) (SubResult, bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}
	return SubResult{}, false
}

// state carries the validated inputs and the quantities shared between
// sub-checks, computed once per evaluation.
type state struct {
	geom   section.Geometry
	mat    section.Material
	demand section.Demand
	layout section.Layout

	fck float64
	fy  float64
	ast float64 // tension steel, mm²
	asc float64 // compression steel, mm²

	// flexure
	neutralAxis    float64 // c, mm
	momentCapacity float64 // kN·m
	overReinforced bool

	// shear
	concreteShear float64 // Vc, kN
	stirrupShear  float64 // Vus, kN
	shearStress   float64 // τv, MPa
	maxStress     float64 // τc,max, MPa
}

// subChecks is the fixed, ordered rule set. Adding a code clause is a
// pure addition here; nothing else aggregates results.
var subChecks = []struct {
	name string
	run  func(*state) (SubResult, []Violation)
}{
	{MinReinforcement, (*state).checkMinReinforcement},
	{MaxReinforcement, (*state).checkMaxReinforcement},
	{Flexure, (*state).checkFlexure},
	{Shear, (*state).checkShear},
	{Spacing, (*state).checkSpacing},
	{Anchorage, (*state).checkAnchorage},
}

// Check evaluates every sub-check against the given section, material,
// demand and layout. All sub-checks always run so the caller sees the
// complete picture; a failing check never short-circuits the rest.
// Malformed input returns a *section.ConfigError; a non-compliant beam
// returns AllOK=false with itemized violations and a nil error.
func Check(geom section.Geometry, mat section.Material, demand section.Demand, layout section.Layout) (*ComplianceResult, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if err := mat.Validate(); err != nil {
		return nil, err
	}
	if err := demand.Validate(); err != nil {
		return nil, err
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	st := &state{
		geom:   geom,
		mat:    mat,
		demand: demand,
		layout: layout,
		fck:    mat.Concrete.Fck(),
		fy:     mat.Steel.Fy(),
		ast:    layout.BottomArea(),
		asc:    layout.TopArea(),
	}
	st.computeFlexure()
	st.computeShear()

	result := &ComplianceResult{AllOK: true}
	for _, sc := range subChecks {
		sub, violations := sc.run(st)
		sub.Name = sc.name
		result.Checks = append(result.Checks, sub)
		result.Violations = append(result.Violations, violations...)
		if !sub.OK {
			result.AllOK = false
		}
	}

	result.MomentCapacity = st.momentCapacity
	result.ShearCapacity = st.concreteShear + st.stirrupShear
	result.NeutralAxisDepth = st.neutralAxis
	result.OverReinforced = st.overReinforced
	return result, nil
}

// computeFlexure finds the neutral axis from force equilibrium between
// the concrete compression block and the steel, classifies the section
// against the limiting neutral-axis depth, and computes the moment of
// resistance. Compression steel, when present, relieves the block the
// same way the doubly-reinforced formulation does.
func (st *state) computeFlexure() {
	b := st.geom.Width
	d := st.geom.EffectiveDepth

	// Net tension force resisted by the concrete block.
	// T = 0.85*fck*b*a + Asc*(fy - 0.85*fck)
	blockForce := st.ast * st.fy
	var compSteelMoment float64
	dPrime := st.compSteelDepth()
	if st.asc > 0 {
		f := st.asc * (st.fy - is456.StressBlockIntensity*st.fck)
		if f > blockForce {
			f = blockForce
		}
		blockForce -= f
		compSteelMoment = f * (d - dPrime)
	}

	a := blockForce / (is456.StressBlockIntensity * st.fck * b)
	c := a / is456.StressBlockBeta
	cMax := is456.LimitingDepthRatio(st.fy) * d

	if c > cMax {
		// Over-reinforced: concrete crushes before the steel yields.
		// Capacity is capped at the limiting block, adding more tension
		// steel buys nothing.
		st.overReinforced = true
		aMax := is456.StressBlockBeta * cMax
		blockMoment := is456.StressBlockIntensity * st.fck * b * aMax * (d - aMax/2)
		st.neutralAxis = cMax
		st.momentCapacity = (blockMoment + compSteelMoment) / 1e6
		return
	}

	st.neutralAxis = c
	st.momentCapacity = (blockForce*(d-a/2) + compSteelMoment) / 1e6
}

func (st *state) compSteelDepth() float64 {
	var maxDia section.BarDia
	for _, g := range st.layout.Top {
		if g.Dia > maxDia {
			maxDia = g.Dia
		}
	}
	return st.geom.Cover + float64(st.layout.Stirrup.Dia) + float64(maxDia)/2
}

// computeShear evaluates the concrete and stirrup contributions and the
// applied nominal shear stress.
func (st *state) computeShear() {
	b := st.geom.Width
	d := st.geom.EffectiveDepth

	pt := 100 * st.ast / (b * d)
	tc := is456.DesignShearStrength(pt, st.fck)
	st.concreteShear = tc * b * d / 1000

	s := st.layout.Stirrup
	st.stirrupShear = 0.87 * st.fy * s.Area() * d / s.Spacing / 1000

	st.shearStress = st.demand.Shear * 1000 / (b * d)
	st.maxStress = is456.MaxShearStress(st.fck)
}

func (st *state) checkMinReinforcement() (SubResult, []Violation) {
	asMin := is456.MinTensionSteel(st.geom.Width, st.geom.EffectiveDepth, st.fy)
	util := asMin / st.ast
	if util <= 1 {
		return SubResult{OK: true, Utilization: util,
			Detail: fmt.Sprintf("As=%.0f mm² ≥ As,min=%.0f mm²", st.ast, asMin)}, nil
	}
	return SubResult{OK: false, Utilization: util},
		[]Violation{{
			Kind:    MinReinforcement,
			Message: fmt.Sprintf("tension steel %.0f mm² is below the minimum %.0f mm²", st.ast, asMin),
			Value:   st.ast,
		}}
}

func (st *state) checkMaxReinforcement() (SubResult, []Violation) {
	asMax := is456.MaxSteelArea(st.geom.Width, st.geom.Depth)
	provided := st.ast
	if st.asc > provided {
		provided = st.asc
	}
	util := provided / asMax
	if util <= 1 {
		return SubResult{OK: true, Utilization: util,
			Detail: fmt.Sprintf("As=%.0f mm² ≤ As,max=%.0f mm²", provided, asMax)}, nil
	}
	return SubResult{OK: false, Utilization: util},
		[]Violation{{
			Kind:    MaxReinforcement,
			Message: fmt.Sprintf("steel area %.0f mm² exceeds the maximum %.0f mm² (ductility limit)", provided, asMax),
			Value:   provided,
		}}
}

func (st *state) checkFlexure() (SubResult, []Violation) {
	util := st.demand.Moment / st.momentCapacity
	detail := fmt.Sprintf("Mn=%.1f kN·m, c=%.1f mm", st.momentCapacity, st.neutralAxis)
	if st.overReinforced {
		detail += " (over-reinforced, capacity capped at limiting neutral axis)"
	}
	if util <= 1 {
		return SubResult{OK: true, Utilization: util, Detail: detail}, nil
	}
	return SubResult{OK: false, Utilization: util, Detail: detail},
		[]Violation{{
			Kind:    Flexure,
			Message: fmt.Sprintf("flexural capacity exceeded: Mu=%.1f kN·m > Mn=%.1f kN·m", st.demand.Moment, st.momentCapacity),
			Value:   util,
		}}
}

func (st *state) checkShear() (SubResult, []Violation) {
	capacity := st.concreteShear + st.stirrupShear
	utilCapacity := st.demand.Shear / capacity
	utilStress := st.shearStress / st.maxStress

	util := math.Max(utilCapacity, utilStress)
	detail := fmt.Sprintf("Vc=%.1f kN, Vus=%.1f kN, τv=%.2f MPa", st.concreteShear, st.stirrupShear, st.shearStress)

	var violations []Violation
	if utilCapacity > 1 {
		violations = append(violations, Violation{
			Kind:    Shear,
			Message: fmt.Sprintf("shear capacity exceeded: Vu=%.1f kN > %.1f kN", st.demand.Shear, capacity),
			Value:   utilCapacity,
		})
	}
	if utilStress > 1 {
		// Hard failure: beyond τc,max no stirrup arrangement complies.
		violations = append(violations, Violation{
			Kind:    Shear,
			Message: fmt.Sprintf("maximum shear stress exceeded: τv=%.2f MPa > τc,max=%.2f MPa; section must be enlarged", st.shearStress, st.maxStress),
			Value:   utilStress,
		})
	}
	return SubResult{OK: len(violations) == 0, Utilization: util, Detail: detail}, violations
}

func (st *state) checkSpacing() (SubResult, []Violation) {
	inner := st.geom.InnerWidth(float64(st.layout.Stirrup.Dia))
	var violations []Violation
	var worst float64

	layerSpacing := func(face string, groups []section.BarGroup) {
		for i, g := range groups {
			required := is456.MinClearSpacing(float64(g.Dia))
			clear := (inner - float64(g.Count)*float64(g.Dia)) / float64(g.Count-1)
			var util float64
			if clear <= 0 {
				util = math.Inf(1)
			} else {
				util = required / clear
			}
			if util > worst {
				worst = util
			}
			if util > 1 {
				violations = append(violations, Violation{
					Kind:    Spacing,
					Message: fmt.Sprintf("%s layer %d: clear bar spacing %.1f mm is below the minimum %.1f mm", face, i+1, clear, required),
					Value:   clear,
				})
			}
		}
	}
	layerSpacing("bottom", st.layout.Bottom)
	layerSpacing("top", st.layout.Top)

	// Vertical stacking: with the code-minimum layer gap, the tension
	// stack must stay within the lower half of the section.
	if len(st.layout.Bottom) > 1 {
		gap := is456.MinLayerGap(float64(st.layout.MaxBottomDia()))
		stack := st.geom.Cover + float64(st.layout.Stirrup.Dia)
		for _, g := range st.layout.Bottom {
			stack += float64(g.Dia)
		}
		stack += gap * float64(len(st.layout.Bottom)-1)
		limit := 0.5 * st.geom.Depth
		util := stack / limit
		if util > worst {
			worst = util
		}
		if util > 1 {
			violations = append(violations, Violation{
				Kind:    Spacing,
				Message: fmt.Sprintf("bottom steel stack %.1f mm exceeds half the section depth %.1f mm", stack, limit),
				Value:   stack,
			})
		}
	}

	// Stirrup spacing practicality is a scoring concern; the code cap is
	// a compliance concern.
	sMax := is456.MaxStirrupSpacing(st.geom.EffectiveDepth)
	util := st.layout.Stirrup.Spacing / sMax
	if util > worst {
		worst = util
	}
	if util > 1 {
		violations = append(violations, Violation{
			Kind:    Spacing,
			Message: fmt.Sprintf("stirrup spacing %.0f mm exceeds the maximum %.0f mm", st.layout.Stirrup.Spacing, sMax),
			Value:   st.layout.Stirrup.Spacing,
		})
	}

	return SubResult{OK: len(violations) == 0, Utilization: worst}, violations
}

func (st *state) checkAnchorage() (SubResult, []Violation) {
	tbd := is456.DesignBondStress(st.fck, st.mat.Steel.Deformed(), false)
	sigma := 0.87 * st.fy
	ld := is456.DevelopmentLength(float64(st.layout.MaxBottomDia()), sigma, tbd)

	available := st.layout.AnchorageLength
	if available == 0 {
		// Bars run continuous through the critical section.
		return SubResult{OK: true, Utilization: 0,
			Detail: fmt.Sprintf("Ld=%.0f mm, embedment not limited", ld)}, nil
	}

	util := ld / available
	detail := fmt.Sprintf("Ld=%.0f mm, available %.0f mm", ld, available)
	if util <= 1 {
		return SubResult{OK: true, Utilization: util, Detail: detail}, nil
	}
	return SubResult{OK: false, Utilization: util, Detail: detail},
		[]Violation{{
			Kind:    Anchorage,
			Message: fmt.Sprintf("development length %.0f mm exceeds the available embedment %.0f mm", ld, available),
			Value:   ld,
		}}
}
