package is456

import "math"

// IS 456:2000 Material and Detailing Constants

const (
	// Strain limits
	EpsilonCU = 0.0035 // Ultimate concrete strain (Clause 38.1)

	// Equivalent rectangular stress block (flexure)
	StressBlockIntensity = 0.85 // fraction of fck over the block depth
	StressBlockBeta      = 0.85 // block depth a as a fraction of neutral axis depth

	// Modulus of elasticity for steel (Clause 5.6.3)
	Es = 200000.0 // MPa

	// Detailing minimums (Clause 26)
	MinClearCover    = 20.0 // mm, mild exposure (Clause 26.4.2)
	NominalAggregate = 20.0 // mm, assumed nominal maximum aggregate size
	MinBarsPerFace   = 2    // framing continuity

	// Maximum total reinforcement as a fraction of gross area (Clause 26.5.1.1)
	MaxSteelGrossFraction = 0.04

	// Stirrup spacing caps (Clause 26.5.1.5)
	MaxStirrupSpacingAbs   = 300.0 // mm
	StirrupSpacingDepthCap = 0.75  // fraction of effective depth
)

// LimitingDepthRatio returns xu,max/d for the given steel yield strength.
// Clause 38.1: xu,max/d = 700 / (1100 + 0.87*fy)
func LimitingDepthRatio(fy float64) float64 {
	return 700.0 / (1100.0 + 0.87*fy)
}

// MinTensionSteel returns the minimum tension reinforcement area.
// Clause 26.5.1.1(a): As,min = 0.85*b*d/fy
func MinTensionSteel(b, d, fy float64) float64 {
	return 0.85 * b * d / fy
}

// MaxSteelArea returns the maximum reinforcement area for either face.
// Clause 26.5.1.1(b): 4% of gross section area.
func MaxSteelArea(b, overallDepth float64) float64 {
	return MaxSteelGrossFraction * b * overallDepth
}

// Design shear strength of concrete τc (MPa), Table 19.
// Rows are steel percentage pt = 100*As/(b*d), columns are concrete grades.
var shearTablePt = []float64{0.15, 0.25, 0.50, 0.75, 1.00, 1.25, 1.50, 1.75, 2.00, 2.25, 2.50, 2.75, 3.00}

var shearTableFck = []float64{15, 20, 25, 30, 35, 40}

var shearTable = [][]float64{
	{0.28, 0.28, 0.29, 0.29, 0.29, 0.30},
	{0.35, 0.36, 0.36, 0.37, 0.37, 0.38},
	{0.46, 0.48, 0.49, 0.50, 0.50, 0.51},
	{0.54, 0.56, 0.57, 0.59, 0.59, 0.60},
	{0.60, 0.62, 0.64, 0.66, 0.67, 0.68},
	{0.64, 0.67, 0.70, 0.71, 0.73, 0.74},
	{0.68, 0.72, 0.74, 0.76, 0.78, 0.79},
	{0.71, 0.75, 0.78, 0.80, 0.82, 0.84},
	{0.71, 0.79, 0.82, 0.84, 0.86, 0.88},
	{0.71, 0.81, 0.85, 0.88, 0.90, 0.92},
	{0.71, 0.82, 0.88, 0.91, 0.93, 0.95},
	{0.71, 0.82, 0.90, 0.94, 0.96, 0.98},
	{0.71, 0.82, 0.92, 0.96, 0.99, 1.01},
}

// DesignShearStrength returns τc (MPa) interpolated from Table 19 for the
// given steel percentage and concrete strength. Values are clamped to the
// table bounds the way the code tabulates them (pt below 0.15 uses the
// first row, above 3.00 the last).
func DesignShearStrength(pt, fck float64) float64 {
	col := shearColumn(fck)

	if pt <= shearTablePt[0] {
		return shearTable[0][col]
	}
	last := len(shearTablePt) - 1
	if pt >= shearTablePt[last] {
		return shearTable[last][col]
	}

	for i := 1; i <= last; i++ {
		if pt <= shearTablePt[i] {
			lo, hi := shearTablePt[i-1], shearTablePt[i]
			f := (pt - lo) / (hi - lo)
			return shearTable[i-1][col] + f*(shearTable[i][col]-shearTable[i-1][col])
		}
	}
	return shearTable[last][col]
}

func shearColumn(fck float64) int {
	for i, v := range shearTableFck {
		if fck <= v {
			return i
		}
	}
	return len(shearTableFck) - 1
}

// MaxShearStress returns τc,max (MPa), Table 20. Beyond this stress no
// amount of shear reinforcement makes the section compliant.
func MaxShearStress(fck float64) float64 {
	switch {
	case fck <= 15:
		return 2.5
	case fck <= 20:
		return 2.8
	case fck <= 25:
		return 3.1
	case fck <= 30:
		return 3.5
	case fck <= 35:
		return 3.7
	default:
		return 4.0
	}
}

// DesignBondStress returns τbd (MPa) for plain bars in tension, Clause
// 26.2.1.1, adjusted for deformed bars (×1.6) and compression (×1.25).
func DesignBondStress(fck float64, deformed, compression bool) float64 {
	var tbd float64
	switch {
	case fck <= 15:
		tbd = 1.0
	case fck <= 20:
		tbd = 1.2
	case fck <= 25:
		tbd = 1.4
	case fck <= 30:
		tbd = 1.5
	case fck <= 35:
		tbd = 1.7
	default:
		tbd = 1.9
	}
	if deformed {
		tbd *= 1.6
	}
	if compression {
		tbd *= 1.25
	}
	return tbd
}

// DevelopmentLength returns the required embedment Ld (mm) for a bar of
// the given diameter stressed to sigma (MPa).
// Clause 26.2.1: Ld = φ*σs / (4*τbd)
func DevelopmentLength(dia, sigma, tbd float64) float64 {
	return dia * sigma / (4 * tbd)
}

// MinClearSpacing returns the minimum horizontal clear distance between
// parallel bars in a layer. Clause 26.3.2: the bar diameter or 5 mm more
// than the nominal aggregate size, whichever is greater.
func MinClearSpacing(dia float64) float64 {
	return math.Max(dia, NominalAggregate+5)
}

// MinLayerGap returns the minimum vertical clear distance between two
// horizontal layers of bars. Clause 26.3.2(b): 15 mm, two-thirds the
// nominal aggregate size, or the largest bar diameter, whichever is
// greatest.
func MinLayerGap(maxDia float64) float64 {
	gap := math.Max(15, 2.0/3.0*NominalAggregate)
	return math.Max(gap, maxDia)
}

// MaxStirrupSpacing returns the maximum permitted center-to-center
// stirrup spacing for vertical stirrups. Clause 26.5.1.5.
func MaxStirrupSpacing(effectiveDepth float64) float64 {
	return math.Min(StirrupSpacingDepthCap*effectiveDepth, MaxStirrupSpacingAbs)
}
