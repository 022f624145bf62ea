package is456

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitingDepthRatio(t *testing.T) {
	// Clause 38.1 tabulated values.
	assert.InDelta(t, 0.531, LimitingDepthRatio(250), 0.001)
	assert.InDelta(t, 0.479, LimitingDepthRatio(415), 0.001)
	assert.InDelta(t, 0.456, LimitingDepthRatio(500), 0.001)
}

func TestMinTensionSteel(t *testing.T) {
	assert.InDelta(t, 192.67, MinTensionSteel(230, 409, 415), 0.1)
	assert.InDelta(t, 319.77, MinTensionSteel(230, 409, 250), 0.1)
}

func TestMaxSteelArea(t *testing.T) {
	assert.InDelta(t, 4140, MaxSteelArea(230, 450), 0.001)
}

func TestDesignShearStrength(t *testing.T) {
	// Exact table knots.
	assert.InDelta(t, 0.49, DesignShearStrength(0.50, 25), 1e-9)
	assert.InDelta(t, 0.62, DesignShearStrength(1.00, 20), 1e-9)

	// Linear interpolation between knots.
	assert.InDelta(t, 0.5994, DesignShearStrength(0.855, 25), 0.001)

	// Clamped below the first row and above the last.
	assert.InDelta(t, 0.29, DesignShearStrength(0.05, 25), 1e-9)
	assert.InDelta(t, 0.92, DesignShearStrength(4.0, 25), 1e-9)

	// Strengths above the last column use the last column.
	assert.Equal(t, DesignShearStrength(1.0, 40), DesignShearStrength(1.0, 60))
}

func TestDesignShearStrengthMonotonicInPt(t *testing.T) {
	prev := 0.0
	for pt := 0.1; pt <= 3.2; pt += 0.05 {
		tc := DesignShearStrength(pt, 25)
		assert.GreaterOrEqual(t, tc, prev, "τc must not decrease with pt=%.2f", pt)
		prev = tc
	}
}

func TestMaxShearStress(t *testing.T) {
	assert.Equal(t, 2.5, MaxShearStress(15))
	assert.Equal(t, 3.1, MaxShearStress(25))
	assert.Equal(t, 4.0, MaxShearStress(40))
}

func TestDesignBondStress(t *testing.T) {
	// M25 plain bars in tension.
	assert.InDelta(t, 1.4, DesignBondStress(25, false, false), 1e-9)
	// Deformed bars get the 60% increase.
	assert.InDelta(t, 2.24, DesignBondStress(25, true, false), 1e-9)
	// Compression adds 25% on top.
	assert.InDelta(t, 2.8, DesignBondStress(25, true, true), 1e-9)
}

func TestDevelopmentLength(t *testing.T) {
	// 16mm Fe415 deformed bar in M25 at full design stress.
	tbd := DesignBondStress(25, true, false)
	ld := DevelopmentLength(16, 0.87*415, tbd)
	assert.InDelta(t, 644.7, ld, 0.5)
}

func TestMinClearSpacing(t *testing.T) {
	// Aggregate governs small bars, the bar itself governs large ones.
	assert.Equal(t, 25.0, MinClearSpacing(16))
	assert.Equal(t, 28.0, MinClearSpacing(28))
}

func TestMinLayerGap(t *testing.T) {
	assert.Equal(t, 15.0, MinLayerGap(12))
	assert.Equal(t, 25.0, MinLayerGap(25))
}

func TestMaxStirrupSpacing(t *testing.T) {
	// Deep section hits the 300mm absolute cap.
	assert.Equal(t, 300.0, MaxStirrupSpacing(409))
	// Shallow section is governed by 0.75d.
	assert.Equal(t, 225.0, MaxStirrupSpacing(300))
}
