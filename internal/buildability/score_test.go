package buildability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcopt/internal/section"
)

func wideGeometry(t *testing.T) section.Geometry {
	t.Helper()
	g, err := section.NewGeometry(400, 600, 540, 25, 4000)
	require.NoError(t, err)
	return g
}

func TestComputeUncongestedSingleSize(t *testing.T) {
	// One bar size used for everything, generous spacing, site-friendly
	// stirrup grid: nothing to penalize except size diversity between the
	// 16mm mains and 16mm stirrups (none: same size).
	layout := section.Layout{
		Bottom:  []section.BarGroup{{Dia: 16, Count: 3}},
		Stirrup: section.Stirrup{Dia: 16, Spacing: 150, Legs: 2},
	}
	s := Compute(layout, wideGeometry(t))

	assert.Zero(t, s.DiversityPenalty)
	assert.Zero(t, s.CongestionPenalty)
	assert.Zero(t, s.StirrupPenalty)
	assert.Equal(t, 100.0, s.Total)
}

func TestComputeDiversityPenalty(t *testing.T) {
	// Three distinct sizes on site: two steps past the free first size.
	layout := section.Layout{
		Bottom:  []section.BarGroup{{Dia: 20, Count: 3}},
		Top:     []section.BarGroup{{Dia: 12, Count: 2}},
		Stirrup: section.Stirrup{Dia: 8, Spacing: 150, Legs: 2},
	}
	s := Compute(layout, wideGeometry(t))
	assert.Equal(t, 16.0, s.DiversityPenalty)
}

func TestComputeCongestionPenalty(t *testing.T) {
	geom, err := section.NewGeometry(230, 450, 409, 25, 4000)
	require.NoError(t, err)

	// 4-16mm in a 230mm web: 33.3mm clear over a 25mm minimum is a 1.33
	// margin, inside the penalized band.
	layout := section.Layout{
		Bottom:  []section.BarGroup{{Dia: 16, Count: 4}},
		Stirrup: section.Stirrup{Dia: 8, Spacing: 150, Legs: 2},
	}
	s := Compute(layout, geom)
	assert.InDelta(t, 16.67, s.CongestionPenalty, 0.05)

	// Bars that physically cannot fit hit the congestion cap.
	layout.Bottom = []section.BarGroup{{Dia: 25, Count: 6}}
	s = Compute(layout, geom)
	assert.Equal(t, 40.0, s.CongestionPenalty)
}

func TestComputeStirrupPenalties(t *testing.T) {
	layout := section.Layout{
		Bottom:  []section.BarGroup{{Dia: 16, Count: 3}},
		Stirrup: section.Stirrup{Dia: 16, Spacing: 90, Legs: 2},
	}
	// 90mm is both tighter than 100mm and off the 25mm module.
	s := Compute(layout, wideGeometry(t))
	assert.Equal(t, 20.0, s.StirrupPenalty)

	layout.Stirrup.Spacing = 130
	s = Compute(layout, wideGeometry(t))
	assert.Equal(t, 5.0, s.StirrupPenalty)

	layout.Stirrup.Spacing = 125
	s = Compute(layout, wideGeometry(t))
	assert.Zero(t, s.StirrupPenalty)
}

func TestComputeTotalNeverNegative(t *testing.T) {
	geom, err := section.NewGeometry(230, 450, 409, 25, 4000)
	require.NoError(t, err)

	// Pile every penalty on at once.
	layout := section.Layout{
		Bottom:  []section.BarGroup{{Dia: 25, Count: 6}, {Dia: 20, Count: 4}},
		Top:     []section.BarGroup{{Dia: 12, Count: 2}},
		Stirrup: section.Stirrup{Dia: 8, Spacing: 90, Legs: 2},
	}
	s := Compute(layout, geom)
	assert.GreaterOrEqual(t, s.Total, 0.0)
	assert.LessOrEqual(t, s.Total, 100.0)
}
