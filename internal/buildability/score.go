// Package buildability rates how easily a reinforcement layout can be
// assembled on site. The score is a pure function of the layout and
// section; it never consults the compliance checker, so even a
// non-compliant candidate can be ranked during search diagnostics.
package buildability

import (
	"math"

	"github.com/alexiusacademia/gorcopt/internal/is456"
	"github.com/alexiusacademia/gorcopt/internal/section"
)

// Score is a 0–100 constructability rating with the contributing
// penalties broken out. 100 means nothing about the layout complicates
// site work.
type Score struct {
	Total float64 `json:"total"`

	// DiversityPenalty grows with the number of distinct bar sizes on
	// site: every extra size is another stack to store, cut and tie.
	DiversityPenalty float64 `json:"diversity_penalty"`
	// CongestionPenalty grows as bars crowd the available web width,
	// which slows placing and makes vibrating the concrete harder.
	CongestionPenalty float64 `json:"congestion_penalty"`
	// StirrupPenalty captures impractical stirrup spacing: very tight
	// grids and off-module dimensions both slow the crew down.
	StirrupPenalty float64 `json:"stirrup_penalty"`
}

const (
	diversityStep   = 8.0
	diversityCap    = 24.0
	congestionCap   = 40.0
	tightStirrup    = 100.0 // mm, below this tying gets slow
	spacingModule   = 25.0  // mm, site-friendly spacing increment
	offModulePoints = 5.0
	tightPoints     = 15.0
)

// Compute scores the layout against the section it sits in.
func Compute(layout section.Layout, geom section.Geometry) Score {
	var s Score

	// Bar-size diversity: the first size is free.
	distinct := len(layout.Diameters())
	if distinct > 1 {
		s.DiversityPenalty = math.Min(diversityStep*float64(distinct-1), diversityCap)
	}

	// Congestion: measured on the tightest layer's clear spacing margin
	// over the code minimum. A margin of 2× or better costs nothing.
	margin := tightestMargin(layout, geom)
	if margin < 2 {
		s.CongestionPenalty = math.Min(25*(2-margin), congestionCap)
	}

	// Stirrup practicality.
	sp := layout.Stirrup.Spacing
	if sp < tightStirrup {
		s.StirrupPenalty += tightPoints
	}
	if math.Mod(sp, spacingModule) != 0 {
		s.StirrupPenalty += offModulePoints
	}

	s.Total = 100 - s.DiversityPenalty - s.CongestionPenalty - s.StirrupPenalty
	if s.Total < 0 {
		s.Total = 0
	}
	return s
}

// tightestMargin returns the worst ratio of provided clear spacing to the
// code minimum across all bar layers. Layers that physically cannot fit
// return a zero margin.
func tightestMargin(layout section.Layout, geom section.Geometry) float64 {
	inner := geom.InnerWidth(float64(layout.Stirrup.Dia))
	margin := math.Inf(1)

	measure := func(groups []section.BarGroup) {
		for _, g := range groups {
			clear := (inner - float64(g.Count)*float64(g.Dia)) / float64(g.Count-1)
			if clear <= 0 {
				margin = 0
				continue
			}
			m := clear / is456.MinClearSpacing(float64(g.Dia))
			if m < margin {
				margin = m
			}
		}
	}
	measure(layout.Bottom)
	measure(layout.Top)

	if math.IsInf(margin, 1) {
		return 2 // no layers measured; treat as uncongested
	}
	return margin
}
