// Package optimizer searches the discrete reinforcement catalog for the
// best layout the compliance checker accepts. The per-beam space is small
// enough that exhaustive enumeration is cheap, which buys global
// optimality within the catalog without the local-minima risk of
// continuous methods.
package optimizer

import (
	"errors"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/gorcopt/internal/buildability"
	"github.com/alexiusacademia/gorcopt/internal/check"
	"github.com/alexiusacademia/gorcopt/internal/pricing"
	"github.com/alexiusacademia/gorcopt/internal/section"
	"github.com/alexiusacademia/gorcopt/internal/takeoff"
)

// ErrNotFound reports that no catalog combination satisfies the checker:
// the section itself is undersized for the demand. It is a distinct
// outcome from "a specific candidate failed".
var ErrNotFound = errors.New("no compliant layout exists in the catalog")

// Objective selects what the search minimizes.
type Objective int

const (
	// ObjectiveCost minimizes steel cost (mass × unit price). Default.
	ObjectiveCost Objective = iota
	// ObjectiveSteelArea minimizes total provided steel area.
	ObjectiveSteelArea
)

// Options tunes a search. The zero value is usable.
type Options struct {
	Objective Objective
	// Prices is the unit-price table for cost objectives; zero value
	// falls back to pricing.Default().
	Prices pricing.Table
	// Workers caps concurrent candidate evaluations; 0 means GOMAXPROCS.
	Workers int
	// UnifyCostFraction is the cost increase the beam-line pass may
	// accept to standardize a bar diameter; 0 means the 8% default.
	UnifyCostFraction float64
}

func (o Options) withDefaults() Options {
	if o.Prices.SteelPerKg == 0 {
		o.Prices = pricing.Default()
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.UnifyCostFraction <= 0 {
		o.UnifyCostFraction = 0.08
	}
	return o
}

// Result is one accepted design with the evidence that justified it.
type Result struct {
	Layout           section.Layout          `json:"layout"`
	Compliance       *check.ComplianceResult `json:"compliance"`
	Objective        float64                 `json:"objective"`
	Constructability buildability.Score      `json:"constructability"`
	// Evaluated counts every candidate examined, compliant or not.
	Evaluated int `json:"evaluated"`
	// Standardized marks a layout changed by the beam-line pass.
	Standardized bool `json:"standardized,omitempty"`
}

type evaluation struct {
	layout    section.Layout
	compliant bool
	objective float64
	score     buildability.Score
	result    *check.ComplianceResult
}

// Optimize returns the lowest-objective catalog layout that the checker
// accepts, or ErrNotFound when the catalog holds no compliant layout.
// Ties on the objective break toward the higher constructability score,
// then toward the earlier candidate in enumeration order, so the answer
// is deterministic regardless of evaluation scheduling.
func Optimize(geom section.Geometry, mat section.Material, demand section.Demand, catalog section.Catalog, opts Options) (*Result, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if err := mat.Validate(); err != nil {
		return nil, err
	}
	if err := demand.Validate(); err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	candidates := enumerate(catalog)
	evals := make([]evaluation, len(candidates))

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for i, layout := range candidates {
		i, layout := i, layout
		g.Go(func() error {
			res, err := check.Check(geom, mat, demand, layout)
			if err != nil {
				return err
			}
			evals[i] = evaluation{
				layout:    layout,
				compliant: res.AllOK,
				objective: objectiveValue(opts, geom, mat, layout),
				score:     buildability.Compute(layout, geom),
				result:    res,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Selection runs over the complete evaluated set; arrival order is
	// irrelevant.
	best := -1
	for i, e := range evals {
		if !e.compliant {
			continue
		}
		if best < 0 || better(e, evals[best]) {
			best = i
		}
	}
	if best < 0 {
		return nil, ErrNotFound
	}

	return &Result{
		Layout:           evals[best].layout,
		Compliance:       evals[best].result,
		Objective:        evals[best].objective,
		Constructability: evals[best].score,
		Evaluated:        len(candidates),
	}, nil
}

// better reports whether a should be preferred over b.
func better(a, b evaluation) bool {
	const eps = 1e-9
	if a.objective < b.objective-eps {
		return true
	}
	if a.objective > b.objective+eps {
		return false
	}
	return a.score.Total > b.score.Total
}

func objectiveValue(opts Options, geom section.Geometry, mat section.Material, layout section.Layout) float64 {
	switch opts.Objective {
	case ObjectiveSteelArea:
		return layout.BottomArea() + layout.TopArea()
	default:
		return takeoff.SteelCost(takeoff.Design{Geometry: geom, Material: mat, Layout: layout}, opts.Prices)
	}
}

// enumerate produces every catalog layout in a fixed deterministic
// order: bar diameter ascending, then layer counts, then stirrups.
func enumerate(catalog section.Catalog) []section.Layout {
	bars := sortedDias(catalog.Bars)
	stirrupDias := sortedDias(catalog.StirrupDias)
	spacings := append([]float64(nil), catalog.StirrupSpacings...)
	sort.Float64s(spacings)

	var bottoms [][]section.BarGroup
	for _, dia := range bars {
		for n1 := 2; n1 <= catalog.MaxBarsPerLayer; n1++ {
			bottoms = append(bottoms, []section.BarGroup{{Dia: dia, Count: n1}})
			if catalog.MaxLayers < 2 {
				continue
			}
			// A second layer never carries more bars than the first.
			for n2 := 2; n2 <= n1; n2++ {
				bottoms = append(bottoms, []section.BarGroup{
					{Dia: dia, Count: n1},
					{Dia: dia, Count: n2},
				})
			}
		}
	}

	var layouts []section.Layout
	for _, bottom := range bottoms {
		for _, sd := range stirrupDias {
			for _, sp := range spacings {
				layouts = append(layouts, section.Layout{
					Bottom:  bottom,
					Stirrup: section.Stirrup{Dia: sd, Spacing: sp, Legs: 2},
				})
			}
		}
	}
	return layouts
}

func sortedDias(in []section.BarDia) []section.BarDia {
	out := append([]section.BarDia(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
