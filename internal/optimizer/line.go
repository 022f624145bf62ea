package optimizer

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gorcopt/internal/section"
)

// OptimizeLine optimizes a continuous run of beams sharing a structural
// line. Each beam is optimized independently first; a standardization
// pass then unifies adjacent beams whose primary bar diameters differ,
// trading a bounded cost increase for fewer bar types on site and
// simpler lap detailing. Every unified layout is re-verified in full:
// capacity can only grow with the larger bars, but spacing and
// congestion can regress, so a failed re-check rolls the beam back to
// its independent optimum.
func OptimizeLine(beams []section.BeamCase, catalog section.Catalog, opts Options) ([]Result, error) {
	if len(beams) == 0 {
		return nil, section.Errorf("beam line must contain at least one beam")
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	results := make([]Result, len(beams))
	for i, b := range beams {
		r, err := Optimize(b.Geometry, b.Material, b.Demand, catalog, opts)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("beam %d: %w", i+1, ErrNotFound)
			}
			return nil, fmt.Errorf("beam %d: %w", i+1, err)
		}
		results[i] = *r
	}

	// Standardization sweep over adjacent pairs. Unification always goes
	// up to the larger diameter; going down would shrink capacity.
	for i := 0; i < len(beams)-1; i++ {
		left := results[i].Layout.MaxBottomDia()
		right := results[i+1].Layout.MaxBottomDia()
		if left == right {
			continue
		}

		smaller, target := i, right
		if right < left {
			smaller, target = i+1, left
		}

		restricted := catalog
		restricted.Bars = []section.BarDia{target}

		b := beams[smaller]
		cand, err := Optimize(b.Geometry, b.Material, b.Demand, restricted, opts)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue // no compliant layout at the unified diameter
			}
			return nil, fmt.Errorf("beam %d standardization: %w", smaller+1, err)
		}

		if cand.Objective <= results[smaller].Objective*(1+opts.UnifyCostFraction) {
			cand.Standardized = true
			cand.Evaluated += results[smaller].Evaluated
			results[smaller] = *cand
		}
	}

	return results, nil
}
