// Package pareto runs a generational evolutionary search over section
// size and reinforcement, minimizing several competing objectives at
// once with the compliance checker as a hard feasibility filter. The
// search is bounded by a fixed generation budget, not a convergence
// test: the true front is unknown in advance.
package pareto

import (
	"math"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/gorcopt/internal/buildability"
	"github.com/alexiusacademia/gorcopt/internal/check"
	"github.com/alexiusacademia/gorcopt/internal/pricing"
	"github.com/alexiusacademia/gorcopt/internal/section"
	"github.com/alexiusacademia/gorcopt/internal/takeoff"
)

// Space bounds the design variables. Width and depth vary continuously
// within the bounds (snapped to a 10 mm construction module);
// reinforcement choices come from the same discrete catalog the rebar
// optimizer uses.
type Space struct {
	WidthMin, WidthMax float64
	DepthMin, DepthMax float64
	Cover              float64 // clear cover, mm
	Span               float64 // member length, mm
	Material           section.Material
	Demand             section.Demand
	Catalog            section.Catalog
}

// Validate rejects malformed bounds before any search work starts.
func (s Space) Validate() error {
	if s.WidthMin <= 0 || s.DepthMin <= 0 {
		return section.Errorf("design-space bounds must be positive")
	}
	if s.WidthMax < s.WidthMin || s.DepthMax < s.DepthMin {
		return section.Errorf("design-space bounds inverted: width [%g, %g], depth [%g, %g]", s.WidthMin, s.WidthMax, s.DepthMin, s.DepthMax)
	}
	if err := s.Material.Validate(); err != nil {
		return err
	}
	if err := s.Demand.Validate(); err != nil {
		return err
	}
	return s.Catalog.Validate()
}

// Config tunes the evolutionary search. Zero values take defaults.
type Config struct {
	Generations    int
	PopulationSize int
	MutationRate   float64
	Seed           int64
	Prices         pricing.Table
	Workers        int
}

func (c Config) withDefaults() Config {
	if c.Generations <= 0 {
		c.Generations = 40
	}
	if c.PopulationSize <= 0 {
		c.PopulationSize = 60
	}
	if c.MutationRate <= 0 {
		c.MutationRate = 0.15
	}
	if c.Prices.SteelPerKg == 0 {
		c.Prices = pricing.Default()
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c
}

// Objectives is the minimized objective vector of one design.
type Objectives struct {
	Cost   float64 `json:"cost"`
	Depth  float64 `json:"depth"`
	Carbon float64 `json:"carbon"`
}

// Dominates reports whether a is at least as good as b in every
// objective and strictly better in at least one.
func Dominates(a, b Objectives) bool {
	if a.Cost > b.Cost || a.Depth > b.Depth || a.Carbon > b.Carbon {
		return false
	}
	return a.Cost < b.Cost || a.Depth < b.Depth || a.Carbon < b.Carbon
}

// Entry is one non-dominated, individually compliant design.
type Entry struct {
	Design           takeoff.Design          `json:"design"`
	Compliance       *check.ComplianceResult `json:"compliance"`
	Objectives       Objectives              `json:"objectives"`
	Constructability buildability.Score      `json:"constructability"`
}

// Front is the result of a search: a set of entries in which no member
// dominates another, each member code-compliant. Entries are ordered
// deterministically by cost, then depth, then carbon, then
// constructability descending.
type Front struct {
	Entries   []Entry   `json:"entries"`
	Evaluated int       `json:"evaluated"`
	Trace     []float64 `json:"trace"` // best cost after each generation; zero until a feasible design appears
}

const dimensionStep = 10.0 // mm construction module for width and depth

// genome is one candidate's design variables.
type genome struct {
	width   float64
	depth   float64
	barIdx  int
	count   int
	stirIdx int
	spIdx   int
}

type scored struct {
	genome   genome
	feasible bool
	entry    Entry
}

// Search runs the generational loop and returns the best front found
// within the budget. An infeasible space yields an empty front, never an
// error.
func Search(space Space, cfg Config) (*Front, error) {
	if err := space.Validate(); err != nil {
		return nil, err
	}
	if space.Cover == 0 {
		space.Cover = 25
	}
	cfg = cfg.withDefaults()

	rng := rand.New(rand.NewSource(cfg.Seed))
	bars := sortedDias(space.Catalog.Bars)
	stirrups := sortedDias(space.Catalog.StirrupDias)
	spacings := append([]float64(nil), space.Catalog.StirrupSpacings...)
	sort.Float64s(spacings)

	population := make([]genome, cfg.PopulationSize)
	for i := range population {
		population[i] = randomGenome(rng, space, bars, stirrups, spacings)
	}

	front := &Front{}
	var archive []scored

	for gen := 0; gen < cfg.Generations; gen++ {
		evaluated, err := evaluateAll(population, space, cfg, bars, stirrups, spacings)
		if err != nil {
			return nil, err
		}
		front.Evaluated += len(evaluated)

		var feasible []scored
		for _, s := range evaluated {
			if s.feasible {
				feasible = append(feasible, s)
			}
		}

		// The archive keeps the best non-dominated set seen so far, so a
		// budget cut never returns a partial or inconsistent front.
		archive = nonDominated(dedupe(append(archive, feasible...)))
		front.Trace = append(front.Trace, bestCost(archive))

		if gen == cfg.Generations-1 {
			break
		}

		if len(feasible) == 0 {
			// Nothing to breed from; reseed and keep looking.
			for i := range population {
				population[i] = randomGenome(rng, space, bars, stirrups, spacings)
			}
			continue
		}

		ranks, crowding := rankAndCrowd(feasible)
		next := make([]genome, 0, cfg.PopulationSize)
		for len(next) < cfg.PopulationSize {
			p1 := tournament(rng, feasible, ranks, crowding)
			p2 := tournament(rng, feasible, ranks, crowding)
			child := crossover(rng, feasible[p1].genome, feasible[p2].genome)
			if rng.Float64() < cfg.MutationRate {
				child = mutate(rng, child, space, bars, stirrups, spacings)
			}
			next = append(next, child)
		}
		population = next
	}

	front.Entries = make([]Entry, 0, len(archive))
	for _, s := range archive {
		front.Entries = append(front.Entries, s.entry)
	}
	sortEntries(front.Entries)
	return front, nil
}

// evaluateAll scores a population. Evaluation is pure, so candidates are
// checked concurrently; results land by index and the outcome does not
// depend on scheduling.
func evaluateAll(population []genome, space Space, cfg Config, bars, stirrups []section.BarDia, spacings []float64) ([]scored, error) {
	out := make([]scored, len(population))

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, gn := range population {
		i, gn := i, gn
		g.Go(func() error {
			out[i] = evaluate(gn, space, cfg, bars, stirrups, spacings)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func evaluate(gn genome, space Space, cfg Config, bars, stirrups []section.BarDia, spacings []float64) scored {
	barDia := bars[gn.barIdx]
	stirDia := stirrups[gn.stirIdx]

	layout := section.Layout{
		Bottom:  []section.BarGroup{{Dia: barDia, Count: gn.count}},
		Stirrup: section.Stirrup{Dia: stirDia, Spacing: spacings[gn.spIdx], Legs: 2},
	}

	effDepth := gn.depth - space.Cover - float64(stirDia) - float64(barDia)/2
	geom, err := section.NewGeometry(gn.width, gn.depth, effDepth, space.Cover, space.Span)
	if err != nil {
		// The genome encodes a section the model itself rejects (e.g.
		// too shallow for any effective depth). Infeasible, not an error.
		return scored{genome: gn}
	}

	res, err := check.Check(geom, space.Material, space.Demand, layout)
	if err != nil || !res.AllOK {
		return scored{genome: gn}
	}

	design := takeoff.Design{Geometry: geom, Material: space.Material, Layout: layout}
	return scored{
		genome:   gn,
		feasible: true,
		entry: Entry{
			Design:     design,
			Compliance: res,
			Objectives: Objectives{
				Cost:   takeoff.TotalCost(design, cfg.Prices),
				Depth:  geom.Depth,
				Carbon: takeoff.Carbon(design, cfg.Prices),
			},
			Constructability: buildability.Compute(layout, geom),
		},
	}
}

func randomGenome(rng *rand.Rand, space Space, bars, stirrups []section.BarDia, spacings []float64) genome {
	return genome{
		width:   snap(space.WidthMin+rng.Float64()*(space.WidthMax-space.WidthMin), space.WidthMin, space.WidthMax),
		depth:   snap(space.DepthMin+rng.Float64()*(space.DepthMax-space.DepthMin), space.DepthMin, space.DepthMax),
		barIdx:  rng.Intn(len(bars)),
		count:   2 + rng.Intn(space.Catalog.MaxBarsPerLayer-1),
		stirIdx: rng.Intn(len(stirrups)),
		spIdx:   rng.Intn(len(spacings)),
	}
}

// snap rounds to the construction module, clamped inside the bounds.
func snap(v, lo, hi float64) float64 {
	v = math.Round(v/dimensionStep) * dimensionStep
	return math.Min(math.Max(v, lo), hi)
}

// crossover swaps the gene tail of two parents at a random point.
func crossover(rng *rand.Rand, a, b genome) genome {
	child := a
	switch point := rng.Intn(5); {
	case point < 1:
		child.depth = b.depth
		fallthrough
	case point < 2:
		child.barIdx = b.barIdx
		fallthrough
	case point < 3:
		child.count = b.count
		fallthrough
	case point < 4:
		child.stirIdx = b.stirIdx
		fallthrough
	default:
		child.spIdx = b.spIdx
	}
	return child
}

// mutate perturbs exactly one design variable.
func mutate(rng *rand.Rand, gn genome, space Space, bars, stirrups []section.BarDia, spacings []float64) genome {
	switch rng.Intn(6) {
	case 0:
		gn.width = snap(space.WidthMin+rng.Float64()*(space.WidthMax-space.WidthMin), space.WidthMin, space.WidthMax)
	case 1:
		gn.depth = snap(space.DepthMin+rng.Float64()*(space.DepthMax-space.DepthMin), space.DepthMin, space.DepthMax)
	case 2:
		gn.barIdx = rng.Intn(len(bars))
	case 3:
		gn.count = 2 + rng.Intn(space.Catalog.MaxBarsPerLayer-1)
	case 4:
		gn.stirIdx = rng.Intn(len(stirrups))
	default:
		gn.spIdx = rng.Intn(len(spacings))
	}
	return gn
}

// tournament picks the better of two random candidates: lower front rank
// wins, ties go to the candidate with more crowding room, then to the
// lower index so the choice is deterministic.
func tournament(rng *rand.Rand, pool []scored, ranks []int, crowding []float64) int {
	i := rng.Intn(len(pool))
	j := rng.Intn(len(pool))
	if ranks[i] != ranks[j] {
		if ranks[i] < ranks[j] {
			return i
		}
		return j
	}
	if crowding[i] != crowding[j] {
		if crowding[i] > crowding[j] {
			return i
		}
		return j
	}
	if i < j {
		return i
	}
	return j
}

func bestCost(archive []scored) float64 {
	var best float64
	for _, s := range archive {
		if best == 0 || s.entry.Objectives.Cost < best {
			best = s.entry.Objectives.Cost
		}
	}
	return best
}

func dedupe(in []scored) []scored {
	seen := map[genome]bool{}
	out := make([]scored, 0, len(in))
	for _, s := range in {
		if seen[s.genome] {
			continue
		}
		seen[s.genome] = true
		out = append(out, s)
	}
	return out
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Objectives, entries[j].Objectives
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		if a.Carbon != b.Carbon {
			return a.Carbon < b.Carbon
		}
		return entries[i].Constructability.Total > entries[j].Constructability.Total
	})
}

func sortedDias(in []section.BarDia) []section.BarDia {
	out := append([]section.BarDia(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
