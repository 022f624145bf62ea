package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcopt/internal/pareto"
	"github.com/alexiusacademia/gorcopt/internal/pricing"
	"github.com/alexiusacademia/gorcopt/internal/section"
)

var (
	parWidthMin float64
	parWidthMax float64
	parDepthMin float64
	parDepthMax float64
	parCover    float64
	parSpan     float64

	parConcrete string
	parSteel    string

	parMu float64
	parVu float64

	parGenerations int
	parPopulation  int
	parSeed        int64
	parPricesFile  string
)

var paretoCmd = &cobra.Command{
	Use:   "pareto",
	Short: "Trade off cost, depth and carbon over a section design space",
	Long: `Search beam width, depth and reinforcement at once, returning the
set of compliant designs in which no member beats another on all three
objectives (cost, overall depth, embodied carbon). Use it when the
section itself is still open, e.g. when headroom competes with budget.

The search is evolutionary and seeded; the same seed always returns the
same front. An infeasible space returns an empty front.

Examples:
  gorcopt pareto --width-min 230 --width-max 300 \
      --depth-min 400 --depth-max 650 --mu 180 --vu 120

  gorcopt pareto --width-min 230 --width-max 230 \
      --depth-min 450 --depth-max 600 --mu 120 --vu 85 --seed 7`,
	Run: runPareto,
}

func init() {
	rootCmd.AddCommand(paretoCmd)

	paretoCmd.Flags().Float64Var(&parWidthMin, "width-min", 0, "Minimum beam width (mm) [required]")
	paretoCmd.Flags().Float64Var(&parWidthMax, "width-max", 0, "Maximum beam width (mm) [required]")
	paretoCmd.Flags().Float64Var(&parDepthMin, "depth-min", 0, "Minimum overall depth (mm) [required]")
	paretoCmd.Flags().Float64Var(&parDepthMax, "depth-max", 0, "Maximum overall depth (mm) [required]")
	paretoCmd.Flags().Float64Var(&parCover, "cover", 25, "Clear cover to stirrup (mm)")
	paretoCmd.Flags().Float64Var(&parSpan, "span", 4000, "Member span (mm)")

	paretoCmd.Flags().StringVar(&parConcrete, "concrete", "M25", "Concrete grade (M15..M40)")
	paretoCmd.Flags().StringVar(&parSteel, "steel", "Fe415", "Steel grade (Fe250, Fe415, Fe500)")

	paretoCmd.Flags().Float64VarP(&parMu, "mu", "m", 0, "Factored moment Mu (kN·m) [required]")
	paretoCmd.Flags().Float64VarP(&parVu, "vu", "v", 0, "Factored shear Vu (kN) [required]")

	paretoCmd.Flags().IntVar(&parGenerations, "generations", 40, "Generation budget")
	paretoCmd.Flags().IntVar(&parPopulation, "population", 60, "Population size per generation")
	paretoCmd.Flags().Int64Var(&parSeed, "seed", 1, "Random seed (same seed, same front)")
	paretoCmd.Flags().StringVar(&parPricesFile, "prices", "", "YAML unit-price table (defaults to built-in rates)")

	paretoCmd.MarkFlagRequired("width-min")
	paretoCmd.MarkFlagRequired("width-max")
	paretoCmd.MarkFlagRequired("depth-min")
	paretoCmd.MarkFlagRequired("depth-max")
	paretoCmd.MarkFlagRequired("mu")
	paretoCmd.MarkFlagRequired("vu")
}

func runPareto(cmd *cobra.Command, args []string) {
	mat, err := section.NewMaterial(section.ConcreteGrade(parConcrete), section.SteelGrade(parSteel))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	demand, err := section.NewDemand(parMu, parVu)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	space := pareto.Space{
		WidthMin: parWidthMin,
		WidthMax: parWidthMax,
		DepthMin: parDepthMin,
		DepthMax: parDepthMax,
		Cover:    parCover,
		Span:     parSpan,
		Material: mat,
		Demand:   demand,
		Catalog:  section.DefaultCatalog(),
	}

	cfg := pareto.Config{
		Generations:    parGenerations,
		PopulationSize: parPopulation,
		Seed:           parSeed,
	}
	if parPricesFile != "" {
		table, err := pricing.LoadFromFile(parPricesFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		cfg.Prices = table
	}

	front, err := pareto.Search(space, cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PARETO SECTION SEARCH - IS 456:2000")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if len(front.Entries) == 0 {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  NO FEASIBLE DESIGN IN THE SPACE        ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		fmt.Printf("  Candidates evaluated: %d\n", front.Evaluated)
		fmt.Println("  Widen the bounds or reduce the demand.")
		fmt.Println()
		return
	}

	fmt.Println("BEST COST BY GENERATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Println(asciigraph.Plot(front.Trace, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Offset(4)))
	fmt.Println()

	fmt.Println("NON-DOMINATED DESIGNS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tSection\tBottom Bars\tStirrups\tCost\tDepth\tCarbon\tBuild\n")
	fmt.Fprintf(w, "  ─\t───────\t───────────\t────────\t────\t─────\t──────\t─────\n")
	for i, e := range front.Entries {
		fmt.Fprintf(w, "  %d\t%.0fx%.0f\t%s\tφ%dmm @ %.0f\t%.2f\t%.0f\t%.1f\t%.0f\n",
			i+1,
			e.Design.Geometry.Width, e.Design.Geometry.Depth,
			formatBars(e.Design.Layout.Bottom),
			e.Design.Layout.Stirrup.Dia, e.Design.Layout.Stirrup.Spacing,
			e.Objectives.Cost, e.Objectives.Depth, e.Objectives.Carbon,
			e.Constructability.Total)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d designs on the front, %d candidates evaluated\n", len(front.Entries), front.Evaluated)
	fmt.Println()
}
