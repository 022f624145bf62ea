package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcopt/internal/optimizer"
	"github.com/alexiusacademia/gorcopt/internal/pricing"
	"github.com/alexiusacademia/gorcopt/internal/section"
	"github.com/spf13/cobra"
)

var (
	optWidth    float64
	optDepth    float64
	optEffDepth float64
	optCover    float64
	optSpan     float64

	optConcrete string
	optSteel    string

	optMu float64
	optVu float64

	optObjective  string
	optPricesFile string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Find the least-cost compliant reinforcement layout",
	Long: `Search the standard bar and stirrup catalog for the cheapest
reinforcement layout that passes every IS 456 compliance check.

The search enumerates the full discrete catalog, so the returned layout
is the global optimum within it. Ties on cost break toward the layout
that is easier to build.

Examples:
  # Least-cost reinforcement for a 230x450mm beam
  gorcopt optimize --width 230 --depth 450 --eff-depth 409 --mu 120 --vu 85

  # Minimize steel area instead of cost
  gorcopt optimize -b 300 --depth 600 -d 540 --mu 310 --vu 160 --objective area`,
	Run: runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().Float64VarP(&optWidth, "width", "b", 0, "Beam width (mm) [required]")
	optimizeCmd.Flags().Float64Var(&optDepth, "depth", 0, "Beam overall depth (mm) [required]")
	optimizeCmd.Flags().Float64VarP(&optEffDepth, "eff-depth", "d", 0, "Effective depth (mm) [required]")
	optimizeCmd.Flags().Float64Var(&optCover, "cover", 25, "Clear cover to stirrup (mm)")
	optimizeCmd.Flags().Float64Var(&optSpan, "span", 4000, "Member span (mm)")

	optimizeCmd.Flags().StringVar(&optConcrete, "concrete", "M25", "Concrete grade (M15..M40)")
	optimizeCmd.Flags().StringVar(&optSteel, "steel", "Fe415", "Steel grade (Fe250, Fe415, Fe500)")

	optimizeCmd.Flags().Float64VarP(&optMu, "mu", "m", 0, "Factored moment Mu (kN·m) [required]")
	optimizeCmd.Flags().Float64VarP(&optVu, "vu", "v", 0, "Factored shear Vu (kN) [required]")

	optimizeCmd.Flags().StringVar(&optObjective, "objective", "cost", "Objective to minimize: cost or area")
	optimizeCmd.Flags().StringVar(&optPricesFile, "prices", "", "YAML unit-price table (defaults to built-in rates)")

	optimizeCmd.MarkFlagRequired("width")
	optimizeCmd.MarkFlagRequired("depth")
	optimizeCmd.MarkFlagRequired("eff-depth")
	optimizeCmd.MarkFlagRequired("mu")
	optimizeCmd.MarkFlagRequired("vu")
}

func runOptimize(cmd *cobra.Command, args []string) {
	geom, err := section.NewGeometry(optWidth, optDepth, optEffDepth, optCover, optSpan)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	mat, err := section.NewMaterial(section.ConcreteGrade(optConcrete), section.SteelGrade(optSteel))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	demand, err := section.NewDemand(optMu, optVu)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	opts, err := optimizeOptions()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := optimizer.Optimize(geom, mat, demand, section.DefaultCatalog(), opts)
	if errors.Is(err, optimizer.ErrNotFound) {
		fmt.Println()
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  NO COMPLIANT LAYOUT IN CATALOG         ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  The section is undersized for this demand. Increase the")
		fmt.Println("  section size or use 'gorcopt pareto' to search sections.")
		fmt.Println()
		return
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printOptimizeResult("REBAR OPTIMIZATION - IS 456:2000", result)
}

func optimizeOptions() (optimizer.Options, error) {
	opts := optimizer.Options{}
	switch optObjective {
	case "cost", "":
		opts.Objective = optimizer.ObjectiveCost
	case "area":
		opts.Objective = optimizer.ObjectiveSteelArea
	default:
		return opts, fmt.Errorf("unknown objective %q (use cost or area)", optObjective)
	}
	if optPricesFile != "" {
		table, err := pricing.LoadFromFile(optPricesFile)
		if err != nil {
			return opts, err
		}
		opts.Prices = table
	}
	return opts, nil
}

func printOptimizeResult(title string, result *optimizer.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("OPTIMAL LAYOUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bottom Bars:\t%s (As=%.0f mm²)\n", formatBars(result.Layout.Bottom), result.Layout.BottomArea())
	fmt.Fprintf(w, "  Stirrups:\tφ%dmm @ %.0f mm\n", result.Layout.Stirrup.Dia, result.Layout.Stirrup.Spacing)
	fmt.Fprintf(w, "  Objective Value:\t%.2f\n", result.Objective)
	fmt.Fprintf(w, "  Constructability:\t%.0f / 100\n", result.Constructability.Total)
	fmt.Fprintf(w, "  Candidates Evaluated:\t%d\n", result.Evaluated)
	w.Flush()
	fmt.Println()

	fmt.Println("GOVERNING UTILIZATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, sub := range result.Compliance.Checks {
		fmt.Fprintf(w, "  %s:\t%.3f\n", sub.Name, sub.Utilization)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  Mn = %.2f kN·m, V capacity = %.2f kN ✓\n", result.Compliance.MomentCapacity, result.Compliance.ShearCapacity)
	fmt.Println()
}
