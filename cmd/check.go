package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcopt/internal/check"
	"github.com/alexiusacademia/gorcopt/internal/section"
	"github.com/spf13/cobra"
)

var (
	// Section inputs
	checkWidth    float64
	checkDepth    float64
	checkEffDepth float64
	checkCover    float64
	checkSpan     float64

	// Materials
	checkConcrete string
	checkSteel    string

	// Loading
	checkMu float64
	checkVu float64

	// Reinforcement
	checkBars      string
	checkTopBars   string
	checkStirrup   string
	checkAnchorage float64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify a beam section and layout against IS 456",
	Long: `Run the full set of IS 456:2000 compliance checks on a beam
section with a given reinforcement layout: minimum and maximum
reinforcement, flexural capacity, shear capacity, bar spacing and
anchorage. Every sub-check reports a utilization ratio; values at or
below 1.0 comply.

Examples:
  # Check a 230x450mm M25/Fe415 beam with 4-16mm bars and 8mm@150 stirrups
  gorcopt check --width 230 --depth 450 --eff-depth 409 --mu 120 --vu 85 \
      --bars 4x16 --stirrup 8@150

  # Two bottom layers and top steel
  gorcopt check -b 300 --depth 600 -d 540 --bars 4x20+2x20 --top 2x12 \
      --stirrup 8@125 --mu 310 --vu 160`,
	Run: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Geometry flags
	checkCmd.Flags().Float64VarP(&checkWidth, "width", "b", 0, "Beam width (mm) [required]")
	checkCmd.Flags().Float64Var(&checkDepth, "depth", 0, "Beam overall depth (mm) [required]")
	checkCmd.Flags().Float64VarP(&checkEffDepth, "eff-depth", "d", 0, "Effective depth to tension steel centroid (mm) [required]")
	checkCmd.Flags().Float64Var(&checkCover, "cover", 25, "Clear cover to stirrup (mm)")
	checkCmd.Flags().Float64Var(&checkSpan, "span", 4000, "Member span (mm)")

	// Material flags
	checkCmd.Flags().StringVar(&checkConcrete, "concrete", "M25", "Concrete grade (M15..M40)")
	checkCmd.Flags().StringVar(&checkSteel, "steel", "Fe415", "Steel grade (Fe250, Fe415, Fe500)")

	// Loading flags
	checkCmd.Flags().Float64VarP(&checkMu, "mu", "m", 0, "Factored moment Mu (kN·m) [required]")
	checkCmd.Flags().Float64VarP(&checkVu, "vu", "v", 0, "Factored shear Vu (kN) [required]")

	// Reinforcement flags
	checkCmd.Flags().StringVar(&checkBars, "bars", "", "Bottom bars per layer, e.g. 4x16 or 4x20+2x20 [required]")
	checkCmd.Flags().StringVar(&checkTopBars, "top", "", "Top bars, e.g. 2x12")
	checkCmd.Flags().StringVar(&checkStirrup, "stirrup", "", "Stirrups, e.g. 8@150 [required]")
	checkCmd.Flags().Float64Var(&checkAnchorage, "anchorage", 0, "Available embedment beyond critical section (mm, 0 = unrestricted)")

	checkCmd.MarkFlagRequired("width")
	checkCmd.MarkFlagRequired("depth")
	checkCmd.MarkFlagRequired("eff-depth")
	checkCmd.MarkFlagRequired("mu")
	checkCmd.MarkFlagRequired("vu")
	checkCmd.MarkFlagRequired("bars")
	checkCmd.MarkFlagRequired("stirrup")
}

func runCheck(cmd *cobra.Command, args []string) {
	geom, mat, demand, layout, err := buildCheckInputs()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := check.Check(geom, mat, demand, layout)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BEAM COMPLIANCE CHECK - IS 456:2000")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam Width (b):\t%.0f mm\n", geom.Width)
	fmt.Fprintf(w, "  Overall Depth (D):\t%.0f mm\n", geom.Depth)
	fmt.Fprintf(w, "  Effective Depth (d):\t%.0f mm\n", geom.EffectiveDepth)
	fmt.Fprintf(w, "  Clear Cover:\t%.0f mm\n", geom.Cover)
	fmt.Fprintf(w, "  Materials:\t%s / %s\n", mat.Concrete, mat.Steel)
	fmt.Fprintf(w, "  Bottom Bars:\t%s (As=%.0f mm²)\n", formatBars(layout.Bottom), layout.BottomArea())
	if len(layout.Top) > 0 {
		fmt.Fprintf(w, "  Top Bars:\t%s (As=%.0f mm²)\n", formatBars(layout.Top), layout.TopArea())
	}
	fmt.Fprintf(w, "  Stirrups:\tφ%dmm @ %.0f mm\n", layout.Stirrup.Dia, layout.Stirrup.Spacing)
	fmt.Fprintf(w, "  Factored Moment (Mu):\t%.2f kN·m\n", demand.Moment)
	fmt.Fprintf(w, "  Factored Shear (Vu):\t%.2f kN\n", demand.Shear)
	w.Flush()
	fmt.Println()

	fmt.Println("SUB-CHECKS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Check\tStatus\tUtilization\tDetail\n")
	fmt.Fprintf(w, "  ─────\t──────\t───────────\t──────\n")
	for _, sub := range result.Checks {
		status := "PASS"
		if !sub.OK {
			status = "FAIL"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.3f\t%s\n", sub.Name, status, sub.Utilization, sub.Detail)
	}
	w.Flush()
	fmt.Println()

	if len(result.Violations) > 0 {
		fmt.Println("VIOLATIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, v := range result.Violations {
			fmt.Printf("  [%s] %s\n", v.Kind, v.Message)
		}
		fmt.Println()
	}

	if result.AllOK {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  SECTION COMPLIES WITH IS 456           ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		fmt.Printf("  Mn = %.2f kN·m, V capacity = %.2f kN\n", result.MomentCapacity, result.ShearCapacity)
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  SECTION DOES NOT COMPLY                ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	}
	fmt.Println()
}

func buildCheckInputs() (section.Geometry, section.Material, section.Demand, section.Layout, error) {
	geom, err := section.NewGeometry(checkWidth, checkDepth, checkEffDepth, checkCover, checkSpan)
	if err != nil {
		return section.Geometry{}, section.Material{}, section.Demand{}, section.Layout{}, err
	}
	mat, err := section.NewMaterial(section.ConcreteGrade(checkConcrete), section.SteelGrade(checkSteel))
	if err != nil {
		return section.Geometry{}, section.Material{}, section.Demand{}, section.Layout{}, err
	}
	demand, err := section.NewDemand(checkMu, checkVu)
	if err != nil {
		return section.Geometry{}, section.Material{}, section.Demand{}, section.Layout{}, err
	}

	bottom, err := parseBars(checkBars)
	if err != nil {
		return section.Geometry{}, section.Material{}, section.Demand{}, section.Layout{}, err
	}
	top, err := parseBars(checkTopBars)
	if err != nil {
		return section.Geometry{}, section.Material{}, section.Demand{}, section.Layout{}, err
	}
	stirrup, err := parseStirrup(checkStirrup)
	if err != nil {
		return section.Geometry{}, section.Material{}, section.Demand{}, section.Layout{}, err
	}

	layout := section.Layout{
		Bottom:          bottom,
		Top:             top,
		Stirrup:         stirrup,
		AnchorageLength: checkAnchorage,
	}
	return geom, mat, demand, layout, nil
}
