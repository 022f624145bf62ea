package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcopt/internal/pricing"
	"github.com/alexiusacademia/gorcopt/internal/section"
	"github.com/alexiusacademia/gorcopt/internal/takeoff"
	"github.com/spf13/cobra"
)

var (
	toWidth    float64
	toDepth    float64
	toEffDepth float64
	toCover    float64
	toSpan     float64

	toConcrete string
	toSteel    string

	toBars    string
	toTopBars string
	toStirrup string

	toWastage    float64
	toPricesFile string
)

var takeoffCmd = &cobra.Command{
	Use:   "takeoff",
	Short: "Material takeoff and cost estimate for a beam design",
	Long: `Roll up steel mass per bar diameter, concrete volume, costs and
embodied carbon for a finished beam design. Main bars run the full span;
stirrup steel comes from the hoop perimeter and count over the span. A
wastage fraction inflates all material quantities.

Unit prices default to built-in rates and can be overridden with a YAML
file:

  steel_per_kg: 65
  concrete_per_cum:
    M25: 5200
  carbon_steel_per_kg: 1.85
  carbon_concrete_per_cum: 310

Example:
  gorcopt takeoff --width 230 --depth 450 --eff-depth 409 --span 4000 \
      --bars 4x16 --stirrup 8@150 --wastage 0.05`,
	Run: runTakeoff,
}

func init() {
	rootCmd.AddCommand(takeoffCmd)

	takeoffCmd.Flags().Float64VarP(&toWidth, "width", "b", 0, "Beam width (mm) [required]")
	takeoffCmd.Flags().Float64Var(&toDepth, "depth", 0, "Beam overall depth (mm) [required]")
	takeoffCmd.Flags().Float64VarP(&toEffDepth, "eff-depth", "d", 0, "Effective depth (mm) [required]")
	takeoffCmd.Flags().Float64Var(&toCover, "cover", 25, "Clear cover to stirrup (mm)")
	takeoffCmd.Flags().Float64Var(&toSpan, "span", 4000, "Member span (mm)")

	takeoffCmd.Flags().StringVar(&toConcrete, "concrete", "M25", "Concrete grade (M15..M40)")
	takeoffCmd.Flags().StringVar(&toSteel, "steel", "Fe415", "Steel grade (Fe250, Fe415, Fe500)")

	takeoffCmd.Flags().StringVar(&toBars, "bars", "", "Bottom bars per layer, e.g. 4x16 or 4x20+2x20 [required]")
	takeoffCmd.Flags().StringVar(&toTopBars, "top", "", "Top bars, e.g. 2x12")
	takeoffCmd.Flags().StringVar(&toStirrup, "stirrup", "", "Stirrups, e.g. 8@150 [required]")

	takeoffCmd.Flags().Float64Var(&toWastage, "wastage", 0.05, "Wastage fraction applied to all quantities")
	takeoffCmd.Flags().StringVar(&toPricesFile, "prices", "", "YAML unit-price table (defaults to built-in rates)")

	takeoffCmd.MarkFlagRequired("width")
	takeoffCmd.MarkFlagRequired("depth")
	takeoffCmd.MarkFlagRequired("eff-depth")
	takeoffCmd.MarkFlagRequired("bars")
	takeoffCmd.MarkFlagRequired("stirrup")
}

func runTakeoff(cmd *cobra.Command, args []string) {
	geom, err := section.NewGeometry(toWidth, toDepth, toEffDepth, toCover, toSpan)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	mat, err := section.NewMaterial(section.ConcreteGrade(toConcrete), section.SteelGrade(toSteel))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	bottom, err := parseBars(toBars)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	top, err := parseBars(toTopBars)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	stirrup, err := parseStirrup(toStirrup)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	table := pricing.Default()
	if toPricesFile != "" {
		table, err = pricing.LoadFromFile(toPricesFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	design := takeoff.Design{
		Geometry: geom,
		Material: mat,
		Layout:   section.Layout{Bottom: bottom, Top: top, Stirrup: stirrup},
	}

	result, err := takeoff.Takeoff([]takeoff.Design{design}, table, toWastage)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MATERIAL TAKEOFF")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("STEEL BY DIAMETER:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Diameter\tMass (kg)\tCost\n")
	fmt.Fprintf(w, "  ────────\t─────────\t────\n")
	for _, item := range result.Items {
		fmt.Fprintf(w, "  φ%dmm\t%.2f\t%.2f\n", item.Dia, item.MassKg, item.Cost)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SUMMARY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Steel Mass:\t%.2f kg\n", result.SteelMassKg)
	fmt.Fprintf(w, "  Concrete Volume:\t%.3f m³\n", result.ConcreteVolume)
	fmt.Fprintf(w, "  Steel Cost:\t%.2f\n", result.SteelCost)
	fmt.Fprintf(w, "  Concrete Cost:\t%.2f\n", result.ConcreteCost)
	fmt.Fprintf(w, "  Total Cost:\t%.2f\n", result.TotalCost)
	fmt.Fprintf(w, "  Embodied Carbon:\t%.1f kgCO₂e\n", result.CarbonKg)
	fmt.Fprintf(w, "  Wastage Applied:\t%.0f%%\n", result.WastageFraction*100)
	w.Flush()
	fmt.Println()
}
