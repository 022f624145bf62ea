package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcopt/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gorcopt",
	Short: "Reinforced Concrete Beam Verification and Optimization Tool",
	Long: `gorcopt - Go Reinforced Concrete Beam Optimizer

A CLI tool for verifying reinforced concrete beam sections against
IS 456:2000 and searching for optimal reinforcement layouts.

This tool helps structural engineers perform:
  - Code compliance checks (flexure, shear, spacing, anchorage)
  - Least-cost rebar selection from standard bar catalogs
  - Beam-line optimization with bar standardization
  - Multi-objective (cost/depth/carbon) section search
  - Material takeoff and costing

All calculations follow IS 456:2000 limit state provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcopt v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Beam Optimizer                   ║")
		fmt.Printf("  ║   Alexius S. Academia ©  %-4s                             ║\n", version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for verifying and optimizing reinforced concrete")
		fmt.Println("  beams per IS 456:2000.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Compliance checks with itemized utilization ratios")
		fmt.Println("    • Least-cost reinforcement from standard catalogs")
		fmt.Println("    • Beam-line standardization across continuous runs")
		fmt.Println("    • Pareto search over section size and reinforcement")
		fmt.Println("    • Steel and concrete takeoff with wastage and pricing")
		fmt.Println()
		fmt.Println("  Use 'gorcopt --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
