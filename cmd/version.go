package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcopt/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcopt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorcopt v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Beam Verification and Optimization Tool")
		fmt.Println("Based on IS 456:2000 (Plain and Reinforced Concrete Code of Practice)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
