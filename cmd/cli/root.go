package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "simplexdss",
	Short: "Simplex DSS - Tabular Simplex Solver",
	Long: `Simplex DSS solves linear programming problems with the tabular
two-phase Simplex method and exposes the full pivot trace, constraint
graphs and a solve history over HTTP.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
