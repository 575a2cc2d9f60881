package paymig

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagNoColor       bool
	flagNoCache       bool
	flagMinConfidence float64

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the paymig CLI.
var rootCmd = &cobra.Command{
	Use:           "paymig",
	Short:         "Find legacy payment-API usages that need migration",
	Long:          "paymig scans a source tree for call sites, DTOs and service classes of the legacy payment dialect and reports classified, confidence-ranked findings.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the paymig CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable the incremental scan cache")
	rootCmd.PersistentFlags().Float64Var(&flagMinConfidence, "min-confidence", 0.0, "only show findings with confidence >= value (0-1)")
}
