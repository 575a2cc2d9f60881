package paymig

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paymig/paymig/internal/patterns"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the registered dialect patterns by language and mode",
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, l := range patterns.Languages() {
				for _, m := range patterns.Modes() {
					set := patterns.For(l, m)
					if len(set) == 0 {
						continue
					}
					fmt.Fprintf(os.Stdout, "%s / %s:\n", l, m)
					for _, e := range set {
						repeat := " "
						if e.Repeat {
							repeat = "*"
						}
						fmt.Fprintf(os.Stdout, "  %s [%-20s] %s\n", repeat, e.Kind, e.Regexp.String())
					}
				}
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
