package paymig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/paymig/paymig/internal/ignore"
)

var flagIgnorePath string

func init() {
	cmd := &cobra.Command{
		Use:   "ignore",
		Short: "Manage the scan exclusion list",
	}
	cmd.PersistentFlags().StringVarP(&flagIgnorePath, "path", "p", ".", "project root holding the ignore file")

	add := &cobra.Command{
		Use:   "add <glob>",
		Short: "Add an exclusion glob (idempotent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			abs, _ := filepath.Abs(flagIgnorePath)
			if err := ignore.AppendFile(abs, args[0]); err != nil {
				return fmt.Errorf("failed to update %s: %w", ignore.FileName, err)
			}
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Print the current exclusion globs",
		RunE: func(_ *cobra.Command, _ []string) error {
			abs, _ := filepath.Abs(flagIgnorePath)
			l, err := ignore.Load(filepath.Join(abs, ignore.FileName))
			if err != nil {
				return err
			}
			for _, p := range l.Patterns() {
				fmt.Fprintln(os.Stdout, p)
			}
			return nil
		},
	}

	cmd.AddCommand(add, list)
	rootCmd.AddCommand(cmd)
}
