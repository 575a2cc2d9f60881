package paymig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/paymig/paymig/internal/audit"
)

var flagHistoryPath string

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past scan sessions for a project",
		RunE: func(_ *cobra.Command, _ []string) error {
			abs, _ := filepath.Abs(flagHistoryPath)
			records, err := audit.NewLog(abs).LoadHistory()
			if err != nil {
				fmt.Fprintln(os.Stdout, "no scan history")
				return nil
			}
			for _, r := range records {
				status := "completed"
				if r.Cancelled {
					status = "cancelled"
				}
				fmt.Fprintf(os.Stdout, "%s  %s  mode=%s files=%d findings=%d %s (%s)\n",
					r.Timestamp.Format("2006-01-02 15:04:05"), shortID(r.SessionID), r.Mode,
					r.FilesScanned, r.TotalFindings, status, r.Duration)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagHistoryPath, "path", "p", ".", "project root")
	rootCmd.AddCommand(cmd)
}

// shortID abbreviates a session id for display. Records are decoded leniently,
// so an id may be shorter than the uuid the scanner writes.
func shortID(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
