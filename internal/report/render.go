package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/paymig/paymig/internal/types"
)

// PrintOptions control rendering of scan results.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
	Cancelled    bool
}

// SortFindings orders findings by path, then line, then column, for stable
// output regardless of scan order.
func SortFindings(findings []types.Finding) {
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Path != findings[j].Path {
			return findings[i].Path < findings[j].Path
		}
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Column < findings[j].Column
	})
}

// PrintText renders findings in plain columnar format with a summary footer.
func PrintText(w io.Writer, findings []types.Finding, opts PrintOptions) {
	SortFindings(findings)
	if len(findings) == 0 {
		fmt.Fprintln(w, "No legacy payment-API usages found")
	} else {
		maxType := 8
		for _, f := range findings {
			if l := len(f.EndpointType); l > maxType {
				maxType = l
			}
		}
		fmt.Fprintf(w, "Findings: %d\n", len(findings))
		for _, f := range findings {
			etype := string(f.EndpointType)
			if !opts.NoColor {
				etype = colorEndpointType(f.EndpointType)
			}
			fmt.Fprintf(w, "%-*s %.2f  %s:%d:%d  %s\n", maxType, etype, f.Confidence, f.Path, f.Line, f.Column, truncate(f.Match, 80))
		}
	}
	printSummary(w, findings, opts)
}

func printSummary(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if opts.Duration <= 0 && opts.FilesScanned == 0 {
		return
	}
	counts := map[types.EndpointType]int{}
	for _, f := range findings {
		counts[f.EndpointType]++
	}
	fmt.Fprintln(w)
	status := "completed"
	if opts.Cancelled {
		status = "cancelled"
	}
	fmt.Fprintf(w, "Scan %s: %d files in %s", status, opts.FilesScanned, opts.Duration.Round(time.Millisecond))
	if len(counts) > 0 {
		fmt.Fprint(w, " (")
		first := true
		for _, t := range []types.EndpointType{
			types.EndpointTransaction, types.EndpointPayment, types.EndpointRefund,
			types.EndpointAuth, types.EndpointDTO, types.EndpointEndpoint,
			types.EndpointClass, types.EndpointUnknown,
		} {
			if counts[t] == 0 {
				continue
			}
			if !first {
				fmt.Fprint(w, ", ")
			}
			first = false
			fmt.Fprintf(w, "%s: %d", t, counts[t])
		}
		fmt.Fprint(w, ")")
	}
	fmt.Fprintln(w)
}

func colorEndpointType(t types.EndpointType) string {
	switch t {
	case types.EndpointTransaction, types.EndpointPayment, types.EndpointRefund:
		return color.New(color.FgRed).Sprint(string(t))
	case types.EndpointAuth, types.EndpointEndpoint:
		return color.New(color.FgYellow).Sprint(string(t))
	case types.EndpointDTO, types.EndpointClass:
		return color.New(color.FgCyan).Sprint(string(t))
	default:
		return color.New(color.FgWhite).Sprint(string(t))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
