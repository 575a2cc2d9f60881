package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/paymig/paymig/internal/types"
)

// PrintTable renders findings as a bordered table.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) {
	SortFindings(findings)
	if len(findings) == 0 {
		fmt.Fprintln(w, "No legacy payment-API usages found")
		printSummary(w, findings, opts)
		return
	}
	table := tablewriter.NewTable(w)
	table.Header("Type", "Conf", "Location", "Lang", "Detail", "Match")
	for _, f := range findings {
		_ = table.Append([]string{
			string(f.EndpointType),
			fmt.Sprintf("%.2f", f.Confidence),
			fmt.Sprintf("%s:%d:%d", f.Path, f.Line, f.Column),
			string(f.Language),
			detail(f),
			truncate(f.Match, 48),
		})
	}
	_ = table.Render()
	printSummary(w, findings, opts)
}

// detail condenses the mode-specific fields into one column.
func detail(f types.Finding) string {
	switch {
	case f.EndpointURL != "":
		return f.EndpointURL
	case f.MethodName != "":
		return string(f.LogicType) + " " + f.MethodName
	case f.ClassName != "":
		return string(f.LogicType) + " " + f.ClassName
	case f.DTOName != "":
		return string(f.LogicType) + " " + f.DTOName
	case f.LogicType != "":
		return string(f.LogicType)
	}
	return ""
}
