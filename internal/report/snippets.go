package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/paymig/paymig/internal/types"
)

// PrintSnippets renders each finding with its syntax-highlighted context
// snippet, grouped under a location header.
func PrintSnippets(w io.Writer, findings []types.Finding, opts PrintOptions) {
	SortFindings(findings)
	for _, f := range findings {
		fmt.Fprintf(w, "%s:%d:%d  [%s] %.2f\n", f.Path, f.Line, f.Column, f.EndpointType, f.Confidence)
		snippet := f.Snippet
		if !opts.NoColor {
			snippet = highlightCode(snippet, f.Path)
		}
		fmt.Fprintln(w, indent(snippet))
	}
	printSummary(w, findings, opts)
}

func highlightCode(code, filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		if ext := filepath.Ext(filename); ext != "" {
			lexer = lexers.Match("file" + ext)
		}
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}

func indent(s string) string {
	var buf bytes.Buffer
	for _, line := range bytes.Split([]byte(s), []byte("\n")) {
		buf.WriteString("    ")
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.String()
}
