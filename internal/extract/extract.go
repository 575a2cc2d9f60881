// Package extract applies one compiled pattern to file content and yields
// located raw matches with a short context snippet. It is deliberately
// line-oriented: patterns never span line terminators.
package extract

import (
	"strings"

	"github.com/paymig/paymig/internal/patterns"
)

// RawMatch is a single located pattern hit. Line and Column are 1-based;
// Column counts bytes from the start of the line.
type RawMatch struct {
	Line    int
	Column  int
	Match   string
	Snippet string
}

// Matches applies the pattern line by line. Repeatable patterns collect every
// non-overlapping hit on a line; others get exactly one attempt per line, so a
// zero-width match cannot loop.
func Matches(content string, e *patterns.Entry) []RawMatch {
	lines := SplitLines(content)
	var out []RawMatch
	for i, ln := range lines {
		if e.Repeat {
			for _, loc := range e.Regexp.FindAllStringIndex(ln, -1) {
				out = append(out, RawMatch{
					Line:    i + 1,
					Column:  loc[0] + 1,
					Match:   ln[loc[0]:loc[1]],
					Snippet: snippet(lines, i),
				})
			}
			continue
		}
		if loc := e.Regexp.FindStringIndex(ln); loc != nil {
			out = append(out, RawMatch{
				Line:    i + 1,
				Column:  loc[0] + 1,
				Match:   ln[loc[0]:loc[1]],
				Snippet: snippet(lines, i),
			})
		}
	}
	return out
}

// SplitLines splits content on line terminators, tolerating CRLF.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

// snippet returns the matched line plus up to one line of context on each
// side, joined by newlines.
func snippet(lines []string, i int) string {
	lo := i - 1
	if lo < 0 {
		lo = 0
	}
	hi := i + 2
	if hi > len(lines) {
		hi = len(lines)
	}
	return strings.Join(lines[lo:hi], "\n")
}
