package extract

import (
	"strings"
	"testing"

	"github.com/paymig/paymig/internal/patterns"
	"github.com/paymig/paymig/internal/types"
)

func urlEntry(t *testing.T) *patterns.Entry {
	t.Helper()
	for _, e := range patterns.For(types.LangJavaScript, types.ModePattern) {
		if e.Kind == patterns.KindEndpointURL {
			return e
		}
	}
	t.Fatal("no endpoint-url entry registered")
	return nil
}

func TestSingleMatchPositions(t *testing.T) {
	content := `const url = 'https://pay.vendor-a.com/api/tx';`
	got := Matches(content, urlEntry(t))
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	m := got[0]
	if m.Line != 1 {
		t.Fatalf("line = %d, want 1", m.Line)
	}
	if m.Match != "https://pay.vendor-a.com/api/tx" {
		t.Fatalf("match = %q", m.Match)
	}
	wantCol := strings.Index(content, "https") + 1
	if m.Column != wantCol {
		t.Fatalf("column = %d, want %d", m.Column, wantCol)
	}
}

func TestRepeatableFindsAllNonOverlapping(t *testing.T) {
	content := `a("https://legacypay.io/x"); b("https://legacypay.io/y")`
	got := Matches(content, urlEntry(t))
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Column >= got[1].Column {
		t.Fatalf("matches out of order: %d then %d", got[0].Column, got[1].Column)
	}
}

func TestNonRepeatableStopsAfterFirstHit(t *testing.T) {
	var importEntry *patterns.Entry
	for _, e := range patterns.For(types.LangJavaScript, types.ModePattern) {
		if e.Kind == patterns.KindImport {
			importEntry = e
		}
	}
	if importEntry == nil {
		t.Fatal("no import entry registered")
	}
	content := `require('legacypay'); require('legacypay')`
	got := Matches(content, importEntry)
	if len(got) != 1 {
		t.Fatalf("expected single attempt per line, got %d matches", len(got))
	}
}

func TestSnippetBoundaries(t *testing.T) {
	content := "line one\nconst u = 'https://legacypay.io/a';\nline three\nline four"
	got := Matches(content, urlEntry(t))
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	want := "line one\nconst u = 'https://legacypay.io/a';\nline three"
	if got[0].Snippet != want {
		t.Fatalf("snippet = %q, want %q", got[0].Snippet, want)
	}

	// match on the first line gets only one trailing context line
	got = Matches("const u = 'https://legacypay.io/a';\nnext", urlEntry(t))
	if got[0].Snippet != "const u = 'https://legacypay.io/a';\nnext" {
		t.Fatalf("boundary snippet = %q", got[0].Snippet)
	}
}

func TestPositionsWithinBounds(t *testing.T) {
	content := "x\ny\nvendorA.processPayment(order)\nz"
	lines := SplitLines(content)
	for _, e := range patterns.For(types.LangJavaScript, types.ModePattern) {
		for _, m := range Matches(content, e) {
			if m.Line < 1 || m.Line > len(lines) {
				t.Fatalf("line %d out of range", m.Line)
			}
			if m.Column < 1 || m.Column > len(lines[m.Line-1])+1 {
				t.Fatalf("column %d out of range for line %q", m.Column, lines[m.Line-1])
			}
		}
	}
}

func TestSplitLinesCRLF(t *testing.T) {
	lines := SplitLines("a\r\nb\r\nc")
	if len(lines) != 3 || lines[0] != "a" || lines[1] != "b" || lines[2] != "c" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}
