package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paymig/paymig/internal/types"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestScanEndToEnd(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/checkout.js": `import legacypay from 'legacypay';
const url = 'https://pay.vendor-a.com/api/tx';
legacyPay.processPayment(order);`,
		"src/util.js": "export const id = x => x;",
		"README.md":   "https://pay.vendor-a.com ignored, wrong extension",
	})

	findings, err := Scan(context.Background(), Config{Root: root, NoCache: true}, Options{Mode: ModePattern})
	if err != nil {
		t.Fatal(err)
	}
	if len(findings) != 3 {
		t.Fatalf("findings = %d, want 3: %+v", len(findings), findings)
	}
	for _, f := range findings {
		if f.Path != "src/checkout.js" {
			t.Fatalf("unexpected path %q", f.Path)
		}
		if f.Confidence < 0.5 || f.Confidence > 1.0 {
			t.Fatalf("confidence %v out of range", f.Confidence)
		}
		if f.Language != types.LangJavaScript {
			t.Fatalf("language = %s", f.Language)
		}
	}
}

func TestScannerSessionLifecycle(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.js": `const u = 'https://legacypay.io/x';`,
	})
	s := NewScanner(Config{Root: root, NoCache: true})
	findings, err := s.ScanProject(context.Background(), Options{Mode: ModePattern})
	if err != nil {
		t.Fatal(err)
	}
	if len(findings) != 1 {
		t.Fatalf("findings = %d, want 1", len(findings))
	}
	p := s.Progress()
	if !p.Complete || p.Percentage != 100 {
		t.Fatalf("progress = %+v", p)
	}

	// the same scanner can run another session
	if _, err := s.ScanProject(context.Background(), Options{Mode: ModeStructural}); err != nil {
		t.Fatal(err)
	}
}

func TestFindingsJSONRoundTrip(t *testing.T) {
	in := []Finding{{
		ID:           "abc",
		Path:         "src/a.js",
		Line:         4,
		Column:       2,
		Match:        "legacyPay.processPayment(",
		Confidence:   0.8,
		EndpointType: types.EndpointPayment,
		Language:     types.LangJavaScript,
		ScanMode:     ModePattern,
	}}
	var buf bytes.Buffer
	if err := MarshalFindings(&buf, in); err != nil {
		t.Fatal(err)
	}
	out, err := UnmarshalFindings(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestMarshalFindingsNilIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	if err := MarshalFindings(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Fatalf("nil findings = %q, want []", got)
	}
}
