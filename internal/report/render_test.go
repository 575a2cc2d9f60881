package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/paymig/paymig/internal/types"
)

func sampleFindings() []types.Finding {
	return []types.Finding{
		{ID: "b", Path: "src/b.js", Line: 3, Column: 1, Match: "legacyPay.processPayment(", EndpointType: types.EndpointPayment, Confidence: 0.8},
		{ID: "a2", Path: "src/a.js", Line: 9, Column: 5, Match: "https://legacypay.io/x", EndpointType: types.EndpointEndpoint, Confidence: 0.5},
		{ID: "a1", Path: "src/a.js", Line: 2, Column: 1, Match: "merchant_key", EndpointType: types.EndpointUnknown, Confidence: 0.6},
	}
}

func TestSortFindings(t *testing.T) {
	f := sampleFindings()
	SortFindings(f)
	if f[0].ID != "a1" || f[1].ID != "a2" || f[2].ID != "b" {
		t.Fatalf("order = %s %s %s", f[0].ID, f[1].ID, f[2].ID)
	}
}

func TestPrintTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, nil, PrintOptions{NoColor: true})
	if !strings.Contains(buf.String(), "No legacy payment-API usages found") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestPrintTextListsFindings(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sampleFindings(), PrintOptions{
		NoColor:      true,
		Duration:     1500 * time.Millisecond,
		FilesScanned: 2,
	})
	out := buf.String()
	for _, want := range []string{
		"Findings: 3",
		"src/a.js:2:1",
		"src/a.js:9:5",
		"src/b.js:3:1",
		"0.80",
		"Scan completed: 2 files in 1.5s",
		"payment: 1",
		"endpoint: 1",
		"unknown: 1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTextCancelled(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, nil, PrintOptions{NoColor: true, Duration: time.Second, FilesScanned: 1, Cancelled: true})
	if !strings.Contains(buf.String(), "Scan cancelled") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 100)
	if got := truncate(long, 80); len(got) != 80 || !strings.HasSuffix(got, "...") {
		t.Fatalf("truncate = %q (len %d)", got, len(got))
	}
	if got := truncate("short", 80); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSON(&buf, sampleFindings(), PrintOptions{Duration: 2 * time.Second, FilesScanned: 5})
	if err != nil {
		t.Fatal(err)
	}
	var env Envelope
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if len(env.Findings) != 3 || env.FilesScanned != 5 || env.DurationMs != 2000 || env.Cancelled {
		t.Fatalf("envelope = %+v", env)
	}
	if env.Findings[0].ID != "a1" {
		t.Fatalf("findings not sorted: %s", env.Findings[0].ID)
	}
}

func TestWriteJSONNilFindings(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil, PrintOptions{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"findings": []`) {
		t.Fatalf("nil findings must serialize as an empty array:\n%s", buf.String())
	}
}
