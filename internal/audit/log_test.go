package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/paymig/paymig/internal/types"
)

func TestRecord(t *testing.T) {
	findings := []types.Finding{
		{EndpointType: types.EndpointPayment},
		{EndpointType: types.EndpointPayment},
		{EndpointType: types.EndpointRefund},
	}
	rec := Record("sid-1", "/repo", types.ModePattern, findings, 10, 2, 1234*time.Millisecond, false)
	if rec.TotalFindings != 3 || rec.FilesScanned != 10 || rec.SkippedFiles != 2 {
		t.Fatalf("record = %+v", rec)
	}
	if rec.Duration != "1.234s" {
		t.Fatalf("duration = %q", rec.Duration)
	}
	if rec.TypeCounts["payment"] != 2 || rec.TypeCounts["refund"] != 1 {
		t.Fatalf("counts = %v", rec.TypeCounts)
	}
	if rec.Timestamp.IsZero() {
		t.Fatal("timestamp not set")
	}
}

func TestAppendAndLoadHistory(t *testing.T) {
	root := t.TempDir()
	l := NewLog(root)

	for _, sid := range []string{"first", "second"} {
		rec := Record(sid, root, types.ModeStructural, nil, 1, 0, time.Second, sid == "second")
		if err := l.Append(rec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := l.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("records = %d, want 2", len(got))
	}
	if got[0].SessionID != "first" || got[1].SessionID != "second" {
		t.Fatalf("order = %s, %s", got[0].SessionID, got[1].SessionID)
	}
	if got[0].Cancelled || !got[1].Cancelled {
		t.Fatalf("cancelled flags = %v, %v", got[0].Cancelled, got[1].Cancelled)
	}
}

func TestLoadHistoryMissing(t *testing.T) {
	if _, err := NewLog(t.TempDir()).LoadHistory(); err == nil {
		t.Fatal("expected error for missing log")
	}
}

func TestLogPathPrefersGitDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	l := NewLog(root)
	if err := l.Append(Record("sid", root, types.ModePattern, nil, 0, 0, 0, false)); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, ".git", "paymig_audit.jsonl")); err != nil {
		t.Fatalf("log not under .git: %v", err)
	}
}
