package cache

import (
	"testing"

	"github.com/paymig/paymig/internal/types"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	root := t.TempDir()
	db := DB{Entries: map[string]string{
		"src/app.js": Hash([]byte("const x = 1;")),
		"pay.go":     Hash([]byte("package pay")),
	}}
	if err := Save(root, db); err != nil {
		t.Fatal(err)
	}
	got, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Entries) != 2 {
		t.Fatalf("entries = %v", got.Entries)
	}
	if got.Entries["src/app.js"] != db.Entries["src/app.js"] {
		t.Fatalf("hash mismatch: %q", got.Entries["src/app.js"])
	}
}

func TestLoadMissingDB(t *testing.T) {
	db, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing db")
	}
	if db.Entries == nil {
		t.Fatal("Entries must be usable even on error")
	}
}

func TestSaveRejectsNilEntries(t *testing.T) {
	if err := Save(t.TempDir(), DB{}); err == nil {
		t.Fatal("expected error for nil entries")
	}
}

func TestHash(t *testing.T) {
	if got := Hash(nil); got != "0000000000000000" {
		t.Fatalf("empty hash = %q", got)
	}
	a, b := Hash([]byte("alpha")), Hash([]byte("beta"))
	if len(a) != 16 || len(b) != 16 {
		t.Fatalf("hash lengths: %d %d", len(a), len(b))
	}
	if a == b {
		t.Fatal("distinct content must not collide in test fixtures")
	}
	if a != Hash([]byte("alpha")) {
		t.Fatal("hash must be deterministic")
	}
}

func TestMemo(t *testing.T) {
	m := NewMemo(0)
	if _, ok := m.Get("deadbeefdeadbeef", types.LangJavaScript, types.ModePattern); ok {
		t.Fatal("unexpected hit on empty memo")
	}
	findings := []types.Finding{{ID: "f1", Match: "legacypay", Language: types.LangJavaScript}}
	m.Add("deadbeefdeadbeef", types.LangJavaScript, types.ModePattern, findings)

	got, ok := m.Get("deadbeefdeadbeef", types.LangJavaScript, types.ModePattern)
	if !ok || len(got) != 1 || got[0].ID != "f1" {
		t.Fatalf("memo hit = %v,%v", got, ok)
	}
	// mode is part of the key
	if _, ok := m.Get("deadbeefdeadbeef", types.LangJavaScript, types.ModeStructural); ok {
		t.Fatal("different mode must miss")
	}
	// language is part of the key: identical bytes scanned as another
	// language must not be served the first language's findings
	if _, ok := m.Get("deadbeefdeadbeef", types.LangPython, types.ModePattern); ok {
		t.Fatal("different language must miss")
	}
}

func TestMemoCachesEmptySlice(t *testing.T) {
	m := NewMemo(8)
	m.Add("0000000000000001", types.LangGo, types.ModeSchema, nil)
	got, ok := m.Get("0000000000000001", types.LangGo, types.ModeSchema)
	if !ok {
		t.Fatal("nil findings should still be a hit")
	}
	if len(got) != 0 {
		t.Fatalf("findings = %v", got)
	}
}
