package lang

import (
	"testing"

	"github.com/paymig/paymig/internal/types"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		path string
		want types.Language
		ok   bool
	}{
		{"src/app.js", types.LangJavaScript, true},
		{"src/App.TSX", types.LangJavaScript, true},
		{"lib/pay.mjs", types.LangJavaScript, true},
		{"Main.java", types.LangJava, true},
		{"billing/charge.py", types.LangPython, true},
		{"Gateway.cs", types.LangCSharp, true},
		{"web/index.php", types.LangPHP, true},
		{"app/models/payment.rb", types.LangRuby, true},
		{"internal/pay/pay.go", types.LangGo, true},
		{"README.md", "", false},
		{"Makefile", "", false},
	}
	for _, c := range cases {
		got, ok := Detect(c.path)
		if ok != c.ok || got != c.want {
			t.Fatalf("Detect(%q) = %q,%v want %q,%v", c.path, got, ok, c.want, c.ok)
		}
	}
}

func TestExtensionsSortedCopy(t *testing.T) {
	exts := Extensions(types.LangJavaScript)
	if len(exts) != 5 {
		t.Fatalf("expected 5 js-family extensions, got %v", exts)
	}
	for i := 1; i < len(exts); i++ {
		if exts[i-1] >= exts[i] {
			t.Fatalf("extensions not sorted: %v", exts)
		}
	}
	exts[0] = ".zzz"
	if Extensions(types.LangJavaScript)[0] == ".zzz" {
		t.Fatal("Extensions must return a copy")
	}
}

func TestIncludeGlobs(t *testing.T) {
	globs := IncludeGlobs([]types.Language{types.LangPython, types.LangGo})
	if len(globs) != 2 || globs[0] != "**/*.py" || globs[1] != "**/*.go" {
		t.Fatalf("globs = %v", globs)
	}
}
