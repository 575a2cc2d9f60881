package patterns

import (
	"regexp"
	"sort"

	"github.com/paymig/paymig/internal/types"
)

// Kind categorizes what a pattern is expected to extract.
type Kind string

const (
	KindEndpointURL   Kind = "endpoint-url"
	KindAPICall       Kind = "api-call"
	KindConfiguration Kind = "configuration"
	KindImport        Kind = "import"
	KindClassDef      Kind = "class-definition"
	KindMethodDef     Kind = "method-definition"
	KindAnnotation    Kind = "framework-annotation"
	KindDTODef        Kind = "dto-definition"
	KindPropertySig   Kind = "property-signature"
)

// Entry is one compiled pattern in the registry. Entries are built once at
// package init and never mutated afterward.
type Entry struct {
	Language  types.Language
	Mode      types.ScanMode
	Regexp    *regexp.Regexp
	Kind      Kind
	Repeat    bool   // keep scanning the rest of the line for further matches
	Framework string // optional framework tag carried onto findings
}

func entry(lang types.Language, mode types.ScanMode, kind Kind, repeat bool, expr string) *Entry {
	return &Entry{
		Language: lang,
		Mode:     mode,
		Kind:     kind,
		Repeat:   repeat,
		Regexp:   regexp.MustCompile(expr),
	}
}

func framework(e *Entry, name string) *Entry {
	e.Framework = name
	return e
}

type registryKey struct {
	lang types.Language
	mode types.ScanMode
}

var registry = map[registryKey][]*Entry{}

func init() {
	sets := [][]*Entry{
		javascriptPatterns,
		javaPatterns,
		pythonPatterns,
		csharpPatterns,
		phpPatterns,
		rubyPatterns,
		goPatterns,
	}
	for _, set := range sets {
		for _, e := range set {
			k := registryKey{e.Language, e.Mode}
			registry[k] = append(registry[k], e)
		}
	}
}

// For returns the ordered pattern set for a (language, mode) pair.
// Unknown pairs return nil, never an error. Callers must not mutate the
// returned slice.
func For(lang types.Language, mode types.ScanMode) []*Entry {
	return registry[registryKey{lang, mode}]
}

// Languages lists every language with at least one registered pattern,
// sorted for stable output.
func Languages() []types.Language {
	seen := map[types.Language]bool{}
	var out []types.Language
	for k := range registry {
		if !seen[k.lang] {
			seen[k.lang] = true
			out = append(out, k.lang)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Modes lists the scan modes in their canonical order.
func Modes() []types.ScanMode {
	return []types.ScanMode{types.ModePattern, types.ModeStructural, types.ModeSchema}
}
