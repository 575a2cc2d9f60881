// Package lang maps file extensions to language ids. The table is static:
// the JavaScript id spans the whole JS/TS family, every other language maps
// one-to-one by extension.
package lang

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/paymig/paymig/internal/types"
)

var byExt = map[string]types.Language{
	".js":   types.LangJavaScript,
	".jsx":  types.LangJavaScript,
	".ts":   types.LangJavaScript,
	".tsx":  types.LangJavaScript,
	".mjs":  types.LangJavaScript,
	".java": types.LangJava,
	".py":   types.LangPython,
	".cs":   types.LangCSharp,
	".php":  types.LangPHP,
	".rb":   types.LangRuby,
	".go":   types.LangGo,
}

var extsByLang = map[types.Language][]string{}

func init() {
	for ext, l := range byExt {
		extsByLang[l] = append(extsByLang[l], ext)
	}
	for _, exts := range extsByLang {
		sort.Strings(exts)
	}
}

// Detect returns the language for a path, or false when the extension is not
// in the table.
func Detect(path string) (types.Language, bool) {
	l, ok := byExt[strings.ToLower(filepath.Ext(path))]
	return l, ok
}

// Extensions returns the extensions covered by a language id, sorted.
func Extensions(l types.Language) []string {
	exts := extsByLang[l]
	out := make([]string, len(exts))
	copy(out, exts)
	return out
}

// IncludeGlobs derives recursive include globs for the given languages.
func IncludeGlobs(langs []types.Language) []string {
	var out []string
	for _, l := range langs {
		for _, ext := range extsByLang[l] {
			out = append(out, "**/*"+ext)
		}
	}
	return out
}
