package engine

import (
	"path"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// allowedByGlobs reports whether a forward-slash relative path passes the
// include/exclude filters. Non-empty includes act as a positive filter;
// excludes are subtracted last. Each glob is also tried against the path
// base and with any leading "**/" stripped, matching how callers tend to
// write "*.js" when they mean "**/*.js".
func allowedByGlobs(relPath string, includes, excludes []string) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, path.Base(pathToMatch)); ok {
			return true
		}
		if t := trimGlobPrefix(g); t != g {
			if ok, _ := doublestar.Match(t, pathToMatch); ok {
				return true
			}
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}

// dedupeGlobs preserves first-occurrence order while dropping repeats.
func dedupeGlobs(globs []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, g := range globs {
		g = strings.TrimSpace(g)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}
