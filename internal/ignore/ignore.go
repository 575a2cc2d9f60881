// Package ignore maintains the path-exclusion glob list applied to every
// scan. The list is an ordered, deduplicated set; entries are only ever added
// through Add. A .paymigignore file in the scan root seeds the list.
package ignore

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// FileName is the per-repo ignore file consulted at scan start.
const FileName = ".paymigignore"

// List is an ordered, deduplicated set of exclusion globs. Safe for
// concurrent use; a scan captures a snapshot via Patterns at session start,
// so mutation during a run only affects future scans.
type List struct {
	mu       sync.Mutex
	patterns []string
	seen     map[string]bool
}

func NewList(initial ...string) *List {
	l := &List{seen: map[string]bool{}}
	for _, p := range initial {
		l.Add(p)
	}
	return l
}

// Add appends a pattern unless it is already present. Returns true when the
// pattern was newly added.
func (l *List) Add(pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.seen[pattern] {
		return false
	}
	l.seen[pattern] = true
	l.patterns = append(l.patterns, pattern)
	return true
}

// Patterns returns a copy of the current pattern list in insertion order.
func (l *List) Patterns() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.patterns))
	copy(out, l.patterns)
	return out
}

// Match reports whether a forward-slash relative path is excluded.
// Directory entries ("node_modules/") match any path under that directory;
// other entries match as doublestar globs against the full path and its base.
func (l *List) Match(rel string) bool {
	rel = strings.ReplaceAll(rel, "\\", "/")
	for _, p := range l.Patterns() {
		if strings.HasSuffix(p, "/") {
			dir := strings.TrimSuffix(p, "/")
			if rel == dir || strings.HasPrefix(rel, dir+"/") || strings.Contains(rel, "/"+dir+"/") {
				return true
			}
			continue
		}
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, path.Base(rel)); ok {
			return true
		}
	}
	return false
}

// Load reads an ignore file into a fresh List. Blank lines and #-comments are
// skipped. A missing file yields an empty list and no error.
func Load(filePath string) (*List, error) {
	l := NewList()
	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return l, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l.Add(line)
	}
	return l, sc.Err()
}

// AppendFile ensures the given pattern is present in the ignore file at root,
// creating the file if missing. Idempotent.
func AppendFile(root, pattern string) error {
	p := filepath.Join(root, FileName)
	existing, err := Load(p)
	if err != nil {
		return err
	}
	if !existing.Add(pattern) {
		return nil
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(pattern + "\n")
	return err
}
