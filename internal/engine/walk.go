package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FSEnumerator is the default FileEnumerator: a working-tree walk with glob
// filtering, default dir/file excludes, and a per-file size gate. Returned
// paths are relative to the root, forward-slashed, in walk order, capped at
// MaxEnumeratedFiles.
type FSEnumerator struct {
	MaxBytes        int64 // skip files larger than this (0 = no limit)
	DefaultExcludes bool
}

func (e FSEnumerator) Enumerate(root string, includeGlobs, excludeGlobs []string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}
	var out []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if len(out) >= MaxEnumeratedFiles {
			return fs.SkipAll
		}
		if d.IsDir() {
			if e.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(root, p)
		rel = filepath.ToSlash(rel)
		if !allowedByGlobs(rel, includeGlobs, excludeGlobs) {
			return nil
		}
		if e.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
			return nil
		}
		if e.MaxBytes > 0 {
			if info, err := d.Info(); err == nil && info.Size() > e.MaxBytes {
				return nil
			}
		}
		out = append(out, rel)
		return nil
	})
	return out, err
}

// OSReader is the default FileReader backed by os.ReadFile, resolving paths
// against a scan root.
type OSReader struct {
	Root string
}

func (r OSReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(r.Root, filepath.FromSlash(path)))
}
