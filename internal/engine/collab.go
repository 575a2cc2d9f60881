package engine

import (
	"errors"

	"github.com/paymig/paymig/internal/types"
)

// MaxEnumeratedFiles bounds the file set any enumerator may return.
const MaxEnumeratedFiles = 10000

// Sentinel errors for the session state machine and enumeration boundary.
var (
	// ErrSessionConflict is returned when ScanProject is called while a
	// session is already running on the same controller.
	ErrSessionConflict = errors.New("scan already running")

	// ErrEnumeration is returned when the file set cannot be resolved at
	// all; it aborts the session before any progress is emitted.
	ErrEnumeration = errors.New("file enumeration failed")
)

// FileEnumerator resolves candidate files for a scan. Zero matches is not an
// error; implementations must cap results at MaxEnumeratedFiles.
type FileEnumerator interface {
	Enumerate(root string, includeGlobs, excludeGlobs []string) ([]string, error)
}

// FileReader reads file content. A per-file failure is non-fatal to a scan:
// the controller logs it in the session stats and moves on.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// LanguageDetector maps a path to a language id, or reports false for files
// the scanner does not understand.
type LanguageDetector interface {
	Detect(path string) (types.Language, bool)
}
