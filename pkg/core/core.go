package core

import (
	"context"

	"github.com/paymig/paymig/internal/engine"
	"github.com/paymig/paymig/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Config   = engine.Config
	Options  = engine.Options
	Finding  = types.Finding
	Progress = engine.Progress
	Scanner  = engine.Controller
)

// Scan mode aliases.
const (
	ModePattern    = types.ModePattern
	ModeStructural = types.ModeStructural
	ModeSchema     = types.ModeSchema
)

// Session errors.
var (
	ErrSessionConflict = engine.ErrSessionConflict
	ErrEnumeration     = engine.ErrEnumeration
)

// NewScanner builds a scan controller with default collaborators for any
// left unset in cfg.
func NewScanner(cfg Config) *Scanner {
	return engine.New(cfg)
}

// Scan is a one-shot convenience: build a scanner, run a session, return
// findings.
func Scan(ctx context.Context, cfg Config, opts Options) ([]Finding, error) {
	return engine.New(cfg).ScanProject(ctx, opts)
}
