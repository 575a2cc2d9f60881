// Package core provides a small, stable facade over paymig's internal scan
// engine for external integrations (migration assistants, editors, CI). It
// deliberately re-exports a narrow API surface so tools can depend on a
// stable import path without reaching into internal packages.
//
// Example:
//
//	s := core.NewScanner(core.Config{Root: "."})
//	findings, err := s.ScanProject(ctx, core.Options{Mode: core.ModePattern})
//	if err != nil { /* handle */ }
//	_ = core.MarshalFindings(os.Stdout, findings)
package core
