// Package engine contains the scan session controller: it resolves the file
// set, runs pattern extraction, scoring and classification per file, tracks
// live progress with an ETA, and honors cooperative cancellation at file
// boundaries. This package is internal; external consumers should use the
// stable facade in pkg/core.
package engine
