package report

import (
	"encoding/json"
	"io"

	"github.com/paymig/paymig/internal/types"
)

// Envelope is the JSON output shape for a scan run.
type Envelope struct {
	Findings     []types.Finding `json:"findings"`
	FilesScanned int             `json:"files_scanned"`
	DurationMs   int64           `json:"duration_ms"`
	Cancelled    bool            `json:"cancelled"`
}

// WriteJSON emits the findings envelope as indented JSON.
func WriteJSON(w io.Writer, findings []types.Finding, opts PrintOptions) error {
	SortFindings(findings)
	if findings == nil {
		findings = []types.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Envelope{
		Findings:     findings,
		FilesScanned: opts.FilesScanned,
		DurationMs:   opts.Duration.Milliseconds(),
		Cancelled:    opts.Cancelled,
	})
}
