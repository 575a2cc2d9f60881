package engine

// Progress is a point-in-time snapshot of a scan session. The controller
// mutates one instance per session and hands out copies; snapshots are
// emitted once per file and once at finalization.
type Progress struct {
	SessionID      string  `json:"session_id"`
	TotalFiles     int     `json:"total_files"`
	ProcessedFiles int     `json:"processed_files"`
	CurrentFile    string  `json:"current_file,omitempty"`
	Percentage     int     `json:"percentage"`
	ETASeconds     float64 `json:"estimated_seconds_remaining"`
	Complete       bool    `json:"is_complete"`
	Cancelled      bool    `json:"is_cancelled"`
}

func percentage(processed, total int) int {
	if total <= 0 {
		return 0
	}
	return processed * 100 / total
}
