// Package audit appends one JSONL record per scan session so operators can
// track migration progress over time. Records live under .git when present
// to avoid accidental commits.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/paymig/paymig/internal/types"
)

// ScanRecord summarizes one completed (or cancelled) scan session.
type ScanRecord struct {
	Timestamp     time.Time      `json:"timestamp"`
	SessionID     string         `json:"session_id"`
	Root          string         `json:"root"`
	Mode          types.ScanMode `json:"mode"`
	TotalFindings int            `json:"total_findings"`
	FilesScanned  int            `json:"files_scanned"`
	SkippedFiles  int            `json:"skipped_files"`
	Duration      string         `json:"duration"`
	Cancelled     bool           `json:"cancelled"`
	TypeCounts    map[string]int `json:"type_counts,omitempty"`
}

// Log appends scan records to a JSONL file.
type Log struct {
	logPath string
}

func NewLog(root string) *Log {
	gitDir := filepath.Join(root, ".git")
	logPath := filepath.Join(root, ".paymig_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, "paymig_audit.jsonl")
	}
	return &Log{logPath: logPath}
}

// Record builds a ScanRecord from session output.
func Record(sessionID, root string, mode types.ScanMode, findings []types.Finding, filesScanned, skipped int, duration time.Duration, cancelled bool) ScanRecord {
	counts := map[string]int{}
	for _, f := range findings {
		counts[string(f.EndpointType)]++
	}
	return ScanRecord{
		Timestamp:     time.Now().UTC(),
		SessionID:     sessionID,
		Root:          root,
		Mode:          mode,
		TotalFindings: len(findings),
		FilesScanned:  filesScanned,
		SkippedFiles:  skipped,
		Duration:      duration.Round(time.Millisecond).String(),
		Cancelled:     cancelled,
		TypeCounts:    counts,
	}
}

// Append writes one record to the log, creating the file if needed.
func (l *Log) Append(rec ScanRecord) error {
	f, err := os.OpenFile(l.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = f.Write(append(b, '\n'))
	return err
}

// LoadHistory reads all records from the log; malformed lines are skipped.
func (l *Log) LoadHistory() ([]ScanRecord, error) {
	f, err := os.Open(l.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec ScanRecord
		if err := dec.Decode(&rec); err != nil {
			break
		}
		records = append(records, rec)
	}
	return records, nil
}
