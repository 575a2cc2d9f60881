package core

import (
	"encoding/json"
	"io"
)

// MarshalFindings writes findings as an indented JSON array, the findings-only
// counterpart of the envelope the CLI emits under --json. A nil slice encodes
// as [] so pipeline consumers never see null.
func MarshalFindings(w io.Writer, findings []Finding) error {
	if findings == nil {
		findings = []Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// UnmarshalFindings reads a findings array produced by MarshalFindings or an
// upstream pipeline stage.
func UnmarshalFindings(r io.Reader) ([]Finding, error) {
	var findings []Finding
	if err := json.NewDecoder(r).Decode(&findings); err != nil {
		return nil, err
	}
	return findings, nil
}
