package paymig

import (
	"fmt"
	"strings"

	"github.com/paymig/paymig/internal/patterns"
	"github.com/paymig/paymig/internal/types"
)

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt64(cli int64, local, global *int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickFloat(cli float64, local, global *float64) float64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

// pickBool treats a true CLI flag as authoritative, otherwise falls through
// to config values.
func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseLanguages(s string) ([]types.Language, error) {
	if s == "" {
		return nil, nil
	}
	known := map[types.Language]bool{}
	for _, l := range patterns.Languages() {
		known[l] = true
	}
	var out []types.Language
	for _, p := range splitList(s) {
		l := types.Language(strings.ToLower(p))
		if !known[l] {
			return nil, fmt.Errorf("unknown language %q", p)
		}
		out = append(out, l)
	}
	return out, nil
}
