// Package score assigns heuristic confidence to raw matches. Scores are an
// explainable additive ranking, not a calibrated probability: each signal
// contributes a fixed amount at most once, on top of a fixed base.
package score

import (
	"regexp"
	"strings"

	"github.com/paymig/paymig/internal/types"
)

const (
	base             = 0.5
	callSuffixBonus  = 0.3
	importLineBonus  = 0.2
	configIdentBonus = 0.1
	vendorCallBonus  = 0.1
)

// callSuffixes mark matched text that invokes something on a client object.
var callSuffixes = []string{
	".process", ".create", ".submit", ".execute", ".capture", ".charge", ".authorize", ".refund",
}

// reImportLine recognizes import/include directives across the supported
// languages; it is applied to the full containing line, not the match.
var reImportLine = regexp.MustCompile(`^\s*(?:import\b|from\s+\S+\s+import\b|require(?:_relative)?\s*[\s(]|using\s+\w|use\s+\w|#include\b)`)

var reConfigIdent = regexp.MustCompile(`(?i)config|key|secret|merchant`)

// vendorCalls holds per-language call shapes of the legacy SDK.
var vendorCalls = map[types.Language]*regexp.Regexp{
	types.LangJavaScript: regexp.MustCompile(`\b(?:vendorA|legacyPay)\.`),
	types.LangJava:       regexp.MustCompile(`\b(?:vendorAClient|legacyPayClient)\.`),
	types.LangPython:     regexp.MustCompile(`\b(?:vendor_a|legacypay)\.`),
	types.LangCSharp:     regexp.MustCompile(`\b(?:VendorAClient|vendorAClient|legacyPayClient)\.`),
	types.LangPHP:        regexp.MustCompile(`\$(?:vendorA|legacyPay)->`),
	types.LangRuby:       regexp.MustCompile(`\b(?:vendor_a|legacypay)\.`),
	types.LangGo:         regexp.MustCompile(`\b(?:vendora|legacypay)\.`),
}

// Confidence scores a single match given its containing line and language.
// The result is clamped to [base, 1.0].
func Confidence(match, line string, lang types.Language) float64 {
	c := base
	lower := strings.ToLower(match)
	for _, s := range callSuffixes {
		if strings.Contains(lower, s) {
			c += callSuffixBonus
			break
		}
	}
	if reImportLine.MatchString(line) {
		c += importLineBonus
	}
	if reConfigIdent.MatchString(match) {
		c += configIdentBonus
	}
	if re, ok := vendorCalls[lang]; ok && re.MatchString(match) {
		c += vendorCallBonus
	}
	if c > 1.0 {
		c = 1.0
	}
	return c
}
