package patterns

import "github.com/paymig/paymig/internal/types"

var pythonPatterns = []*Entry{
	entry(types.LangPython, types.ModePattern, KindEndpointURL, true,
		`https?://[^\s"'<>]*(?:pay\.vendor-a\.com|vendor-?a|legacypay)[^\s"'<>]*`),
	entry(types.LangPython, types.ModePattern, KindAPICall, true,
		`\b(?:vendor_a|legacypay|payment_client|gateway)\.(?:process_payment|create_transaction|submit_payment|execute_refund|capture|authorize)\s*\(`),
	entry(types.LangPython, types.ModePattern, KindImport, false,
		`^\s*(?:from\s+(?:vendor_?a|legacypay)\S*\s+import\b|import\s+(?:vendor_?a|legacypay)\b)`),
	entry(types.LangPython, types.ModePattern, KindConfiguration, false,
		`(?i)\b(?:merchant|vendor_?a)_?(?:id|key|secret|token)\b`),

	entry(types.LangPython, types.ModeStructural, KindClassDef, false,
		`\bclass\s+\w*(?:Payment|Transaction|Gateway|Service)\w*.*`),
	entry(types.LangPython, types.ModeStructural, KindMethodDef, false,
		`\bdef\s+\w*(?i:pay|charge|refund|auth|transaction)\w*\s*\(.*`),
	framework(entry(types.LangPython, types.ModeStructural, KindAnnotation, false,
		`@(?:app|router|api)\.(?:get|post|put|delete|patch)\s*\(.*`), "fastapi"),

	entry(types.LangPython, types.ModeSchema, KindDTODef, false,
		`\bclass\s+\w*(?:Request|Response|Schema|Model|Payment|Transaction)\w*\s*(?:\(|:).*`),
	entry(types.LangPython, types.ModeSchema, KindPropertySig, true,
		`\b(?:amount|currency|merchant_id|card_number|transaction_id)\s*[:=]`),
}
