package patterns

import "github.com/paymig/paymig/internal/types"

var rubyPatterns = []*Entry{
	entry(types.LangRuby, types.ModePattern, KindEndpointURL, true,
		`https?://[^\s"'<>]*(?:pay\.vendor-a\.com|vendor-?a|legacypay)[^\s"'<>]*`),
	entry(types.LangRuby, types.ModePattern, KindAPICall, true,
		`\b(?:vendor_a|legacypay|payment_client|gateway)\.(?:process_payment|create_transaction|submit_payment|execute_refund|capture|authorize)\b`),
	entry(types.LangRuby, types.ModePattern, KindImport, false,
		`^\s*(?:require|require_relative|gem)\s+['"](?:vendor_?a|legacypay)[^'"]*['"]`),
	entry(types.LangRuby, types.ModePattern, KindConfiguration, false,
		`(?i)\b(?:merchant|vendor_?a)_?(?:id|key|secret|token)\b`),

	entry(types.LangRuby, types.ModeStructural, KindClassDef, false,
		`\b(?:class|module)\s+\w*(?:Payment|Transaction|Gateway|Service)\w*.*`),
	entry(types.LangRuby, types.ModeStructural, KindMethodDef, false,
		`\bdef\s+\w*(?i:pay|charge|refund|auth|transaction)\w*.*`),
	framework(entry(types.LangRuby, types.ModeStructural, KindAPICall, true,
		`\b(?:get|post|put|delete|patch)\s+['"][^'"]*(?:pay|transaction|refund|charge)[^'"]*['"]`), "rails"),

	entry(types.LangRuby, types.ModeSchema, KindDTODef, false,
		`\bclass\s+\w*(?:Request|Response|Model|Payment|Transaction)\w*.*`),
	entry(types.LangRuby, types.ModeSchema, KindPropertySig, true,
		`\battr_(?:accessor|reader|writer)\s+.*:(?:amount|currency|merchant_id|card_number|transaction_id)\b`),
}
