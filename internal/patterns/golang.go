package patterns

import "github.com/paymig/paymig/internal/types"

var goPatterns = []*Entry{
	entry(types.LangGo, types.ModePattern, KindEndpointURL, true,
		`https?://[^\s"<>` + "`" + `]*(?:pay\.vendor-a\.com|vendor-?a|legacypay)[^\s"<>` + "`" + `]*`),
	entry(types.LangGo, types.ModePattern, KindAPICall, true,
		`\b(?:vendora|legacypay|client|gateway)\.(?:ProcessPayment|CreateTransaction|SubmitPayment|ExecuteRefund|Capture|Authorize)\s*\(`),
	entry(types.LangGo, types.ModePattern, KindImport, false,
		`"github\.com/(?:vendora|legacypay)/[^"]*"`),
	entry(types.LangGo, types.ModePattern, KindConfiguration, false,
		`(?i)\b(?:merchant|vendor_?a)_?(?:id|key|secret|token)\b`),

	entry(types.LangGo, types.ModeStructural, KindClassDef, false,
		`\btype\s+\w*(?:Payment|Transaction|Gateway|Service)\w*\s+(?:struct|interface)\b.*`),
	entry(types.LangGo, types.ModeStructural, KindMethodDef, false,
		`\bfunc\s+(?:\([^)]*\)\s+)?\w*(?i:pay|charge|refund|auth|transaction)\w*\s*\(.*`),
	framework(entry(types.LangGo, types.ModeStructural, KindAPICall, true,
		`\b(?:mux|router|e|r)\.(?:GET|POST|PUT|DELETE|PATCH|HandleFunc)\s*\(\s*"[^"]*(?:pay|transaction|refund|charge)[^"]*"`), "gin"),

	entry(types.LangGo, types.ModeSchema, KindDTODef, false,
		`\btype\s+\w*(?:Request|Response|DTO|Model|Payment|Transaction)\w*\s+struct\b.*`),
	entry(types.LangGo, types.ModeSchema, KindPropertySig, true,
		`\b(?:Amount|Currency|MerchantID|CardNumber|TransactionID)\s+[\w.\[\]]+`),
}
