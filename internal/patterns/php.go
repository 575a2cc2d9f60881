package patterns

import "github.com/paymig/paymig/internal/types"

var phpPatterns = []*Entry{
	entry(types.LangPHP, types.ModePattern, KindEndpointURL, true,
		`https?://[^\s"'<>]*(?:pay\.vendor-a\.com|vendor-?a|legacypay)[^\s"'<>]*`),
	entry(types.LangPHP, types.ModePattern, KindAPICall, true,
		`\$(?:vendorA|legacyPay|paymentClient|gateway)->(?:processPayment|createTransaction|submitPayment|executeRefund|capture|authorize)\s*\(`),
	entry(types.LangPHP, types.ModePattern, KindImport, false,
		`^\s*use\s+(?:VendorA|LegacyPay)[\w\\]*\s*;`),
	entry(types.LangPHP, types.ModePattern, KindConfiguration, false,
		`(?i)\b(?:merchant|vendor_?a)_?(?:id|key|secret|token)\b`),

	entry(types.LangPHP, types.ModeStructural, KindClassDef, false,
		`\b(?:class|interface|trait)\s+\w*(?:Payment|Transaction|Gateway|Service|Controller)\w*.*`),
	entry(types.LangPHP, types.ModeStructural, KindMethodDef, false,
		`\bfunction\s+\w*(?i:pay|charge|refund|auth|transaction)\w*\s*\(.*`),
	framework(entry(types.LangPHP, types.ModeStructural, KindAnnotation, false,
		`(?:@Route|#\[Route)\s*\(.*`), "symfony"),

	entry(types.LangPHP, types.ModeSchema, KindDTODef, false,
		`\bclass\s+\w*(?:Request|Response|DTO|Dto|Model|Payment|Transaction)\w*.*`),
	entry(types.LangPHP, types.ModeSchema, KindPropertySig, true,
		`\b(?:public|protected|private)\s+(?:\??\w+\s+)?\$(?:amount|currency|merchantId|cardNumber|transactionId)\b`),
}
