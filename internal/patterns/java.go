package patterns

import "github.com/paymig/paymig/internal/types"

var javaPatterns = []*Entry{
	entry(types.LangJava, types.ModePattern, KindEndpointURL, true,
		`https?://[^\s"<>]*(?:pay\.vendor-a\.com|vendor-?a|legacypay)[^\s"<>]*`),
	entry(types.LangJava, types.ModePattern, KindAPICall, true,
		`\b(?:vendorAClient|legacyPayClient|paymentGateway|gateway)\.(?:processPayment|createTransaction|submitPayment|executeRefund|capture|authorize)\s*\(`),
	entry(types.LangJava, types.ModePattern, KindImport, false,
		`^\s*import\s+(?:com|net|org)\.(?:vendora|legacypay)\.[\w.]+\s*;`),
	entry(types.LangJava, types.ModePattern, KindConfiguration, false,
		`(?i)\b(?:merchant|vendor[_.]?a)[_.]?(?:id|key|secret|token)\b`),

	entry(types.LangJava, types.ModeStructural, KindClassDef, false,
		`\b(?:class|interface)\s+\w*(?:Payment|Transaction|Gateway|Service|Controller)\w*.*`),
	entry(types.LangJava, types.ModeStructural, KindMethodDef, false,
		`\b(?:public|protected|private)\s+[\w<>\[\],\s]+\s\w*(?i:pay|charge|refund|auth|transaction)\w*\s*\(.*`),
	framework(entry(types.LangJava, types.ModeStructural, KindAnnotation, false,
		`@(?:PostMapping|GetMapping|PutMapping|DeleteMapping|PatchMapping|RequestMapping)\b.*`), "spring"),

	entry(types.LangJava, types.ModeSchema, KindDTODef, false,
		`\b(?:class|record)\s+\w*(?:Request|Response|DTO|Dto|Model|Payment|Transaction)\w*.*`),
	entry(types.LangJava, types.ModeSchema, KindPropertySig, true,
		`\b(?:private|protected)\s+[\w<>]+\s+(?:amount|currency|merchantId|cardNumber|transactionId)\s*;`),
}
