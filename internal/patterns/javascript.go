package patterns

import "github.com/paymig/paymig/internal/types"

// JavaScript/TypeScript family. Express route registrations are treated as
// api-calls; NestJS decorators carry the framework tag.
var javascriptPatterns = []*Entry{
	entry(types.LangJavaScript, types.ModePattern, KindEndpointURL, true,
		`https?://[^\s"'<>]*(?:pay\.vendor-a\.com|vendor-?a|legacypay)[^\s"'<>]*`),
	entry(types.LangJavaScript, types.ModePattern, KindAPICall, true,
		`\b(?:vendorA|legacyPay|paymentClient|gateway)\.(?:processPayment|createTransaction|submitPayment|executeRefund|capturePayment|authorize)\s*\(`),
	entry(types.LangJavaScript, types.ModePattern, KindImport, false,
		`(?:import\s+[\w{},*\s]+from\s*['"]|require\s*\(\s*['"])@?(?:vendor-?a|legacypay)[^'"]*['"]`),
	entry(types.LangJavaScript, types.ModePattern, KindConfiguration, false,
		`(?i)\b(?:merchant|vendor[_-]?a)[_-]?(?:id|key|secret|token)\b`),

	entry(types.LangJavaScript, types.ModeStructural, KindClassDef, false,
		`\bclass\s+\w*(?:Payment|Transaction|Gateway|Service|Controller)\w*.*`),
	entry(types.LangJavaScript, types.ModeStructural, KindMethodDef, false,
		`\b(?:function|async function)\s+\w*(?i:pay|charge|refund|auth|transaction)\w*\s*\(.*`),
	framework(entry(types.LangJavaScript, types.ModeStructural, KindAnnotation, false,
		`@(?:Post|Get|Put|Delete|Patch|Controller)\s*\(.*`), "nestjs"),
	framework(entry(types.LangJavaScript, types.ModeStructural, KindAPICall, true,
		`\b(?:app|router)\.(?:get|post|put|delete|patch)\s*\(\s*['"][^'"]*(?:pay|transaction|refund|charge)[^'"]*['"]`), "express"),

	entry(types.LangJavaScript, types.ModeSchema, KindDTODef, false,
		`\b(?:interface|type|class)\s+\w*(?:Request|Response|DTO|Dto|Model|Payment|Transaction)\w*.*`),
	entry(types.LangJavaScript, types.ModeSchema, KindPropertySig, true,
		`\b(?:amount|currency|merchantId|cardNumber|transactionId)\s*[?:]`),
}
