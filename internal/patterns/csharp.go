package patterns

import "github.com/paymig/paymig/internal/types"

// C# attribute routing uses [HttpPost]-style attributes rather than
// @-annotations, so attribute hits classify through the api-call/class rules.
var csharpPatterns = []*Entry{
	entry(types.LangCSharp, types.ModePattern, KindEndpointURL, true,
		`https?://[^\s"<>]*(?:pay\.vendor-a\.com|vendor-?a|legacypay)[^\s"<>]*`),
	entry(types.LangCSharp, types.ModePattern, KindAPICall, true,
		`\b(?:vendorAClient|legacyPayClient|paymentGateway|_gateway)\.(?:ProcessPayment|CreateTransaction|SubmitPayment|ExecuteRefund|Capture|Authorize)(?:Async)?\s*\(`),
	entry(types.LangCSharp, types.ModePattern, KindImport, false,
		`^\s*using\s+(?:VendorA|LegacyPay)[\w.]*\s*;`),
	entry(types.LangCSharp, types.ModePattern, KindConfiguration, false,
		`(?i)\b(?:merchant|vendora)(?:id|key|secret|token)\b`),

	entry(types.LangCSharp, types.ModeStructural, KindClassDef, false,
		`\b(?:class|interface)\s+I?\w*(?:Payment|Transaction|Gateway|Service|Controller)\w*.*`),
	entry(types.LangCSharp, types.ModeStructural, KindMethodDef, false,
		`\b(?:public|protected|private)\s+(?:async\s+)?[\w<>\[\],\s]+\s\w*(?i:pay|charge|refund|auth|transaction)\w*\s*\(.*`),
	framework(entry(types.LangCSharp, types.ModeStructural, KindAnnotation, false,
		`\[(?:HttpPost|HttpGet|HttpPut|HttpDelete|HttpPatch|Route)\b.*`), "aspnet"),

	entry(types.LangCSharp, types.ModeSchema, KindDTODef, false,
		`\b(?:class|record)\s+\w*(?:Request|Response|DTO|Dto|Model|Payment|Transaction)\w*.*`),
	entry(types.LangCSharp, types.ModeSchema, KindPropertySig, true,
		`\bpublic\s+[\w<>?]+\s+(?:Amount|Currency|MerchantId|CardNumber|TransactionId)\s*\{`),
}
