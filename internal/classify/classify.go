// Package classify maps raw matches to an endpoint-type taxonomy and pulls
// best-effort structured fields (class, method, URL, DTO names) out of the
// matched text. Absence of a capture leaves the field empty, never an error.
package classify

import (
	"regexp"
	"strings"

	"github.com/paymig/paymig/internal/types"
)

// endpointRule pairs a lower-case substring probe with a category. Rules are
// evaluated in declaration order and the first hit wins.
type endpointRule struct {
	substrings []string
	etype      types.EndpointType
}

var endpointRules = []endpointRule{
	{[]string{"transaction"}, types.EndpointTransaction},
	{[]string{"payment"}, types.EndpointPayment},
	{[]string{"refund"}, types.EndpointRefund},
	{[]string{"auth"}, types.EndpointAuth},
	{[]string{"dto", "model", "request", "response"}, types.EndpointDTO},
	{[]string{"http", "endpoint", "url"}, types.EndpointEndpoint},
	{[]string{"class", "service", "controller"}, types.EndpointClass},
}

// Structural-mode evidence ranks. Stronger evidence replaces weaker: a method
// capture beats a class capture, an annotation with an HTTP verb beats both.
var logicRank = map[types.BusinessLogicType]int{
	types.LogicServiceClass: 1,
	types.LogicAPICall:      2,
	types.LogicEndpointDef:  3,
}

var (
	reURL        = regexp.MustCompile(`https?://[^\s"'<>` + "`" + `)\]}]+`)
	reClassName  = regexp.MustCompile(`\b(?:class|interface|trait|module)\s+([A-Za-z_]\w*)`)
	reMethodName = regexp.MustCompile(`\b(?:function|def|func|fn)\s+([A-Za-z_]\w*)`)
	reAnnotation = regexp.MustCompile(`@\w+`)
	reHTTPVerb   = regexp.MustCompile(`(?i)get|post|put|delete|patch`)
	reSchemaName = regexp.MustCompile(`\b(?:interface|type|class|struct|record|schema|message)\s+([A-Za-z_]\w*)`)
	reGoTypeName = regexp.MustCompile(`\btype\s+([A-Za-z_]\w*)\s+(?:struct|interface)\b`)
)

// Result carries the classification outcome for one raw match.
type Result struct {
	EndpointType types.EndpointType
	EndpointURL  string
	ClassName    string
	MethodName   string
	DTOName      string
	LogicType    types.BusinessLogicType
}

// Classify categorizes matched text and extracts mode-specific fields.
func Classify(match string, mode types.ScanMode) Result {
	r := Result{EndpointType: endpointType(match)}
	switch mode {
	case types.ModePattern:
		r.EndpointURL = reURL.FindString(match)
	case types.ModeStructural:
		structuralFields(match, &r)
	case types.ModeSchema:
		schemaFields(match, &r)
	}
	return r
}

func endpointType(match string) types.EndpointType {
	lower := strings.ToLower(match)
	for _, rule := range endpointRules {
		for _, s := range rule.substrings {
			if strings.Contains(lower, s) {
				return rule.etype
			}
		}
	}
	return types.EndpointUnknown
}

// structuralFields attempts each structural capture independently, then keeps
// the highest-ranked kind of evidence found.
func structuralFields(match string, r *Result) {
	if m := reClassName.FindStringSubmatch(match); m != nil {
		r.ClassName = m[1]
		setLogic(r, types.LogicServiceClass)
	} else if m := reGoTypeName.FindStringSubmatch(match); m != nil {
		r.ClassName = m[1]
		setLogic(r, types.LogicServiceClass)
	}
	if m := reMethodName.FindStringSubmatch(match); m != nil {
		r.MethodName = m[1]
		setLogic(r, types.LogicAPICall)
	}
	if reAnnotation.MatchString(match) && reHTTPVerb.MatchString(match) {
		setLogic(r, types.LogicEndpointDef)
	}
}

func schemaFields(match string, r *Result) {
	var name string
	if m := reGoTypeName.FindStringSubmatch(match); m != nil {
		name = m[1]
	} else if m := reSchemaName.FindStringSubmatch(match); m != nil {
		name = m[1]
	}
	if name != "" {
		r.DTOName = name
		r.LogicType = types.LogicDataModel
	}
}

func setLogic(r *Result, t types.BusinessLogicType) {
	if logicRank[t] >= logicRank[r.LogicType] {
		r.LogicType = t
	}
}
