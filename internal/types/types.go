package types

// Language identifies a source language family recognized by the scanner.
// One id covers the whole JavaScript/TypeScript family.
type Language string

const (
	LangJavaScript Language = "javascript"
	LangJava       Language = "java"
	LangPython     Language = "python"
	LangCSharp     Language = "csharp"
	LangPHP        Language = "php"
	LangRuby       Language = "ruby"
	LangGo         Language = "go"
)

// ScanMode selects the extraction and classification strategy for a scan.
type ScanMode string

const (
	// ModePattern locates raw dialect usages (URLs, SDK calls, config keys).
	ModePattern ScanMode = "pattern"
	// ModeStructural approximates class/method/endpoint structure heuristically.
	ModeStructural ScanMode = "structural"
	// ModeSchema approximates data-model/DTO definitions heuristically.
	ModeSchema ScanMode = "schema"
)

// EndpointType is the coarse classification of a finding.
type EndpointType string

const (
	EndpointTransaction EndpointType = "transaction"
	EndpointPayment     EndpointType = "payment"
	EndpointRefund      EndpointType = "refund"
	EndpointAuth        EndpointType = "auth"
	EndpointDTO         EndpointType = "dto"
	EndpointEndpoint    EndpointType = "endpoint"
	EndpointClass       EndpointType = "class"
	EndpointUnknown     EndpointType = "unknown"
)

// BusinessLogicType is the finer classification used by the structural and
// schema scan modes.
type BusinessLogicType string

const (
	LogicServiceClass BusinessLogicType = "service-class"
	LogicAPICall      BusinessLogicType = "api-call"
	LogicEndpointDef  BusinessLogicType = "endpoint-definition"
	LogicDataModel    BusinessLogicType = "data-model"
)

// Finding describes a located, classified usage of the legacy payment dialect
// at a path and 1-based line/column, with a heuristic confidence in [0,1].
type Finding struct {
	ID           string            `json:"id"`
	Path         string            `json:"path"`
	Line         int               `json:"line"`
	Column       int               `json:"column"`
	Snippet      string            `json:"snippet,omitempty"` // matched line ±1 line of context
	Match        string            `json:"match"`
	Confidence   float64           `json:"confidence"`
	EndpointType EndpointType      `json:"endpoint_type"`
	Language     Language          `json:"language"`
	Framework    string            `json:"framework,omitempty"`
	ScanMode     ScanMode          `json:"scan_mode"`
	ClassName    string            `json:"class_name,omitempty"`
	MethodName   string            `json:"method_name,omitempty"`
	EndpointURL  string            `json:"endpoint_url,omitempty"`
	DTOName      string            `json:"dto_name,omitempty"`
	LogicType    BusinessLogicType `json:"business_logic_type,omitempty"`
}
