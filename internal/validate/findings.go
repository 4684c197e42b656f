package validate

import "fmt"

// Finding codes. Errors make the result invalid; warnings never do.
const (
	CodeUntransformedImport    = "UNTRANSFORMED_IMPORT"
	CodeBrokenRelativeImport   = "BROKEN_RELATIVE_IMPORT"
	CodeMissingLibFile         = "MISSING_LIB_FILE"
	CodeSSRUnsafeExport        = "SSR_UNSAFE_EXPORT"
	CodeMissingAPIRoute        = "MISSING_API_ROUTE"
	CodeDuplicateExport        = "DUPLICATE_EXPORT"
	CodeTypeError              = "TYPE_ERROR"
	CodeTypeCheckerUnavailable = "TYPE_CHECKER_UNAVAILABLE"
)

// Finding is one validation diagnostic.
type Finding struct {
	Code    string `json:"code"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

func (f Finding) String() string {
	switch {
	case f.File != "" && f.Line > 0:
		return fmt.Sprintf("[%s] %s:%d: %s", f.Code, f.File, f.Line, f.Message)
	case f.File != "":
		return fmt.Sprintf("[%s] %s: %s", f.Code, f.File, f.Message)
	default:
		return fmt.Sprintf("[%s] %s", f.Code, f.Message)
	}
}

// Result aggregates every pass. Valid is true iff Errors is empty;
// Warnings and Suggestions never affect validity.
type Result struct {
	Valid       bool      `json:"valid"`
	Errors      []Finding `json:"errors"`
	Warnings    []Finding `json:"warnings"`
	Suggestions []string  `json:"suggestions"`
}
