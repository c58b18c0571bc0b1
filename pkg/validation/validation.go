package validation

// Context carries everything the host knows about a single validation
// request: the ordered list of template files to scan.
type Context struct {
	TemplatePaths []string
}

// ViolatingResource points at one resource inside one template file that
// triggered a rule.
type ViolatingResource struct {
	ResourceLogicalID string   `json:"resourceLogicalId"`
	TemplatePath      string   `json:"templatePath"`
	Locations         []string `json:"locations"`
}

// Violation is the normalized, host-facing representation of one scanner
// finding. A finding affecting several files stays a single Violation with
// one ViolatingResource per affected file.
type Violation struct {
	RuleName           string              `json:"ruleName"`
	Description        string              `json:"description"`
	Fix                string              `json:"fix"`
	Severity           Severity            `json:"severity"`
	ViolatingResources []ViolatingResource `json:"violatingResources"`
}

// Diagnostic records an infrastructure failure (process spawn, report read)
// that was folded into a failing verdict. It keeps the cause distinguishable
// in logs and tests without changing the host contract.
type Diagnostic struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// Report is the value returned to the host for every validation attempt.
// Success is false when findings are present or when the scan itself broke;
// the broken case carries empty Violations and non-empty Diagnostics.
type Report struct {
	Violations  []Violation  `json:"violations"`
	Success     bool         `json:"success"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}
