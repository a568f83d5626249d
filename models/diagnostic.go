package models

// DiagnosticKind classifies a parse diagnostic.
type DiagnosticKind string

const (
	KindNoTable         DiagnosticKind = "no_table"
	KindMalformedRow    DiagnosticKind = "malformed_row"
	KindMissingRequired DiagnosticKind = "missing_required"
	KindMissingOptional DiagnosticKind = "missing_optional"
	KindMissingLink     DiagnosticKind = "missing_link"
)

// Severity tells whether a diagnostic excluded its row.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is the structured form of one error or warning string.
// Row is 1-based over data rows; 0 means the whole document.
type Diagnostic struct {
	Row      int            `json:"row" yaml:"row"`
	Field    string         `json:"field,omitempty" yaml:"field,omitempty"`
	Kind     DiagnosticKind `json:"kind" yaml:"kind"`
	Severity Severity       `json:"severity" yaml:"severity"`
	Message  string         `json:"message" yaml:"message"`
}

// IsError reports whether the diagnostic blocked its row (or the document).
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

// FilterDiagnostics returns the diagnostics with the given severity, in order.
func FilterDiagnostics(diags []Diagnostic, severity Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Severity == severity {
			out = append(out, d)
		}
	}
	return out
}
