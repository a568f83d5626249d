// Package models defines data structures for scholarship parsing and configuration.
package models

// StudyLevel is a canonical study-level tag derived from free text.
type StudyLevel string

const (
	LevelUndergraduate StudyLevel = "undergraduate"
	LevelPostgraduate  StudyLevel = "postgraduate"
	LevelShortTerm     StudyLevel = "short-term"
	LevelResearch      StudyLevel = "research"
)

// AllStudyLevels returns every canonical level in display order.
func AllStudyLevels() []StudyLevel {
	return []StudyLevel{
		LevelUndergraduate,
		LevelPostgraduate,
		LevelShortTerm,
		LevelResearch,
	}
}

// Scholarship is a validated, display-ready scholarship entry.
type Scholarship struct {
	Name        string       `json:"name" yaml:"name"`
	Link        string       `json:"link" yaml:"link"`
	Opens       string       `json:"opens" yaml:"opens"`
	Deadline    string       `json:"deadline" yaml:"deadline"`
	Level       []StudyLevel `json:"level" yaml:"level"`
	Eligibility string       `json:"eligibility" yaml:"eligibility"`
	Includes    string       `json:"includes" yaml:"includes"`
}

// TableRow holds the six trimmed cells of one markdown table line.
type TableRow struct {
	Scholarship string `json:"scholarship"` // name and link in markdown format
	Opens       string `json:"opens"`
	Deadline    string `json:"deadline"`
	Level       string `json:"level"` // may hold several levels separated by <br>
	Eligibility string `json:"eligibility"`
	Includes    string `json:"includes"`
}

// ParsedLink is the display name and URL pulled out of a scholarship cell.
// URL is empty when the cell holds plain text.
type ParsedLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ValidationResult reports whether a row may be converted.
// Errors block conversion; warnings are advisory.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ParseResult is the outcome of parsing one markdown document.
type ParseResult struct {
	Scholarships []Scholarship `json:"scholarships" yaml:"scholarships"`
	Errors       []string      `json:"errors" yaml:"errors"`
	Warnings     []string      `json:"warnings" yaml:"warnings"`
	Diagnostics  []Diagnostic  `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}
