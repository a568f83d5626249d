package manifest

// SummaryManifest is a lightweight overview of one parsed scholarship
// document: where it came from, how many rows survived, and what they offer.
type SummaryManifest struct {
	GeneratedAt string         `json:"generated_at" yaml:"generated_at"`
	Source      SourceSummary  `json:"source" yaml:"source"`
	DataRows    int            `json:"data_rows" yaml:"data_rows"`
	Records     int            `json:"records" yaml:"records"`
	Errors      int            `json:"errors" yaml:"errors"`
	Warnings    int            `json:"warnings" yaml:"warnings"`
	Levels      map[string]int `json:"levels" yaml:"levels"`
	Unleveled   int            `json:"unleveled" yaml:"unleveled"`
	WithLink    int            `json:"with_link" yaml:"with_link"`
	TopKeywords []string       `json:"top_keywords" yaml:"top_keywords"`
}

// SourceSummary identifies the document a manifest was built from.
type SourceSummary struct {
	Path      string `json:"path" yaml:"path"`
	SHA256    string `json:"sha256" yaml:"sha256"`
	SizeBytes int64  `json:"size_bytes" yaml:"size_bytes"`
	Modified  string `json:"modified,omitempty" yaml:"modified,omitempty"`
}
