package parser

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/scholarship-parser/models"
)

// markdownLinkPattern matches [text](url) constructs anywhere in a cell.
var markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// ParseScholarshipLink extracts the display name and URL from a scholarship cell.
// Only the first link counts; a trailing "[(Application Link)](...)" is ignored.
// A cell without any link is returned as a plain name with an empty URL.
func ParseScholarshipLink(cell string) models.ParsedLink {
	match := markdownLinkPattern.FindStringSubmatch(cell)
	if match == nil {
		return models.ParsedLink{Name: strings.TrimSpace(cell)}
	}

	return models.ParsedLink{
		Name: strings.TrimSpace(match[1]),
		URL:  strings.TrimSpace(match[2]),
	}
}
