package parser

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/scholarship-parser/models"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeScholarship returns a cleaned copy of s. It shares no slices with
// its input and applying it twice gives the same result as applying it once.
func NormalizeScholarship(s models.Scholarship) models.Scholarship {
	levels := make([]models.StudyLevel, len(s.Level))
	for i, level := range s.Level {
		levels[i] = models.StudyLevel(strings.ToLower(string(level)))
	}

	return models.Scholarship{
		Name:        strings.TrimSpace(s.Name),
		Link:        strings.TrimSpace(s.Link),
		Opens:       NormalizeDate(s.Opens),
		Deadline:    NormalizeDate(s.Deadline),
		Level:       levels,
		Eligibility: strings.TrimSpace(s.Eligibility),
		Includes:    strings.TrimSpace(s.Includes),
	}
}

// NormalizeAll normalizes every record, keeping order.
func NormalizeAll(records []models.Scholarship) []models.Scholarship {
	out := make([]models.Scholarship, 0, len(records))
	for _, s := range records {
		out = append(out, NormalizeScholarship(s))
	}
	return out
}

// NormalizeDate collapses whitespace in a free-form date. The placeholder and
// blank values become the empty string. The text itself is not interpreted.
func NormalizeDate(date string) string {
	normalized := strings.TrimSpace(whitespaceRun.ReplaceAllString(date, " "))
	if normalized == Placeholder {
		return ""
	}
	return normalized
}
