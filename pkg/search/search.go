// Package search provides case-insensitive matching, highlighting and
// filtering over parsed scholarships.
package search

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/scholarship-parser/models"
)

// DefaultHighlightClass is the CSS class of the highlight marker.
const DefaultHighlightClass = models.DefaultHighlightClass

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes the five reserved HTML characters.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

func isBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// ContainsSearchQuery reports whether text contains query, ignoring case.
// A blank query or empty text never matches.
func ContainsSearchQuery(text, query string) bool {
	if isBlank(query) || text == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}

// Highlighter wraps query matches in a <mark> element with a fixed class.
type Highlighter struct {
	Class string
}

// NewHighlighter returns a Highlighter using class, or the default class when
// class is blank.
func NewHighlighter(class string) *Highlighter {
	if isBlank(class) {
		class = DefaultHighlightClass
	}
	return &Highlighter{Class: class}
}

// Highlight escapes text as HTML and wraps every case-insensitive occurrence
// of query in a mark element. A blank query or empty text is returned
// unchanged and unescaped.
//
// Matches are found in the raw text and each piece is escaped on its own, so
// a query never matches inside an escape sequence such as &amp;. A query that
// cannot be compiled (invalid UTF-8) yields the escaped text with no marks.
func (h *Highlighter) Highlight(text, query string) string {
	if isBlank(query) || text == "" {
		return text
	}

	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return EscapeHTML(text)
	}
	open := `<mark class="` + EscapeHTML(h.Class) + `">`

	var b strings.Builder
	last := 0
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		b.WriteString(EscapeHTML(text[last:loc[0]]))
		b.WriteString(open)
		b.WriteString(EscapeHTML(text[loc[0]:loc[1]]))
		b.WriteString("</mark>")
		last = loc[1]
	}
	b.WriteString(EscapeHTML(text[last:]))

	return b.String()
}

var defaultHighlighter = NewHighlighter(DefaultHighlightClass)

// HighlightSearchTerms highlights query in text using the default marker class.
func HighlightSearchTerms(text, query string) string {
	return defaultHighlighter.Highlight(text, query)
}

// FilterScholarshipsBySearch keeps the records whose name, eligibility or
// includes contain query, ignoring case. A blank query returns records as-is.
func FilterScholarshipsBySearch(records []models.Scholarship, query string) []models.Scholarship {
	if isBlank(query) {
		return records
	}

	q := strings.ToLower(query)
	filtered := []models.Scholarship{}
	for _, s := range records {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Eligibility), q) ||
			strings.Contains(strings.ToLower(s.Includes), q) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
