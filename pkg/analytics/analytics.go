// Package analytics computes keyword frequencies over scholarship text.
package analytics

import (
	"strings"

	"github.com/dtnitsch/scholarship-parser/models"
)

type Analytics struct{}

// commonWords are ignored in frequency analysis: English function words plus
// words that appear in nearly every scholarship row.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "all": {}, "also": {}, "an": {}, "and": {},
	"any": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "been": {}, "before": {}, "both": {}, "but": {}, "by": {},
	"can": {}, "could": {},
	"do": {}, "does": {}, "during": {},
	"each": {}, "either": {}, "etc": {}, "every": {},
	"for": {}, "from": {},
	"has": {}, "have": {}, "how": {},
	"if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"may": {}, "more": {}, "most": {}, "must": {},
	"no": {}, "not": {},
	"of": {}, "on": {}, "one": {}, "only": {}, "or": {}, "other": {}, "our": {},
	"per": {},
	"should": {}, "so": {}, "some": {}, "such": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "those": {}, "to": {},
	"up": {}, "upon": {},
	"via": {},
	"was": {}, "were": {}, "what": {}, "when": {}, "which": {}, "who": {},
	"will": {}, "with": {}, "within": {}, "would": {},
	"you": {}, "your": {},

	// Scholarship table noise
	"br": {}, "applicants": {}, "applicant": {}, "students": {}, "student": {},
	"scholarship": {}, "scholarships": {}, "program": {}, "programme": {},
}

// IsStopword checks if a word is a common stopword that should be filtered out.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

func (a *Analytics) WordFrequency(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text))
	frequencies := make(map[string]int)

	for _, word := range words {
		// Keep only lowercase letters and numbers at the edges
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})

		if word == "" || IsStopword(word) {
			continue
		}

		frequencies[word]++
	}

	return frequencies
}

// RecordText returns the searchable free text of a record: eligibility and includes.
func RecordText(s models.Scholarship) string {
	return s.Eligibility + "\n" + s.Includes
}

// LevelCounts counts records per study level. Every canonical level is
// present in the result, possibly with a zero count.
func (a *Analytics) LevelCounts(records []models.Scholarship) map[models.StudyLevel]int {
	counts := make(map[models.StudyLevel]int, len(models.AllStudyLevels()))
	for _, level := range models.AllStudyLevels() {
		counts[level] = 0
	}
	for _, s := range records {
		for _, level := range s.Level {
			counts[level]++
		}
	}
	return counts
}
