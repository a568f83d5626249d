package mapreduce

import (
	"github.com/dtnitsch/scholarship-parser/models"
	"github.com/dtnitsch/scholarship-parser/pkg/analytics"
)

// Map generates a word frequency map for a single scholarship's free text.
func Map(s models.Scholarship, a *analytics.Analytics) map[string]int {
	return a.WordFrequency(analytics.RecordText(s))
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}

// MapAll maps every record and reduces the results.
func MapAll(records []models.Scholarship, a *analytics.Analytics) map[string]int {
	intermediate := make([]map[string]int, 0, len(records))
	for _, s := range records {
		intermediate = append(intermediate, Map(s, a))
	}
	return Reduce(intermediate)
}
