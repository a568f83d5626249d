package manifest

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/scholarship-parser/models"
	"github.com/dtnitsch/scholarship-parser/pkg/analytics"
	"github.com/dtnitsch/scholarship-parser/pkg/mapreduce"
	"github.com/dtnitsch/scholarship-parser/pkg/parser"
	"github.com/dtnitsch/scholarship-parser/pkg/storage"
)

// Input is everything GenerateSummary needs about one parse.
type Input struct {
	Source  SourceSummary
	Content string
	Result  models.ParseResult
	Records []models.Scholarship // normalized
}

// GenerateSummary builds a manifest for a parsed document. topN limits the
// number of aggregate keywords.
func GenerateSummary(in Input, topN int) SummaryManifest {
	a := &analytics.Analytics{}

	rows, _ := parser.DataRows(in.Content)
	m := SummaryManifest{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Source:      in.Source,
		DataRows:    len(rows),
		Records:     len(in.Records),
		Errors:      len(in.Result.Errors),
		Warnings:    len(in.Result.Warnings),
		Levels:      make(map[string]int),
		TopKeywords: mapreduce.TopKeywords(mapreduce.MapAll(in.Records, a), topN),
	}

	for level, count := range a.LevelCounts(in.Records) {
		m.Levels[string(level)] = count
	}
	for _, s := range in.Records {
		if len(s.Level) == 0 {
			m.Unleveled++
		}
		if s.Link != "" {
			m.WithLink++
		}
	}

	return m
}

// SaveSummary writes the manifest as YAML and returns the path written.
func SaveSummary(m SummaryManifest, path string, s *storage.Storage) (string, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}
	if err := s.SaveFile(path, data); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}
	return path, nil
}
