package parser

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/scholarship-parser/models"
)

var (
	lineBreakPattern = regexp.MustCompile(`(?i)<br\s*/?>`)
	levelNoise       = regexp.MustCompile(`[^\w\s-]`)
)

// LevelRule maps a set of substrings to a canonical level.
type LevelRule struct {
	Level    models.StudyLevel
	Keywords []string
}

// levelRules is evaluated top to bottom and the first matching rule wins, so
// "postgraduate research" classifies as postgraduate only.
var levelRules = []LevelRule{
	{Level: models.LevelUndergraduate, Keywords: []string{"undergraduate", "bachelor"}},
	{Level: models.LevelPostgraduate, Keywords: []string{"graduate", "master", "phd"}},
	{Level: models.LevelShortTerm, Keywords: []string{"short-term", "short term"}},
	{Level: models.LevelResearch, Keywords: []string{"research"}},
}

// LevelRules returns a copy of the classification rules in precedence order.
func LevelRules() []LevelRule {
	rules := make([]LevelRule, len(levelRules))
	for i, r := range levelRules {
		rules[i] = LevelRule{
			Level:    r.Level,
			Keywords: append([]string(nil), r.Keywords...),
		}
	}
	return rules
}

// classifySegment returns the level of the first rule matching segment.
func classifySegment(segment string) (models.StudyLevel, bool) {
	for _, rule := range levelRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(segment, keyword) {
				return rule.Level, true
			}
		}
	}
	return "", false
}

// ParseStudyLevels classifies a level cell into canonical levels.
// Segments are separated by <br> tags. The result is deduplicated, keeps
// first-appearance order and is never nil.
func ParseStudyLevels(cell string) []models.StudyLevel {
	levels := []models.StudyLevel{}
	seen := make(map[models.StudyLevel]struct{})

	for _, part := range lineBreakPattern.Split(strings.ToLower(cell), -1) {
		segment := strings.TrimSpace(levelNoise.ReplaceAllString(part, ""))
		if segment == "" {
			continue
		}

		level, ok := classifySegment(segment)
		if !ok {
			continue
		}
		if _, dup := seen[level]; dup {
			continue
		}
		seen[level] = struct{}{}
		levels = append(levels, level)
	}

	return levels
}
