package mapreduce

import (
	"fmt"
	"sort"
	"strings"
)

// isValidKeyword filters tokens that are obviously broken: trailing
// separators or unmatched delimiters left over from markdown cells.
func isValidKeyword(word string) bool {
	if strings.HasSuffix(word, ":") || strings.HasSuffix(word, "=") {
		return false
	}
	if strings.Contains(word, "(") != strings.Contains(word, ")") {
		return false
	}
	if strings.Contains(word, "[") != strings.Contains(word, "]") {
		return false
	}
	return strings.Count(word, "\"")%2 == 0
}

type kv struct {
	Key   string
	Value int
}

// rank sorts valid keywords by count, then alphabetically for stable output.
func rank(wordCounts map[string]int, n int) []kv {
	var ss []kv
	for k, v := range wordCounts {
		if isValidKeyword(k) {
			ss = append(ss, kv{k, v})
		}
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	if n < 0 {
		n = 0
	}
	if len(ss) > n {
		ss = ss[:n]
	}
	return ss
}

// TopKeywords returns the top N keywords formatted as "word:count"
// (e.g., "tuition:12").
func TopKeywords(wordCounts map[string]int, n int) []string {
	ranked := rank(wordCounts, n)
	keywords := make([]string, len(ranked))
	for i, e := range ranked {
		keywords[i] = fmt.Sprintf("%s:%d", e.Key, e.Value)
	}
	return keywords
}
