// Package similarity provides edit-distance string scoring for fuzzy
// resource lookup and suggestion ranking.
package similarity

import (
	"sort"
	"strings"
)

// Thresholds used across the query engine. They mirror the original tool's
// behavior and are exposed as constants so callers never hard-code them.
const (
	// AcceptThreshold is the minimum score for a fuzzy match to be
	// returned as an outright result.
	AcceptThreshold = 0.5

	// SuggestThreshold is the minimum score for inclusion in a
	// suggestion list.
	SuggestThreshold = 0.3

	// MaxSuggestions caps every suggestion list.
	MaxSuggestions = 5
)

// Distance returns the Levenshtein edit distance between a and b using the
// full dynamic-programming matrix. Inputs are compared as-is; callers that
// want case-insensitive distance should lowercase first (Score does).
func Distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	rows := len(a) + 1
	cols := len(b) + 1

	matrix := make([][]int, rows)
	for i := range matrix {
		matrix[i] = make([]int, cols)
		matrix[i][0] = i
	}
	for j := 0; j < cols; j++ {
		matrix[0][j] = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[rows-1][cols-1]
}

// Score returns the normalized similarity of a and b in [0, 1]. Both strings
// are lowercased before comparison. Two empty strings score 1.
func Score(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}

	return float64(longest-Distance(a, b)) / float64(longest)
}

// Candidate is a scored name produced by Rank.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores query against every name, drops candidates below threshold,
// and returns at most MaxSuggestions candidates in descending score order.
// Ties keep the original name order, so output is deterministic.
func Rank(query string, names []string, threshold float64) []Candidate {
	ranked := make([]Candidate, 0, len(names))
	for _, name := range names {
		if s := Score(query, name); s > threshold {
			ranked = append(ranked, Candidate{Name: name, Score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > MaxSuggestions {
		ranked = ranked[:MaxSuggestions]
	}
	return ranked
}

func min3(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}
