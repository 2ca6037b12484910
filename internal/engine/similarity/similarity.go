// Package similarity scores how close a requested name is to known script names.
package similarity

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// SuggestThreshold is the minimum score for a name to be offered as a suggestion.
const SuggestThreshold = 0.5

// Match is a candidate together with its similarity to the query.
type Match struct {
	Name  string
	Score float64
}

// Distance returns the Levenshtein edit distance between a and b, counted in code points.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Similarity returns a score in [0, 1] where 1 means identical.
func Similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(Distance(a, b))/float64(longest)
}

// Rank scores every candidate against query, case-insensitively, and returns those
// scoring at least threshold, best first. Candidates with equal scores keep their input order.
func Rank(query string, candidates []string, threshold float64) []Match {
	q := strings.ToLower(query)
	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		score := Similarity(q, strings.ToLower(c))
		if score >= threshold {
			matches = append(matches, Match{Name: c, Score: score})
		}
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return matches
}

// Suggest returns the closest candidate to query, if any scores at least SuggestThreshold.
func Suggest(query string, candidates []string) (string, bool) {
	ranked := Rank(query, candidates, SuggestThreshold)
	if len(ranked) == 0 {
		return "", false
	}
	return ranked[0].Name, true
}

// IsExactMatch reports whether query equals one of the candidates, ignoring case.
func IsExactMatch(query string, candidates []string) bool {
	return slices.ContainsFunc(candidates, func(c string) bool {
		return strings.EqualFold(query, c)
	})
}
