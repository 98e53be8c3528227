package model

import "strings"

// NormalizeSearchTerm trims, collapses internal whitespace and lower-cases.
func NormalizeSearchTerm(term string) string {
	return strings.ToLower(strings.Join(strings.Fields(term), " "))
}

// MatchesSearch reports whether an already normalized term occurs in the
// property's search text.
func (p Property) MatchesSearch(normalizedTerm string) bool {
	if normalizedTerm == "" {
		return false
	}
	return strings.Contains(p.SearchText(), normalizedTerm)
}
