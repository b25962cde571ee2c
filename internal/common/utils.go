package common

import "strings"

// MatchesAny reports whether any field contains query, ignoring case.
// An empty query matches everything.
func MatchesAny(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
