package state

import (
	"strings"
	"unicode"
)

// matchesQuery reports whether name matches the search query. Matching is
// substring, case-insensitive until the query contains an upper-case rune.
func matchesQuery(name, query string) bool {
	if query == "" {
		return true
	}
	if queryHasUppercase(query) {
		return strings.Contains(name, query)
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

func queryHasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
