package services

import "strings"

// matchesAll reports whether a search term is one of the "no filter"
// sentinels: empty, whitespace-only, or the literal token "null" in any
// case. Clients have historically sent all three to mean "return
// everything", so the behavior is preserved as-is.
func matchesAll(term string) bool {
	trimmed := strings.TrimSpace(term)
	return trimmed == "" || strings.EqualFold(trimmed, "null")
}
