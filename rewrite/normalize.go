package rewrite

import "strings"

// NormalizeQuery lowercases the raw query, trims surrounding whitespace and
// collapses internal whitespace runs to a single space. Always succeeds;
// empty input yields an empty string.
func NormalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}
