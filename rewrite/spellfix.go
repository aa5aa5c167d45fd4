package rewrite

import (
	"sort"
	"strings"
)

// SpellfixTable corrects known misspelled phrases by literal substitution.
// Matching is longest-phrase-first so a long misspelling is corrected whole
// before any of its substrings could be matched independently.
type SpellfixTable struct {
	phrases []string
	fix     map[string]string
}

func NewSpellfixTable(fixes map[string]string) *SpellfixTable {
	phrases := make([]string, 0, len(fixes))
	for p := range fixes {
		phrases = append(phrases, p)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})
	return &SpellfixTable{phrases: phrases, fix: fixes}
}

// Apply rewrites q in a single left-to-right pass. Replacements never
// overlap and replacement output is not re-scanned within the pass, so a
// correction cannot cascade into further corrections. A nil or empty table
// is the identity function.
func (t *SpellfixTable) Apply(q string) string {
	if t == nil || len(t.phrases) == 0 || q == "" {
		return q
	}

	var b strings.Builder
	b.Grow(len(q))
	i := 0
	for i < len(q) {
		matched := false
		for _, p := range t.phrases {
			if strings.HasPrefix(q[i:], p) {
				b.WriteString(t.fix[p])
				i += len(p)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(q[i])
			i++
		}
	}
	return b.String()
}
