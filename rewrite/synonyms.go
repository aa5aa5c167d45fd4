package rewrite

import (
	"sort"
	"strings"

	"search-relevance/tokenize"
)

// SynonymTable expands query phrases and tokens into related search terms.
// Multi-word phrases are matched longest-first and their spans consumed, so
// a phrase expansion is never double-counted through its individual words.
type SynonymTable struct {
	phrases    []string
	expansions map[string][]string
	tok        *tokenize.Tokenizer
}

func NewSynonymTable(expansions map[string][]string, tok *tokenize.Tokenizer) *SynonymTable {
	phrases := make([]string, 0, len(expansions))
	for p := range expansions {
		phrases = append(phrases, p)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})
	return &SynonymTable{phrases: phrases, expansions: expansions, tok: tok}
}

// Expand returns the sorted, deduplicated union of all expansions matched in
// the normalized query. The second return value is false when nothing
// matched, which distinguishes "no synonyms found" from an empty expansion.
func (t *SynonymTable) Expand(normalized string) (string, bool) {
	if t == nil || len(t.phrases) == 0 || normalized == "" {
		return "", false
	}

	used := make(map[string]struct{})
	tmp := normalized

	for _, p := range t.phrases {
		if strings.Contains(tmp, p) {
			for _, e := range t.expansions[p] {
				used[e] = struct{}{}
			}
			tmp = strings.ReplaceAll(tmp, p, " ")
		}
	}

	for _, w := range t.tok.Words(tmp) {
		if exp, ok := t.expansions[w]; ok {
			for _, e := range exp {
				used[e] = struct{}{}
			}
		}
	}

	if len(used) == 0 {
		return "", false
	}

	terms := make([]string, 0, len(used))
	for e := range used {
		terms = append(terms, e)
	}
	sort.Strings(terms)
	return strings.Join(terms, " "), true
}
