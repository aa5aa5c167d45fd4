package tokenize

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Tokenizer splits text into lowercase word tokens. Word boundaries follow
// UAX#29, which handles Cyrillic and other non-Latin scripts; Japanese text
// has no word boundaries and goes through kagome morphological segmentation
// instead.
type Tokenizer struct {
	kagome *tokenizer.Tokenizer
}

func New() (*Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Tokenizer{kagome: t}, nil
}

// Words returns the word tokens of text, lowercased, in order of appearance.
// Punctuation and whitespace segments are dropped.
func (t *Tokenizer) Words(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	if containsJapanese(lower) && t.kagome != nil {
		return filterWords(t.kagome.Wakati(lower))
	}

	var tokens []string
	seg := words.FromString(lower)
	for seg.Next() {
		if w := seg.Value(); isWord(w) {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// WordSet returns the deduplicated token set of text.
func (t *Tokenizer) WordSet(text string) map[string]struct{} {
	tokens := t.Words(text)
	set := make(map[string]struct{}, len(tokens))
	for _, w := range tokens {
		set[w] = struct{}{}
	}
	return set
}

func filterWords(tokens []string) []string {
	out := tokens[:0]
	for _, w := range tokens {
		if isWord(w) {
			out = append(out, w)
		}
	}
	return out
}

func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

func containsJapanese(text string) bool {
	for _, r := range text {
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			return true
		}
	}
	return false
}
