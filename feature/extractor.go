// Package feature computes the lexical-overlap feature vector consumed by
// the reranker. The vector layout and the body truncation length are shared
// with the training pipeline; neither may change independently of retraining.
package feature

import (
	"search-relevance/domain"
	"search-relevance/tokenize"
)

// bodyPrefixBytes bounds body tokenization cost and matches the truncation
// used when training features were generated.
const bodyPrefixBytes = 600

// epsilon guards the overlap-ratio denominators.
const epsilon = 1e-9

type Extractor struct {
	tok *tokenize.Tokenizer
}

func NewExtractor(tok *tokenize.Tokenizer) *Extractor {
	return &Extractor{tok: tok}
}

// Build computes the feature vector for a (query, hit) pair. Missing fields
// are treated as empty strings; the function never fails.
func (e *Extractor) Build(query string, hit domain.Hit) domain.FeatureVector {
	body := hit.Body
	if len(body) > bodyPrefixBytes {
		body = truncateUTF8(body, bodyPrefixBytes)
	}

	qTokens := e.tok.Words(query)
	tTokens := e.tok.Words(hit.Title)
	bTokens := e.tok.Words(body)

	qSet := toSet(qTokens)
	tSet := toSet(tTokens)
	bSet := toSet(bTokens)

	titleOverlap := overlap(qSet, tSet)
	bodyOverlap := overlap(qSet, bSet)

	denom := float64(len(qSet)) + epsilon

	fullyInTitle := 0.0
	if len(qSet) > 0 && titleOverlap == len(qSet) {
		fullyInTitle = 1.0
	}

	var v domain.FeatureVector
	v[domain.FeatRetrievalScore] = hit.Score
	v[domain.FeatQueryTokens] = float64(len(qTokens))
	v[domain.FeatTitleTokens] = float64(len(tTokens))
	v[domain.FeatBodyTokens] = float64(len(bTokens))
	v[domain.FeatTitleOverlap] = float64(titleOverlap)
	v[domain.FeatBodyOverlap] = float64(bodyOverlap)
	v[domain.FeatTotalOverlap] = float64(titleOverlap + bodyOverlap)
	v[domain.FeatTitleOverlapRatio] = float64(titleOverlap) / denom
	v[domain.FeatBodyOverlapRatio] = float64(bodyOverlap) / denom
	v[domain.FeatQueryFullyInTitle] = fullyInTitle
	return v
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func overlap(a, b map[string]struct{}) int {
	n := 0
	for t := range a {
		if _, ok := b[t]; ok {
			n++
		}
	}
	return n
}

// truncateUTF8 cuts s at limit bytes without splitting a rune.
func truncateUTF8(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && s[limit]&0xC0 == 0x80 {
		limit--
	}
	return s[:limit]
}
