// Package rerank reorders retrieval candidates with a trained scoring model.
package rerank

import (
	"sort"

	"search-relevance/domain"
	"search-relevance/feature"
	"search-relevance/port"
)

type Reranker struct {
	extractor *feature.Extractor
	scorer    port.Scorer
}

// New builds a reranker. A nil scorer is a valid degraded mode: hits pass
// through in retrieval order.
func New(extractor *feature.Extractor, scorer port.Scorer) *Reranker {
	return &Reranker{extractor: extractor, scorer: scorer}
}

// Enabled reports whether a trained model is loaded.
func (r *Reranker) Enabled() bool {
	return r.scorer != nil
}

// Rerank scores every hit against the query and returns a new slice sorted
// by descending model score. The sort is stable, so ties keep their original
// retrieval order. The retrieval score itself is never touched; the model
// score lands in RerankScore for observability.
func (r *Reranker) Rerank(query string, hits []domain.Hit) []domain.Hit {
	if r.scorer == nil || len(hits) == 0 {
		return hits
	}

	out := make([]domain.Hit, len(hits))
	copy(out, hits)

	for i := range out {
		v := r.extractor.Build(query, out[i])
		out[i].RerankScore = r.scorer.Score(v)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RerankScore > out[j].RerankScore
	})
	return out
}
