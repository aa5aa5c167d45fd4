package port

import "search-relevance/domain"

// Scorer is the model boundary: one scalar score per feature vector. The
// core never depends on a specific model family; an absent model is a valid
// deployment state handled by the reranker, not an error.
type Scorer interface {
	Score(v domain.FeatureVector) float64
}
