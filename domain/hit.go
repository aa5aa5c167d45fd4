package domain

// Hit is one candidate document returned by the retrieval engine.
// Score is the engine's relevance score; it is comparable only within
// a single search call and is never mutated after retrieval.
type Hit struct {
	URL      string  `json:"url"`
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Score    float64 `json:"score"`

	// RerankScore is filled in by the reranker when a model is loaded.
	RerankScore float64 `json:"rerank_score,omitempty"`
}
