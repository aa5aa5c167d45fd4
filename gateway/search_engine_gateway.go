package gateway

import (
	"context"
	"encoding/json"

	"search-relevance/domain"
	"search-relevance/driver"
)

// SearchDriver is the transport the gateway delegates to.
type SearchDriver interface {
	Search(ctx context.Context, body []byte, size int) ([]driver.SearchHit, error)
}

// SearchEngineGateway adapts the driver to the domain retrieval boundary:
// it serializes the structured query into the engine DSL and translates
// driver results and failures into domain terms.
type SearchEngineGateway struct {
	driver SearchDriver
}

func NewSearchEngineGateway(d SearchDriver) *SearchEngineGateway {
	return &SearchEngineGateway{driver: d}
}

func (g *SearchEngineGateway) Search(ctx context.Context, query *domain.BoolQuery, size int) ([]domain.Hit, error) {
	body, err := json.Marshal(map[string]any{"query": query})
	if err != nil {
		return nil, &domain.RetrievalError{Op: "Search", Err: "marshal query: " + err.Error()}
	}

	driverHits, err := g.driver.Search(ctx, body, size)
	if err != nil {
		return nil, &domain.RetrievalError{Op: "Search", Err: err.Error()}
	}

	hits := make([]domain.Hit, len(driverHits))
	for i, h := range driverHits {
		hits[i] = domain.Hit{
			URL:      h.URL,
			Title:    h.Title,
			Body:     h.Text,
			Category: h.Category,
			Date:     h.Date,
			Score:    h.Score,
		}
	}
	return hits, nil
}
