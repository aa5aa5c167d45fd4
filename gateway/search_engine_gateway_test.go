package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"search-relevance/domain"
	"search-relevance/driver"
)

type mockSearchDriver struct {
	gotBody []byte
	gotSize int
	hits    []driver.SearchHit
	err     error
}

func (m *mockSearchDriver) Search(_ context.Context, body []byte, size int) ([]driver.SearchHit, error) {
	m.gotBody = body
	m.gotSize = size
	return m.hits, m.err
}

func TestSearchEngineGatewaySearch(t *testing.T) {
	mock := &mockSearchDriver{
		hits: []driver.SearchHit{
			{URL: "https://a", Title: "Бензин", Text: "тело", Category: "news", Date: "2026-01-10", Score: 4.2},
		},
	}
	g := NewSearchEngineGateway(mock)

	query := &domain.BoolQuery{
		Should:             []domain.Clause{domain.Match{Field: "title", Query: "бензин", Boost: 3.0}},
		MinimumShouldMatch: 1,
	}
	hits, err := g.Search(context.Background(), query, 25)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if mock.gotSize != 25 {
		t.Errorf("size = %d, want 25", mock.gotSize)
	}

	// The wire body is the engine DSL under a top-level "query" key.
	var body map[string]json.RawMessage
	if err := json.Unmarshal(mock.gotBody, &body); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if _, ok := body["query"]; !ok {
		t.Fatalf("request body missing query key: %s", mock.gotBody)
	}

	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(hits))
	}
	want := domain.Hit{URL: "https://a", Title: "Бензин", Body: "тело", Category: "news", Date: "2026-01-10", Score: 4.2}
	if hits[0] != want {
		t.Errorf("hit = %+v, want %+v", hits[0], want)
	}
}

func TestSearchEngineGatewayWrapsDriverError(t *testing.T) {
	g := NewSearchEngineGateway(&mockSearchDriver{err: errors.New("connection refused")})

	_, err := g.Search(context.Background(), &domain.BoolQuery{}, 10)
	if err == nil {
		t.Fatal("expected error")
	}

	var re *domain.RetrievalError
	if !errors.As(err, &re) {
		t.Fatalf("error type = %T, want *domain.RetrievalError", err)
	}
	if re.Op != "Search" {
		t.Errorf("op = %q, want Search", re.Op)
	}
}
