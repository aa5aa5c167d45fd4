package port

import (
	"context"

	"search-relevance/domain"
)

// SearchEngine is the retrieval boundary. The engine may return fewer hits
// than requested or none at all; transport failures surface as
// domain.RetrievalError.
type SearchEngine interface {
	Search(ctx context.Context, query *domain.BoolQuery, size int) ([]domain.Hit, error)
}
