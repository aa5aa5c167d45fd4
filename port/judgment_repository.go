package port

import (
	"context"

	"search-relevance/domain"
)

// JudgmentRepository persists judged result lists and serves them back for
// evaluation runs.
type JudgmentRepository interface {
	SaveResults(ctx context.Context, run string, results []domain.JudgedResult) error
	ListResults(ctx context.Context, run string) ([]domain.JudgedResult, error)
}
