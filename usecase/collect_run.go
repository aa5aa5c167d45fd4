package usecase

import (
	"context"
	"log/slog"

	"search-relevance/domain"
	"search-relevance/port"
)

// CollectRunUsecase runs a fixed query set through the search pipeline and
// gathers the ranked results for human labeling. A failing query is logged
// and skipped; one broken query never aborts the run.
type CollectRunUsecase struct {
	search *SearchArticlesUsecase
	repo   port.JudgmentRepository
	logger *slog.Logger
}

// NewCollectRunUsecase builds the collector. repo may be nil when results
// are only written to a file by the caller.
func NewCollectRunUsecase(search *SearchArticlesUsecase, repo port.JudgmentRepository, logger *slog.Logger) *CollectRunUsecase {
	return &CollectRunUsecase{search: search, repo: repo, logger: logger}
}

func (u *CollectRunUsecase) Execute(ctx context.Context, run string, queries []string, size int) ([]domain.JudgedResult, error) {
	var results []domain.JudgedResult
	failed := 0

	for _, q := range queries {
		res, err := u.search.Execute(ctx, q, size)
		if err != nil {
			failed++
			u.logger.Warn("collection query failed", slog.String("query", q), slog.String("error", err.Error()))
			continue
		}

		for i, hit := range res.Hits {
			results = append(results, domain.JudgedResult{
				Query:    res.Query,
				Rank:     i + 1,
				Title:    hit.Title,
				Body:     hit.Body,
				URL:      hit.URL,
				Category: hit.Category,
				Date:     hit.Date,
				Score:    hit.Score,
			})
		}
	}

	u.logger.Info("collection run finished",
		slog.String("run", run),
		slog.Int("queries", len(queries)),
		slog.Int("failed", failed),
		slog.Int("results", len(results)))

	if u.repo != nil {
		if err := u.repo.SaveResults(ctx, run, results); err != nil {
			return results, err
		}
	}
	return results, nil
}
