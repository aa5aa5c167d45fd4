package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"search-relevance/domain"
	"search-relevance/planner"
	"search-relevance/port"
	"search-relevance/rerank"
	"search-relevance/rewrite"
)

// SearchArticlesUsecase runs the full relevance pipeline: normalize the raw
// query, correct spelling, plan the structured query, retrieve candidates
// and rerank them.
type SearchArticlesUsecase struct {
	spellfix *rewrite.SpellfixTable
	planner  *planner.Planner
	engine   port.SearchEngine
	reranker *rerank.Reranker
	logger   *slog.Logger
}

type SearchResult struct {
	Query    string
	Category string
	Hits     []domain.Hit
	Total    int
	Reranked bool
}

func NewSearchArticlesUsecase(
	spellfix *rewrite.SpellfixTable,
	p *planner.Planner,
	engine port.SearchEngine,
	reranker *rerank.Reranker,
	logger *slog.Logger,
) *SearchArticlesUsecase {
	return &SearchArticlesUsecase{
		spellfix: spellfix,
		planner:  p,
		engine:   engine,
		reranker: reranker,
		logger:   logger,
	}
}

func (u *SearchArticlesUsecase) Execute(ctx context.Context, rawQuery string, size int) (*SearchResult, error) {
	if size <= 0 {
		return nil, errors.New("size must be greater than 0")
	}
	if size > 1000 {
		return nil, errors.New("size too large")
	}

	normalized := rewrite.NormalizeQuery(rawQuery)
	corrected := u.spellfix.Apply(normalized)

	if corrected == "" {
		return &SearchResult{Query: corrected, Category: planner.CategoryEmpty, Hits: []domain.Hit{}}, nil
	}

	query, category := u.planner.Plan(corrected)

	retrievalID := uuid.NewString()
	start := time.Now()

	hits, err := u.engine.Search(ctx, query, size)
	if err != nil {
		u.logger.Error("retrieval failed",
			slog.String("retrieval_id", retrievalID),
			slog.String("query", corrected),
			slog.String("category", category),
			slog.String("error", err.Error()))
		return nil, err
	}

	reranked := u.reranker.Enabled() && len(hits) > 0
	hits = u.reranker.Rerank(corrected, hits)

	u.logger.Info("search completed",
		slog.String("retrieval_id", retrievalID),
		slog.String("query", corrected),
		slog.String("category", category),
		slog.Int("hits", len(hits)),
		slog.Bool("reranked", reranked),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	return &SearchResult{
		Query:    corrected,
		Category: category,
		Hits:     hits,
		Total:    len(hits),
		Reranked: reranked,
	}, nil
}
