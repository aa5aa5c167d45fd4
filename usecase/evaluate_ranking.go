package usecase

import (
	"log/slog"

	"search-relevance/dataset"
	"search-relevance/domain"
	"search-relevance/evaluate"
)

// EvaluateRankingUsecase turns judged result lists into a metrics report and
// surfaces the diagnostic extremes.
type EvaluateRankingUsecase struct {
	logger *slog.Logger
}

func NewEvaluateRankingUsecase(logger *slog.Logger) *EvaluateRankingUsecase {
	return &EvaluateRankingUsecase{logger: logger}
}

// Execute groups the judged rows per query, preserving the ranked order,
// and computes per-query and aggregate metrics.
func (u *EvaluateRankingUsecase) Execute(results []domain.JudgedResult) *evaluate.Report {
	rankings := dataset.GroupRankings(results)
	report := evaluate.Evaluate(rankings)

	u.logger.Info("evaluation completed",
		slog.Int("queries", report.Summary.Queries),
		slog.Int("documents", report.Summary.Documents),
		slog.Float64("map", report.Summary.MAP),
		slog.Float64("ndcg_at_10", report.Summary.NDCGAt10),
		slog.Float64("mrr", report.Summary.MRR))

	for _, m := range report.Worst(3, evaluate.ByPrecisionAt5) {
		u.logger.Info("worst query", slog.String("query", m.Query), slog.Float64("p_at_5", m.PrecisionAt5))
	}
	for _, m := range report.Best(3, evaluate.ByPrecisionAt5) {
		u.logger.Info("best query", slog.String("query", m.Query), slog.Float64("p_at_5", m.PrecisionAt5))
	}

	return report
}
