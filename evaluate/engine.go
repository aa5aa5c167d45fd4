package evaluate

import (
	"fmt"
	"io"
	"os"
	"sort"

	"search-relevance/domain"
)

// QueryMetrics is the per-query breakdown of ranking quality.
type QueryMetrics struct {
	Query            string  `json:"query"`
	PrecisionAt1     float64 `json:"p_at_1"`
	PrecisionAt3     float64 `json:"p_at_3"`
	PrecisionAt5     float64 `json:"p_at_5"`
	PrecisionAt10    float64 `json:"p_at_10"`
	RecallAt10       float64 `json:"r_at_10"`
	AveragePrecision float64 `json:"ap"`
	NDCGAt5          float64 `json:"ndcg_at_5"`
	NDCGAt10         float64 `json:"ndcg_at_10"`
	MRR              float64 `json:"mrr"`
	TotalRelevant    int     `json:"total_relevant"`
	TotalDocs        int     `json:"total_docs"`
}

// Summary is the corpus-level aggregate: unweighted means across queries.
type Summary struct {
	PrecisionAt1  float64 `json:"p_at_1"`
	PrecisionAt3  float64 `json:"p_at_3"`
	PrecisionAt5  float64 `json:"p_at_5"`
	PrecisionAt10 float64 `json:"p_at_10"`
	RecallAt10    float64 `json:"r_at_10"`
	MAP           float64 `json:"map"`
	NDCGAt5       float64 `json:"ndcg_at_5"`
	NDCGAt10      float64 `json:"ndcg_at_10"`
	MRR           float64 `json:"mrr"`
	Queries       int     `json:"queries"`
	Documents     int     `json:"documents"`
	Relevant      int     `json:"relevant"`
}

// Report holds per-query metrics and their aggregate. Derived data only;
// recomputable from the ranking lists at any time.
type Report struct {
	PerQuery []QueryMetrics `json:"per_query"`
	Summary  Summary        `json:"summary"`
}

// Metric selects one value from a query's metrics, for best/worst triage.
type Metric func(QueryMetrics) float64

var (
	ByPrecisionAt5 Metric = func(m QueryMetrics) float64 { return m.PrecisionAt5 }
	ByNDCGAt10     Metric = func(m QueryMetrics) float64 { return m.NDCGAt10 }
	ByMRR          Metric = func(m QueryMetrics) float64 { return m.MRR }
	ByAP           Metric = func(m QueryMetrics) float64 { return m.AveragePrecision }
)

// Evaluate computes metrics for every ranking list and the corpus summary.
// The input lists are consumed in the order the system ranked them; nothing
// is re-sorted here.
func Evaluate(rankings []domain.RankingList) *Report {
	report := &Report{PerQuery: make([]QueryMetrics, 0, len(rankings))}

	for _, r := range rankings {
		totalRelevant := r.TotalRelevant()
		m := QueryMetrics{
			Query:            r.Query,
			PrecisionAt1:     PrecisionAt(r.Labels, 1),
			PrecisionAt3:     PrecisionAt(r.Labels, 3),
			PrecisionAt5:     PrecisionAt(r.Labels, 5),
			PrecisionAt10:    PrecisionAt(r.Labels, 10),
			RecallAt10:       RecallAt(r.Labels, totalRelevant, 10),
			AveragePrecision: AveragePrecision(r.Labels, totalRelevant),
			NDCGAt5:          NDCGAt(r.Labels, 5),
			NDCGAt10:         NDCGAt(r.Labels, 10),
			MRR:              MRR(r.Labels),
			TotalRelevant:    totalRelevant,
			TotalDocs:        len(r.Labels),
		}
		report.PerQuery = append(report.PerQuery, m)

		report.Summary.PrecisionAt1 += m.PrecisionAt1
		report.Summary.PrecisionAt3 += m.PrecisionAt3
		report.Summary.PrecisionAt5 += m.PrecisionAt5
		report.Summary.PrecisionAt10 += m.PrecisionAt10
		report.Summary.RecallAt10 += m.RecallAt10
		report.Summary.MAP += m.AveragePrecision
		report.Summary.NDCGAt5 += m.NDCGAt5
		report.Summary.NDCGAt10 += m.NDCGAt10
		report.Summary.MRR += m.MRR
		report.Summary.Documents += m.TotalDocs
		report.Summary.Relevant += m.TotalRelevant
	}

	n := len(report.PerQuery)
	report.Summary.Queries = n
	if n > 0 {
		d := float64(n)
		report.Summary.PrecisionAt1 /= d
		report.Summary.PrecisionAt3 /= d
		report.Summary.PrecisionAt5 /= d
		report.Summary.PrecisionAt10 /= d
		report.Summary.RecallAt10 /= d
		report.Summary.MAP /= d
		report.Summary.NDCGAt5 /= d
		report.Summary.NDCGAt10 /= d
		report.Summary.MRR /= d
	}

	return report
}

// Worst returns the n lowest-scoring queries by the given metric.
func (r *Report) Worst(n int, by Metric) []QueryMetrics {
	return r.rank(n, by, true)
}

// Best returns the n highest-scoring queries by the given metric.
func (r *Report) Best(n int, by Metric) []QueryMetrics {
	return r.rank(n, by, false)
}

func (r *Report) rank(n int, by Metric, ascending bool) []QueryMetrics {
	out := make([]QueryMetrics, len(r.PerQuery))
	copy(out, r.PerQuery)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return by(out[i]) < by(out[j])
		}
		return by(out[i]) > by(out[j])
	})
	if n > len(out) {
		n = len(out)
	}
	return out[:n]
}

// Write emits the human-readable report: aggregate summary first, then the
// per-query breakdown.
func (r *Report) Write(w io.Writer) error {
	s := r.Summary
	_, err := fmt.Fprintf(w, `SEARCH QUALITY REPORT
==================================================

Aggregate metrics (mean over %d queries):
P@1:     %.3f
P@3:     %.3f
P@5:     %.3f
P@10:    %.3f
R@10:    %.3f
MAP:     %.3f
nDCG@5:  %.3f
nDCG@10: %.3f
MRR:     %.3f

Documents judged: %d
Relevant documents: %d

Per-query:
`, s.Queries, s.PrecisionAt1, s.PrecisionAt3, s.PrecisionAt5, s.PrecisionAt10,
		s.RecallAt10, s.MAP, s.NDCGAt5, s.NDCGAt10, s.MRR, s.Documents, s.Relevant)
	if err != nil {
		return err
	}

	for _, m := range r.PerQuery {
		_, err := fmt.Fprintf(w, "%q: P@5=%.3f AP=%.3f nDCG@10=%.3f MRR=%.3f relevant=%d/%d\n",
			m.Query, m.PrecisionAt5, m.AveragePrecision, m.NDCGAt10, m.MRR, m.TotalRelevant, m.TotalDocs)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteFile persists the textual report at path.
func (r *Report) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	return r.Write(f)
}
