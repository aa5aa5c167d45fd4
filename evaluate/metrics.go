// Package evaluate computes ranking-quality metrics from judged result
// lists. All functions tolerate degenerate input: lists shorter than k clamp
// k, and lists with no relevant documents score zero instead of erroring.
package evaluate

import (
	"math"
	"sort"

	"search-relevance/domain"
)

// PrecisionAt is the share of relevant documents within the first k results.
func PrecisionAt(labels []domain.HumanLabel, k int) float64 {
	if k > len(labels) {
		k = len(labels)
	}
	if k <= 0 {
		return 0.0
	}
	relevant := 0
	for _, l := range labels[:k] {
		if l.Relevant() {
			relevant++
		}
	}
	return float64(relevant) / float64(k)
}

// RecallAt is the share of all relevant documents retrieved within the
// first k results.
func RecallAt(labels []domain.HumanLabel, totalRelevant, k int) float64 {
	if totalRelevant <= 0 {
		return 0.0
	}
	if k > len(labels) {
		k = len(labels)
	}
	if k <= 0 {
		return 0.0
	}
	relevant := 0
	for _, l := range labels[:k] {
		if l.Relevant() {
			relevant++
		}
	}
	return float64(relevant) / float64(totalRelevant)
}

// AveragePrecision is the mean of precision values at each relevant rank,
// normalized by the total relevant count.
func AveragePrecision(labels []domain.HumanLabel, totalRelevant int) float64 {
	if totalRelevant <= 0 {
		return 0.0
	}
	ap := 0.0
	hits := 0
	for i, l := range labels {
		if l.Relevant() {
			hits++
			ap += float64(hits) / float64(i+1)
		}
	}
	return ap / float64(totalRelevant)
}

// DCGAt is the discounted cumulative gain over the first k results, with
// the (2^rel - 1) gain form for graded labels.
func DCGAt(labels []domain.HumanLabel, k int) float64 {
	if k > len(labels) {
		k = len(labels)
	}
	dcg := 0.0
	for i := 0; i < k; i++ {
		gain := math.Pow(2, float64(labels[i])) - 1
		dcg += gain / math.Log2(float64(i)+2)
	}
	return dcg
}

// NDCGAt normalizes DCG@k against the ideal ordering of the same labels.
// Returns 0 when the ideal DCG is 0 (no relevant documents).
func NDCGAt(labels []domain.HumanLabel, k int) float64 {
	idcg := DCGAt(idealOrder(labels), k)
	if idcg == 0 {
		return 0.0
	}
	return DCGAt(labels, k) / idcg
}

// MRR is the reciprocal rank of the first relevant result, 0 if none.
func MRR(labels []domain.HumanLabel) float64 {
	for i, l := range labels {
		if l.Relevant() {
			return 1.0 / float64(i+1)
		}
	}
	return 0.0
}

func idealOrder(labels []domain.HumanLabel) []domain.HumanLabel {
	ideal := make([]domain.HumanLabel, len(labels))
	copy(ideal, labels)
	sort.Slice(ideal, func(i, j int) bool { return ideal[i] > ideal[j] })
	return ideal
}
