package rerank

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"search-relevance/domain"
	"search-relevance/port"
)

// LinearScorer scores a feature vector with externally trained linear
// weights. It is one concrete Scorer; other model families plug in behind
// the same interface.
type LinearScorer struct {
	Weights [domain.NumFeatures]float64 `json:"weights"`
	Bias    float64                     `json:"bias"`
}

func (s *LinearScorer) Score(v domain.FeatureVector) float64 {
	score := s.Bias
	for i, w := range s.Weights {
		score += w * v[i]
	}
	return score
}

// LoadScorer reads linear model weights from a JSON file. A missing file is
// the degraded no-model state, not an error.
func LoadScorer(path string) (port.Scorer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("reranker model not found, retrieval order will be used as-is", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("read reranker model: %w", err)
	}

	var raw struct {
		Weights []float64 `json:"weights"`
		Bias    float64   `json:"bias"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse reranker model %s: %w", path, err)
	}
	if len(raw.Weights) != domain.NumFeatures {
		return nil, fmt.Errorf("reranker model %s: expected %d weights, got %d", path, domain.NumFeatures, len(raw.Weights))
	}

	s := &LinearScorer{Bias: raw.Bias}
	copy(s.Weights[:], raw.Weights)
	return s, nil
}
