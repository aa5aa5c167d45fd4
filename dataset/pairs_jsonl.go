package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"search-relevance/domain"
)

// ReadPairsJSONL loads reranker training pairs, one JSON object per line.
// Blank lines are ignored; unparseable lines are skipped and counted.
func ReadPairsJSONL(path string) ([]domain.LabeledPair, SkipStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, SkipStats{}, fmt.Errorf("open pairs file: %w", err)
	}
	defer f.Close()

	var pairs []domain.LabeledPair
	var stats SkipStats

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		stats.Read++

		var p domain.LabeledPair
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			stats.Skipped++
			continue
		}
		pairs = append(pairs, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("scan pairs file: %w", err)
	}

	if stats.Skipped > 0 {
		slog.Warn("skipped malformed training pairs", "path", path, "skipped", stats.Skipped, "read", stats.Read)
	}
	return pairs, stats, nil
}

// WritePairsJSONL persists training pairs, one JSON object per line.
func WritePairsJSONL(path string, pairs []domain.LabeledPair) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pairs file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, p := range pairs {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode pair: %w", err)
		}
	}
	return w.Flush()
}
