// Package dataset reads and writes the labeled-data files exchanged with
// the annotation workflow: CSV judged result lists for evaluation and JSONL
// pair files for reranker training. Malformed records are skipped and
// counted; a bad line never aborts a batch.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"search-relevance/domain"
)

// csv column order for judged result lists. The relevance column is left
// empty at collection time and filled in by the annotator.
var judgedHeader = []string{"relevance", "query", "title", "text", "url", "category", "date", "score"}

// SkipStats reports how many records a reader consumed and dropped.
type SkipStats struct {
	Read    int
	Skipped int
}

// ReadJudgedCSV loads a judged result list file. Row order within a query is
// the system's ranking order and is preserved as-is. Rows that fail to parse
// are skipped and counted.
func ReadJudgedCSV(path string) ([]domain.JudgedResult, SkipStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, SkipStats{}, fmt.Errorf("open judged csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// header
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, SkipStats{}, nil
		}
		return nil, SkipStats{}, fmt.Errorf("read judged csv header: %w", err)
	}

	var results []domain.JudgedResult
	var stats SkipStats
	rankByQuery := map[string]int{}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.Skipped++
			continue
		}
		stats.Read++

		if len(rec) < 7 {
			stats.Skipped++
			continue
		}

		label := 0
		if v := strings.TrimSpace(rec[0]); v != "" {
			label, err = strconv.Atoi(v)
			if err != nil || label < 0 {
				stats.Skipped++
				continue
			}
		}

		score := 0.0
		if len(rec) > 7 && strings.TrimSpace(rec[7]) != "" {
			score, err = strconv.ParseFloat(strings.TrimSpace(rec[7]), 64)
			if err != nil {
				stats.Skipped++
				continue
			}
		}

		query := rec[1]
		rankByQuery[query]++

		results = append(results, domain.JudgedResult{
			Query:    query,
			Rank:     rankByQuery[query],
			Title:    rec[2],
			Body:     rec[3],
			URL:      rec[4],
			Category: rec[5],
			Date:     rec[6],
			Score:    score,
			Label:    domain.HumanLabel(label),
		})
	}

	if stats.Skipped > 0 {
		slog.Warn("skipped malformed judged rows", "path", path, "skipped", stats.Skipped, "read", stats.Read)
	}
	return results, stats, nil
}

// WriteJudgedCSV persists results for labeling. Labels already present are
// written out, so the same format round-trips annotated files.
func WriteJudgedCSV(path string, results []domain.JudgedResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create judged csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(judgedHeader); err != nil {
		return err
	}

	for _, res := range results {
		label := ""
		if res.Label > 0 {
			label = strconv.Itoa(int(res.Label))
		}
		rec := []string{
			label,
			res.Query,
			res.Title,
			bodyPreview(res.Body),
			res.URL,
			res.Category,
			res.Date,
			strconv.FormatFloat(res.Score, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// bodyPreview truncates body text for the annotation sheet.
func bodyPreview(body string) string {
	const limit = 200
	if len(body) <= limit {
		return body
	}
	cut := limit
	for cut > 0 && body[cut]&0xC0 == 0x80 {
		cut--
	}
	return body[:cut] + "..."
}

// GroupRankings folds judged rows into per-query ranking lists. Queries keep
// first-appearance order; rows keep their ranked order within each query.
func GroupRankings(results []domain.JudgedResult) []domain.RankingList {
	var order []string
	byQuery := map[string][]domain.HumanLabel{}

	for _, res := range results {
		if _, seen := byQuery[res.Query]; !seen {
			order = append(order, res.Query)
		}
		byQuery[res.Query] = append(byQuery[res.Query], res.Label)
	}

	rankings := make([]domain.RankingList, 0, len(order))
	for _, q := range order {
		rankings = append(rankings, domain.RankingList{Query: q, Labels: byQuery[q]})
	}
	return rankings
}
