package driver

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"search-relevance/domain"
)

// JudgmentDB stores judged result lists in Postgres. Each row is one ranked
// document for one query within a named collection run.
type JudgmentDB struct {
	pool *pgxpool.Pool
}

func NewJudgmentDB(pool *pgxpool.Pool) *JudgmentDB {
	return &JudgmentDB{pool: pool}
}

func (d *JudgmentDB) SaveResults(ctx context.Context, run string, results []domain.JudgedResult) error {
	if len(results) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, r := range results {
		batch.Queue(
			`INSERT INTO search_judgments
			   (run, query, rank, title, body, url, category, published, retrieval_score, label)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			run, r.Query, r.Rank, r.Title, r.Body, r.URL, r.Category, r.Date, r.Score, int(r.Label),
		)
	}

	br := d.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range results {
		if _, err := br.Exec(); err != nil {
			return &domain.RepositoryError{Op: "SaveResults", Err: err.Error()}
		}
	}
	return nil
}

func (d *JudgmentDB) ListResults(ctx context.Context, run string) ([]domain.JudgedResult, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT query, rank, title, body, url, category, published, retrieval_score, label
		   FROM search_judgments
		  WHERE run = $1
		  ORDER BY query, rank`,
		run,
	)
	if err != nil {
		return nil, &domain.RepositoryError{Op: "ListResults", Err: err.Error()}
	}
	defer rows.Close()

	var results []domain.JudgedResult
	for rows.Next() {
		var r domain.JudgedResult
		var label int
		if err := rows.Scan(&r.Query, &r.Rank, &r.Title, &r.Body, &r.URL, &r.Category, &r.Date, &r.Score, &label); err != nil {
			return nil, &domain.RepositoryError{Op: "ListResults", Err: err.Error()}
		}
		r.Label = domain.HumanLabel(label)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.RepositoryError{Op: "ListResults", Err: err.Error()}
	}
	return results, nil
}
