package repository

import (
	"context"
	"fmt"

	"jobmatch/internal/catalog"
	"jobmatch/internal/database"
)

// PostgresPostingSource loads the catalog from a job_postings table. It
// satisfies catalog.Source, so the engine fits from Postgres the same way it
// fits from CSV. Incomplete rows are dropped here exactly as the CSV loader
// drops them.
type PostgresPostingSource struct {
	db database.DB
}

func NewPostgresPostingSource(db database.DB) *PostgresPostingSource {
	return &PostgresPostingSource{db: db}
}

func (s *PostgresPostingSource) Load(ctx context.Context) ([]catalog.Posting, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("posting source: nil db")
	}

	rows, err := s.db.Query(ctx,
		`SELECT COALESCE(title, ''), COALESCE(company, ''), COALESCE(required_skills, '')
		 FROM job_postings
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("posting source: %w", err)
	}
	defer rows.Close()

	out := make([]catalog.Posting, 0)
	for rows.Next() {
		var title, company, skills string
		if err := rows.Scan(&title, &company, &skills); err != nil {
			return nil, fmt.Errorf("posting source: scan: %w", err)
		}
		p, ok := catalog.NewPosting(title, company, skills)
		if !ok {
			continue
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("posting source: %w", err)
	}
	return out, nil
}
