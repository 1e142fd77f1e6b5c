package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source loads the raw posting catalog. Incomplete records are dropped
// silently; upstream data entry is expected to be noisy.
type Source interface {
	Load(ctx context.Context) ([]Posting, error)
}

// CSVSource reads postings from a CSV file with a
// "Job Title, Company, Required Skills" header.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Load(ctx context.Context) ([]Posting, error) {
	if s == nil || strings.TrimSpace(s.Path) == "" {
		return nil, fmt.Errorf("csv source: empty path")
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("csv source: %w", err)
	}
	defer f.Close()

	return readPostings(ctx, f)
}

func readPostings(ctx context.Context, r io.Reader) ([]Posting, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv source: empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("csv source: read header: %w", err)
	}

	titleIdx, companyIdx, skillsIdx := -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "job title", "title":
			titleIdx = i
		case "company":
			companyIdx = i
		case "required skills", "skills":
			skillsIdx = i
		}
	}
	if titleIdx < 0 || skillsIdx < 0 {
		return nil, fmt.Errorf("csv source: missing Job Title or Required Skills column")
	}

	out := make([]Posting, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv source: read row: %w", err)
		}

		field := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return rec[idx]
		}

		p, ok := NewPosting(field(titleIdx), field(companyIdx), field(skillsIdx))
		if !ok {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
