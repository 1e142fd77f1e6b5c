package evaluation

import (
	"bytes"
	"strings"
	"testing"

	"jobmatch/internal/domain/feature"
)

func TestEvaluate_Fixture(t *testing.T) {
	m, err := feature.Fit(FixtureCatalog())
	if err != nil {
		t.Fatalf("fit: %v", err)
	}

	rep, err := Evaluate(m, FixtureProfiles(), DefaultCutoffs())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if want := len(FixtureProfiles()) * len(DefaultCutoffs()); len(rep.Rows) != want {
		t.Fatalf("expected %d rows, got %d", want, len(rep.Rows))
	}
	if len(rep.MRRs) != len(FixtureProfiles()) {
		t.Fatalf("expected one MRR per profile, got %d", len(rep.MRRs))
	}
	if len(rep.Means) != len(DefaultCutoffs()) {
		t.Fatalf("expected one mean row per cutoff, got %d", len(rep.Means))
	}

	for _, row := range rep.Rows {
		if row.Precision < 0 || row.Precision > 1 || row.NDCG < 0 || row.NDCG > 1 {
			t.Fatalf("metric out of range: %+v", row)
		}
	}

	// Skill-weighted matching should rank the labeled postings well on this
	// hand-built fixture; the ranking is broken if top-3 precision collapses.
	for _, mean := range rep.Means {
		if mean.K == 3 && mean.Precision < 0.4 {
			t.Fatalf("mean precision@3 = %v, suspiciously low", mean.Precision)
		}
	}
}

func TestEvaluate_NilModel(t *testing.T) {
	if _, err := Evaluate(nil, FixtureProfiles(), nil); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

func TestWriteCSV(t *testing.T) {
	rep := Report{
		Rows:  []Row{{Profile: "Data Science Profile", K: 3, Precision: 0.667, Recall: 1, F1: 0.8, NDCG: 0.919}},
		Means: []MeanRow{{K: 3, Precision: 0.667, Recall: 1, F1: 0.8, NDCG: 0.919}},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rep); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + row + mean, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Profile,K,Precision,Recall,F1,NDCG" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[2], "MEAN,3,") {
		t.Fatalf("unexpected mean row: %s", lines[2])
	}
}
