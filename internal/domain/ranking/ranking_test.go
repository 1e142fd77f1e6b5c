package ranking

import (
	"reflect"
	"testing"

	"jobmatch/internal/domain/feature"
)

func TestScores(t *testing.T) {
	query := feature.Vector{Indices: []int{0, 1}, Values: []float64{0.6, 0.8}}
	embeddings := []feature.Vector{
		{Indices: []int{0, 1}, Values: []float64{0.6, 0.8}},
		{Indices: []int{2}, Values: []float64{1}},
	}
	got := Scores(query, embeddings)
	if got[0] <= 0.99 || got[1] != 0 {
		t.Fatalf("unexpected scores: %v", got)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	// All-zero scores must fall back to catalog order.
	got := Rank([]float64{0, 0, 0, 0})
	want := []int{0, 1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	got = Rank([]float64{0.5, 0.9, 0.5, 0.1})
	want = []int{1, 0, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTopK_ClampsToCatalogSize(t *testing.T) {
	scores := []float64{0.1, 0.9}
	got := TopK(scores, 50)
	if len(got) != 2 {
		t.Fatalf("expected full catalog, got %v", got)
	}
	if got[0] != 1 {
		t.Fatalf("expected index 1 first, got %v", got)
	}
	if len(TopK(scores, 0)) != 0 {
		t.Fatalf("expected empty result for k=0")
	}
}
